package render

import "github.com/philipparndt/rtweekend/pkg/geometry"

var (
	// SceneSphere is the only object in the scene
	SceneSphere = geometry.NewSphere(geometry.NewVec3(0, 0, -1), 0.5)

	// White is the sky color looking straight down
	White = geometry.NewVec3(1, 1, 1)
	// SkyBlue is the sky color looking straight up
	SkyBlue = geometry.NewVec3(0.5, 0.7, 1.0)
)

// RayColor shades a primary ray. A hit on SceneSphere is colored by its
// surface normal, everything else by the sky gradient.
func RayColor(r geometry.Ray) geometry.Color3 {
	if t, ok := SceneSphere.Hit(r); ok && t > 0 {
		return NormalColor(SceneSphere.Normal(r.At(t)))
	}
	return SkyColor(r.Direction)
}

// NormalColor maps a unit normal from [-1,1] to [0,1] per component
func NormalColor(n geometry.Direction3) geometry.Color3 {
	return n.Add(White).Mul(0.5)
}

// SkyColor blends White to SkyBlue by the vertical component of the
// direction. It ignores the ray origin.
func SkyColor(direction geometry.Direction3) geometry.Color3 {
	unit := direction.Normalize()
	s := 0.5 * (unit.Y() + 1.0)
	return geometry.Lerp(White, SkyBlue, s)
}
