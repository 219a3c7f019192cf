package geometry

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the single 3-component value type used for positions, directions and colors
type Vec3 = mgl64.Vec3

// Point3 is a Vec3 used as a position in space
type Point3 = Vec3

// Direction3 is a Vec3 used as a direction (not necessarily unit length)
type Direction3 = Vec3

// Color3 is a Vec3 used as an RGB color, nominally in [0,1] per channel
type Color3 = Vec3

// NewVec3 creates a new 3D vector
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// LengthSquared returns the squared magnitude of v
func LengthSquared(v Vec3) float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates from a (s=0) to b (s=1)
func Lerp(a, b Vec3, s float64) Vec3 {
	return a.Mul(1.0 - s).Add(b.Mul(s))
}
