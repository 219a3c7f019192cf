package geometry

import "math"

// NoHit is the value HitSphereT returns when the ray misses
const NoHit = -1.0

// Sphere is a sphere given by center and radius. Radius is expected to be positive.
type Sphere struct {
	Center Point3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center Point3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit tests the ray against the sphere, see HitSphere
func (s Sphere) Hit(r Ray) (float64, bool) {
	return HitSphere(s.Center, s.Radius, r)
}

// Normal returns the outward unit normal at point p on the surface
func (s Sphere) Normal(p Point3) Direction3 {
	return p.Sub(s.Center).Normalize()
}

// HitSphere solves |O + tD - C|² = r² for the nearer root.
// ok is false when the discriminant is negative. The returned t may be
// zero or negative, in which case the intersection lies at or behind the
// ray origin; callers decide whether that counts. The far root is never
// returned. r.Direction must be non-zero.
func HitSphere(center Point3, radius float64, r Ray) (t float64, ok bool) {
	oc := r.Origin.Sub(center)
	a := LengthSquared(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := LengthSquared(oc) - radius*radius
	discriminant := halfB*halfB - a*c

	if discriminant < 0 {
		return 0, false
	}
	return (-halfB - math.Sqrt(discriminant)) / a, true
}

// HitSphereT is HitSphere with a scalar result: NoHit (-1) on a miss.
// A valid root below zero is indistinguishable from a miss here.
func HitSphereT(center Point3, radius float64, r Ray) float64 {
	t, ok := HitSphere(center, radius, r)
	if !ok {
		return NoHit
	}
	return t
}
