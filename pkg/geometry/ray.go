package geometry

// Ray is the parametric line Origin + t*Direction
type Ray struct {
	Origin    Point3
	Direction Direction3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Direction3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
