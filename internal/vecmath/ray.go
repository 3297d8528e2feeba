package vecmath

// Ray is a half-line with an origin and a direction. The direction need not
// be unit length except for primary rays leaving the camera.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay constructs a Ray.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns r with its origin and direction each transformed
// independently by t.
func (r Ray) Transform(t Transform) Ray {
	return Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyVector(r.Direction),
	}
}
