// Package vecmath provides the geometric substrate for the ray tracer:
// points, vectors, 4x4 matrices, affine transforms, angles, and rays.
//
// Points and vectors are kept as distinct Go types rather than a single
// homogeneous Tuple4 so that the compiler enforces the algebra the renderer
// depends on (point-point is a vector, point+vector is a point, and so on).
// Internally both convert to a 4-component column for matrix multiplication.
package vecmath

import "math"

// Epsilon is the default tolerance used for floating point comparisons
// throughout the renderer.
const Epsilon = 1e-6

// AlmostEqual reports whether a and b differ by less than Epsilon.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Vector is a free direction in 3-space (w=0 in homogeneous form).
type Vector struct {
	X, Y, Z float64
}

// NewVector constructs a Vector from its components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Point is a location in 3-space (w=1 in homogeneous form).
type Point struct {
	X, Y, Z float64
}

// NewPoint constructs a Point from its components.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVector returns the point displaced by -v.
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Neg returns the point with every component negated. This has no physical
// meaning on its own but falls out of the homogeneous algebra and is kept
// for symmetry with Vector.Neg.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Equal reports exact equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z
}

// AlmostEqual reports equality within Epsilon per component.
func (p Point) AlmostEqual(q Point) bool {
	return AlmostEqual(p.X, q.X) && AlmostEqual(p.Y, q.Y) && AlmostEqual(p.Z, q.Z)
}

// Add returns the vector sum v+u.
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the vector difference v-u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns v scaled by the scalar s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v divided component-wise by the scalar s.
func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// Dot returns the dot product v.u.
func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product v x u.
func (v Vector) Cross(u Vector) Vector {
	return Vector{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Magnitude returns the Euclidean length of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length.
func (v Vector) Normalize() Vector {
	return v.Div(v.Magnitude())
}

// Reflect returns v reflected about normal: v - 2*(v.n)*n.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Scale(2 * v.Dot(normal)))
}

// Equal reports exact equality.
func (v Vector) Equal(u Vector) bool {
	return v.X == u.X && v.Y == u.Y && v.Z == u.Z
}

// AlmostEqual reports equality within Epsilon per component.
func (v Vector) AlmostEqual(u Vector) bool {
	return AlmostEqual(v.X, u.X) && AlmostEqual(v.Y, u.Y) && AlmostEqual(v.Z, u.Z)
}

// tuple4 is the internal homogeneous representation used to drive points
// and vectors through a Matrix. It is never exposed outside this package.
type tuple4 struct {
	x, y, z, w float64
}

func pointTuple(p Point) tuple4  { return tuple4{p.X, p.Y, p.Z, 1} }
func vectorTuple(v Vector) tuple4 { return tuple4{v.X, v.Y, v.Z, 0} }

func tupleToPoint(t tuple4) Point   { return Point{t.x, t.y, t.z} }
func tupleToVector(t tuple4) Vector { return Vector{t.x, t.y, t.z} }
