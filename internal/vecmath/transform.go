package vecmath

import "math"

// Axis names a coordinate axis for Rotate and Reflect transform kinds.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Kind describes one primitive affine transform. Transform is built either
// from a single Kind or from an ordered sequence of them via FromSequence.
type Kind struct {
	variant kindVariant
	x, y, z float64 // translate/scale components, or shear coefficients packed below
	axis    Axis
	angle   Angle
	shear   [6]float64
}

type kindVariant int

const (
	kindIdentity kindVariant = iota
	kindTranslate
	kindScale
	kindReflect
	kindRotate
	kindShear
)

// Identity is the no-op transform kind.
func Identity() Kind { return Kind{variant: kindIdentity} }

// Translate shifts by (x, y, z).
func Translate(x, y, z float64) Kind {
	return Kind{variant: kindTranslate, x: x, y: y, z: z}
}

// Scale scales by (x, y, z) along each axis.
func Scale(x, y, z float64) Kind {
	return Kind{variant: kindScale, x: x, y: y, z: z}
}

// Reflect mirrors across the plane perpendicular to axis, i.e. scales by -1
// along that axis and 1 along the others.
func Reflect(axis Axis) Kind {
	return Kind{variant: kindReflect, axis: axis}
}

// Rotate rotates by angle about axis (right-handed).
func Rotate(axis Axis, angle Angle) Kind {
	return Kind{variant: kindRotate, axis: axis, angle: angle}
}

// Shear applies the six off-diagonal shear coefficients in the order
// xy, xz, yx, yz, zx, zy.
func Shear(xy, xz, yx, yz, zx, zy float64) Kind {
	return Kind{variant: kindShear, shear: [6]float64{xy, xz, yx, yz, zx, zy}}
}

func (k Kind) matrix() Matrix {
	switch k.variant {
	case kindIdentity:
		return IdentityMatrix
	case kindTranslate:
		m := IdentityMatrix
		m[0][3], m[1][3], m[2][3] = k.x, k.y, k.z
		return m
	case kindScale:
		m := IdentityMatrix
		m[0][0], m[1][1], m[2][2] = k.x, k.y, k.z
		return m
	case kindReflect:
		m := IdentityMatrix
		switch k.axis {
		case AxisX:
			m[0][0] = -1
		case AxisY:
			m[1][1] = -1
		case AxisZ:
			m[2][2] = -1
		}
		return m
	case kindRotate:
		sin, cos := math.Sin(k.angle.Radians()), math.Cos(k.angle.Radians())
		m := IdentityMatrix
		switch k.axis {
		case AxisX:
			m[1][1], m[1][2] = cos, -sin
			m[2][1], m[2][2] = sin, cos
		case AxisY:
			m[0][0], m[0][2] = cos, sin
			m[2][0], m[2][2] = -sin, cos
		case AxisZ:
			m[0][0], m[0][1] = cos, -sin
			m[1][0], m[1][1] = sin, cos
		}
		return m
	case kindShear:
		m := IdentityMatrix
		m[0][1], m[0][2] = k.shear[0], k.shear[1]
		m[1][0], m[1][2] = k.shear[2], k.shear[3]
		m[2][0], m[2][1] = k.shear[4], k.shear[5]
		return m
	default:
		return IdentityMatrix
	}
}

// Transform wraps a 4x4 matrix that carries a point, vector, or ray between
// coordinate spaces.
type Transform struct {
	matrix Matrix
}

// NewTransform builds a Transform from a single primitive Kind.
func NewTransform(kind Kind) Transform {
	return Transform{matrix: kind.matrix()}
}

// FromSequence composes a sequence of Kinds left-to-right in application
// order: the first Kind in the slice is applied first.
func FromSequence(kinds ...Kind) Transform {
	result := Transform{matrix: IdentityMatrix}
	for _, kind := range kinds {
		result = result.Compose(NewTransform(kind))
	}
	return result
}

// FromMatrix wraps an already-built matrix as a Transform, e.g. for a view
// orientation matrix assembled by hand.
func FromMatrix(m Matrix) Transform {
	return Transform{matrix: m}
}

// Matrix returns the underlying 4x4 matrix.
func (t Transform) Matrix() Matrix {
	return t.matrix
}

// Compose returns the transform that applies t first, then other:
// compose(t, other).matrix = other.matrix * t.matrix.
func (t Transform) Compose(other Transform) Transform {
	return Transform{matrix: other.matrix.Multiply(t.matrix)}
}

// Invert returns the inverse transform.
func (t Transform) Invert() Transform {
	return Transform{matrix: t.matrix.Invert()}
}

// Transpose returns the transform with its matrix transposed. This is used
// to carry normals between spaces (the inverse-transpose of the frame
// transform), not to invert the transform itself.
func (t Transform) Transpose() Transform {
	return Transform{matrix: t.matrix.Transpose()}
}

// ApplyPoint transforms a point.
func (t Transform) ApplyPoint(p Point) Point {
	return tupleToPoint(t.matrix.multiplyTuple(pointTuple(p)))
}

// ApplyVector transforms a vector.
func (t Transform) ApplyVector(v Vector) Vector {
	return tupleToVector(t.matrix.multiplyTuple(vectorTuple(v)))
}

// Equal reports exact equality of the underlying matrices.
func (t Transform) Equal(other Transform) bool {
	return t.matrix.Equal(other.matrix)
}

// AlmostEqual reports approximate equality of the underlying matrices.
func (t Transform) AlmostEqual(other Transform) bool {
	return t.matrix.AlmostEqual(other.matrix)
}
