package shape

import "github.com/msealion/raytracer/internal/vecmath"

// Operation is one of the three boolean combinators a CSG node applies
// to its two children.
type Operation int

const (
	Union Operation = iota
	Intersect
	Difference
)

// CSG combines two child shapes under a boolean operation. Its bounds
// are always the union of its children's bounds, and it carries an
// optional frame transformation of its own (identity unless the
// builder supplies one).
type CSG struct {
	op          Operation
	left, right Shape
	frame       vecmath.Transform
	bounds      Bounds
}

// NewCSG combines left and right under op with the given frame
// transformation (pass an identity transform for no additional
// framing).
func NewCSG(op Operation, frame vecmath.Transform, left, right Shape) *CSG {
	union := left.Bounds().BoundingBox().Union(right.Bounds().BoundingBox())
	return &CSG{
		op:     op,
		left:   left,
		right:  right,
		frame:  frame,
		bounds: NewBounds(union.TransformBy(frame)).Raise(),
	}
}

func (c *CSG) FrameTransformation() vecmath.Transform { return c.frame }
func (c *CSG) Bounds() Bounds                         { return c.bounds }

func (c *CSG) Contains(p Primitive) bool {
	return c.left.Contains(p) || c.right.Contains(p)
}

func (c *CSG) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	reg := NewHitRegister()
	if !c.bounds.Intersects(worldRay, stack) {
		return reg
	}

	fullStack := stack.push(c.frame)
	combined := NewHitRegister()
	combined.Combine(c.left.IntersectRay(worldRay, fullStack))
	combined.Combine(c.right.IntersectRay(worldRay, fullStack))

	for _, r := range c.filterIntersections(combined.sorted()) {
		reg.Add(r)
	}
	return reg
}

// filterIntersections implements the standard CSG walk: step through
// the combined, sorted roots tracking whether the ray currently sits
// inside the left and right operands, keeping only the roots the
// operation's truth table allows.
func (c *CSG) filterIntersections(sorted []RawIntersect) []RawIntersect {
	var inLeft, inRight bool
	var kept []RawIntersect

	for _, r := range sorted {
		leftHit := c.left.Contains(r.Object)

		if intersectionAllowed(c.op, leftHit, inLeft, inRight) {
			kept = append(kept, r)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return kept
}

// intersectionAllowed is the truth table deciding, for a root where
// leftHit says which operand it belongs to and inLeft/inRight say
// whether the ray currently sits inside the left and right operands,
// whether that root is a boundary of the combined solid.
func intersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case Union:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case Intersect:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case Difference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return false
	}
}
