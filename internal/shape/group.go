package shape

import "github.com/msealion/raytracer/internal/vecmath"

// Group collects child shapes under a single frame transformation. It
// carries no material of its own; shading comes entirely from whatever
// primitive is actually hit.
type Group struct {
	frame    vecmath.Transform
	children []Shape
	bounds   Bounds
}

// NewGroup builds a Group from already-constructed children, computing
// its bounds immediately as the union of each child's bound (already
// expressed in the group's own local frame) transformed by the group's
// frame transformation.
func NewGroup(frame vecmath.Transform, children ...Shape) *Group {
	g := &Group{frame: frame, children: children}

	if len(children) == 0 {
		g.bounds = NewBounds(UnboundedBox()).Lower()
		return g
	}

	union := children[0].Bounds().BoundingBox()
	for _, c := range children[1:] {
		union = union.Union(c.Bounds().BoundingBox())
	}
	g.bounds = NewBounds(union.TransformBy(frame)).Raise()
	return g
}

// Children returns the group's immediate members.
func (g *Group) Children() []Shape { return g.children }

// FrameTransformation returns the group's own frame transformation.
func (g *Group) FrameTransformation() vecmath.Transform { return g.frame }

func (g *Group) Bounds() Bounds { return g.bounds }

func (g *Group) Contains(p Primitive) bool {
	for _, c := range g.children {
		if c.Contains(p) {
			return true
		}
	}
	return false
}

func (g *Group) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	reg := NewHitRegister()
	if !g.bounds.Intersects(worldRay, stack) {
		return reg
	}

	fullStack := stack.push(g.frame)
	for _, c := range g.children {
		reg.Combine(c.IntersectRay(worldRay, fullStack))
	}
	return reg
}
