// Package shape implements the object graph a scene is built from:
// primitive surfaces, groups, and constructive solid geometry, unified
// under a single ray-intersection and bounds-pruning protocol.
//
// Every shape in a tree carries its own frame transformation. A ray or
// point travels down the tree by accumulating the chain of ancestor
// frame transformations into a TransformStack and running it forwards
// (world to local); a normal travels back up by running the same stack
// backwards (local to world) through the inverse-transpose of each
// frame. Primitives describe their geometry once in their own local
// frame and never see the stack directly beyond that.
package shape

import (
	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// TransformStack is the ordered chain of frame transformations from the
// scene root down to (and including) the shape currently being visited.
// Index 0 is outermost (applied first when moving into local space).
type TransformStack []vecmath.Transform

// push returns a new stack with t appended, never aliasing the receiver's
// backing array so that sibling branches of a tree can extend the same
// parent stack independently.
func (s TransformStack) push(t vecmath.Transform) TransformStack {
	extended := make(TransformStack, len(s)+1)
	copy(extended, s)
	extended[len(s)] = t
	return extended
}

// rayToLocal carries worldRay down through the stack, applying each
// frame's inverse in root-to-leaf order.
func rayToLocal(worldRay vecmath.Ray, stack TransformStack) vecmath.Ray {
	ray := worldRay
	for _, t := range stack {
		ray = ray.Transform(t.Invert())
	}
	return ray
}

// pointToLocal carries worldPoint down through the stack the same way
// rayToLocal does, used both for local_normal_at's local-point argument
// and for sampling a material pattern in object space.
func pointToLocal(worldPoint vecmath.Point, stack TransformStack) vecmath.Point {
	p := worldPoint
	for _, t := range stack {
		p = t.Invert().ApplyPoint(p)
	}
	return p
}

// normalToWorld carries a local-space normal back up through the stack in
// reverse (leaf-to-root) order via each frame's inverse-transpose, which
// is what keeps normals correct under non-uniform scaling.
func normalToWorld(localNormal vecmath.Vector, stack TransformStack) vecmath.Vector {
	n := localNormal
	for i := len(stack) - 1; i >= 0; i-- {
		n = stack[i].Invert().Transpose().ApplyVector(n)
	}
	return n.Normalize()
}

// UV carries the barycentric coordinates of a triangle hit, used by
// SmoothTriangle to interpolate vertex normals. Shapes that don't need
// it leave it nil.
type UV struct {
	U, V float64
}

// Coordinates is a single local-space root a primitive's geometry
// equation found along a ray, prior to being wrapped into a RawIntersect
// with its shape, originating ray, and transform stack.
type Coordinates struct {
	T  float64
	UV *UV
}

// Shape is anything that can be intersected by a world-space ray and
// that exposes a prunable bound: a primitive surface, a Group, or a CSG.
type Shape interface {
	// IntersectRay finds every root of this shape's geometry (and its
	// descendants') along worldRay, given the chain of ancestor frame
	// transformations already accumulated in stack.
	IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister

	// Bounds returns this shape's bounding volume expressed in its
	// parent's frame (i.e. already transformed by this shape's own
	// frame transformation, if any).
	Bounds() Bounds

	// Contains reports whether p is this shape or appears anywhere in
	// its descendants, by identity.
	Contains(p Primitive) bool
}

// Primitive is a Shape with actual geometry: a closed-form local
// intersection test and local normal, plus the frame and material every
// primitive carries.
type Primitive interface {
	Shape
	FrameTransformation() vecmath.Transform
	Material() *material.Material
	LocalIntersect(localRay vecmath.Ray) []Coordinates
	LocalNormalAt(localPoint vecmath.Point, uv *UV) vecmath.Vector
}

// intersectPrimitive is the shared dispatch every primitive's
// IntersectRay delegates to: a bounds check against the stack as
// accumulated so far, then the stack extended with the primitive's own
// frame, then the local intersection equation lifted back into
// RawIntersects tagged with that extended stack.
func intersectPrimitive(p Primitive, worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	reg := NewHitRegister()
	if !p.Bounds().Intersects(worldRay, stack) {
		return reg
	}

	fullStack := stack.push(p.FrameTransformation())
	localRay := rayToLocal(worldRay, fullStack)
	for _, c := range p.LocalIntersect(localRay) {
		reg.Add(RawIntersect{
			T:      c.T,
			Object: p,
			Ray:    worldRay,
			UV:     c.UV,
			Stack:  fullStack,
		})
	}
	return reg
}

// NormalAt computes the world-space surface normal at hit's position along
// its ray, using the transform stack recorded at intersection time.
func NormalAt(hit RawIntersect) vecmath.Vector {
	localPoint := pointToLocal(hit.Ray.Position(hit.T), hit.Stack)
	localNormal := hit.Object.LocalNormalAt(localPoint, hit.UV)
	return normalToWorld(localNormal, hit.Stack)
}

// PatternPoint expresses worldPoint in the object space of the shape
// that was hit, i.e. the point a Material's Pattern should be sampled
// at.
func PatternPoint(hit RawIntersect, worldPoint vecmath.Point) vecmath.Point {
	return pointToLocal(worldPoint, hit.Stack)
}

// LocalPoint expresses worldPoint in the local space the given
// transform stack describes. It is the same operation PatternPoint
// performs from a RawIntersect, exposed directly for callers (such as
// the shading integrator) that only have a ComputedIntersect's stack
// on hand.
func LocalPoint(worldPoint vecmath.Point, stack TransformStack) vecmath.Point {
	return pointToLocal(worldPoint, stack)
}
