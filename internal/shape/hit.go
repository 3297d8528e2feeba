package shape

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/msealion/raytracer/internal/vecmath"
)

// RawIntersect is one root of a shape's geometry equation along a ray,
// tagged with enough context (the originating ray and the transform
// stack in effect at the moment of intersection) to later compute a
// full ComputedIntersect without re-walking the tree.
type RawIntersect struct {
	T      float64
	Object Primitive
	Ray    vecmath.Ray
	UV     *UV
	Stack  TransformStack
}

// HitRegister accumulates RawIntersects from a ray cast against a shape
// tree and resolves them down to the single nearest non-negative hit.
type HitRegister struct {
	hits []RawIntersect
}

// NewHitRegister returns an empty register.
func NewHitRegister() *HitRegister {
	return &HitRegister{}
}

// Add records a single root.
func (h *HitRegister) Add(r RawIntersect) {
	h.hits = append(h.hits, r)
}

// Combine folds other's hits into h, leaving other unchanged.
func (h *HitRegister) Combine(other *HitRegister) {
	if other == nil {
		return
	}
	h.hits = append(h.hits, other.hits...)
}

// Raw returns every recorded root in arbitrary order, for CSG evaluation
// and tests that need to inspect the full set rather than the finalised
// hit.
func (h *HitRegister) Raw() []RawIntersect {
	return h.hits
}

// Len reports how many roots were recorded.
func (h *HitRegister) Len() int {
	return len(h.hits)
}

// sorted returns the recorded roots ordered by ascending T.
func (h *HitRegister) sorted() []RawIntersect {
	ordered := make([]RawIntersect, len(h.hits))
	copy(ordered, h.hits)
	slices.SortStableFunc(ordered, func(a, b RawIntersect) bool {
		return a.T < b.T
	})
	return ordered
}

// ComputedIntersect is the fully-resolved description of where a ray
// struck a scene: the hit point, the local shading basis, and the
// refractive-index pair used by refraction and the Schlick term.
type ComputedIntersect struct {
	T      float64
	Object Primitive
	Ray    vecmath.Ray
	Stack  TransformStack

	Point      vecmath.Point
	OverPoint  vecmath.Point
	UnderPoint vecmath.Point
	Eye        vecmath.Vector
	Normal     vecmath.Vector
	Reflect    vecmath.Vector
	Inside     bool

	N1, N2 float64
}

// overPointEpsilon nudges the shading point off the surface along the
// normal to avoid self-shadowing/self-intersection from floating point
// error in the shadow and reflection/refraction rays.
const overPointEpsilon = 1e-8

// FinaliseHit selects the nearest non-negative root (the "hit"), if any,
// and computes its full shading basis, including the n1/n2 refractive
// boundary by walking every root up to and including the hit in order
// and tracking which objects the ray is currently considered inside of.
func (h *HitRegister) FinaliseHit() (*ComputedIntersect, bool) {
	ordered := h.sorted()

	hitIndex := -1
	for i, r := range ordered {
		if r.T >= 0 {
			hitIndex = i
			break
		}
	}
	if hitIndex == -1 {
		return nil, false
	}

	hit := ordered[hitIndex]
	n1, n2 := refractiveBoundary(ordered, hitIndex)

	point := hit.Ray.Position(hit.T)
	eye := hit.Ray.Direction.Neg()
	normal := NormalAt(hit)
	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Neg()
	}

	overPoint := point.Add(normal.Scale(overPointEpsilon))
	underPoint := point.SubVector(normal.Scale(overPointEpsilon))
	reflect := hit.Ray.Direction.Reflect(normal)

	return &ComputedIntersect{
		T:          hit.T,
		Object:     hit.Object,
		Ray:        hit.Ray,
		Stack:      hit.Stack,
		Point:      point,
		OverPoint:  overPoint,
		UnderPoint: underPoint,
		Eye:        eye,
		Normal:     normal,
		Reflect:    reflect,
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}, true
}

// refractiveBoundary tracks, in order, which objects the ray is
// currently travelling through as it crosses each root up to and
// including hitIndex, so that n1 is the refractive index of the medium
// it was in just before the hit and n2 is the medium it will be in just
// after.
func refractiveBoundary(ordered []RawIntersect, hitIndex int) (n1, n2 float64) {
	var inObjects []Primitive

	containsIdentity := func(objs []Primitive, target Primitive) int {
		for i, o := range objs {
			if o == target {
				return i
			}
		}
		return -1
	}

	for i, r := range ordered {
		if i == hitIndex {
			if len(inObjects) == 0 {
				n1 = 1
			} else {
				n1 = inObjects[len(inObjects)-1].Material().RefractiveIndex
			}
		}

		if idx := containsIdentity(inObjects, r.Object); idx != -1 {
			inObjects = append(inObjects[:idx], inObjects[idx+1:]...)
		} else {
			inObjects = append(inObjects, r.Object)
		}

		if i == hitIndex {
			if len(inObjects) == 0 {
				n2 = 1
			} else {
				n2 = inObjects[len(inObjects)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}

	return n1, n2
}

// Schlick approximates the Fresnel reflectance fraction at the hit,
// i.e. what proportion of light reflects versus refracts at this angle.
func Schlick(hit *ComputedIntersect) float64 {
	cos := hit.Eye.Dot(hit.Normal)

	if hit.N1 > hit.N2 {
		n := hit.N1 / hit.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := math.Pow((hit.N1-hit.N2)/(hit.N1+hit.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
