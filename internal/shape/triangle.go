package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Triangle is a flat triangle with a single normal, defined by three
// local-space vertices.
type Triangle struct {
	frame    vecmath.Transform
	material material.Material
	bounds   Bounds

	P1, P2, P3 vecmath.Point
	E1, E2     vecmath.Vector
	Normal     vecmath.Vector
}

// NewTriangle builds a Triangle from its three local-space vertices,
// precomputing the edge vectors and face normal used by every hit.
func NewTriangle(frame vecmath.Transform, mat material.Material, p1, p2, p3 vecmath.Point) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	normal := e2.Cross(e1).Normalize()

	box := triangleBoundingBox(p1, p2, p3).TransformBy(frame)
	return &Triangle{
		frame:    frame,
		material: mat,
		bounds:   NewBounds(box).Raise(),
		P1:       p1,
		P2:       p2,
		P3:       p3,
		E1:       e1,
		E2:       e2,
		Normal:   normal,
	}
}

func triangleBoundingBox(p1, p2, p3 vecmath.Point) BoundingBox {
	minOf3 := func(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
	maxOf3 := func(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
	return NewBoundingBox(
		[2]float64{minOf3(p1.X, p2.X, p3.X), maxOf3(p1.X, p2.X, p3.X)},
		[2]float64{minOf3(p1.Y, p2.Y, p3.Y), maxOf3(p1.Y, p2.Y, p3.Y)},
		[2]float64{minOf3(p1.Z, p2.Z, p3.Z), maxOf3(p1.Z, p2.Z, p3.Z)},
	)
}

func (t *Triangle) FrameTransformation() vecmath.Transform { return t.frame }
func (t *Triangle) Material() *material.Material           { return &t.material }
func (t *Triangle) Bounds() Bounds                         { return t.bounds }
func (t *Triangle) Contains(p Primitive) bool              { return Primitive(t) == p }

func (t *Triangle) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(t, worldRay, stack)
}

// moellerTrumbore solves for (t, u, v) such that
// origin + t*direction == p1 + u*e1 + v*e2, or reports a miss.
func moellerTrumbore(p1 vecmath.Point, e1, e2 vecmath.Vector, localRay vecmath.Ray) (t, u, v float64, hit bool) {
	dirCrossE2 := localRay.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < vecmath.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := localRay.Origin.Sub(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * localRay.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

func (t *Triangle) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	root, u, v, hit := moellerTrumbore(t.P1, t.E1, t.E2, localRay)
	if !hit {
		return nil
	}
	return []Coordinates{{T: root, UV: &UV{U: u, V: v}}}
}

func (t *Triangle) LocalNormalAt(_ vecmath.Point, _ *UV) vecmath.Vector {
	return t.Normal
}
