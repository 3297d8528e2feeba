package shape

import (
	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// SmoothTriangle is a Triangle whose normal is interpolated across its
// face from three per-vertex normals using the hit's barycentric
// coordinates, giving the illusion of a curved surface.
type SmoothTriangle struct {
	frame    vecmath.Transform
	material material.Material
	bounds   Bounds

	P1, P2, P3 vecmath.Point
	E1, E2     vecmath.Vector
	N1, N2, N3 vecmath.Vector
}

// NewSmoothTriangle builds a SmoothTriangle from three local-space
// vertices and their per-vertex normals.
func NewSmoothTriangle(frame vecmath.Transform, mat material.Material, p1, p2, p3 vecmath.Point, n1, n2, n3 vecmath.Vector) *SmoothTriangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	box := triangleBoundingBox(p1, p2, p3).TransformBy(frame)
	return &SmoothTriangle{
		frame:    frame,
		material: mat,
		bounds:   NewBounds(box).Raise(),
		P1:       p1,
		P2:       p2,
		P3:       p3,
		E1:       e1,
		E2:       e2,
		N1:       n1,
		N2:       n2,
		N3:       n3,
	}
}

func (t *SmoothTriangle) FrameTransformation() vecmath.Transform { return t.frame }
func (t *SmoothTriangle) Material() *material.Material           { return &t.material }
func (t *SmoothTriangle) Bounds() Bounds                         { return t.bounds }
func (t *SmoothTriangle) Contains(p Primitive) bool              { return Primitive(t) == p }

func (t *SmoothTriangle) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(t, worldRay, stack)
}

func (t *SmoothTriangle) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	root, u, v, hit := moellerTrumbore(t.P1, t.E1, t.E2, localRay)
	if !hit {
		return nil
	}
	return []Coordinates{{T: root, UV: &UV{U: u, V: v}}}
}

func (t *SmoothTriangle) LocalNormalAt(_ vecmath.Point, uv *UV) vecmath.Vector {
	u, v := uv.U, uv.V
	n := t.N2.Scale(u).Add(t.N3.Scale(v)).Add(t.N1.Scale(1 - u - v))
	return n
}
