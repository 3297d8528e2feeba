package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Plane is the local xz-plane, infinite in x and z, flat in y.
type Plane struct {
	frame    vecmath.Transform
	material material.Material
	bounds   Bounds
}

// NewPlane builds a Plane. Its box is infinite in x and z, so it is left
// unchecked: there is nothing to prune.
func NewPlane(frame vecmath.Transform, mat material.Material) *Plane {
	box := NewBoundingBox(
		[2]float64{math.Inf(-1), math.Inf(1)},
		[2]float64{0, 0},
		[2]float64{math.Inf(-1), math.Inf(1)},
	).TransformBy(frame)
	return &Plane{
		frame:    frame,
		material: mat,
		bounds:   NewBounds(box),
	}
}

func (p *Plane) FrameTransformation() vecmath.Transform { return p.frame }
func (p *Plane) Material() *material.Material           { return &p.material }
func (p *Plane) Bounds() Bounds                         { return p.bounds }
func (p *Plane) Contains(q Primitive) bool              { return Primitive(p) == q }

func (p *Plane) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(p, worldRay, stack)
}

func (p *Plane) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	if math.Abs(localRay.Direction.Y) < vecmath.Epsilon {
		return nil
	}
	t := -localRay.Origin.Y / localRay.Direction.Y
	return []Coordinates{{T: t}}
}

func (p *Plane) LocalNormalAt(_ vecmath.Point, _ *UV) vecmath.Vector {
	return vecmath.NewVector(0, 1, 0)
}
