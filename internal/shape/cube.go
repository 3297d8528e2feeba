package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Cube is the axis-aligned box [-1,1]^3.
type Cube struct {
	frame    vecmath.Transform
	material material.Material
	bounds   Bounds
}

// NewCube builds a Cube with a checked [-1,1]^3 bound.
func NewCube(frame vecmath.Transform, mat material.Material) *Cube {
	box := NewBoundingBox([2]float64{-1, 1}, [2]float64{-1, 1}, [2]float64{-1, 1}).TransformBy(frame)
	return &Cube{
		frame:    frame,
		material: mat,
		bounds:   NewBounds(box).Raise(),
	}
}

func (c *Cube) FrameTransformation() vecmath.Transform { return c.frame }
func (c *Cube) Material() *material.Material           { return &c.material }
func (c *Cube) Bounds() Bounds                         { return c.bounds }
func (c *Cube) Contains(p Primitive) bool              { return Primitive(c) == p }

func (c *Cube) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(c, worldRay, stack)
}

func (c *Cube) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	xtmin, xtmax := checkAxis(-1, 1, localRay.Origin.X, localRay.Direction.X)
	ytmin, ytmax := checkAxis(-1, 1, localRay.Origin.Y, localRay.Direction.Y)
	ztmin, ztmax := checkAxis(-1, 1, localRay.Origin.Z, localRay.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return []Coordinates{{T: tmin}, {T: tmax}}
}

func (c *Cube) LocalNormalAt(localPoint vecmath.Point, _ *UV) vecmath.Vector {
	absX, absY, absZ := math.Abs(localPoint.X), math.Abs(localPoint.Y), math.Abs(localPoint.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch {
	case maxc == absX:
		return vecmath.NewVector(localPoint.X, 0, 0)
	case maxc == absY:
		return vecmath.NewVector(0, localPoint.Y, 0)
	default:
		return vecmath.NewVector(0, 0, localPoint.Z)
	}
}
