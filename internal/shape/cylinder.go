package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Cylinder is a radius-1 tube along the local y-axis, truncated to
// [YMin, YMax] and optionally capped at either end.
type Cylinder struct {
	frame            vecmath.Transform
	material         material.Material
	bounds           Bounds
	YMin, YMax       float64
	ClosedMin        bool
	ClosedMax        bool
}

// NewCylinder builds a Cylinder. yMin/yMax may be +-Inf for an
// untruncated tube, in which case the y extent of its bound is left
// infinite.
func NewCylinder(frame vecmath.Transform, mat material.Material, yMin, yMax float64, closedMin, closedMax bool) *Cylinder {
	box := NewBoundingBox([2]float64{-1, 1}, [2]float64{yMin, yMax}, [2]float64{-1, 1}).TransformBy(frame)
	return &Cylinder{
		frame:     frame,
		material:  mat,
		bounds:    NewBounds(box).Raise(),
		YMin:      yMin,
		YMax:      yMax,
		ClosedMin: closedMin,
		ClosedMax: closedMax,
	}
}

func (c *Cylinder) FrameTransformation() vecmath.Transform { return c.frame }
func (c *Cylinder) Material() *material.Material           { return &c.material }
func (c *Cylinder) Bounds() Bounds                         { return c.bounds }
func (c *Cylinder) Contains(p Primitive) bool              { return Primitive(c) == p }

func (c *Cylinder) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(c, worldRay, stack)
}

func cylinderCapAt(localRay vecmath.Ray, t, radius float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= radius*radius
}

func (c *Cylinder) intersectCaps(localRay vecmath.Ray) []Coordinates {
	var roots []Coordinates
	if math.Abs(localRay.Direction.Y) < vecmath.Epsilon {
		return roots
	}

	if c.ClosedMin {
		t := (c.YMin - localRay.Origin.Y) / localRay.Direction.Y
		if cylinderCapAt(localRay, t, 1) {
			roots = append(roots, Coordinates{T: t})
		}
	}
	if c.ClosedMax {
		t := (c.YMax - localRay.Origin.Y) / localRay.Direction.Y
		if cylinderCapAt(localRay, t, 1) {
			roots = append(roots, Coordinates{T: t})
		}
	}
	return roots
}

func (c *Cylinder) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	var roots []Coordinates

	a := localRay.Direction.X*localRay.Direction.X + localRay.Direction.Z*localRay.Direction.Z
	if math.Abs(a) >= vecmath.Epsilon {
		b := 2*localRay.Origin.X*localRay.Direction.X + 2*localRay.Origin.Z*localRay.Direction.Z
		cc := localRay.Origin.X*localRay.Origin.X + localRay.Origin.Z*localRay.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtDisc := math.Sqrt(discriminant)
			t0 := (-b - sqrtDisc) / (2 * a)
			t1 := (-b + sqrtDisc) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}

			y0 := localRay.Origin.Y + t0*localRay.Direction.Y
			if c.YMin < y0 && y0 < c.YMax {
				roots = append(roots, Coordinates{T: t0})
			}
			y1 := localRay.Origin.Y + t1*localRay.Direction.Y
			if c.YMin < y1 && y1 < c.YMax {
				roots = append(roots, Coordinates{T: t1})
			}
		}
	}

	roots = append(roots, c.intersectCaps(localRay)...)
	return roots
}

func (c *Cylinder) LocalNormalAt(localPoint vecmath.Point, _ *UV) vecmath.Vector {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	if c.ClosedMax && localPoint.Y >= c.YMax-vecmath.Epsilon && dist < 1 {
		return vecmath.NewVector(0, 1, 0)
	}
	if c.ClosedMin && localPoint.Y <= c.YMin+vecmath.Epsilon && dist < 1 {
		return vecmath.NewVector(0, -1, 0)
	}
	return vecmath.NewVector(localPoint.X, 0, localPoint.Z)
}
