package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Cone is a double-napped cone along the local y-axis whose radius at
// height y is |y|, truncated to [YMin, YMax] and optionally capped.
type Cone struct {
	frame      vecmath.Transform
	material   material.Material
	bounds     Bounds
	YMin, YMax float64
	ClosedMin  bool
	ClosedMax  bool
}

// NewCone builds a Cone.
func NewCone(frame vecmath.Transform, mat material.Material, yMin, yMax float64, closedMin, closedMax bool) *Cone {
	radius := math.Max(math.Abs(yMin), math.Abs(yMax))
	box := NewBoundingBox([2]float64{-radius, radius}, [2]float64{yMin, yMax}, [2]float64{-radius, radius}).TransformBy(frame)
	return &Cone{
		frame:     frame,
		material:  mat,
		bounds:    NewBounds(box).Raise(),
		YMin:      yMin,
		YMax:      yMax,
		ClosedMin: closedMin,
		ClosedMax: closedMax,
	}
}

func (c *Cone) FrameTransformation() vecmath.Transform { return c.frame }
func (c *Cone) Material() *material.Material           { return &c.material }
func (c *Cone) Bounds() Bounds                         { return c.bounds }
func (c *Cone) Contains(p Primitive) bool              { return Primitive(c) == p }

func (c *Cone) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(c, worldRay, stack)
}

func (c *Cone) intersectCaps(localRay vecmath.Ray) []Coordinates {
	var roots []Coordinates
	if math.Abs(localRay.Direction.Y) < vecmath.Epsilon {
		return roots
	}

	if c.ClosedMin {
		t := (c.YMin - localRay.Origin.Y) / localRay.Direction.Y
		if cylinderCapAt(localRay, t, math.Abs(c.YMin)) {
			roots = append(roots, Coordinates{T: t})
		}
	}
	if c.ClosedMax {
		t := (c.YMax - localRay.Origin.Y) / localRay.Direction.Y
		if cylinderCapAt(localRay, t, math.Abs(c.YMax)) {
			roots = append(roots, Coordinates{T: t})
		}
	}
	return roots
}

func (c *Cone) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	var roots []Coordinates

	ox, oy, oz := localRay.Origin.X, localRay.Origin.Y, localRay.Origin.Z
	dx, dy, dz := localRay.Direction.X, localRay.Direction.Y, localRay.Direction.Z

	a := dx*dx - dy*dy + dz*dz
	b := 2*ox*dx - 2*oy*dy + 2*oz*dz
	cc := ox*ox - oy*oy + oz*oz

	switch {
	case math.Abs(a) < vecmath.Epsilon && math.Abs(b) < vecmath.Epsilon:
		// Ray is parallel to one of the cone's halves and misses the
		// surface entirely; only the caps can still contribute.
	case math.Abs(a) < vecmath.Epsilon:
		t := -cc / (2 * b)
		roots = append(roots, Coordinates{T: t})
	default:
		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtDisc := math.Sqrt(discriminant)
			t0 := (-b - sqrtDisc) / (2 * a)
			t1 := (-b + sqrtDisc) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}

			y0 := oy + t0*dy
			if c.YMin < y0 && y0 < c.YMax {
				roots = append(roots, Coordinates{T: t0})
			}
			y1 := oy + t1*dy
			if c.YMin < y1 && y1 < c.YMax {
				roots = append(roots, Coordinates{T: t1})
			}
		}
	}

	roots = append(roots, c.intersectCaps(localRay)...)
	return roots
}

func (c *Cone) LocalNormalAt(localPoint vecmath.Point, _ *UV) vecmath.Vector {
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z

	if c.ClosedMax && localPoint.Y >= c.YMax-vecmath.Epsilon && dist < c.YMax*c.YMax {
		return vecmath.NewVector(0, 1, 0)
	}
	if c.ClosedMin && localPoint.Y <= c.YMin+vecmath.Epsilon && dist < c.YMin*c.YMin {
		return vecmath.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if localPoint.Y > 0 {
		y = -y
	}
	return vecmath.NewVector(localPoint.X, y, localPoint.Z)
}
