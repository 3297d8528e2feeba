package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/vecmath"
)

// BoundingBox is an axis-aligned box with per-axis [min, max] ranges.
// Ranges may be infinite for primitives unbounded along that axis.
type BoundingBox struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// UnboundedBox spans all of space.
func UnboundedBox() BoundingBox {
	return BoundingBox{
		XMin: math.Inf(-1), XMax: math.Inf(1),
		YMin: math.Inf(-1), YMax: math.Inf(1),
		ZMin: math.Inf(-1), ZMax: math.Inf(1),
	}
}

// NewBoundingBox builds a box from explicit axial ranges, swapping the pair
// on any axis given out of order.
func NewBoundingBox(xRange, yRange, zRange [2]float64) BoundingBox {
	orderPair := func(r [2]float64) (float64, float64) {
		if r[0] > r[1] {
			return r[1], r[0]
		}
		return r[0], r[1]
	}
	xmin, xmax := orderPair(xRange)
	ymin, ymax := orderPair(yRange)
	zmin, zmax := orderPair(zRange)
	return BoundingBox{xmin, xmax, ymin, ymax, zmin, zmax}
}

// corners returns the eight anchor points of the box, used when transforming
// it into another frame.
func (b BoundingBox) corners() []vecmath.Point {
	corners := make([]vecmath.Point, 0, 8)
	for _, x := range [2]float64{b.XMin, b.XMax} {
		for _, y := range [2]float64{b.YMin, b.YMax} {
			for _, z := range [2]float64{b.ZMin, b.ZMax} {
				corners = append(corners, vecmath.NewPoint(x, y, z))
			}
		}
	}
	return corners
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, other.XMin), XMax: math.Max(b.XMax, other.XMax),
		YMin: math.Min(b.YMin, other.YMin), YMax: math.Max(b.YMax, other.YMax),
		ZMin: math.Min(b.ZMin, other.ZMin), ZMax: math.Max(b.ZMax, other.ZMax),
	}
}

// TransformBy refits the box after transforming all eight corners by t.
// A box with an infinite extent along any axis becomes UnboundedBox rather
// than being garbled by the matrix multiply.
func (b BoundingBox) TransformBy(t vecmath.Transform) BoundingBox {
	var finite []vecmath.Point
	for _, c := range b.corners() {
		if math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) || math.IsInf(c.Z, 0) {
			return UnboundedBox()
		}
		finite = append(finite, t.ApplyPoint(c))
	}

	box := BoundingBox{
		XMin: finite[0].X, XMax: finite[0].X,
		YMin: finite[0].Y, YMax: finite[0].Y,
		ZMin: finite[0].Z, ZMax: finite[0].Z,
	}
	for _, p := range finite[1:] {
		box.XMin, box.XMax = math.Min(box.XMin, p.X), math.Max(box.XMax, p.X)
		box.YMin, box.YMax = math.Min(box.YMin, p.Y), math.Max(box.YMax, p.Y)
		box.ZMin, box.ZMax = math.Min(box.ZMin, p.Z), math.Max(box.ZMax, p.Z)
	}
	return box
}

func checkAxis(min, max, origin, direction float64) (float64, float64) {
	tminNumerator := min - origin
	tmaxNumerator := max - origin

	var tmin, tmax float64
	if math.Abs(direction) >= vecmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		return tmax, tmin
	}
	return tmin, tmax
}

// intersects runs the slab test for ray (already expressed in this box's
// coordinate frame) against the box.
func (b BoundingBox) intersects(ray vecmath.Ray) bool {
	xtmin, xtmax := checkAxis(b.XMin, b.XMax, ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(b.YMin, b.YMax, ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(b.ZMin, b.ZMax, ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	return tmax >= tmin
}

// Bounds wraps a BoundingBox as either a pruning ("checked") test or an
// always-pass ("unchecked") one. Builders start unchecked and Raise once
// the box is known to be worth testing against.
type Bounds struct {
	box     BoundingBox
	checked bool
}

// NewBounds wraps box as an unchecked (skipped) bound.
func NewBounds(box BoundingBox) Bounds {
	return Bounds{box: box}
}

// Raise promotes the bound to checked.
func (b Bounds) Raise() Bounds {
	return Bounds{box: b.box, checked: true}
}

// Lower demotes the bound to unchecked.
func (b Bounds) Lower() Bounds {
	return Bounds{box: b.box, checked: false}
}

// BoundingBox returns the wrapped box regardless of checked state.
func (b Bounds) BoundingBox() BoundingBox {
	return b.box
}

// Intersects reports whether worldRay, transformed into the space the
// stack represents, can possibly hit the wrapped box. An unchecked bound
// always reports true.
func (b Bounds) Intersects(worldRay vecmath.Ray, stack TransformStack) bool {
	if !b.checked {
		return true
	}
	return b.box.intersects(rayToLocal(worldRay, stack))
}
