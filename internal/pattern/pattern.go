// Package pattern implements polymorphic colour sources sampled in a
// shape's local surface space. Every variant carries its own frame
// transform so a pattern can be stretched, rotated or offset independently
// of the shape it decorates.
package pattern

import (
	"math"

	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Pattern is the capability every colour source exposes: sample a colour at
// a point given in the owning shape's object space, and report the
// transform from pattern space to that object space.
type Pattern interface {
	ColorAt(shapePoint vecmath.Point) color.Color
	FrameTransformation() vecmath.Transform
}

// toPatternSpace maps a shape-space point into pattern-local space by the
// inverse of the pattern's frame transformation. Every variant's ColorAt
// except Solid's starts here before applying its own local formula.
func toPatternSpace(transform vecmath.Transform, shapePoint vecmath.Point) vecmath.Point {
	return transform.Invert().ApplyPoint(shapePoint)
}

// floorMod2 mirrors `floor(x) mod 2` for negative x, where Go's integer
// modulo would otherwise yield -1 instead of 1.
func floorMod2(x float64) int {
	n := int(math.Floor(x)) % 2
	if n < 0 {
		n += 2
	}
	return n
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

// Solid is a constant colour pattern, indifferent to the sampled point.
type Solid struct {
	Value     color.Color
	Transform vecmath.Transform
}

// NewSolid builds a Solid pattern with an identity frame transform.
func NewSolid(c color.Color) Solid {
	return Solid{Value: c, Transform: vecmath.NewTransform(vecmath.Identity())}
}

func (s Solid) ColorAt(vecmath.Point) color.Color         { return s.Value }
func (s Solid) FrameTransformation() vecmath.Transform    { return s.Transform }

// Stripe alternates between A and B along the x axis.
type Stripe struct {
	A, B      color.Color
	Transform vecmath.Transform
}

// NewStripe builds a Stripe pattern with an identity frame transform.
func NewStripe(a, b color.Color) Stripe {
	return Stripe{A: a, B: b, Transform: vecmath.NewTransform(vecmath.Identity())}
}

func (s Stripe) FrameTransformation() vecmath.Transform { return s.Transform }

func (s Stripe) ColorAt(shapePoint vecmath.Point) color.Color {
	p := toPatternSpace(s.Transform, shapePoint)
	if floorMod2(p.X) == 0 {
		return s.A
	}
	return s.B
}

// Gradient linearly blends from A to B across one unit of x, repeating.
type Gradient struct {
	A, B      color.Color
	Transform vecmath.Transform
}

// NewGradient builds a Gradient pattern with an identity frame transform.
func NewGradient(a, b color.Color) Gradient {
	return Gradient{A: a, B: b, Transform: vecmath.NewTransform(vecmath.Identity())}
}

func (g Gradient) FrameTransformation() vecmath.Transform { return g.Transform }

func (g Gradient) ColorAt(shapePoint vecmath.Point) color.Color {
	p := toPatternSpace(g.Transform, shapePoint)
	return g.A.Add(g.B.Sub(g.A).Scale(frac(p.X)))
}

// Ring alternates between A and B in concentric rings in the xz plane.
type Ring struct {
	A, B      color.Color
	Transform vecmath.Transform
}

// NewRing builds a Ring pattern with an identity frame transform.
func NewRing(a, b color.Color) Ring {
	return Ring{A: a, B: b, Transform: vecmath.NewTransform(vecmath.Identity())}
}

func (r Ring) FrameTransformation() vecmath.Transform { return r.Transform }

func (r Ring) ColorAt(shapePoint vecmath.Point) color.Color {
	p := toPatternSpace(r.Transform, shapePoint)
	if floorMod2(math.Sqrt(p.X*p.X+p.Z*p.Z)) == 0 {
		return r.A
	}
	return r.B
}

// Checker alternates between A and B in unit cubes across all three axes.
type Checker struct {
	A, B      color.Color
	Transform vecmath.Transform
}

// NewChecker builds a Checker pattern with an identity frame transform.
func NewChecker(a, b color.Color) Checker {
	return Checker{A: a, B: b, Transform: vecmath.NewTransform(vecmath.Identity())}
}

func (c Checker) FrameTransformation() vecmath.Transform { return c.Transform }

func (c Checker) ColorAt(shapePoint vecmath.Point) color.Color {
	p := toPatternSpace(c.Transform, shapePoint)
	sum := int(math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z))
	if mod := sum % 2; mod == 0 {
		return c.A
	}
	return c.B
}
