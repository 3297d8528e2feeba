package shape

import (
	"math"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Sphere is a unit sphere centred at the local origin.
type Sphere struct {
	frame    vecmath.Transform
	material material.Material
	bounds   Bounds
}

// NewSphere builds a Sphere with the given frame transformation and
// material. Its bounding box, the unit cube [-1,1]^3, is checked.
func NewSphere(frame vecmath.Transform, mat material.Material) *Sphere {
	box := NewBoundingBox([2]float64{-1, 1}, [2]float64{-1, 1}, [2]float64{-1, 1}).TransformBy(frame)
	return &Sphere{
		frame:    frame,
		material: mat,
		bounds:   NewBounds(box).Raise(),
	}
}

func (s *Sphere) FrameTransformation() vecmath.Transform { return s.frame }
func (s *Sphere) Material() *material.Material           { return &s.material }
func (s *Sphere) Bounds() Bounds                         { return s.bounds }
func (s *Sphere) Contains(p Primitive) bool              { return Primitive(s) == p }

func (s *Sphere) IntersectRay(worldRay vecmath.Ray, stack TransformStack) *HitRegister {
	return intersectPrimitive(s, worldRay, stack)
}

func (s *Sphere) LocalIntersect(localRay vecmath.Ray) []Coordinates {
	sphereToRay := localRay.Origin.Sub(vecmath.NewPoint(0, 0, 0))

	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	return []Coordinates{{T: t1}, {T: t2}}
}

func (s *Sphere) LocalNormalAt(localPoint vecmath.Point, _ *UV) vecmath.Vector {
	return localPoint.Sub(vecmath.NewPoint(0, 0, 0))
}

// NewGlassSphere builds a Sphere preset for refraction scenes: Preset
// material with transparency 1 and refractive index 1.5, identity
// frame.
func NewGlassSphere() *Sphere {
	mat := material.Preset()
	mat.Transparency = 1
	mat.RefractiveIndex = 1.5
	return NewSphere(vecmath.NewTransform(vecmath.Identity()), mat)
}
