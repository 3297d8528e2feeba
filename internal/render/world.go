// Package render implements the shading integrator, camera, and canvas
// that turn a scene graph into a finished image.
package render

import (
	"math"

	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/shape"
	"github.com/msealion/raytracer/internal/vecmath"
)

// DefaultMaxReflections bounds the reflection/refraction recursion
// depth a World.CastRay will follow before giving up and returning
// black, preventing infinite bouncing between facing mirrors.
const DefaultMaxReflections = 5

// World is the set of objects and lights a scene's rays are cast
// against.
type World struct {
	Objects []shape.Shape
	Lights  []material.Light
}

// NewWorld builds an empty World ready to have objects and lights
// appended to it.
func NewWorld() *World {
	return &World{}
}

// IntersectWorld casts ray against every object in the world and
// combines their raw intersections into a single register.
func (w *World) IntersectWorld(ray vecmath.Ray) *shape.HitRegister {
	reg := shape.NewHitRegister()
	for _, o := range w.Objects {
		reg.Combine(o.IntersectRay(ray, nil))
	}
	return reg
}

// IsShadowed reports whether point sits in shadow with respect to
// light: whether some object lies strictly between point and the
// light's position.
func (w *World) IsShadowed(point vecmath.Point, light material.Light) bool {
	toLight := light.Position.Sub(point)
	distance := toLight.Magnitude()
	direction := toLight.Normalize()

	ray := vecmath.NewRay(point, direction)
	hit, ok := w.IntersectWorld(ray).FinaliseHit()
	return ok && hit.T < distance
}

// CastRay finds the nearest surface ray strikes and shades it,
// recursing into reflection and refraction up to remaining bounces.
// A ray that strikes nothing returns black.
func (w *World) CastRay(ray vecmath.Ray, remaining int) color.Color {
	hit, ok := w.IntersectWorld(ray).FinaliseHit()
	if !ok {
		return color.Black
	}
	return w.ShadeHit(hit, remaining)
}

// ShadeHit computes the full shaded color at a resolved intersection:
// the direct Phong contribution from every light (respecting shadows),
// blended with recursive reflection and refraction.
func (w *World) ShadeHit(hit *shape.ComputedIntersect, remaining int) color.Color {
	mat := *hit.Object.Material()
	patternPoint := shape.LocalPoint(hit.OverPoint, hit.Stack)

	surface := color.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(hit.OverPoint, light)
		surface = surface.Add(light.ShadePhong(mat, hit.OverPoint, patternPoint, hit.Eye, hit.Normal, shadowed))
	}

	reflected := w.ReflectedColor(hit, remaining)
	refracted := w.RefractedColor(hit, remaining)

	if mat.Reflectance > 0 && mat.Transparency > 0 {
		reflectance := shape.Schlick(hit)
		return surface.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor follows the reflected ray from hit, if the material
// is reflective and depth remains.
func (w *World) ReflectedColor(hit *shape.ComputedIntersect, remaining int) color.Color {
	mat := hit.Object.Material()
	if remaining <= 0 || mat.Reflectance == 0 {
		return color.Black
	}

	reflectRay := vecmath.NewRay(hit.OverPoint, hit.Reflect)
	c := w.CastRay(reflectRay, remaining-1)
	return c.Scale(mat.Reflectance)
}

// RefractedColor follows the refracted ray through hit, if the
// material is transparent, depth remains, and the angle of incidence
// does not cause total internal reflection.
func (w *World) RefractedColor(hit *shape.ComputedIntersect, remaining int) color.Color {
	mat := hit.Object.Material()
	if remaining <= 0 || mat.Transparency == 0 {
		return color.Black
	}

	nRatio := hit.N1 / hit.N2
	cosI := hit.Eye.Dot(hit.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return color.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := hit.Normal.Scale(nRatio*cosI - cosT).Sub(hit.Eye.Scale(nRatio))
	refractRay := vecmath.NewRay(hit.UnderPoint, direction)

	c := w.CastRay(refractRay, remaining-1)
	return c.Scale(mat.Transparency)
}
