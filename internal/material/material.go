// Package material defines surface shading parameters and the point-light
// Phong shading contract consumed by the render package's integrator.
package material

import (
	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/pattern"
)

// Material bundles the parameters the Phong model and the recursive
// reflection/refraction terms need to shade a surface.
type Material struct {
	Pattern         pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflectance     float64
	Transparency    float64
	RefractiveIndex float64
}

// Preset returns the renderer's default material: a white solid pattern
// with ambient/diffuse/specular/shininess of 0.1/0.9/0.9/200 and no
// reflectance, transparency, or refraction above vacuum.
func Preset() Material {
	return Material{
		Pattern:         pattern.NewSolid(color.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflectance:     0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}
