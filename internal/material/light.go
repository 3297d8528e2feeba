package material

import (
	"math"

	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/vecmath"
)

// Light is a point light source: an infinitesimal emitter with a position
// and an intensity (no falloff, no area).
type Light struct {
	Position  vecmath.Point
	Intensity color.Color
}

// NewLight constructs a point Light.
func NewLight(position vecmath.Point, intensity color.Color) Light {
	return Light{Position: position, Intensity: intensity}
}

// ShadePhong implements the ambient + diffuse + specular lighting model.
// worldPoint is the hit location in world space, used for the light-vector
// and shadow geometry; patternPoint is the same location expressed in the
// shading surface's own object space, which is what the material's pattern
// is sampled at. eye and normal are in world space. When shadowed only the
// ambient term is returned.
func (l Light) ShadePhong(m Material, worldPoint, patternPoint vecmath.Point, eye, normal vecmath.Vector, shadowed bool) color.Color {
	effectiveColor := m.Pattern.ColorAt(patternPoint).Mul(l.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)
	if shadowed {
		return ambient
	}

	lightVec := l.Position.Sub(worldPoint).Normalize()
	lightDotNormal := lightVec.Dot(normal)

	diffuse := color.Black
	specular := color.Black
	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Scale(m.Diffuse * lightDotNormal)

		reflectVec := lightVec.Neg().Reflect(normal)
		reflectDotEye := reflectVec.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = l.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
