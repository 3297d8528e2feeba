package render

import (
	"github.com/msealion/raytracer/internal/vecmath"
)

// TaggedRay is a single sample ray destined for a particular pixel,
// carrying the fraction of that pixel's final color it contributes.
// A ray generator that samples a pixel N times tags each with weight
// 1/N so the renderer can simply sum weighted CastRay results per
// pixel regardless of how many rays a generator produced for it.
type TaggedRay struct {
	Ray          vecmath.Ray
	PixelX       int
	PixelY       int
	Weight       float64
}

// RayGenerator produces the full set of sample rays a Camera's pixel
// grid should be shaded with. Swapping generators changes antialiasing
// strategy without touching the shading integrator or the worker pool
// that drives it.
type RayGenerator interface {
	Generate(cam *Camera) []TaggedRay
}

// Native samples each pixel exactly once, through its center.
type Native struct{}

// Generate implements RayGenerator.
func (Native) Generate(cam *Camera) []TaggedRay {
	rays := make([]TaggedRay, 0, cam.HSize*cam.VSize)
	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			rays = append(rays, TaggedRay{
				Ray:    cam.RayForPixel(x, y),
				PixelX: x,
				PixelY: y,
				Weight: 1,
			})
		}
	}
	return rays
}

// Agss (adaptive grid supersampling) samples each pixel on a uniform
// Samples x Samples sub-grid and weights each sample equally, trading
// render time for softer edges than Native's single center sample.
type Agss struct {
	Samples int
}

// Generate implements RayGenerator.
func (a Agss) Generate(cam *Camera) []TaggedRay {
	grid := a.Samples
	if grid < 1 {
		grid = 1
	}

	weight := 1.0 / float64(grid*grid)
	rays := make([]TaggedRay, 0, cam.HSize*cam.VSize*grid*grid)

	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			for sy := 0; sy < grid; sy++ {
				for sx := 0; sx < grid; sx++ {
					fracX := (float64(sx) + 0.5) / float64(grid)
					fracY := (float64(sy) + 0.5) / float64(grid)
					rays = append(rays, TaggedRay{
						Ray:    cam.RayForSubPixel(x, y, fracX, fracY),
						PixelX: x,
						PixelY: y,
						Weight: weight,
					})
				}
			}
		}
	}
	return rays
}
