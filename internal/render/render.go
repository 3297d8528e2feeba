package render

import (
	"sync"

	"github.com/msealion/raytracer/internal/color"
)

type pixelKey struct{ x, y int }

// Render fires every ray a generator produces for cam against world,
// one goroutine per pixel bucket, and accumulates each pixel's
// weighted samples into the returned Canvas.
func Render(world *World, cam *Camera, gen RayGenerator, maxReflections int) *Canvas {
	canvas := NewCanvas(cam.HSize, cam.VSize)

	buckets := make(map[pixelKey][]TaggedRay)
	for _, tr := range gen.Generate(cam) {
		key := pixelKey{tr.PixelX, tr.PixelY}
		buckets[key] = append(buckets[key], tr)
	}

	var wg sync.WaitGroup
	wg.Add(len(buckets))
	for key, rays := range buckets {
		go func(key pixelKey, rays []TaggedRay) {
			defer wg.Done()
			sum := color.Black
			for _, tr := range rays {
				sum = sum.Add(world.CastRay(tr.Ray, maxReflections).Scale(tr.Weight))
			}
			canvas.Set(key.x, key.y, sum)
		}(key, rays)
	}
	wg.Wait()

	return canvas
}
