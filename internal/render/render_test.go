package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/pattern"
	"github.com/msealion/raytracer/internal/shape"
	"github.com/msealion/raytracer/internal/vecmath"
)

func identityTransform() vecmath.Transform {
	return vecmath.NewTransform(vecmath.Identity())
}

func defaultWorld() *World {
	light := material.NewLight(vecmath.NewPoint(-10, 10, -10), color.White)

	m1 := material.Preset()
	m1.Pattern = pattern.NewSolid(color.New(0.8, 1.0, 0.6))
	m1.Diffuse, m1.Specular = 0.7, 0.2
	s1 := shape.NewSphere(identityTransform(), m1)

	s2 := shape.NewSphere(vecmath.NewTransform(vecmath.Scale(0.5, 0.5, 0.5)), material.Preset())

	return &World{Objects: []shape.Shape{s1, s2}, Lights: []material.Light{light}}
}

func TestIntersectWorldFindsFourHits(t *testing.T) {
	w := defaultWorld()
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))
	hits := w.IntersectWorld(ray).Raw()
	if len(hits) != 4 {
		t.Fatalf("len(hits) = %d, want 4", len(hits))
	}
}

func TestShadeHitFromOutside(t *testing.T) {
	w := defaultWorld()
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))
	hit, ok := w.IntersectWorld(ray).FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	got := w.ShadeHit(hit, DefaultMaxReflections)
	if !got.AlmostEqual(color.New(0.38066, 0.47583, 0.2855)) {
		t.Fatalf("shade = %v", got)
	}
}

func TestShadeHitInsideFromLightBehindEye(t *testing.T) {
	w := defaultWorld()
	w.Lights = []material.Light{material.NewLight(vecmath.NewPoint(0, 0.25, 0), color.White)}
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, 0), vecmath.NewVector(0, 0, 1))
	hit, ok := w.IntersectWorld(ray).FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	got := w.ShadeHit(hit, DefaultMaxReflections)
	if !got.AlmostEqual(color.New(0.90498, 0.90498, 0.90498)) {
		t.Fatalf("shade = %v", got)
	}
}

func TestCastRayMiss(t *testing.T) {
	w := defaultWorld()
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 1, 0))
	if got := w.CastRay(ray, DefaultMaxReflections); !got.Equal(color.Black) {
		t.Fatalf("cast = %v, want black", got)
	}
}

func TestIsShadowedWhenObjectBetweenPointAndLight(t *testing.T) {
	w := defaultWorld()
	point := vecmath.NewPoint(10, -10, 10)
	if !w.IsShadowed(point, w.Lights[0]) {
		t.Fatalf("expected point to be shadowed")
	}
}

func TestIsShadowedWhenNothingBlocks(t *testing.T) {
	w := defaultWorld()
	point := vecmath.NewPoint(-20, 20, -20)
	if w.IsShadowed(point, w.Lights[0]) {
		t.Fatalf("expected point to not be shadowed")
	}
}

func TestReflectedColorForNonReflectiveMaterial(t *testing.T) {
	w := defaultWorld()
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, 0), vecmath.NewVector(0, 0, 1))
	reg := w.IntersectWorld(ray)
	hits := reg.Raw()
	target := hits[1]
	target.Object.Material().Reflectance = 0

	single := shape.NewHitRegister()
	single.Add(target)
	hit, ok := single.FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	if got := w.ReflectedColor(hit, DefaultMaxReflections); !got.Equal(color.Black) {
		t.Fatalf("reflected = %v, want black", got)
	}
}

func TestReflectedColorForReflectiveMaterial(t *testing.T) {
	light := material.NewLight(vecmath.NewPoint(-10, 10, -10), color.White)
	floorMat := material.Preset()
	floorMat.Reflectance = 0.5
	floor := shape.NewPlane(vecmath.NewTransform(vecmath.Translate(0, -1, 0)), floorMat)

	w := &World{Objects: append(defaultWorld().Objects, floor), Lights: []material.Light{light}}

	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -3), vecmath.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	hit, ok := w.IntersectWorld(ray).FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	got := w.ReflectedColor(hit, DefaultMaxReflections)
	if got.Equal(color.Black) {
		t.Fatalf("expected a non-black reflected color")
	}
}

func TestViewTransformDefaultOrientation(t *testing.T) {
	from := vecmath.NewPoint(0, 0, 0)
	to := vecmath.NewPoint(0, 0, -1)
	up := vecmath.NewVector(0, 1, 0)

	got := ViewTransform(from, to, up)
	if !got.AlmostEqual(vecmath.NewTransform(vecmath.Identity())) {
		t.Fatalf("default view transform should be identity, got %v", got)
	}
}

func TestCameraRayForPixelThroughCenter(t *testing.T) {
	cam := NewCamera(201, 101, math.Pi/2, identityTransform())
	ray := cam.RayForPixel(100, 50)
	if !ray.Origin.AlmostEqual(vecmath.NewPoint(0, 0, 0)) {
		t.Fatalf("origin = %v", ray.Origin)
	}
	if !ray.Direction.AlmostEqual(vecmath.NewVector(0, 0, -1)) {
		t.Fatalf("direction = %v", ray.Direction)
	}
}

func TestNativeGeneratorOneRayPerPixel(t *testing.T) {
	cam := NewCamera(4, 3, math.Pi/2, identityTransform())
	rays := Native{}.Generate(cam)
	if len(rays) != 12 {
		t.Fatalf("len(rays) = %d, want 12", len(rays))
	}
	for _, r := range rays {
		if r.Weight != 1 {
			t.Fatalf("weight = %v, want 1", r.Weight)
		}
	}
}

func TestAgssGeneratorWeightsSumToOnePerPixel(t *testing.T) {
	cam := NewCamera(2, 2, math.Pi/2, identityTransform())
	rays := Agss{Samples: 3}.Generate(cam)

	totals := map[[2]int]float64{}
	for _, r := range rays {
		totals[[2]int{r.PixelX, r.PixelY}] += r.Weight
	}
	if len(totals) != 4 {
		t.Fatalf("expected all 4 pixels represented, got %d", len(totals))
	}
	for px, total := range totals {
		if !vecmath.AlmostEqual(total, 1) {
			t.Fatalf("pixel %v weight total = %v, want 1", px, total)
		}
	}
}

func TestRenderProducesFullCanvas(t *testing.T) {
	w := defaultWorld()
	cam := NewCamera(11, 11, math.Pi/2, ViewTransform(
		vecmath.NewPoint(0, 0, -5),
		vecmath.NewPoint(0, 0, 0),
		vecmath.NewVector(0, 1, 0),
	))

	canvas := Render(w, cam, Native{}, DefaultMaxReflections)
	center := canvas.At(5, 5)
	if center.Equal(color.Black) {
		t.Fatalf("expected the center pixel to be lit")
	}
}

func TestWritePPMHeaderAndWrapping(t *testing.T) {
	canvas := NewCanvas(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			canvas.Set(x, y, color.New(1, 0.8, 0.6))
		}
	}

	var buf bytes.Buffer
	if err := canvas.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "P3\n5 3\n255\n") {
		t.Fatalf("unexpected header: %q", out[:20])
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 70 {
			t.Fatalf("line exceeds 70 characters: %q", line)
		}
	}
}
