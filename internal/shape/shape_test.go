package shape

import (
	"math"
	"testing"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/vecmath"
)

func identity() vecmath.Transform {
	return vecmath.NewTransform(vecmath.Identity())
}

func TestSphereIntersectRayTwoPoints(t *testing.T) {
	s := NewSphere(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))

	reg := s.IntersectRay(ray, nil)
	hits := reg.Raw()
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}
	if !vecmath.AlmostEqual(hits[0].T, 4) || !vecmath.AlmostEqual(hits[1].T, 6) {
		t.Fatalf("hits = %v, want 4,6", hits)
	}
}

func TestSphereIntersectRayMiss(t *testing.T) {
	s := NewSphere(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 2, -5), vecmath.NewVector(0, 0, 1))

	if len(s.IntersectRay(ray, nil).Raw()) != 0 {
		t.Fatalf("expected a miss")
	}
}

func TestSphereNormalAtAxisPoint(t *testing.T) {
	s := NewSphere(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))
	reg := s.IntersectRay(ray, nil)
	hit, ok := reg.FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	if !hit.Normal.AlmostEqual(vecmath.NewVector(0, 0, -1)) {
		t.Fatalf("normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestSphereScaledIntersect(t *testing.T) {
	s := NewSphere(vecmath.NewTransform(vecmath.Scale(2, 2, 2)), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))

	hits := s.IntersectRay(ray, nil).Raw()
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}
	if !vecmath.AlmostEqual(hits[0].T, 3) || !vecmath.AlmostEqual(hits[1].T, 7) {
		t.Fatalf("hits = %v, want 3,7", hits)
	}
}

func TestPlaneLocalIntersectParallel(t *testing.T) {
	p := NewPlane(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 10, 0), vecmath.NewVector(0, 0, 1))
	if len(p.LocalIntersect(ray)) != 0 {
		t.Fatalf("expected no intersection for a ray parallel to the plane")
	}
}

func TestPlaneLocalIntersectFromAbove(t *testing.T) {
	p := NewPlane(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 1, 0), vecmath.NewVector(0, -1, 0))
	xs := p.LocalIntersect(ray)
	if len(xs) != 1 || !vecmath.AlmostEqual(xs[0].T, 1) {
		t.Fatalf("xs = %v, want single root at t=1", xs)
	}
}

func TestCubeLocalIntersectFaces(t *testing.T) {
	c := NewCube(identity(), material.Preset())
	cases := []struct {
		origin, direction vecmath.Point
		t1, t2            float64
	}{
		{vecmath.NewPoint(5, 0.5, 0), vecmath.NewPoint(-1, 0, 0), 4, 6},
		{vecmath.NewPoint(-5, 0.5, 0), vecmath.NewPoint(1, 0, 0), 4, 6},
		{vecmath.NewPoint(0.5, 0, 0), vecmath.NewPoint(0, 0, 1), -1, 1},
	}
	for _, tc := range cases {
		ray := vecmath.NewRay(tc.origin, vecmath.NewVector(tc.direction.X, tc.direction.Y, tc.direction.Z))
		xs := c.LocalIntersect(ray)
		if len(xs) != 2 || !vecmath.AlmostEqual(xs[0].T, tc.t1) || !vecmath.AlmostEqual(xs[1].T, tc.t2) {
			t.Fatalf("xs = %v, want %v,%v", xs, tc.t1, tc.t2)
		}
	}
}

func TestCubeNormalAt(t *testing.T) {
	c := NewCube(identity(), material.Preset())
	if got := c.LocalNormalAt(vecmath.NewPoint(1, 0.5, -0.8), nil); !got.AlmostEqual(vecmath.NewVector(1, 0, 0)) {
		t.Fatalf("normal = %v, want (1,0,0)", got)
	}
}

func TestCylinderMisses(t *testing.T) {
	c := NewCylinder(identity(), material.Preset(), math.Inf(-1), math.Inf(1), false, false)
	ray := vecmath.NewRay(vecmath.NewPoint(1, 0, 0), vecmath.NewVector(0, 1, 0).Normalize())
	if len(c.LocalIntersect(ray)) != 0 {
		t.Fatalf("expected a miss for a ray parallel to the cylinder's axis")
	}
}

func TestCylinderHits(t *testing.T) {
	c := NewCylinder(identity(), material.Preset(), math.Inf(-1), math.Inf(1), false, false)
	ray := vecmath.NewRay(vecmath.NewPoint(1, 0, -5), vecmath.NewVector(0, 0, 1))
	xs := c.LocalIntersect(ray)
	if len(xs) != 2 || !vecmath.AlmostEqual(xs[0].T, 5) || !vecmath.AlmostEqual(xs[1].T, 5) {
		t.Fatalf("xs = %v, want two roots at t=5", xs)
	}
}

func TestTruncatedCylinderIntersect(t *testing.T) {
	c := NewCylinder(identity(), material.Preset(), 1, 2, false, false)
	ray := vecmath.NewRay(vecmath.NewPoint(0, 1.5, -2), vecmath.NewVector(0, 0, 1))
	if len(c.LocalIntersect(ray)) != 2 {
		t.Fatalf("expected the ray through the middle of the truncated cylinder to hit twice")
	}

	rayAbove := vecmath.NewRay(vecmath.NewPoint(0, 3, -5), vecmath.NewVector(0, 0, 1))
	if len(c.LocalIntersect(rayAbove)) != 0 {
		t.Fatalf("expected a ray above the truncated cylinder to miss")
	}
}

func TestClosedCylinderCaps(t *testing.T) {
	c := NewCylinder(identity(), material.Preset(), 1, 2, true, true)
	ray := vecmath.NewRay(vecmath.NewPoint(0, 3, 0), vecmath.NewVector(0, -1, 0))
	if len(c.LocalIntersect(ray)) != 2 {
		t.Fatalf("expected a ray straight down through both caps to hit twice")
	}
}

func TestConeIntersect(t *testing.T) {
	c := NewCone(identity(), material.Preset(), math.Inf(-1), math.Inf(1), false, false)
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))
	xs := c.LocalIntersect(ray)
	if len(xs) != 2 || !vecmath.AlmostEqual(xs[0].T, 5) || !vecmath.AlmostEqual(xs[1].T, 5) {
		t.Fatalf("xs = %v, want two roots at t=5", xs)
	}
}

func TestConeIntersectParallelToHalf(t *testing.T) {
	c := NewCone(identity(), material.Preset(), math.Inf(-1), math.Inf(1), false, false)
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -1), vecmath.NewVector(0, 1, 1).Normalize())
	xs := c.LocalIntersect(ray)
	if len(xs) != 1 {
		t.Fatalf("len(xs) = %d, want 1", len(xs))
	}
}

func TestConeEndCaps(t *testing.T) {
	c := NewCone(identity(), material.Preset(), -0.5, 0.5, true, true)
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -0.25), vecmath.NewVector(0, 1, 0).Normalize())
	if len(c.LocalIntersect(ray)) != 4 {
		t.Fatalf("expected a vertical ray through the truncated cone to hit both walls and both caps")
	}
}

func TestTriangleNormalIsConstant(t *testing.T) {
	tri := NewTriangle(identity(), material.Preset(),
		vecmath.NewPoint(0, 1, 0), vecmath.NewPoint(-1, 0, 0), vecmath.NewPoint(1, 0, 0))
	n1 := tri.LocalNormalAt(vecmath.NewPoint(0, 0.5, 0), nil)
	n2 := tri.LocalNormalAt(vecmath.NewPoint(-0.5, 0.75, 0), nil)
	if !n1.AlmostEqual(tri.Normal) || !n2.AlmostEqual(tri.Normal) {
		t.Fatalf("triangle normal should be constant across the face")
	}
}

func TestTriangleIntersectHit(t *testing.T) {
	tri := NewTriangle(identity(), material.Preset(),
		vecmath.NewPoint(0, 1, 0), vecmath.NewPoint(-1, 0, 0), vecmath.NewPoint(1, 0, 0))
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0.5, -2), vecmath.NewVector(0, 0, 1))
	xs := tri.LocalIntersect(ray)
	if len(xs) != 1 || !vecmath.AlmostEqual(xs[0].T, 2) {
		t.Fatalf("xs = %v, want single root at t=2", xs)
	}
}

func TestSmoothTriangleInterpolatesNormal(t *testing.T) {
	n1 := vecmath.NewVector(0, 1, 0)
	n2 := vecmath.NewVector(-1, 0, 0)
	n3 := vecmath.NewVector(1, 0, 0)
	tri := NewSmoothTriangle(identity(), material.Preset(),
		vecmath.NewPoint(0, 1, 0), vecmath.NewPoint(-1, 0, 0), vecmath.NewPoint(1, 0, 0),
		n1, n2, n3)

	got := tri.LocalNormalAt(vecmath.NewPoint(0, 0, 0), &UV{U: 0.45, V: 0.25})
	want := n2.Scale(0.45).Add(n3.Scale(0.25)).Add(n1.Scale(1 - 0.45 - 0.25))
	if !got.AlmostEqual(want) {
		t.Fatalf("interpolated normal = %v, want %v", got, want)
	}
}

func TestGroupIntersectDelegatesToChildren(t *testing.T) {
	s1 := NewSphere(identity(), material.Preset())
	s2 := NewSphere(vecmath.NewTransform(vecmath.Translate(0, 0, -3)), material.Preset())
	s3 := NewSphere(vecmath.NewTransform(vecmath.Translate(5, 0, 0)), material.Preset())
	g := NewGroup(identity(), s1, s2, s3)

	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, -5), vecmath.NewVector(0, 0, 1))
	hits := g.IntersectRay(ray, nil).Raw()
	if len(hits) != 4 {
		t.Fatalf("len(hits) = %d, want 4 (s1 and s2 hit twice each)", len(hits))
	}
}

func TestGroupTransformAppliesToChildren(t *testing.T) {
	s := NewSphere(vecmath.NewTransform(vecmath.Translate(5, 0, 0)), material.Preset())
	g := NewGroup(vecmath.NewTransform(vecmath.Scale(2, 2, 2)), s)

	ray := vecmath.NewRay(vecmath.NewPoint(10, 0, -10), vecmath.NewVector(0, 0, 1))
	hits := g.IntersectRay(ray, nil).Raw()
	if len(hits) != 2 {
		t.Fatalf("expected the group's scale to bring the offset sphere into the ray's path, got %d hits", len(hits))
	}
}

func TestCSGUnionFiltersInteriorHits(t *testing.T) {
	s1 := NewSphere(identity(), material.Preset())
	s2 := NewSphere(vecmath.NewTransform(vecmath.Translate(0, 0, 0.5)), material.Preset())
	csg := NewCSG(Union, identity(), s1, s2)

	allowed := csg.filterIntersections([]RawIntersect{
		{T: 1, Object: s1}, {T: 2, Object: s2}, {T: 3, Object: s1}, {T: 4, Object: s2},
	})
	if len(allowed) != 2 {
		t.Fatalf("len(allowed) = %d, want 2 (only the outermost boundary on each side)", len(allowed))
	}
	if allowed[0].T != 1 || allowed[1].T != 4 {
		t.Fatalf("allowed = %v, want t=1 and t=4", allowed)
	}
}

func TestCSGDifferenceKeepsLeftOutsideRight(t *testing.T) {
	s1 := NewSphere(identity(), material.Preset())
	s2 := NewSphere(vecmath.NewTransform(vecmath.Translate(0, 0, 0.5)), material.Preset())
	csg := NewCSG(Difference, identity(), s1, s2)

	allowed := csg.filterIntersections([]RawIntersect{
		{T: 1, Object: s1}, {T: 2, Object: s2}, {T: 3, Object: s1}, {T: 4, Object: s2},
	})
	if len(allowed) != 2 {
		t.Fatalf("len(allowed) = %d, want 2", len(allowed))
	}
	if allowed[0].T != 1 || allowed[1].T != 2 {
		t.Fatalf("allowed = %v, want t=1 and t=2", allowed)
	}
}

func TestHitRegisterFinaliseIgnoresNegativeT(t *testing.T) {
	s := NewSphere(identity(), material.Preset())
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, 0), vecmath.NewVector(0, 0, 1))
	reg := s.IntersectRay(ray, nil)

	hit, ok := reg.FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	if !vecmath.AlmostEqual(hit.T, 1) {
		t.Fatalf("hit.T = %v, want 1 (the negative root must be skipped)", hit.T)
	}
}

func TestSchlickTotalInternalReflection(t *testing.T) {
	s := NewGlassSphere()
	ray := vecmath.NewRay(vecmath.NewPoint(0, 0, math.Sqrt2/2), vecmath.NewVector(0, 1, 0))
	reg := s.IntersectRay(ray, nil)
	hits := reg.sorted()
	if len(hits) != 2 {
		t.Fatalf("len(hits) = %d, want 2", len(hits))
	}

	reg2 := NewHitRegister()
	reg2.Add(hits[1])
	hit, ok := reg2.FinaliseHit()
	if !ok {
		t.Fatal("expected a hit")
	}
	hit.N1, hit.N2 = 1.5, 1.0
	if got := Schlick(hit); !vecmath.AlmostEqual(got, 1.0) {
		t.Fatalf("Schlick = %v, want 1.0 under total internal reflection", got)
	}
}

func TestBoundingBoxIntersectsSlabTest(t *testing.T) {
	box := NewBoundingBox([2]float64{-1, 1}, [2]float64{-1, 1}, [2]float64{-1, 1})
	ray := vecmath.NewRay(vecmath.NewPoint(5, 0.5, 0), vecmath.NewVector(-1, 0, 0))
	if !box.intersects(ray) {
		t.Fatalf("expected the box to be hit")
	}

	missRay := vecmath.NewRay(vecmath.NewPoint(-2, 0, 0), vecmath.NewVector(2, 4, 6).Normalize())
	if box.intersects(missRay) {
		t.Fatalf("expected the box to be missed")
	}
}
