package sceneio

import (
	"math"
	"strings"
	"testing"

	"github.com/msealion/raytracer/internal/shape"
)

const sampleScene = `
camera:
  width: 100
  height: 50
  field_of_view: 1.0471975512
  from: [0, 1.5, -5]
  to: [0, 1, 0]
  up: [0, 1, 0]

lights:
  - position: [-10, 10, -10]
    intensity: [1, 1, 1]

objects:
  - type: sphere
    material:
      color: [1, 0.2, 1]
      diffuse: 0.7
  - type: plane
    transform:
      - kind: translate
        args: [0, -1, 0]
  - type: group
    transform:
      - kind: translate
        args: [2, 0, 0]
    children:
      - type: cube
      - type: sphere
        transform:
          - kind: scale
            args: [0.5, 0.5, 0.5]
  - type: csg
    operation: difference
    left:
      type: sphere
    right:
      type: cube
      transform:
        - kind: scale
          args: [0.5, 0.5, 0.5]
`

func TestLoadSceneParsesDocument(t *testing.T) {
	doc, err := LoadScene(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if doc.Camera.Width != 100 || doc.Camera.Height != 50 {
		t.Fatalf("camera dims = %dx%d", doc.Camera.Width, doc.Camera.Height)
	}
	if len(doc.Lights) != 1 {
		t.Fatalf("len(Lights) = %d, want 1", len(doc.Lights))
	}
	if len(doc.Objects) != 4 {
		t.Fatalf("len(Objects) = %d, want 4", len(doc.Objects))
	}
}

func TestBuildWorldPopulatesObjectsAndLights(t *testing.T) {
	doc, err := LoadScene(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	world, err := doc.BuildWorld()
	if err != nil {
		t.Fatalf("BuildWorld: %v", err)
	}
	if len(world.Objects) != 4 {
		t.Fatalf("len(Objects) = %d, want 4", len(world.Objects))
	}
	if len(world.Lights) != 1 {
		t.Fatalf("len(Lights) = %d, want 1", len(world.Lights))
	}

	group, ok := world.Objects[2].(*shape.Group)
	if !ok {
		t.Fatalf("third object is %T, want *shape.Group", world.Objects[2])
	}
	if len(group.Children()) != 2 {
		t.Fatalf("group has %d children, want 2", len(group.Children()))
	}

	if _, ok := world.Objects[3].(*shape.CSG); !ok {
		t.Fatalf("fourth object is %T, want *shape.CSG", world.Objects[3])
	}
}

func TestBuildCameraUsesFieldOfViewAndAspect(t *testing.T) {
	doc, err := LoadScene(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	cam := doc.BuildCamera()
	if cam.HSize != 100 || cam.VSize != 50 {
		t.Fatalf("camera dims = %dx%d", cam.HSize, cam.VSize)
	}
	if !almostEqual(cam.FieldOfView, math.Pi/3) {
		t.Fatalf("FieldOfView = %v, want pi/3", cam.FieldOfView)
	}
}

func TestBuildShapeRejectsUnknownType(t *testing.T) {
	_, err := BuildShape(ObjectConfig{Type: "teapot"})
	if err == nil {
		t.Fatal("expected an error for an unknown object type")
	}
}

func TestBuildShapeRejectsMalformedTransform(t *testing.T) {
	_, err := BuildShape(ObjectConfig{
		Type:      "sphere",
		Transform: []TransformConfig{{Kind: "translate", Args: []float64{1, 2}}},
	})
	if err == nil {
		t.Fatal("expected an error for a malformed transform")
	}
}

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
