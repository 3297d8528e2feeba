package sceneio

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/msealion/raytracer/internal/color"
	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/pattern"
	"github.com/msealion/raytracer/internal/render"
	"github.com/msealion/raytracer/internal/shape"
	"github.com/msealion/raytracer/internal/vecmath"
)

// SceneDocument is the YAML format a scene file is read into: camera
// settings, point lights, and the object tree.
type SceneDocument struct {
	Camera  CameraConfig   `yaml:"camera"`
	Lights  []LightConfig  `yaml:"lights"`
	Objects []ObjectConfig `yaml:"objects"`
}

// CameraConfig describes the viewport and where it looks from/to.
type CameraConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	FieldOfView float64    `yaml:"field_of_view"`
	From        [3]float64 `yaml:"from"`
	To          [3]float64 `yaml:"to"`
	Up          [3]float64 `yaml:"up"`
}

// LightConfig describes a single point light.
type LightConfig struct {
	Position  [3]float64 `yaml:"position"`
	Intensity [3]float64 `yaml:"intensity"`
}

// TransformConfig is one entry in an object's transform chain, applied
// in file order (first entry applied first).
type TransformConfig struct {
	Kind string    `yaml:"kind"`
	Args []float64 `yaml:"args"`
}

// MaterialConfig overrides fields of the default Preset material; fields
// omitted from the YAML are left at their material.Preset default, and
// any field given (even as 0) replaces it. Color, when given, replaces
// the pattern outright with a solid colour.
type MaterialConfig struct {
	Color           *[3]float64 `yaml:"color,omitempty"`
	Ambient         *float64    `yaml:"ambient,omitempty"`
	Diffuse         *float64    `yaml:"diffuse,omitempty"`
	Specular        *float64    `yaml:"specular,omitempty"`
	Shininess       *float64    `yaml:"shininess,omitempty"`
	Reflectance     *float64    `yaml:"reflectance,omitempty"`
	Transparency    *float64    `yaml:"transparency,omitempty"`
	RefractiveIndex *float64    `yaml:"refractive_index,omitempty"`
}

// ObjectConfig is one node of the scene's object tree. Type selects
// which fields apply: primitive types (sphere, plane, cube, cylinder,
// cone, obj) use Transform/Material (and Min/Max/ClosedMin/ClosedMax
// for cylinder/cone, File for obj); "group" uses Children; "csg" uses
// Operation, Left, and Right.
type ObjectConfig struct {
	Type      string            `yaml:"type"`
	Transform []TransformConfig `yaml:"transform,omitempty"`
	Material  *MaterialConfig   `yaml:"material,omitempty"`

	Min       float64 `yaml:"min,omitempty"`
	Max       float64 `yaml:"max,omitempty"`
	ClosedMin bool    `yaml:"closed_min,omitempty"`
	ClosedMax bool    `yaml:"closed_max,omitempty"`

	File string `yaml:"file,omitempty"`

	Children []ObjectConfig `yaml:"children,omitempty"`

	Operation string        `yaml:"operation,omitempty"`
	Left      *ObjectConfig `yaml:"left,omitempty"`
	Right     *ObjectConfig `yaml:"right,omitempty"`
}

// LoadScene parses a YAML scene document.
func LoadScene(r io.Reader) (*SceneDocument, error) {
	var doc SceneDocument
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("sceneio: parsing scene: %w", err)
	}
	return &doc, nil
}

func buildTransform(entries []TransformConfig) (vecmath.Transform, error) {
	kinds := make([]vecmath.Kind, 0, len(entries))
	for _, e := range entries {
		k, err := buildKind(e)
		if err != nil {
			return vecmath.Transform{}, err
		}
		kinds = append(kinds, k)
	}
	return vecmath.FromSequence(kinds...), nil
}

func buildKind(e TransformConfig) (vecmath.Kind, error) {
	need := func(n int) error {
		if len(e.Args) != n {
			return fmt.Errorf("sceneio: transform %q needs %d args, got %d", e.Kind, n, len(e.Args))
		}
		return nil
	}

	switch e.Kind {
	case "translate":
		if err := need(3); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Translate(e.Args[0], e.Args[1], e.Args[2]), nil
	case "scale":
		if err := need(3); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Scale(e.Args[0], e.Args[1], e.Args[2]), nil
	case "rotate_x":
		if err := need(1); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Rotate(vecmath.AxisX, vecmath.FromRadians(e.Args[0])), nil
	case "rotate_y":
		if err := need(1); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Rotate(vecmath.AxisY, vecmath.FromRadians(e.Args[0])), nil
	case "rotate_z":
		if err := need(1); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Rotate(vecmath.AxisZ, vecmath.FromRadians(e.Args[0])), nil
	case "shear":
		if err := need(6); err != nil {
			return vecmath.Kind{}, err
		}
		return vecmath.Shear(e.Args[0], e.Args[1], e.Args[2], e.Args[3], e.Args[4], e.Args[5]), nil
	default:
		return vecmath.Kind{}, fmt.Errorf("sceneio: unknown transform kind %q", e.Kind)
	}
}

func buildMaterial(cfg *MaterialConfig) material.Material {
	m := material.Preset()
	if cfg == nil {
		return m
	}
	if cfg.Color != nil {
		c := cfg.Color
		m.Pattern = pattern.NewSolid(color.New(c[0], c[1], c[2]))
	}
	if cfg.Ambient != nil {
		m.Ambient = *cfg.Ambient
	}
	if cfg.Diffuse != nil {
		m.Diffuse = *cfg.Diffuse
	}
	if cfg.Specular != nil {
		m.Specular = *cfg.Specular
	}
	if cfg.Shininess != nil {
		m.Shininess = *cfg.Shininess
	}
	if cfg.Reflectance != nil {
		m.Reflectance = *cfg.Reflectance
	}
	if cfg.Transparency != nil {
		m.Transparency = *cfg.Transparency
	}
	if cfg.RefractiveIndex != nil {
		m.RefractiveIndex = *cfg.RefractiveIndex
	}
	return m
}

func buildOperation(name string) (shape.Operation, error) {
	switch name {
	case "union":
		return shape.Union, nil
	case "intersect":
		return shape.Intersect, nil
	case "difference":
		return shape.Difference, nil
	default:
		return 0, fmt.Errorf("sceneio: unknown csg operation %q", name)
	}
}

// BuildShape recursively converts an ObjectConfig into its Shape. File
// paths for "obj" nodes are resolved relative to the current working
// directory.
func BuildShape(cfg ObjectConfig) (shape.Shape, error) {
	transform, err := buildTransform(cfg.Transform)
	if err != nil {
		return nil, err
	}
	mat := buildMaterial(cfg.Material)

	switch cfg.Type {
	case "sphere":
		return shape.NewSphere(transform, mat), nil
	case "plane":
		return shape.NewPlane(transform, mat), nil
	case "cube":
		return shape.NewCube(transform, mat), nil
	case "cylinder":
		return shape.NewCylinder(transform, mat, cfg.Min, cfg.Max, cfg.ClosedMin, cfg.ClosedMax), nil
	case "cone":
		return shape.NewCone(transform, mat, cfg.Min, cfg.Max, cfg.ClosedMin, cfg.ClosedMax), nil
	case "obj":
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("sceneio: opening %s: %w", cfg.File, err)
		}
		defer f.Close()
		mesh, err := ParseObj(f, mat)
		if err != nil {
			return nil, fmt.Errorf("sceneio: parsing %s: %w", cfg.File, err)
		}
		return mesh.ToGroup(transform), nil
	case "group":
		children := make([]shape.Shape, 0, len(cfg.Children))
		for _, childCfg := range cfg.Children {
			child, err := BuildShape(childCfg)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return shape.NewGroup(transform, children...), nil
	case "csg":
		if cfg.Left == nil || cfg.Right == nil {
			return nil, fmt.Errorf("sceneio: csg node requires left and right")
		}
		op, err := buildOperation(cfg.Operation)
		if err != nil {
			return nil, err
		}
		left, err := BuildShape(*cfg.Left)
		if err != nil {
			return nil, err
		}
		right, err := BuildShape(*cfg.Right)
		if err != nil {
			return nil, err
		}
		return shape.NewCSG(op, transform, left, right), nil
	default:
		return nil, fmt.Errorf("sceneio: unknown object type %q", cfg.Type)
	}
}

// BuildWorld converts every top-level object and light in doc into a
// World.
func (doc *SceneDocument) BuildWorld() (*render.World, error) {
	w := render.NewWorld()
	for _, objCfg := range doc.Objects {
		s, err := BuildShape(objCfg)
		if err != nil {
			return nil, err
		}
		w.Objects = append(w.Objects, s)
	}
	for _, l := range doc.Lights {
		w.Lights = append(w.Lights, material.NewLight(
			vecmath.NewPoint(l.Position[0], l.Position[1], l.Position[2]),
			color.New(l.Intensity[0], l.Intensity[1], l.Intensity[2]),
		))
	}
	return w, nil
}

// BuildCamera converts doc's camera block into a positioned Camera.
func (doc *SceneDocument) BuildCamera() *render.Camera {
	cfg := doc.Camera
	view := render.ViewTransform(
		vecmath.NewPoint(cfg.From[0], cfg.From[1], cfg.From[2]),
		vecmath.NewPoint(cfg.To[0], cfg.To[1], cfg.To[2]),
		vecmath.NewVector(cfg.Up[0], cfg.Up[1], cfg.Up[2]),
	)
	return render.NewCamera(cfg.Width, cfg.Height, cfg.FieldOfView, view)
}
