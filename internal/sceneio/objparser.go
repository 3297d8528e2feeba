// Package sceneio reads scene descriptions from disk: Wavefront OBJ
// meshes, YAML scene graphs, and TOML render configuration.
package sceneio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/msealion/raytracer/internal/material"
	"github.com/msealion/raytracer/internal/shape"
	"github.com/msealion/raytracer/internal/vecmath"
)

// ObjMesh is the result of parsing a Wavefront OBJ file: every named
// group it declared (via "g" records), plus a default group holding
// any faces given before the first group name.
type ObjMesh struct {
	Vertices     []vecmath.Point
	Normals      []vecmath.Vector
	DefaultGroup *shape.Group
	NamedGroups  map[string]*shape.Group
	IgnoredLines int
}

// ToGroup collects every group the file declared (default plus named)
// into a single top-level Group under frame, ready to drop into a
// World's object list.
func (m *ObjMesh) ToGroup(frame vecmath.Transform) *shape.Group {
	children := []shape.Shape{m.DefaultGroup}
	for _, g := range m.NamedGroups {
		children = append(children, g)
	}
	return shape.NewGroup(frame, children...)
}

type objGroupBuilder struct {
	name     string
	children []shape.Shape
}

// ParseObj reads a Wavefront OBJ document, triangulating any face with
// more than three vertices by fanning out from its first vertex, and
// builds every resulting triangle (or SmoothTriangle, if the face cited
// vertex normals) with mat, in the mesh's own local coordinates.
// Unrecognised record types are counted in IgnoredLines and otherwise
// skipped, matching the format's own tolerance for unknown extensions.
// Call ToGroup on the result to place the mesh at a world frame.
func ParseObj(r io.Reader, mat material.Material) (*ObjMesh, error) {
	identity := vecmath.NewTransform(vecmath.Identity())
	mesh := &ObjMesh{
		NamedGroups: map[string]*shape.Group{},
	}
	defaultBuilder := &objGroupBuilder{}
	current := defaultBuilder
	named := map[string]*objGroupBuilder{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, p)

		case "vn":
			n, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			mesh.Normals = append(mesh.Normals, vecmath.NewVector(n.X, n.Y, n.Z))

		case "g":
			name := strings.Join(fields[1:], " ")
			if b, ok := named[name]; ok {
				current = b
			} else {
				current = &objGroupBuilder{name: name}
				named[name] = current
			}

		case "f":
			tris, err := buildFaceTriangles(fields[1:], mesh, identity, mat)
			if err != nil {
				return nil, fmt.Errorf("sceneio: line %d: %w", lineNo, err)
			}
			current.children = append(current.children, tris...)

		default:
			mesh.IgnoredLines++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	mesh.DefaultGroup = shape.NewGroup(vecmath.NewTransform(vecmath.Identity()), defaultBuilder.children...)
	for name, b := range named {
		mesh.NamedGroups[name] = shape.NewGroup(vecmath.NewTransform(vecmath.Identity()), b.children...)
	}
	return mesh, nil
}

func parseVertex(fields []string) (vecmath.Point, error) {
	if len(fields) < 3 {
		return vecmath.Point{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}
	coords := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Point{}, fmt.Errorf("invalid coordinate %q: %w", fields[i], err)
		}
		coords[i] = v
	}
	return vecmath.NewPoint(coords[0], coords[1], coords[2]), nil
}

// faceVertex is a single "v/vt/vn" record within a face line; texture
// coordinates are parsed (to stay position-compatible) but unused.
type faceVertex struct {
	vertexIndex int
	normalIndex int // 0 means "not given"
}

func parseFaceVertex(field string) (faceVertex, error) {
	parts := strings.Split(field, "/")
	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("invalid vertex index %q: %w", parts[0], err)
	}

	fv := faceVertex{vertexIndex: vi}
	if len(parts) == 3 && parts[2] != "" {
		ni, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("invalid normal index %q: %w", parts[2], err)
		}
		fv.normalIndex = ni
	}
	return fv, nil
}

func buildFaceTriangles(fields []string, mesh *ObjMesh, frame vecmath.Transform, mat material.Material) ([]shape.Shape, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	verts := make([]faceVertex, len(fields))
	for i, f := range fields {
		fv, err := parseFaceVertex(f)
		if err != nil {
			return nil, err
		}
		verts[i] = fv
	}

	vertexAt := func(fv faceVertex) (vecmath.Point, error) {
		idx := fv.vertexIndex
		if idx < 0 {
			idx = len(mesh.Vertices) + idx + 1
		}
		if idx < 1 || idx > len(mesh.Vertices) {
			return vecmath.Point{}, fmt.Errorf("vertex index %d out of range", fv.vertexIndex)
		}
		return mesh.Vertices[idx-1], nil
	}

	normalAt := func(fv faceVertex) (vecmath.Vector, bool, error) {
		if fv.normalIndex == 0 {
			return vecmath.Vector{}, false, nil
		}
		idx := fv.normalIndex
		if idx < 0 {
			idx = len(mesh.Normals) + idx + 1
		}
		if idx < 1 || idx > len(mesh.Normals) {
			return vecmath.Vector{}, false, fmt.Errorf("normal index %d out of range", fv.normalIndex)
		}
		return mesh.Normals[idx-1], true, nil
	}

	var tris []shape.Shape
	for i := 1; i < len(verts)-1; i++ {
		p1, err := vertexAt(verts[0])
		if err != nil {
			return nil, err
		}
		p2, err := vertexAt(verts[i])
		if err != nil {
			return nil, err
		}
		p3, err := vertexAt(verts[i+1])
		if err != nil {
			return nil, err
		}

		n1, hasN1, err := normalAt(verts[0])
		if err != nil {
			return nil, err
		}
		n2, hasN2, err := normalAt(verts[i])
		if err != nil {
			return nil, err
		}
		n3, hasN3, err := normalAt(verts[i+1])
		if err != nil {
			return nil, err
		}

		if hasN1 && hasN2 && hasN3 {
			tris = append(tris, shape.NewSmoothTriangle(frame, mat, p1, p2, p3, n1, n2, n3))
		} else {
			tris = append(tris, shape.NewTriangle(frame, mat, p1, p2, p3))
		}
	}
	return tris, nil
}
