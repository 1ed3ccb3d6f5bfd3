// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ymesh reads UV maps from YAML (or JSON) mesh documents, which
// carry the materials and vertex groups of each object explicitly:
//
//	objects:
//	  - name: Body
//	    materials:
//	      - {name: Red, color: "#FF0000"}
//	    groups: [Head, Arm]
//	    vertex_groups: {0: [0], 3: [1, 0]}
//	    faces:
//	      - material: 0
//	        uv: [[0, 0], [1, 0], [1, 1]]
//	        vertices: [0, 1, 3]
package ymesh

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/plush/geom"
	"cogentcore.org/plush/mesh"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Document is a mesh document.
type Document struct {
	Objects []Object `yaml:"objects"`

	// file is the file the document was read from, if any.
	file string
}

// Object is one mesh object with its own materials and groups.
type Object struct {
	Name string `yaml:"name"`

	// Materials are indexed by the Material of each face.
	Materials []Material `yaml:"materials,omitempty"`

	// Groups are the names of the vertex groups.
	Groups []string `yaml:"groups,omitempty"`

	// VertexGroups maps a source vertex index to the indexes of the
	// groups it is assigned to, in assignment order.
	VertexGroups map[int][]int `yaml:"vertex_groups,omitempty"`

	Faces []Face `yaml:"faces"`
}

// Material is a named material with a diffuse color.
type Material struct {
	Name string `yaml:"name"`

	// Color is the diffuse color as #RRGGBB.
	Color string `yaml:"color"`

	diffuse colorful.Color
}

// Face is a polygon in UV space.
type Face struct {
	// Material is the index of the material of the face in its object.
	Material int `yaml:"material,omitempty"`

	// UV are the texture coordinates of the corners.
	UV [][2]float64 `yaml:"uv"`

	// Vertices are the source vertex indexes of the corners, if known.
	Vertices []int `yaml:"vertices,omitempty"`
}

// Open reads the mesh document in the given file.
func Open(fname string) (*Document, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("ymesh: %s: %w", fname, err)
	}
	doc.file = fname
	return doc, nil
}

// Decode reads a mesh document from r and validates it. Unknown fields
// are errors.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	doc := &Document{}
	if err := dec.Decode(doc); err != nil && err != io.EOF {
		return nil, err
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (doc *Document) validate() error {
	for oi := range doc.Objects {
		ob := &doc.Objects[oi]
		for mi := range ob.Materials {
			mat := &ob.Materials[mi]
			c, err := colorful.Hex(mat.Color)
			if err != nil {
				return fmt.Errorf("object %q material %q: invalid color %q", ob.Name, mat.Name, mat.Color)
			}
			mat.diffuse = c
		}
		for v, gs := range ob.VertexGroups {
			for _, g := range gs {
				if g < 0 || g >= len(ob.Groups) {
					return fmt.Errorf("object %q vertex %d: group index %d out of range", ob.Name, v, g)
				}
			}
		}
		for fi, fc := range ob.Faces {
			if fc.Vertices != nil && len(fc.Vertices) != len(fc.UV) {
				return fmt.Errorf("object %q face %d: %d vertices for %d uv corners", ob.Name, fi, len(fc.Vertices), len(fc.UV))
			}
			if len(ob.Materials) > 0 && (fc.Material < 0 || fc.Material >= len(ob.Materials)) {
				return fmt.Errorf("object %q face %d: material index %d out of range", ob.Name, fi, fc.Material)
			}
		}
	}
	return nil
}

// Feed adds the faces of all objects for which keep returns true to m.
// A nil keep adds all objects.
func (doc *Document) Feed(m *mesh.Mesh, keep func(object string) bool) error {
	for oi, ob := range doc.Objects {
		if keep != nil && !keep(ob.Name) {
			continue
		}
		for fi, fc := range ob.Faces {
			corners := make([]mesh.Corner, len(fc.UV))
			for i, uv := range fc.UV {
				corners[i] = mesh.Corner{UV: geom.Pt(uv[0], uv[1]), Vertex: mesh.None}
				if fc.Vertices != nil {
					corners[i].Vertex = fc.Vertices[i]
				}
			}
			if err := m.AddFace(mesh.FaceRef{Object: oi, Index: fi}, corners); err != nil {
				return fmt.Errorf("ymesh: object %q: %w", ob.Name, err)
			}
		}
	}
	return nil
}

func (doc *Document) object(i int) *Object {
	if i < 0 || i >= len(doc.Objects) {
		return nil
	}
	return &doc.Objects[i]
}

func (doc *Document) material(face mesh.FaceRef) *Material {
	ob := doc.object(face.Object)
	if ob == nil || face.Index < 0 || face.Index >= len(ob.Faces) || len(ob.Materials) == 0 {
		return nil
	}
	return &ob.Materials[ob.Faces[face.Index].Material]
}

// MaterialName returns the name of the material of the given face.
func (doc *Document) MaterialName(face mesh.FaceRef) string {
	if mat := doc.material(face); mat != nil {
		return mat.Name
	}
	return ""
}

// MaterialColor returns the color of the material of the given face.
func (doc *Document) MaterialColor(face mesh.FaceRef) (colorful.Color, bool) {
	if mat := doc.material(face); mat != nil {
		return mat.diffuse, true
	}
	return colorful.Color{}, false
}

// GroupName returns the name of the first group of the given vertex.
func (doc *Document) GroupName(v mesh.VertexRef) (string, bool) {
	ob := doc.object(v.Object)
	if ob == nil {
		return "", false
	}
	gs := ob.VertexGroups[v.Index]
	if len(gs) == 0 {
		return "", false
	}
	return ob.Groups[gs[0]], true
}

// ObjectNames returns the names of the objects in document order.
func (doc *Document) ObjectNames() []string {
	names := make([]string, len(doc.Objects))
	for i, ob := range doc.Objects {
		names[i] = ob.Name
	}
	return names
}

// Files returns the file the document was read from.
func (doc *Document) Files() []string {
	if doc.file == "" {
		return nil
	}
	return []string{doc.file}
}
