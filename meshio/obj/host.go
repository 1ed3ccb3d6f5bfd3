// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/plush/mesh"
	"github.com/lucasb-eyer/go-colorful"
)

// Feed adds the faces of all objects for which keep returns true to m,
// with the object index as the object of each face. A nil keep adds
// all objects. Faces without texture coordinates on every corner are
// skipped with a warning.
func (dec *Decoder) Feed(m *mesh.Mesh, keep func(object string) bool) error {
	for oi := range dec.Objects {
		ob := &dec.Objects[oi]
		if keep != nil && !keep(ob.Name) {
			continue
		}
		for fi := range ob.Faces {
			fc := &ob.Faces[fi]
			corners := make([]mesh.Corner, len(fc.Vertices))
			ok := true
			for i, v := range fc.Vertices {
				if fc.Uvs[i] == invIndex {
					ok = false
					break
				}
				corners[i] = mesh.Corner{UV: dec.Uvs[fc.Uvs[i]], Vertex: v}
			}
			if !ok {
				w := fmt.Sprintf("%s(%d): %v", objType, fc.line, errNoUVs)
				dec.Warnings = append(dec.Warnings, w)
				slog.Warn(w, "file", dec.Objfile, "object", ob.Name)
				continue
			}
			if err := m.AddFace(mesh.FaceRef{Object: oi, Index: fi}, corners); err != nil {
				return fmt.Errorf("obj: object %q: %w", ob.Name, err)
			}
		}
	}
	return nil
}

func (dec *Decoder) face(face mesh.FaceRef) *Face {
	if face.Object < 0 || face.Object >= len(dec.Objects) {
		return nil
	}
	ob := &dec.Objects[face.Object]
	if face.Index < 0 || face.Index >= len(ob.Faces) {
		return nil
	}
	return &ob.Faces[face.Index]
}

// MaterialName returns the name of the material of the given face.
func (dec *Decoder) MaterialName(face mesh.FaceRef) string {
	if fc := dec.face(face); fc != nil {
		return fc.Material
	}
	return ""
}

// MaterialColor returns the diffuse color of the material of the given
// face, if the material library defines one.
func (dec *Decoder) MaterialColor(face mesh.FaceRef) (colorful.Color, bool) {
	mat := dec.Materials[dec.MaterialName(face)]
	if mat == nil || !mat.HasDiffuse {
		return colorful.Color{}, false
	}
	return mat.Diffuse, true
}

// GroupName returns the first group of the given vertex. Vertex
// positions are shared by all objects in an obj file, so only the
// vertex index is used.
func (dec *Decoder) GroupName(v mesh.VertexRef) (string, bool) {
	gs := dec.vertexGroups[v.Index]
	if len(gs) == 0 {
		return "", false
	}
	return gs[0], true
}

// ObjectNames returns the names of the objects in file order.
func (dec *Decoder) ObjectNames() []string {
	names := make([]string, len(dec.Objects))
	for i, ob := range dec.Objects {
		names[i] = ob.Name
	}
	return names
}

// Files returns the obj file and the material library that were read.
func (dec *Decoder) Files() []string {
	fs := []string{filepath.Join(dec.Objdir, dec.Objfile)}
	if dec.Mtlfile != "" {
		fs = append(fs, dec.Mtlfile)
	}
	return fs
}
