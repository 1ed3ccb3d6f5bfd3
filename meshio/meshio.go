// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio opens UV-mapped meshes from files and feeds them into
// a [mesh.Mesh], providing the material colors and vertex groups of the
// faces through [outline.Host].
package meshio

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/plush/mesh"
	"cogentcore.org/plush/meshio/obj"
	"cogentcore.org/plush/meshio/ymesh"
	"cogentcore.org/plush/outline"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
)

// Source is a decoded mesh file.
type Source interface {
	outline.Host

	// Feed adds the triangles of all objects for which keep returns true
	// to m. A nil keep adds all objects.
	Feed(m *mesh.Mesh, keep func(object string) bool) error

	// MaterialName returns the name of the material of the given face,
	// or "" if it has none.
	MaterialName(face mesh.FaceRef) string

	// ObjectNames returns the names of the objects in file order.
	ObjectNames() []string

	// Files returns all of the files that were read, such as an obj
	// file and its material library.
	Files() []string
}

// Opener opens a file as a [Source].
type Opener func(fname string) (Source, error)

// Openers are the openers for each supported file extension.
var Openers = map[string]Opener{
	".obj":  openOBJ,
	".yaml": openYAML,
	".yml":  openYAML,
	".json": openYAML,
}

func openOBJ(fname string) (Source, error) {
	dec, err := obj.Open(fname)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

func openYAML(fname string) (Source, error) {
	doc, err := ymesh.Open(fname)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Extensions returns the supported file extensions in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(Openers))
	for ext := range Openers {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Open opens the given file with the opener for its extension.
// A leading ~ is expanded to the home directory.
func Open(fname string) (Source, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	op, ok := Openers[ext]
	if !ok {
		return nil, fmt.Errorf("meshio.Open: file extension %q of %s is not one of %s", ext, fname, strings.Join(Extensions(), ", "))
	}
	return op(path)
}

// WithColors returns a source that uses the given colors, indexed by
// material name, in place of the material colors of src.
func WithColors(src Source, colors map[string]colorful.Color) Source {
	if len(colors) == 0 {
		return src
	}
	return &colorSource{Source: src, colors: colors}
}

type colorSource struct {
	Source
	colors map[string]colorful.Color
}

func (cs *colorSource) MaterialColor(face mesh.FaceRef) (colorful.Color, bool) {
	if c, ok := cs.colors[cs.MaterialName(face)]; ok {
		return c, true
	}
	return cs.Source.MaterialColor(face)
}
