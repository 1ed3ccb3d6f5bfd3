// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export runs the whole pipeline from a mesh file to an outline
// drawing: building the mesh, extracting and processing the outlines,
// and writing the scene as SVG, DXF or GeoJSON.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/plush/mesh"
	"cogentcore.org/plush/meshio"
	"cogentcore.org/plush/outline"
	"cogentcore.org/plush/scene"
	"github.com/mitchellh/go-homedir"
)

// Result is the result of an export.
type Result struct {
	// Outlines are the outlines in discovery order.
	Outlines []*outline.Outline

	// Scene has one layer per outline, in output order.
	Scene *scene.Scene

	// Warnings are the messages about input faces that were skipped.
	Warnings []string

	// Files are the input files that were read.
	Files []string
}

// Run builds the outlines and the scene of the given source.
func Run(cfg *Config, src meshio.Source) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	names := src.ObjectNames()
	for _, ob := range cfg.Objects {
		if !slices.Contains(names, ob) {
			return nil, fmt.Errorf("export: object %q not found, have %s", ob, strings.Join(names, ", "))
		}
	}
	colors, _ := cfg.colors()
	src = meshio.WithColors(src, colors)

	m := mesh.New()
	if err := src.Feed(m, cfg.keep()); err != nil {
		return nil, err
	}
	outlines, err := outline.Build(m, src, cfg.OutlineOptions())
	if err != nil {
		return nil, err
	}
	sc := scene.Build(outlines, cfg.Canvas())
	sc.Labels = cfg.Labels
	return &Result{Outlines: outlines, Scene: sc, Warnings: m.Warnings, Files: src.Files()}, nil
}

// FormatOf returns the output format for the given file: the format of
// the config if it has one, and otherwise the one for the file extension.
func FormatOf(cfg *Config, fname string) (string, error) {
	if cfg.Format != "" {
		return cfg.Format, nil
	}
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".svg", "":
		return "svg", nil
	case ".dxf":
		return "dxf", nil
	case ".geojson", ".json":
		return "geojson", nil
	default:
		return "", fmt.Errorf("export: unknown output extension %q of %s", ext, fname)
	}
}

// OutputName returns the default output file for the given input file:
// the input with the extension of the format.
func OutputName(input, format string) string {
	ext := "." + format
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// Save writes the scene in the given format to the given file. The file
// is only written once the whole output has been produced.
func (r *Result) Save(fname, format string) error {
	path, err := homedir.Expand(fname)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	switch format {
	case "svg":
		err = r.Scene.WriteSVG(&b)
	case "geojson":
		err = r.Scene.WriteGeoJSON(&b)
	case "dxf":
		return r.saveDXF(path)
	default:
		err = fmt.Errorf("export: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b.Bytes(), 0666)
}

// saveDXF saves a DXF file next to the final one and renames it into
// place, since the DXF writer only writes to a named file.
func (r *Result) saveDXF(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".plush-*.dxf")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	tmp.Close()
	if err := r.Scene.SaveDXF(tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// File exports the given input mesh file to the given output file. If
// output is empty, it is the input file with the extension of the format.
func File(cfg *Config, input, output string) (*Result, error) {
	if output == "" {
		format := cfg.Format
		if format == "" {
			format = "svg"
		}
		output = OutputName(input, format)
	}
	format, err := FormatOf(cfg, output)
	if err != nil {
		return nil, err
	}
	src, err := meshio.Open(input)
	if err != nil {
		return nil, err
	}
	res, err := Run(cfg, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	if err := res.Save(output, format); err != nil {
		return nil, err
	}
	slog.Info("exported", "input", input, "output", output, "outlines", len(res.Outlines), "warnings", len(res.Warnings))
	return res, nil
}
