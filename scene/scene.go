// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene lays out outlines as a flat 2D scene on a canvas and
// writes it as SVG, DXF or GeoJSON.
package scene

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/plush/geom"
	"cogentcore.org/plush/outline"
	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is the size of the drawing area that the unit UV square is
// mapped onto.
type Canvas struct {
	Width  float64
	Height float64
}

// Map maps the given UV point onto the canvas. U grows to the right
// and V grows up, while canvas Y grows down.
func (c Canvas) Map(p geom.Point) geom.Point {
	return geom.Pt(p.X*c.Width, (1-p.Y)*c.Height)
}

// Layer is one outline in the scene.
type Layer struct {
	// Name is the deterministic outline name.
	Name string

	// Title is the label of the outline, or its name when it has none.
	Title string

	// UV are the outline points in UV space.
	UV []geom.Point

	// Points are the outline points on the canvas.
	Points []geom.Point

	// Fill is the fill color of the outline.
	Fill colorful.Color

	// LabelAt is where the title is placed on the canvas: the center
	// of the outline bounding box.
	LabelAt geom.Point
}

// Scene is a set of layers on a canvas.
type Scene struct {
	Canvas

	// Layers are sorted by title and then by name.
	Layers []Layer

	// Labels is whether the SVG output has a text element with the title
	// of each layer.
	Labels bool
}

// Build returns a new scene with one layer per outline, sorted by title
// and then by name. The outlines are not modified.
func Build(outlines []*outline.Outline, c Canvas) *Scene {
	sorted := slices.Clone(outlines)
	slices.SortStableFunc(sorted, func(a, b *outline.Outline) int {
		return cmp.Or(strings.Compare(a.Title(), b.Title()), strings.Compare(a.Name, b.Name))
	})
	sc := &Scene{Canvas: c, Labels: true, Layers: make([]Layer, len(sorted))}
	for i, ol := range sorted {
		l := &sc.Layers[i]
		l.Name = ol.Name
		l.Title = ol.Title()
		l.UV = slices.Clone(ol.Points)
		l.Points = make([]geom.Point, len(ol.Points))
		for j, p := range ol.Points {
			l.Points[j] = c.Map(p)
		}
		l.Fill = ol.Color
		l.LabelAt = c.Map(ol.Center())
	}
	return sc
}

// PathData returns the SVG path data of the closed layer outline:
// "M x0 y0 L x1 y1 ... Z".
func (l *Layer) PathData() string {
	var b []byte
	for i, p := range l.Points {
		if i == 0 {
			b = append(b, "M "...)
		} else {
			b = append(b, "L "...)
		}
		b = strconv.AppendFloat(b, p.X, 'f', 6, 64)
		b = append(b, ' ')
		b = strconv.AppendFloat(b, p.Y, 'f', 6, 64)
		b = append(b, ' ')
	}
	b = append(b, 'Z')
	return string(b)
}

// FillHex returns the fill color as #RRGGBB.
func (l *Layer) FillHex() string {
	return strings.ToUpper(l.Fill.Clamped().Hex())
}
