// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package outline extracts the outlines of the UV islands of a
// [mesh.Mesh]: the closed loops of boundary edges, with their vertices
// in counter-clockwise order, and the fill color and label taken from a
// triangle inside each loop.
package outline

import (
	"fmt"
	"slices"

	"cogentcore.org/plush/geom"
	"cogentcore.org/plush/mesh"
	"github.com/lucasb-eyer/go-colorful"
)

// Outline is one closed boundary loop of a mesh.
type Outline struct {
	// Index is the position of the loop in discovery order.
	Index int

	// Name is the deterministic name of the loop, from its Index.
	Name string

	// Label is the group name of the inner vertex, if any.
	Label string

	// Root is the edge the loop was discovered from.
	Root int

	// Edges are the loop edges in the order of their Next links from Root.
	Edges []int

	// Vertices are the loop vertex ids in counter-clockwise order.
	Vertices []int

	// Points are the positions of Vertices.
	Points []geom.Point

	// Centroid is the mean of Points.
	Centroid geom.Point

	// Bounds is the bounding box of Points.
	Bounds geom.Box

	// Area is the signed area of Points, which is never negative.
	Area float64

	// Reversed is whether the walk order of the vertices was clockwise
	// and has been reversed.
	Reversed bool

	// InnerTriangle is the id of the triangle the metadata comes from,
	// or [mesh.None].
	InnerTriangle int

	// InnerVertex is the id of the vertex of InnerTriangle that lies
	// inside the loop, or [mesh.None].
	InnerVertex int

	// Color is the fill color, white unless a material was found.
	Color colorful.Color
}

func newOutline(index, root int) *Outline {
	return &Outline{Index: index, Root: root, InnerTriangle: mesh.None, InnerVertex: mesh.None, Color: White}
}

// Title returns the label of the outline if it has one, and its name otherwise.
func (ol *Outline) Title() string {
	if ol.Label != "" {
		return ol.Label
	}
	return ol.Name
}

// Center returns the center of the bounding box.
func (ol *Outline) Center() geom.Point {
	return ol.Bounds.Center()
}

// ExtractVertices walks the loop from its root edge along the Next links
// and collects the vertex that each edge shares with its predecessor,
// marking those vertices as belonging to this outline. It then computes
// the centroid, bounds and signed area, and reverses the vertices if
// needed so that they run counter-clockwise.
func (ol *Outline) ExtractVertices(m *mesh.Mesh) {
	ol.Vertices = ol.Vertices[:0]
	ol.Points = ol.Points[:0]
	cur := ol.Root
	for range m.NumEdges() {
		e := m.Edge(cur)
		v := e.Shared(m.Edge(e.Prev))
		ol.Vertices = append(ol.Vertices, v)
		vt := m.Vertex(v)
		vt.Outline = ol.Index
		ol.Points = append(ol.Points, vt.Pos)
		cur = e.Next
		if cur == ol.Root || cur == mesh.None {
			break
		}
	}
	ol.Centroid = geom.Centroid(ol.Points)
	ol.Bounds = geom.BoxOf(ol.Points...)
	ol.Reversed = geom.OrientationOf(ol.Points) == geom.Clockwise
	if ol.Reversed {
		slices.Reverse(ol.Vertices)
		ol.Points = geom.Reversed(ol.Points)
	}
	ol.Area = geom.SignedArea(ol.Points)
}

// FindInnerTriangle looks for a triangle that shows what the loop
// encloses. It goes through the triangles of the loop edges in order and
// picks the first one with a vertex that is not on this loop and lies
// inside it. It returns false if there is none, which is the case for a
// hole or an island without interior vertices. [Outline.ExtractVertices]
// must have been called for every outline of m first.
func (ol *Outline) FindInnerTriangle(m *mesh.Mesh, tol geom.Tolerance) bool {
	ol.InnerTriangle, ol.InnerVertex = mesh.None, mesh.None
	for _, eid := range ol.Edges {
		for _, tid := range m.Edge(eid).Triangles() {
			for _, vid := range m.Triangle(tid).V {
				v := m.Vertex(vid)
				if v.Outline == ol.Index {
					continue
				}
				if ol.Bounds.ContainsPoint(v.Pos) && tol.Inside(v.Pos, ol.Points) {
					ol.InnerTriangle, ol.InnerVertex = tid, vid
					return true
				}
			}
		}
	}
	return false
}

// ExtractMetadata sets the color and label of the outline from the
// material of the inner triangle and the first group of the inner vertex,
// as reported by host. Missing data leaves the color white and the
// label empty.
func (ol *Outline) ExtractMetadata(m *mesh.Mesh, host Host) {
	ol.Color = White
	ol.Label = ""
	if host == nil {
		return
	}
	if ol.InnerTriangle != mesh.None {
		if c, ok := host.MaterialColor(m.Triangle(ol.InnerTriangle).Face); ok {
			ol.Color = c
		}
	}
	if ol.InnerVertex != mesh.None {
		if name, ok := host.GroupName(m.Vertex(ol.InnerVertex).Source); ok {
			ol.Label = name
		}
	}
}

// Options are the parameters of [Build].
type Options struct {
	// Tolerance is the epsilon of the inside test. Winding numbers of
	// outside points are only zero up to rounding, so a tolerance that
	// is not positive is replaced by [geom.DefaultTolerance].
	Tolerance geom.Tolerance

	// NameFormat is the format of outline names, given the discovery index.
	NameFormat string
}

// Defaults sets the default values of the options.
func (o *Options) Defaults() {
	o.Tolerance = geom.DefaultTolerance
	o.NameFormat = "Outline%03d"
}

// Build extracts all outlines of m in discovery order, names them and
// fills in their vertices and metadata.
func Build(m *mesh.Mesh, host Host, opts Options) ([]*Outline, error) {
	outlines, err := Extract(m)
	if err != nil {
		return nil, err
	}
	if !(opts.Tolerance > 0) {
		opts.Tolerance = geom.DefaultTolerance
	}
	for _, ol := range outlines {
		ol.Name = fmt.Sprintf(opts.NameFormat, ol.Index)
		ol.ExtractVertices(m)
	}
	for _, ol := range outlines {
		ol.FindInnerTriangle(m, opts.Tolerance)
		ol.ExtractMetadata(m, host)
	}
	return outlines, nil
}
