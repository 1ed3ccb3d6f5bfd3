// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Box is an axis-aligned bounding box defined by the point with the
// minimum coordinates and the point with the maximum coordinates.
type Box struct {
	Min Point
	Max Point
}

// EmptyBox returns a new empty [Box] that any expansion replaces.
func EmptyBox() Box {
	b := Box{}
	b.SetEmpty()
	return b
}

// BoxOf returns the bounding box of the given points.
func BoxOf(points ...Point) Box {
	b := EmptyBox()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box) SetEmpty() {
	b.Min = Point{math.Inf(1), math.Inf(1)}
	b.Max = Point{math.Inf(-1), math.Inf(-1)}
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ExpandByPoint may expand this bounding box to include the given point.
func (b *Box) ExpandByPoint(p Point) {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
}

// Center returns the center of the bounding box.
func (b Box) Center() Point {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ContainsPoint returns whether p is inside the box, borders included.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
