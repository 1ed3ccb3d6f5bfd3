// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"slices"
)

// DefaultTolerance is the epsilon used for containment decisions
// when none is configured.
const DefaultTolerance Tolerance = 1e-7

// Tolerance is the epsilon for floating point comparisons. It is passed
// explicitly to the operations that need one.
type Tolerance float64

// IsZero returns whether v is within the tolerance of zero.
func (t Tolerance) IsZero(v float64) bool {
	return math.Abs(v) <= float64(t)
}

// Inside returns whether q is inside the closed polygon poly under the
// nonzero winding rule: q is inside when the winding number of poly
// around q is not within the tolerance of zero. Points exactly on an
// edge or a vertex of poly may be classified either way.
func (t Tolerance) Inside(q Point, poly []Point) bool {
	return !t.IsZero(WindingNumber(q, poly))
}

// WindingNumber returns the number of times the closed polygon poly
// winds around q, positive for counter-clockwise turns. It sums the
// signed angle subtended at q by each polygon edge, so the result is a
// whole number, up to rounding, for any q not on the polygon.
func WindingNumber(q Point, poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := range n {
		a := poly[i].Sub(q)
		b := poly[(i+1)%n].Sub(q)
		sum += math.Atan2(a.Cross(b), a.Dot(b))
	}
	return sum / (2 * math.Pi)
}

// SignedArea returns the signed area of the closed polygon poly by the
// shoelace formula. It is positive when the points run counter-clockwise
// (with Y up) and negative when they run clockwise.
func SignedArea(poly []Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	// relative to the first point to limit cancellation
	o := poly[0]
	sum := 0.0
	for i := 1; i < n-1; i++ {
		sum += poly[i].Sub(o).Cross(poly[i+1].Sub(o))
	}
	return sum / 2
}

// Centroid returns the arithmetic mean of the given points.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range points {
		c = c.Add(p)
	}
	return c.DivScalar(float64(len(points)))
}

// Orientation is the winding direction of a closed polygon.
type Orientation int

const (
	// Degenerate is the orientation of a polygon with zero area.
	Degenerate Orientation = iota

	// CounterClockwise is the orientation of a polygon with positive area.
	CounterClockwise

	// Clockwise is the orientation of a polygon with negative area.
	Clockwise
)

// OrientationOf returns the [Orientation] of the closed polygon poly.
func OrientationOf(poly []Point) Orientation {
	a := SignedArea(poly)
	switch {
	case a > 0:
		return CounterClockwise
	case a < 0:
		return Clockwise
	}
	return Degenerate
}

// Reversed returns a reversed copy of poly.
func Reversed(poly []Point) []Point {
	r := slices.Clone(poly)
	slices.Reverse(r)
	return r
}
