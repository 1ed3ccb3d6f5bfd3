// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 2D geometry used to turn UV coordinates
// into outlines: points, bounding boxes, polygon area and orientation,
// and point containment by winding number.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2D point or vector in UV space. It is a value type and
// all of its methods return new values.
type Point struct {
	X float64
	Y float64
}

// Pt returns a new [Point] with the given coordinates.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// String implements [fmt.Stringer].
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// MulScalar returns the vector p*s.
func (p Point) MulScalar(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// DivScalar returns the vector p/s.
func (p Point) DivScalar(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

// Cross returns the z component of the cross product of p and q,
// which is positive when q is counter-clockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsFinite returns whether both coordinates are neither NaN nor infinite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Canonical returns p with negative zero coordinates replaced by
// positive zero, so that points that compare equal also format equally.
func (p Point) Canonical() Point {
	if p.X == 0 {
		p.X = 0
	}
	if p.Y == 0 {
		p.Y = 0
	}
	return p
}
