// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"math"
	"testing"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corners(pts ...float64) []Corner {
	cs := make([]Corner, len(pts)/2)
	for i := range cs {
		cs[i] = Corner{UV: geom.Pt(pts[2*i], pts[2*i+1]), Vertex: i}
	}
	return cs
}

func TestAddTriangle(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 0, 1)))
	assert.Equal(t, 3, m.NumVertices())
	assert.Equal(t, 3, m.NumEdges())
	assert.Equal(t, 1, m.NumTriangles())

	tri := m.Triangle(0)
	assert.Equal(t, [3]int{0, 1, 2}, tri.V)
	assert.Equal(t, [3]int{0, 1, 2}, tri.E)
	assert.Equal(t, FaceRef{0, 0}, tri.Face)
	for i := range m.NumEdges() {
		e := m.Edge(i)
		assert.True(t, e.IsBoundary())
		assert.Equal(t, []int{0}, e.Triangles())
		assert.Equal(t, None, e.Prev)
		assert.Equal(t, None, e.Next)
	}
	v := m.Vertex(1)
	assert.Equal(t, geom.Pt(1, 0), v.Pos)
	assert.Equal(t, VertexRef{0, 1}, v.Source)
	assert.False(t, v.IsOutline())
}

func TestQuadSplit(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 1, 1, 0, 1)))
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 5, m.NumEdges())
	assert.Equal(t, 2, m.NumTriangles())
	assert.Equal(t, [3]int{0, 1, 2}, m.Triangle(0).V)
	assert.Equal(t, [3]int{2, 3, 0}, m.Triangle(1).V)

	diag, ok := m.EdgeBetween(2, 0)
	require.True(t, ok)
	assert.False(t, m.Edge(diag).IsBoundary())
	assert.Equal(t, []int{0, 1}, m.Edge(diag).Triangles())

	boundary := 0
	for i := range m.NumEdges() {
		if m.Edge(i).IsBoundary() {
			boundary++
		}
	}
	assert.Equal(t, 4, boundary)
}

func TestPolygonFan(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 2, 0, 3, 1, 1, 2, -1, 1)))
	assert.Equal(t, 3, m.NumTriangles())
	assert.Equal(t, [3]int{0, 3, 4}, m.Triangle(2).V)
}

func TestVertexDedup(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 0, 1)))
	require.NoError(t, m.AddFace(FaceRef{1, 0}, []Corner{
		{geom.Pt(1, 0), 7}, {geom.Pt(1, 1), 8}, {geom.Pt(0, 1), 9},
	}))
	assert.Equal(t, 4, m.NumVertices())
	// the first corner at a position keeps its source
	assert.Equal(t, VertexRef{0, 1}, m.Vertex(1).Source)
	assert.Equal(t, VertexRef{1, 8}, m.Vertex(3).Source)

	id, ok := m.VertexAt(geom.Pt(1, 1))
	assert.True(t, ok)
	assert.Equal(t, 3, id)
	_, ok = m.VertexAt(geom.Pt(1, 1.0000001))
	assert.False(t, ok)

	// negative zero is the same position as zero
	require.NoError(t, m.AddFace(FaceRef{0, 1}, corners(math.Copysign(0, -1), 0, -1, 0, 0, -1)))
	assert.Equal(t, 6, m.NumVertices())
}

func TestNonManifoldEdge(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 0, 1)))
	require.NoError(t, m.AddFace(FaceRef{0, 1}, corners(1, 0, 0, 0, 0, -1)))
	err := m.AddFace(FaceRef{0, 2}, corners(0, 0, 1, 0, 1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonManifold))

	var nm *NonManifoldEdgeError
	require.True(t, errors.As(err, &nm))
	assert.Equal(t, geom.Pt(0, 0), nm.A)
	assert.Equal(t, geom.Pt(1, 0), nm.B)
	assert.Equal(t, FaceRef{0, 2}, nm.Face)
	assert.Contains(t, err.Error(), "(0, 0)-(1, 0)")

	// nothing of the rejected triangle was added
	assert.Equal(t, 4, m.NumVertices())
	assert.Equal(t, 2, m.NumTriangles())
	_, ok := m.VertexAt(geom.Pt(1, 1))
	assert.False(t, ok)
}

func TestSkippedTriangles(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 0, 1)))
	require.NoError(t, m.AddFace(FaceRef{0, 1}, corners(0, 1, 0, 0, 1, 0)))
	require.NoError(t, m.AddFace(FaceRef{0, 2}, corners(2, 2, 2, 2, 3, 3)))
	require.NoError(t, m.AddFace(FaceRef{0, 3}, corners(math.NaN(), 0, 5, 5, 6, 6)))
	require.NoError(t, m.AddFace(FaceRef{0, 4}, corners(0, 0, 1, 1)))
	assert.Equal(t, 1, m.NumTriangles())
	assert.Equal(t, 3, m.NumVertices())
	assert.Len(t, m.Warnings, 4)
	assert.Contains(t, m.Warnings[0], "object 0 face 1: duplicate triangle")
	assert.Contains(t, m.Warnings[1], "degenerate triangle")

	// a quad with two coincident corners keeps its valid half
	require.NoError(t, m.AddFace(FaceRef{0, 5}, corners(5, 5, 6, 5, 6, 6, 6, 6)))
	assert.Equal(t, 2, m.NumTriangles())
	assert.Len(t, m.Warnings, 5)
}

func TestEdgeHelpers(t *testing.T) {
	m := New()
	require.NoError(t, m.AddFace(FaceRef{0, 0}, corners(0, 0, 1, 0, 0, 1)))
	e0, e1 := m.Edge(0), m.Edge(1)
	assert.Equal(t, EdgeKey{0, 1}, e0.Key())
	assert.Equal(t, EdgeKey{1, 2}, KeyOf(2, 1))
	assert.Equal(t, 1, e0.Shared(e1))
	assert.Equal(t, 2, e1.Other(1))
	assert.True(t, e0.Has(0))
	assert.False(t, e0.Has(2))

	a, b := m.EdgePoints(2)
	assert.Equal(t, geom.Pt(0, 1), a)
	assert.Equal(t, geom.Pt(0, 0), b)

	assert.True(t, e0.Connect(1))
	assert.True(t, e0.Connect(2))
	assert.False(t, e0.Connect(1))
	assert.Equal(t, []int{1, 2}, e0.Connections())
	e0.Visited = true
	m.Vertex(0).Outline = 3
	m.ResetLinks()
	assert.Empty(t, e0.Connections())
	assert.False(t, e0.Visited)
	assert.False(t, m.Vertex(0).IsOutline())
}
