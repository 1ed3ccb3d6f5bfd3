// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/plush/geom"
)

// None is the id used for a missing vertex, edge or triangle.
const None = -1

// VertexRef identifies a vertex of the source mesh that a [Vertex]
// was created from: the index of the object and of the vertex within it.
// Index is [None] when the source has no vertex identity.
type VertexRef struct {
	Object int
	Index  int
}

// FaceRef identifies a face of the source mesh that a [Triangle]
// was created from: the index of the object and of the face within it.
type FaceRef struct {
	Object int
	Index  int
}

func (f FaceRef) String() string {
	return fmt.Sprintf("object %d face %d", f.Object, f.Index)
}

// Corner is one corner of an input face: its UV position and the
// index of the source vertex it belongs to within the face's object.
type Corner struct {
	UV     geom.Point
	Vertex int
}

// Vertex is a unique UV position in the mesh.
type Vertex struct {
	// Pos is the UV position, which identifies the vertex.
	Pos geom.Point

	// Source is the source vertex of the first corner found at Pos.
	Source VertexRef

	// Outline is the index of the outline whose boundary passes through
	// this vertex, or [None].
	Outline int
}

// IsOutline returns whether the vertex lies on an outline boundary.
func (v *Vertex) IsOutline() bool {
	return v.Outline != None
}

// EdgeKey is the canonical key of an edge: the ids of its two
// vertices, smaller first.
type EdgeKey struct {
	Lo, Hi int
}

// KeyOf returns the [EdgeKey] for the edge between vertices a and b,
// in either order.
func KeyOf(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{a, b}
}

// Edge is an undirected edge between two vertices with the triangles
// that use it, and the links used to walk it as part of a boundary loop.
type Edge struct {
	// V are the vertex ids in the order of the triangle that created the edge.
	V [2]int

	// Prev and Next are the neighboring edges in a boundary loop, or [None].
	Prev, Next int

	// Visited is set once a boundary walk has reached the edge.
	Visited bool

	triangles    [2]int
	numTriangles int
	conns        [2]int
	numConns     int
}

func newEdge(a, b int) Edge {
	return Edge{V: [2]int{a, b}, Prev: None, Next: None, triangles: [2]int{None, None}, conns: [2]int{None, None}}
}

// Key returns the canonical key of the edge.
func (e *Edge) Key() EdgeKey {
	return KeyOf(e.V[0], e.V[1])
}

// Triangles returns the ids of the triangles using the edge, in the
// order they were added.
func (e *Edge) Triangles() []int {
	return e.triangles[:e.numTriangles]
}

// IsBoundary returns whether fewer than two triangles use the edge.
func (e *Edge) IsBoundary() bool {
	return e.numTriangles < 2
}

// Connections returns the ids of the boundary edges linked to this one
// through a shared vertex, in the order they were linked.
func (e *Edge) Connections() []int {
	return e.conns[:e.numConns]
}

// Connect links the boundary edge with the given id to this edge.
// It returns false if the edge already has two connections.
func (e *Edge) Connect(id int) bool {
	if e.numConns == 2 {
		return false
	}
	e.conns[e.numConns] = id
	e.numConns++
	return true
}

// Has returns whether v is one of the edge's vertices.
func (e *Edge) Has(v int) bool {
	return e.V[0] == v || e.V[1] == v
}

// Other returns the vertex of the edge that is not v.
func (e *Edge) Other(v int) int {
	if e.V[0] == v {
		return e.V[1]
	}
	return e.V[0]
}

// Shared returns the vertex that the edge shares with o, or [None].
func (e *Edge) Shared(o *Edge) int {
	switch {
	case o.Has(e.V[0]):
		return e.V[0]
	case o.Has(e.V[1]):
		return e.V[1]
	}
	return None
}

func (e *Edge) resetLinks() {
	e.Prev, e.Next = None, None
	e.Visited = false
	e.conns = [2]int{None, None}
	e.numConns = 0
}

// Triangle is a mesh triangle with its vertex and edge ids.
type Triangle struct {
	V [3]int
	E [3]int

	// Face is the source face the triangle was created from.
	Face FaceRef
}
