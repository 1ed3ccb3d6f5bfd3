// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds the vertex, edge and triangle graph of a UV map.
// Vertices are unique UV positions, edges are unique vertex pairs, and
// each edge is used by at most two triangles. All elements live in
// insertion-ordered tables and refer to each other by integer id, so
// the graph and everything derived from it is deterministic.
package mesh

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/plush/geom"
)

// Mesh is the triangle graph built from the faces of a UV map.
// Use [New] or the zero value, then [Mesh.AddFace] for every face.
type Mesh struct {
	vertices  registry[geom.Point, Vertex]
	edges     registry[EdgeKey, Edge]
	triangles registry[[3]int, Triangle]

	// Warnings are the messages about faces that were skipped.
	Warnings []string
}

// New returns a new empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// NumVertices returns the number of unique vertices.
func (m *Mesh) NumVertices() int { return m.vertices.len() }

// NumEdges returns the number of unique edges.
func (m *Mesh) NumEdges() int { return m.edges.len() }

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int { return m.triangles.len() }

// Vertex returns the vertex with the given id.
func (m *Mesh) Vertex(id int) *Vertex { return m.vertices.at(id) }

// Edge returns the edge with the given id.
func (m *Mesh) Edge(id int) *Edge { return m.edges.at(id) }

// Triangle returns the triangle with the given id.
func (m *Mesh) Triangle(id int) *Triangle { return m.triangles.at(id) }

// VertexAt returns the id of the vertex at exactly the given position.
func (m *Mesh) VertexAt(p geom.Point) (int, bool) {
	return m.vertices.lookup(p)
}

// EdgeBetween returns the id of the edge between vertices a and b.
func (m *Mesh) EdgeBetween(a, b int) (int, bool) {
	return m.edges.lookup(KeyOf(a, b))
}

// EdgePoints returns the positions of the two vertices of the given edge.
func (m *Mesh) EdgePoints(id int) (geom.Point, geom.Point) {
	e := m.Edge(id)
	return m.Vertex(e.V[0]).Pos, m.Vertex(e.V[1]).Pos
}

// AddFace adds the face with the given corners. A triangle is added as
// is, a quad is split into the triangles (0, 1, 2) and (2, 3, 0), and a
// larger polygon is fanned around its first corner. Degenerate and
// duplicate triangles are skipped with a warning. It returns a
// [*NonManifoldEdgeError] if a triangle would become the third one on
// an edge, in which case that triangle is not added.
func (m *Mesh) AddFace(face FaceRef, corners []Corner) error {
	n := len(corners)
	switch {
	case n < 3:
		m.warn(face, fmt.Sprintf("face has %d corners", n))
		return nil
	case n == 4:
		if err := m.addTriangle(face, corners[0], corners[1], corners[2]); err != nil {
			return err
		}
		return m.addTriangle(face, corners[2], corners[3], corners[0])
	}
	for i := 1; i < n-1; i++ {
		if err := m.addTriangle(face, corners[0], corners[i], corners[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mesh) addTriangle(face FaceRef, corners ...Corner) error {
	var pos [3]geom.Point
	for i, c := range corners {
		if !c.UV.IsFinite() {
			m.warn(face, fmt.Sprintf("invalid UV coordinate %v", c.UV))
			return nil
		}
		pos[i] = c.UV.Canonical()
	}
	if pos[0] == pos[1] || pos[1] == pos[2] || pos[2] == pos[0] {
		m.warn(face, fmt.Sprintf("degenerate triangle at %v %v %v", pos[0], pos[1], pos[2]))
		return nil
	}

	// validate against existing vertices and edges before changing anything
	var ids [3]int
	for i, p := range pos {
		id, ok := m.VertexAt(p)
		if !ok {
			id = None
		}
		ids[i] = id
	}
	if ids[0] != None && ids[1] != None && ids[2] != None {
		if _, dup := m.triangles.lookup(sortedIDs(ids)); dup {
			m.warn(face, fmt.Sprintf("duplicate triangle at %v %v %v", pos[0], pos[1], pos[2]))
			return nil
		}
	}
	for i := range 3 {
		a, b := ids[i], ids[(i+1)%3]
		if a == None || b == None {
			continue
		}
		if eid, ok := m.EdgeBetween(a, b); ok && m.Edge(eid).numTriangles == 2 {
			return &NonManifoldEdgeError{A: pos[i], B: pos[(i+1)%3], Face: face}
		}
	}

	for i, p := range pos {
		if ids[i] == None {
			ids[i] = m.vertices.add(p, Vertex{Pos: p, Source: VertexRef{face.Object, corners[i].Vertex}, Outline: None})
		}
	}
	tri := Triangle{V: ids, Face: face}
	tid := m.triangles.len()
	for i := range 3 {
		a, b := ids[i], ids[(i+1)%3]
		eid, ok := m.EdgeBetween(a, b)
		if !ok {
			eid = m.edges.add(KeyOf(a, b), newEdge(a, b))
		}
		e := m.Edge(eid)
		e.triangles[e.numTriangles] = tid
		e.numTriangles++
		tri.E[i] = eid
	}
	m.triangles.add(sortedIDs(ids), tri)
	return nil
}

// ResetLinks clears the boundary links of all edges and the outline
// membership of all vertices, so that boundaries can be extracted again.
func (m *Mesh) ResetLinks() {
	for i := range m.NumEdges() {
		m.Edge(i).resetLinks()
	}
	for i := range m.NumVertices() {
		m.Vertex(i).Outline = None
	}
}

func (m *Mesh) warn(face FaceRef, msg string) {
	slog.Warn("mesh: skipping triangle", "face", face.Index, "object", face.Object, "reason", msg)
	m.Warnings = append(m.Warnings, fmt.Sprintf("%v: %s", face, msg))
}

func sortedIDs(ids [3]int) [3]int {
	slices.Sort(ids[:])
	return ids
}
