// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import (
	"cogentcore.org/plush/mesh"
)

// Extract finds the closed boundary loops of m and returns one [Outline]
// per loop, in the order their first edge was created. Each boundary
// edge is linked to the boundary edges it shares a vertex with, and the
// links are walked into loops, setting the Prev and Next edge of every
// boundary edge. It returns an error if the boundary branches at a vertex
// or does not close.
func Extract(m *mesh.Mesh) ([]*Outline, error) {
	m.ResetLinks()
	boundary, err := link(m)
	if err != nil {
		return nil, err
	}
	if err := checkClosed(m, boundary); err != nil {
		return nil, err
	}
	return walk(m, boundary)
}

// link connects every pair of boundary edges that share a vertex and
// returns the ids of all boundary edges in creation order.
func link(m *mesh.Mesh) ([]int, error) {
	var boundary []int
	incident := make([][]int, m.NumVertices())
	for id := range m.NumEdges() {
		e := m.Edge(id)
		if !e.IsBoundary() {
			continue
		}
		boundary = append(boundary, id)
		for _, v := range e.V {
			switch len(incident[v]) {
			case 0:
			case 1:
				other := incident[v][0]
				if !e.Connect(other) || !m.Edge(other).Connect(id) {
					return nil, &BranchingVertexError{At: m.Vertex(v).Pos}
				}
			default:
				return nil, &BranchingVertexError{At: m.Vertex(v).Pos}
			}
			incident[v] = append(incident[v], id)
		}
	}
	return boundary, nil
}

func checkClosed(m *mesh.Mesh, boundary []int) error {
	for _, id := range boundary {
		if len(m.Edge(id).Connections()) < 2 {
			a, b := m.EdgePoints(id)
			return &OpenBoundaryError{A: a, B: b}
		}
	}
	return nil
}

func walk(m *mesh.Mesh, boundary []int) ([]*Outline, error) {
	var outlines []*Outline
	for _, start := range boundary {
		if m.Edge(start).Visited {
			continue
		}
		ol := newOutline(len(outlines), start)
		prev, cur := mesh.None, start
		for {
			e := m.Edge(cur)
			e.Visited = true
			ol.Edges = append(ol.Edges, cur)
			next := mesh.None
			for _, c := range e.Connections() {
				if c != prev {
					next = c
				}
			}
			if next == mesh.None || len(ol.Edges) > len(boundary) {
				a, b := m.EdgePoints(start)
				return nil, &WalkError{A: a, B: b}
			}
			e.Next = next
			m.Edge(next).Prev = cur
			if next == start {
				break
			}
			if m.Edge(next).Visited {
				a, b := m.EdgePoints(start)
				return nil, &WalkError{A: a, B: b}
			}
			prev, cur = cur, next
		}
		outlines = append(outlines, ol)
	}
	return outlines, nil
}
