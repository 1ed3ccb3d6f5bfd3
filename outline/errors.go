// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import (
	"fmt"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/geom"
	"cogentcore.org/plush/mesh"
)

// ErrOpenBoundary is wrapped by [OpenBoundaryError].
var ErrOpenBoundary = errors.New("open boundary")

// BranchingVertexError is returned by [Extract] when more than two
// boundary edges meet at one vertex, so the boundary does not form
// simple loops there. It wraps [mesh.ErrNonManifold].
type BranchingVertexError struct {
	At geom.Point
}

func (e *BranchingVertexError) Error() string {
	return fmt.Sprintf("outline: more than two boundary edges meet at %v", e.At)
}

func (e *BranchingVertexError) Unwrap() error {
	return mesh.ErrNonManifold
}

// OpenBoundaryError is returned by [Extract] when a boundary edge is not
// connected to another boundary edge at both of its ends.
type OpenBoundaryError struct {
	A, B geom.Point
}

func (e *OpenBoundaryError) Error() string {
	return fmt.Sprintf("outline: boundary edge %v-%v does not close into a loop", e.A, e.B)
}

func (e *OpenBoundaryError) Unwrap() error {
	return ErrOpenBoundary
}

// WalkError is returned by [Extract] when following the boundary links
// from an edge does not lead back to it. It wraps [mesh.ErrNonManifold].
type WalkError struct {
	A, B geom.Point
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("outline: boundary walk from edge %v-%v does not return to its start", e.A, e.B)
}

func (e *WalkError) Unwrap() error {
	return mesh.ErrNonManifold
}
