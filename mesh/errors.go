// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/geom"
)

// ErrNonManifold is the error that all errors reporting geometry that
// cannot be turned into outlines wrap.
var ErrNonManifold = errors.New("non-manifold geometry")

// NonManifoldEdgeError is returned by [Mesh.AddFace] when a triangle would
// become the third one sharing an edge.
type NonManifoldEdgeError struct {
	// A and B are the end points of the edge.
	A, B geom.Point

	// Face is the face whose triangle was rejected.
	Face FaceRef
}

func (e *NonManifoldEdgeError) Error() string {
	return fmt.Sprintf("mesh: edge %v-%v of %v is already shared by two triangles", e.A, e.B, e.Face)
}

func (e *NonManifoldEdgeError) Unwrap() error {
	return ErrNonManifold
}
