// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package outline

import (
	"cogentcore.org/plush/mesh"
	"github.com/lucasb-eyer/go-colorful"
)

// Host answers metadata queries about the source of a mesh.
type Host interface {
	// MaterialColor returns the diffuse color of the material of the given
	// face, and false if the face has no material.
	MaterialColor(face mesh.FaceRef) (colorful.Color, bool)

	// GroupName returns the name of the first group the given source
	// vertex is assigned to, and false if it has none.
	GroupName(v mesh.VertexRef) (string, bool)
}

// White is the fill color of outlines without a material.
var White = colorful.Color{R: 1, G: 1, B: 1}
