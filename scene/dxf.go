// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strings"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
)

// SaveDXF saves the scene as a DXF drawing in the given file, for
// plotters and cutters. Each layer becomes a DXF layer with a closed
// polyline in canvas units, with Y growing up as usual in DXF. Layer
// names must be unique, and the file is not written if they are not.
func (sc *Scene) SaveDXF(fname string) error {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	for i := range sc.Layers {
		l := &sc.Layers[i]
		name := l.DXFLayerName()
		if _, err := d.AddLayer(name, color.Red, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("scene.SaveDXF: %w", err)
		}
		if err := d.ChangeLayer(name); err != nil {
			return fmt.Errorf("scene.SaveDXF: %w", err)
		}
		n := len(l.Points)
		lwp := entity.NewLwPolyline(n + 1)
		for j, p := range l.Points {
			lwp.Vertices[j] = []float64{p.X, sc.Height - p.Y}
		}
		lwp.Vertices[n] = lwp.Vertices[0]
		d.AddEntity(lwp)
	}
	return d.SaveAs(fname)
}

// dxfNameReplacer replaces the characters that are not allowed in DXF
// layer names.
var dxfNameReplacer = strings.NewReplacer(
	"<", "_", ">", "_", "/", "_", `\`, "_", `"`, "_", ":", "_",
	";", "_", "?", "_", "*", "_", "|", "_", "=", "_", "`", "_",
)

// DXFLayerName returns the name of the DXF layer for the layer: its
// name, followed by its title if that differs.
func (l *Layer) DXFLayerName() string {
	if l.Title == l.Name {
		return l.Name
	}
	return l.Name + "_" + dxfNameReplacer.Replace(l.Title)
}
