// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/xml"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// svgNamespaces are the attributes of the root element in addition to
// the size and the svg and xlink namespaces.
var svgNamespaces = []string{
	`version="1.1"`,
	`xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`,
	`xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"`,
}

// WriteSVG writes the scene as an SVG document. Each layer is an
// inkscape layer holding a group with the outline path, stroked black
// and filled with the layer color, and the title at the label position.
func (sc *Scene) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = 0
	canvas.Start(sc.Width, sc.Height, svgNamespaces...)
	canvas.Decimals = 6
	for i := range sc.Layers {
		l := &sc.Layers[i]
		canvas.Group(`inkscape:groupmode="layer"`, attr("id", l.Name), attr("inkscape:label", l.Title))
		canvas.Group()
		canvas.Path(l.PathData(), `stroke="black"`, attr("fill", l.FillHex()))
		canvas.Gend()
		if sc.Labels {
			canvas.Text(l.LabelAt.X, l.LabelAt.Y, l.Title, `fill="black"`, `text-anchor="middle"`)
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// attr returns an XML attribute with the given name and escaped value.
func attr(name, value string) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(`="`)
	xml.EscapeText(&b, []byte(value))
	b.WriteByte('"')
	return b.String()
}

// errWriter keeps the first write error, since the svg writer
// does not return them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
