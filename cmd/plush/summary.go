// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/plush/export"
	"github.com/muesli/termenv"
)

// printSummary prints one line per outline of the result, starting with
// a swatch of its fill color when the output supports colors.
func printSummary(w io.Writer, res *export.Result) {
	out := termenv.NewOutput(w)
	for _, l := range res.Scene.Layers {
		swatch := out.String("  ").Background(out.Color(l.FillHex())).String()
		fmt.Fprintf(out, "%s %-12s %-20s %s %3d points\n", swatch, l.Name, l.Title, l.FillHex(), len(l.Points))
	}
	if n := len(res.Warnings); n > 0 {
		fmt.Fprintln(out, out.String(fmt.Sprintf("%d faces skipped", n)).Foreground(out.Color("3")))
	}
}
