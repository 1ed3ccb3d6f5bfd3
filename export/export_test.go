// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/mesh"
	"cogentcore.org/plush/meshio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ringFile  = filepath.Join("testdata", "ring.yaml")
	plushFile = filepath.Join("testdata", "plush.obj")
)

// copyFiles copies the given testdata files into a new temporary directory
// and returns their new paths.
func copyFiles(t *testing.T, fnames ...string) []string {
	dir := t.TempDir()
	var paths []string
	for _, fname := range fnames {
		data, err := os.ReadFile(fname)
		require.NoError(t, err)
		path := filepath.Join(dir, filepath.Base(fname))
		require.NoError(t, os.WriteFile(path, data, 0666))
		paths = append(paths, path)
	}
	return paths
}

func titles(res *Result) []string {
	var ts []string
	for _, l := range res.Scene.Layers {
		ts = append(ts, l.Title)
	}
	return ts
}

func TestRun(t *testing.T) {
	src := errors.Must1(meshio.Open(ringFile))
	res, err := Run(NewConfig(), src)
	require.NoError(t, err)
	require.Len(t, res.Outlines, 2)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, []string{ringFile}, res.Files)

	outer, hole := res.Outlines[0], res.Outlines[1]
	assert.Equal(t, "Outline000", outer.Name)
	assert.Equal(t, "Ring", outer.Label)
	assert.Equal(t, "Outline001", hole.Name)
	assert.Empty(t, hole.Label)

	assert.Equal(t, []string{"Outline001", "Ring"}, titles(res))
	assert.Equal(t, "#FFFFFF", res.Scene.Layers[0].FillHex())
	assert.Equal(t, "#3366CC", res.Scene.Layers[1].FillHex())
	assert.True(t, res.Scene.Labels)
}

func TestRunObjects(t *testing.T) {
	src, err := meshio.Open(plushFile)
	require.NoError(t, err)

	cfg := NewConfig()
	cfg.Objects = []string{"Ear"}
	res, err := Run(cfg, src)
	require.NoError(t, err)
	require.Len(t, res.Outlines, 1)
	assert.Equal(t, "Outline000", res.Outlines[0].Name)
	assert.Equal(t, "Ear", res.Outlines[0].Label)
	assert.Equal(t, "#0000FF", res.Scene.Layers[0].FillHex())

	cfg.Objects = []string{"Ear", "Tail"}
	_, err = Run(cfg, src)
	assert.EqualError(t, err, `export: object "Tail" not found, have Body, Ear`)
}

func TestRunConfig(t *testing.T) {
	src, err := meshio.Open(plushFile)
	require.NoError(t, err)

	cfg := NewConfig()
	require.NoError(t, cfg.Open(filepath.Join("testdata", "plush.toml")))
	cfg.NameFormat = "Piece%d"
	res, err := Run(cfg, src)
	require.NoError(t, err)
	require.Len(t, res.Outlines, 1)
	l := res.Scene.Layers[0]
	assert.Equal(t, "Piece0", l.Name)
	assert.Equal(t, "Body", l.Title)
	assert.Equal(t, "#00FF00", l.FillHex())
	assert.False(t, res.Scene.Labels)
	assert.Equal(t, 2048.0, res.Scene.Width)
	// the center of the body island is at (0.25, 0.25)
	assert.InDelta(t, 512, l.LabelAt.X, 1e-9)
	assert.InDelta(t, 768, l.LabelAt.Y, 1e-9)

	cfg.Width = -1
	_, err = Run(cfg, src)
	assert.ErrorContains(t, err, "canvas size")
}

func TestFormatOf(t *testing.T) {
	cfg := NewConfig()
	tests := []struct {
		fname  string
		format string
	}{
		{"out.svg", "svg"},
		{"out.SVG", "svg"},
		{"out", "svg"},
		{"out.dxf", "dxf"},
		{"out.geojson", "geojson"},
		{"out.json", "geojson"},
	}
	for _, test := range tests {
		format, err := FormatOf(cfg, test.fname)
		require.NoError(t, err, test.fname)
		assert.Equal(t, test.format, format, test.fname)
	}
	_, err := FormatOf(cfg, "out.png")
	assert.EqualError(t, err, `export: unknown output extension ".png" of out.png`)

	cfg.Format = "dxf"
	format, err := FormatOf(cfg, "out.png")
	require.NoError(t, err)
	assert.Equal(t, "dxf", format)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "plush.svg", OutputName("plush.obj", "svg"))
	assert.Equal(t, filepath.Join("a", "b.c", "ring.geojson"), OutputName(filepath.Join("a", "b.c", "ring.yaml"), "geojson"))
	assert.Equal(t, "ring.dxf", OutputName("ring", "dxf"))
}

func TestFile(t *testing.T) {
	in := copyFiles(t, ringFile)[0]
	dir := filepath.Dir(in)

	res, err := File(NewConfig(), in, "")
	require.NoError(t, err)
	assert.Len(t, res.Outlines, 2)
	data, err := os.ReadFile(filepath.Join(dir, "ring.svg"))
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `inkscape:label="Ring"`)
	assert.Contains(t, s, `fill="#3366CC"`)
	assert.Contains(t, s, ">Ring</text>")

	for _, name := range []string{"ring.dxf", "ring.geojson"} {
		out := filepath.Join(dir, name)
		_, err := File(NewConfig(), in, out)
		require.NoError(t, err)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}
	data, err = os.ReadFile(filepath.Join(dir, "ring.geojson"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"FeatureCollection"`)

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".plush-"), e.Name())
	}
}

func TestFileIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.svg"), filepath.Join(dir, "b.svg")
	_, err := File(NewConfig(), plushFile, a)
	require.NoError(t, err)
	_, err = File(NewConfig(), plushFile, b)
	require.NoError(t, err)
	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, string(da), string(db))
}

const nonManifold = `objects:
  - name: Fin
    faces:
      - uv: [[0, 0], [1, 0], [0.5, 0.5]]
      - uv: [[0, 0], [1, 0], [0.5, -0.5]]
      - uv: [[0, 0], [1, 0], [0.5, 0.9]]
`

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fin.yaml")
	out := filepath.Join(dir, "fin.svg")
	require.NoError(t, os.WriteFile(in, []byte(nonManifold), 0666))
	_, err := File(NewConfig(), in, out)
	require.Error(t, err)
	assert.ErrorIs(t, err, mesh.ErrNonManifold)
	var nme *mesh.NonManifoldEdgeError
	require.ErrorAs(t, err, &nme)
	assert.Equal(t, 2, nme.Face.Index)
	assert.NoFileExists(t, out)

	_, err = File(NewConfig(), filepath.Join(dir, "missing.obj"), out)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = File(NewConfig(), in, filepath.Join(dir, "fin.png"))
	assert.ErrorContains(t, err, "unknown output extension")
}

func TestBatch(t *testing.T) {
	inputs := copyFiles(t, ringFile, plushFile, filepath.Join("testdata", "plush.mtl"))[:2]
	outDir := t.TempDir()
	cfg := NewConfig()
	cfg.Format = "geojson"
	results, err := Batch(context.Background(), cfg, inputs, outDir, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"Outline001", "Ring"}, titles(results[0]))
	assert.Equal(t, []string{"Body", "Ear"}, titles(results[1]))
	assert.FileExists(t, filepath.Join(outDir, "ring.geojson"))
	assert.FileExists(t, filepath.Join(outDir, "plush.geojson"))
	// the config is not changed
	assert.Equal(t, "geojson", cfg.Format)
}

func TestBatchErrors(t *testing.T) {
	outDir := t.TempDir()
	_, err := Batch(context.Background(), NewConfig(), []string{ringFile, filepath.Join("other", "ring.obj")}, outDir, 0)
	assert.ErrorContains(t, err, "would both be exported to")

	_, err = Batch(context.Background(), NewConfig(), []string{ringFile, filepath.Join(outDir, "missing.obj")}, outDir, 1)
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Batch(ctx, NewConfig(), []string{ringFile}, outDir, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatch(t *testing.T) {
	in := copyFiles(t, ringFile)[0]
	out := filepath.Join(filepath.Dir(in), "ring.svg")

	results := make(chan *Result, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, NewConfig(), in, out, func(res *Result) {
			select {
			case results <- res:
			default:
			}
		})
	}()

	waitFor := func(fill string) {
		timeout := time.After(10 * time.Second)
		for {
			select {
			case res := <-results:
				if len(res.Scene.Layers) == 2 && res.Scene.Layers[1].FillHex() == fill {
					return
				}
			case <-timeout:
				t.Fatalf("no export with fill %s", fill)
			}
		}
	}
	waitFor("#3366CC")

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	data = []byte(strings.Replace(string(data), "#3366cc", "#ff8000", 1))
	require.NoError(t, os.WriteFile(in, data, 0666))
	waitFor("#FF8000")

	assert.Eventually(t, func() bool {
		svg, err := os.ReadFile(out)
		return err == nil && strings.Contains(string(svg), `fill="#FF8000"`)
	}, 10*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func ExampleRun() {
	src, err := meshio.Open(filepath.Join("testdata", "ring.yaml"))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := Run(NewConfig(), src)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, l := range res.Scene.Layers {
		fmt.Println(l.Name, l.Title, l.FillHex(), len(l.Points))
	}
	// Output:
	// Outline001 Outline001 #FFFFFF 4
	// Outline000 Ring #3366CC 4
}
