// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"cogentcore.org/plush/base/errors"
	"cogentcore.org/plush/geom"
	"cogentcore.org/plush/outline"
	"cogentcore.org/plush/scene"
	"github.com/jinzhu/copier"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Formats are the supported output formats.
var Formats = []string{"svg", "dxf", "geojson"}

// Config has the settings of an export.
type Config struct {
	// Width is the width of the canvas that the unit UV square is mapped onto.
	Width float64 `toml:"width"`

	// Height is the height of the canvas.
	Height float64 `toml:"height"`

	// Tolerance is the epsilon of the inside test used to find the
	// triangle that the metadata of an outline comes from.
	Tolerance float64 `toml:"tolerance"`

	// NameFormat is the format of the outline names, given their index.
	NameFormat string `toml:"name_format"`

	// Format is the output format, one of [Formats]. If it is empty,
	// the format is chosen from the extension of the output file.
	Format string `toml:"format,omitempty"`

	// Objects are the names of the objects to export. All objects are
	// exported if it is empty.
	Objects []string `toml:"objects,omitempty"`

	// Colors are fill colors as #RRGGBB by material name, used in place
	// of the colors of the materials.
	Colors map[string]string `toml:"colors,omitempty"`

	// Labels is whether the SVG output has the title of each outline
	// at the center of its bounding box.
	Labels bool `toml:"labels"`
}

// Defaults sets the default values of the config.
func (c *Config) Defaults() {
	c.Width = 1024
	c.Height = 1024
	c.Tolerance = float64(geom.DefaultTolerance)
	c.NameFormat = "Outline%03d"
	c.Labels = true
}

// NewConfig returns a new config with default values.
func NewConfig() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Open reads the config from the given TOML file, on top of the current
// values. Unknown keys are errors.
func (c *Config) Open(fname string) error {
	path, err := homedir.Expand(fname)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("export.Config.Open: %s: %w", fname, err)
	}
	return nil
}

// Save writes the config to the given TOML file.
func (c *Config) Save(fname string) error {
	path, err := homedir.Expand(fname)
	if err != nil {
		return err
	}
	data, err := c.TOML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}

// TOML returns the config encoded as TOML.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	cl := &Config{}
	errors.Log(copier.CopyWithOption(cl, c, copier.Option{DeepCopy: true}))
	return cl
}

// Validate returns an error listing every invalid setting, or nil.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Width > 0) || !(c.Height > 0) {
		errs = append(errs, fmt.Errorf("canvas size %gx%g must be positive", c.Width, c.Height))
	}
	if !(c.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("tolerance %g must be positive", c.Tolerance))
	}
	if name := fmt.Sprintf(c.NameFormat, 0); c.NameFormat == "" || strings.Contains(name, "%!") {
		errs = append(errs, fmt.Errorf("name format %q must format one integer", c.NameFormat))
	}
	if c.Format != "" && !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("format %q is not one of %s", c.Format, strings.Join(Formats, ", ")))
	}
	if _, err := c.colors(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("export: invalid config: %w", errors.Join(errs...))
}

// colors returns the parsed color overrides.
func (c *Config) colors() (map[string]colorful.Color, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}
	cs := make(map[string]colorful.Color, len(c.Colors))
	for _, name := range slices.Sorted(maps.Keys(c.Colors)) {
		hex := c.Colors[name]
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %q of material %q: %w", hex, name, err)
		}
		cs[name] = col
	}
	return cs, nil
}

// keep returns the object filter of [meshio.Source.Feed].
func (c *Config) keep() func(object string) bool {
	if len(c.Objects) == 0 {
		return nil
	}
	return func(object string) bool {
		return slices.Contains(c.Objects, object)
	}
}

// OutlineOptions returns the options of [outline.Build].
func (c *Config) OutlineOptions() outline.Options {
	return outline.Options{Tolerance: geom.Tolerance(c.Tolerance), NameFormat: c.NameFormat}
}

// Canvas returns the canvas of the scene.
func (c *Config) Canvas() scene.Canvas {
	return scene.Canvas{Width: c.Width, Height: c.Height}
}
