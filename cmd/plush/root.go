// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"maps"

	"cogentcore.org/plush/base/logx"
	"cogentcore.org/plush/export"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// options are the values of the flags shared by all commands.
type options struct {
	config string

	veryVerbose bool
	verbose     bool
	quiet       bool

	// flags holds the values of the config flags, which are only applied
	// to the config when they are set.
	flags    export.Config
	noLabels bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	o.flags.Defaults()
	root := &cobra.Command{
		Use:           "plush",
		Short:         "Export the UV islands of a mesh as outline drawings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel.Set(logx.LevelFromFlags(o.veryVerbose, o.verbose, o.quiet))
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&o.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")
	pf.StringVarP(&o.config, "config", "c", "", "TOML config file")
	pf.Float64Var(&o.flags.Width, "width", o.flags.Width, "canvas width")
	pf.Float64Var(&o.flags.Height, "height", o.flags.Height, "canvas height")
	pf.Float64Var(&o.flags.Tolerance, "tolerance", o.flags.Tolerance, "epsilon of the inside test")
	pf.StringVar(&o.flags.NameFormat, "name-format", o.flags.NameFormat, "format of the outline names")
	pf.StringVarP(&o.flags.Format, "format", "f", "", "output format: svg, dxf or geojson (default from the output extension)")
	pf.StringArrayVar(&o.flags.Objects, "object", nil, "only export the named object (repeatable)")
	pf.StringToStringVar(&o.flags.Colors, "color", nil, "fill color of a material, as MATERIAL=#RRGGBB")
	pf.BoolVar(&o.noLabels, "no-labels", false, "do not write outline titles in SVG output")

	root.AddCommand(newExportCmd(o), newBatchCmd(o), newWatchCmd(o), newConfigCmd(o))
	return root
}

// load returns the config from the config file, if any, with the flags
// that have been set applied on top of it.
func (o *options) load(cmd *cobra.Command) (*export.Config, error) {
	cfg := export.NewConfig()
	if o.config != "" {
		if err := cfg.Open(o.config); err != nil {
			return nil, err
		}
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = o.flags.Width
		case "height":
			cfg.Height = o.flags.Height
		case "tolerance":
			cfg.Tolerance = o.flags.Tolerance
		case "name-format":
			cfg.NameFormat = o.flags.NameFormat
		case "format":
			cfg.Format = o.flags.Format
		case "object":
			cfg.Objects = o.flags.Objects
		case "color":
			if cfg.Colors == nil {
				cfg.Colors = map[string]string{}
			}
			maps.Copy(cfg.Colors, o.flags.Colors)
		case "no-labels":
			cfg.Labels = !o.noLabels
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
