// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/plush/export"
	"github.com/spf13/cobra"
)

func newExportCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export INPUT",
		Short: "Export the outlines of one mesh file",
		Long: `Export the outlines of one mesh file (.obj, .yaml, .yml or .json)
as SVG, DXF or GeoJSON. The output defaults to the input file with the
extension of the format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			res, err := export.File(cfg, args[0], output)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func newBatchCmd(o *options) *cobra.Command {
	var outDir string
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch INPUT...",
		Short: "Export the outlines of several mesh files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return err
			}
			results, err := export.Batch(cmd.Context(), cfg, args, outDir, jobs)
			if err != nil {
				return err
			}
			for i, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", args[i])
				printSummary(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "directory of the output files")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of concurrent exports (default GOMAXPROCS)")
	return cmd
}

func newWatchCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch INPUT",
		Short: "Export a mesh file again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return export.Watch(ctx, cfg, args[0], output, func(res *export.Result) {
				printSummary(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func newConfigCmd(o *options) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			if save != "" {
				return cfg.Save(save)
			}
			data, err := cfg.TOML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&save, "save", "s", "", "save the config to this file instead of printing it")
	return cmd
}
