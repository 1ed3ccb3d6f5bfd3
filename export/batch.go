// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch exports each of the inputs into outDir, running at most jobs
// exports at a time, or GOMAXPROCS if jobs is not positive. Each output
// is named after its input with the extension of the format. Every
// export has its own mesh and config. The first error cancels the
// exports that have not started yet and is returned. The results are in
// the order of the inputs.
func Batch(ctx context.Context, cfg *Config, inputs []string, outDir string, jobs int) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format := cfg.Format
	if format == "" {
		format = "svg"
	}
	outputs := make([]string, len(inputs))
	seen := map[string]string{}
	for i, in := range inputs {
		out := filepath.Join(outDir, OutputName(filepath.Base(in), format))
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("export.Batch: %s and %s would both be exported to %s", prev, in, out)
		}
		seen[out] = in
		outputs[i] = out
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c := cfg.Clone()
			c.Format = format
			res, err := File(c, inputs[i], outputs[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
