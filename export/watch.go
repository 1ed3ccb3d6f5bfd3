// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/plush/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch exports input to output, and exports it again whenever the
// input or one of the files read with it, such as a material library,
// is written. Export errors are logged and watching goes on. It returns
// when ctx is done, or with an error if the files cannot be watched.
// If exported is not nil, it is called after every successful export.
func Watch(ctx context.Context, cfg *Config, input, output string, exported func(*Result)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	files := map[string]bool{}
	dirs := map[string]bool{}
	watch := func(fname string) error {
		abs, err := filepath.Abs(fname)
		if err != nil {
			return err
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			return nil
		}
		// directories are watched since editors often replace files
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
		return nil
	}
	if err := watch(input); err != nil {
		return err
	}

	run := func() {
		res := errors.Log1(File(cfg, input, output))
		if res == nil {
			return
		}
		for _, f := range res.Files {
			errors.Log(watch(f))
		}
		if exported != nil {
			exported(res)
		}
	}
	run()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !files[filepath.Clean(event.Name)] {
				continue
			}
			slog.Info("changed", "file", event.Name)
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
