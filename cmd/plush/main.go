// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command plush exports the UV islands of a mesh as outline drawings
// for cutting plush and fabric patterns.
package main

import (
	"os"

	"cogentcore.org/plush/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
