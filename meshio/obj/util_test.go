// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package obj

import "os"

func writeFile(fname, content string) error {
	return os.WriteFile(fname, []byte(content), 0666)
}
