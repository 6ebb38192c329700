//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package libfetch downloads a fixed table of front-end library files
// into a local directory.
//
// Each task is fetched with a single HTTP GET and written atomically to
// its target path. Tasks run one after the other and a failing task never
// stops the batch: every task gets exactly one outcome line and the batch
// always ends with a completion banner.
package libfetch
