//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"github.com/tharvik/flock"
)

// lockDirectory takes an exclusive lock on dir itself, failing immediately
// with ErrDirectoryLocked if another run holds it. No lock file is created.
func lockDirectory(dir string) (func(), error) {
	fileLock := flock.New(dir)

	locked, err := fileLock.TryLock()
	if err != nil {
		_ = fileLock.Close()
		return nil, &IOError{Op: "locking " + dir, Path: dir, Err: err}
	}
	if !locked {
		_ = fileLock.Close()
		return nil, ErrDirectoryLocked
	}
	return func() { _ = fileLock.Close() }, nil
}
