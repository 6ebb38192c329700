//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultDir is the directory the libraries are written to
	DefaultDir = "libs"
	// DefaultTimeout is the per-request inactivity timeout
	DefaultTimeout = 30 * time.Second
)

// Task describes one file to fetch and the name it is stored under
type Task struct {
	Filename string
	URL      string
}

// Libraries is the table of third-party files fetched by fetch-libs.
var Libraries = []Task{
	{"dexie.min.js", "https://cdn.jsdelivr.net/npm/dexie@3.2.4/dist/dexie.min.js"},
	{"flatpickr.min.js", "https://cdn.jsdelivr.net/npm/flatpickr@4.6.13/dist/flatpickr.min.js"},
	{"flatpickr.min.css", "https://cdn.jsdelivr.net/npm/flatpickr@4.6.13/dist/flatpickr.min.css"},
	{"sortable.min.js", "https://cdn.jsdelivr.net/npm/sortablejs@1.15.0/Sortable.min.js"},
	{"html2canvas.min.js", "https://cdn.jsdelivr.net/npm/html2canvas@1.4.1/dist/html2canvas.min.js"},
	{"jspdf.umd.min.js", "https://cdn.jsdelivr.net/npm/jspdf@2.5.1/dist/jspdf.umd.min.js"},
	{"browser-image-compression.js", "https://cdn.jsdelivr.net/npm/browser-image-compression@2.0.2/dist/browser-image-compression.js"},
}

// ErrInvalidTask is wrapped by every error returned from ValidateTasks
var ErrInvalidTask = errors.New("invalid task")

// ValidateTasks checks that every task has a URL and a unique filename
// that stays inside the destination directory.
func ValidateTasks(tasks []Task) error {
	seen := make(map[string]bool, len(tasks))
	for i, t := range tasks {
		if t.URL == "" {
			return fmt.Errorf("%w: task %d (%s) has no URL", ErrInvalidTask, i, t.Filename)
		}
		switch {
		case t.Filename == "", t.Filename == ".", t.Filename == "..":
			return fmt.Errorf("%w: task %d has invalid filename %q", ErrInvalidTask, i, t.Filename)
		case strings.ContainsAny(t.Filename, `/\`) || filepath.Base(t.Filename) != t.Filename:
			return fmt.Errorf("%w: filename %q must not contain path separators", ErrInvalidTask, t.Filename)
		}
		if seen[t.Filename] {
			return fmt.Errorf("%w: duplicate filename %q", ErrInvalidTask, t.Filename)
		}
		seen[t.Filename] = true
	}
	return nil
}

// Result is the outcome of a single task
type Result struct {
	Task Task
	// Size is the number of bytes written, 0 if the task failed
	Size int64
	Err  error
}

// OK returns true if the task succeeded
func (r Result) OK() bool {
	return r.Err == nil
}
