//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Fetcher downloads a batch of tasks into a directory, reporting progress
// on its output.
type Fetcher struct {
	config Config
	logger *zap.Logger
	out    io.Writer
}

// Option customizes a Fetcher
type Option func(*Fetcher)

// WithLogger sets the logger used for diagnostic messages.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithOutput sets where the progress lines are printed.
func WithOutput(out io.Writer) Option {
	return func(f *Fetcher) {
		f.out = out
	}
}

// New returns a Fetcher using the default configuration.
func New(opts ...Option) *Fetcher {
	return NewWithConfig(GetDefaultConfig(), opts...)
}

// NewWithConfig returns a Fetcher using the given configuration.
// Progress goes to os.Stdout and logging is disabled unless overridden
// with the options.
func NewWithConfig(config Config, opts ...Option) *Fetcher {
	f := &Fetcher{
		config: config,
		logger: zap.NewNop(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// EnsureDirectory creates path and any missing parents. It fails if path
// exists but is not a directory, or if it can't be written to.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return &IOError{Op: "creating directory", Path: path, Err: err}
	}
	probe, err := os.CreateTemp(path, ".probe-*")
	if err != nil {
		return &IOError{Op: "checking directory is writable", Path: path, Err: err}
	}
	_ = probe.Close()
	_ = os.Remove(probe.Name())
	return nil
}

// Run fetches all the tasks into dir. The directory is created if needed
// and locked for the duration of the batch.
//
// An error is returned only if the batch could not start; in that case no
// task has been executed. Failures of single tasks are reported on the
// output and in the returned results.
func (f *Fetcher) Run(ctx context.Context, tasks []Task, dir string) ([]Result, error) {
	if err := ValidateTasks(tasks); err != nil {
		return nil, err
	}
	if err := EnsureDirectory(dir); err != nil {
		return nil, err
	}
	unlock, err := lockDirectory(dir)
	if err != nil {
		return nil, err
	}
	defer unlock()

	fmt.Fprint(f.out, "Fetching third-party libraries...\n\n")
	results := f.RunAll(ctx, tasks, dir)

	// Printed even if every task failed: it only means the batch is over.
	fmt.Fprintln(f.out, "All downloads complete!")

	ok := 0
	for _, r := range results {
		if r.OK() {
			ok++
		}
	}
	f.logger.Info("batch finished",
		zap.String("dir", dir),
		zap.Int("tasks", len(results)),
		zap.Int("succeeded", ok),
		zap.Int("failed", len(results)-ok))
	return results, nil
}

// RunAll fetches the tasks one after the other, in order. A failing task
// doesn't stop the others: exactly one result per task is returned.
func (f *Fetcher) RunAll(ctx context.Context, tasks []Task, dir string) []Result {
	results := make([]Result, 0, len(tasks))
	for _, task := range tasks {
		fmt.Fprintf(f.out, "Downloading %s...\n", task.Filename)

		size, err := f.Fetch(ctx, task, dir)
		if err != nil {
			f.logger.Warn("download failed",
				zap.String("file", task.Filename),
				zap.String("url", task.URL),
				zap.Error(err))
			fmt.Fprintf(f.out, "  ✗ failed: %s\n\n", err)
		} else {
			fmt.Fprintf(f.out, "  ✓ done (%s)\n\n", formatKB(size))
		}
		results = append(results, Result{Task: task, Size: size, Err: err})
	}
	return results
}

// Fetch downloads a single task into dir and returns the number of bytes
// written. The body is written to a temporary file that replaces
// dir/task.Filename only once complete, so a failure never leaves a
// partial file behind nor destroys a previous download.
func (f *Fetcher) Fetch(ctx context.Context, task Task, dir string) (int64, error) {
	target := filepath.Join(dir, task.Filename)
	f.logger.Debug("fetching",
		zap.String("url", task.URL),
		zap.String("file", target))

	ctx, wd := newWatchdog(ctx, f.config.Timeout)
	defer wd.Cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return 0, &NetworkError{URL: task.URL, Err: err}
	}
	resp, err := f.config.HttpClient.Do(req)
	if err != nil {
		return 0, &NetworkError{URL: task.URL, Err: wd.Wrap(err)}
	}
	defer resp.Body.Close()
	wd.Kick()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &HTTPStatusError{URL: task.URL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	out, err := os.CreateTemp(dir, "."+task.Filename+".*.part")
	if err != nil {
		return 0, &IOError{Op: "creating temporary file", Path: dir, Err: err}
	}
	tmp := out.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp)
		}
	}()

	in := &kickingReader{r: resp.Body, wd: wd}
	buff := [32 * 1024]byte{}
	var written int64
	for {
		n, err := in.Read(buff[:])
		if n > 0 {
			if _, werr := out.Write(buff[:n]); werr != nil {
				_ = out.Close()
				return 0, &IOError{Op: "writing " + task.Filename, Path: tmp, Err: werr}
			}
			written += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = out.Close()
			return 0, &NetworkError{URL: task.URL, Err: fmt.Errorf("reading response body: %w", wd.Wrap(err))}
		}
	}

	if err := out.Chmod(0644); err != nil {
		_ = out.Close()
		return 0, &IOError{Op: "setting permissions of " + task.Filename, Path: tmp, Err: err}
	}
	if err := out.Close(); err != nil {
		return 0, &IOError{Op: "closing " + task.Filename, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		return 0, &IOError{Op: "saving " + task.Filename, Path: target, Err: err}
	}
	committed = true

	f.logger.Info("file written",
		zap.String("file", target),
		zap.Int64("bytes", written))
	return written, nil
}

// formatKB formats a byte count as kilobytes with one decimal
func formatKB(size int64) string {
	return fmt.Sprintf("%.1f KB", float64(size)/1024)
}
