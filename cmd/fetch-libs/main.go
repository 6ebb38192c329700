//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// fetch-libs downloads the third-party front-end libraries into ./libs.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.bug.st/libfetch"
	"go.bug.st/libfetch/internal/config"
	"go.bug.st/libfetch/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	os.Exit(run(cfg, libfetch.Libraries, cfg.Fetch.Dir, os.Stdout))
}

// run fetches tasks into dir printing progress on out, and returns the
// process exit code: 1 if the batch could not start, 0 otherwise.
func run(cfg *config.Config, tasks []libfetch.Task, dir string, out io.Writer) int {
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	f := libfetch.NewWithConfig(
		libfetch.Config{Timeout: cfg.Fetch.GetTimeout()},
		libfetch.WithLogger(logger.GetZapLogger()),
		libfetch.WithOutput(out),
	)

	// Task failures are reported by Run itself and don't change the exit code.
	if _, err := f.Run(context.Background(), tasks, dir); err != nil {
		logger.Log.Errorw("cannot start downloads", "dir", dir, "error", err)
		fmt.Fprintf(os.Stderr, "Cannot start downloads: %v\n", err)
		return 1
	}
	return 0
}
