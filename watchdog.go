//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// watchdog cancels its context with os.ErrDeadlineExceeded when it is not
// kicked for longer than timeout.
type watchdog struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	timer   *time.Timer
	timeout time.Duration
}

func newWatchdog(parent context.Context, timeout time.Duration) (context.Context, *watchdog) {
	ctx, cancel := context.WithCancelCause(parent)
	var timer *time.Timer
	if timeout > 0 {
		timer = time.AfterFunc(timeout, func() {
			// Cancel the context with a clear, standard error.
			cancel(os.ErrDeadlineExceeded)
		})
	}
	return ctx, &watchdog{
		ctx:     ctx,
		cancel:  cancel,
		timer:   timer,
		timeout: timeout,
	}
}

func (wd *watchdog) Kick() {
	if wd.timeout > 0 {
		wd.timer.Reset(wd.timeout)
	}
}

func (wd *watchdog) Cancel() {
	if wd.timeout > 0 {
		wd.timer.Stop()
	}
	wd.cancel(nil)
}

// Wrap replaces err with a timeout error if the watchdog fired.
func (wd *watchdog) Wrap(err error) error {
	if cause := context.Cause(wd.ctx); errors.Is(cause, os.ErrDeadlineExceeded) {
		return fmt.Errorf("no data received for %s: %w", wd.timeout, cause)
	}
	return err
}

// kickingReader kicks the watchdog every time some data is read
type kickingReader struct {
	r  io.Reader
	wd *watchdog
}

func (k *kickingReader) Read(p []byte) (int, error) {
	n, err := k.r.Read(p)
	if n > 0 {
		k.wd.Kick()
	}
	return n, err
}
