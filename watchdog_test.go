//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchdogFires(t *testing.T) {
	ctx, wd := newWatchdog(context.Background(), 20*time.Millisecond)
	defer wd.Cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("watchdog did not fire")
	}
	require.ErrorIs(t, context.Cause(ctx), os.ErrDeadlineExceeded)

	err := wd.Wrap(context.Canceled)
	require.ErrorIs(t, err, os.ErrDeadlineExceeded)
	require.Contains(t, err.Error(), "no data received for 20ms")
}

func TestWatchdogKick(t *testing.T) {
	ctx, wd := newWatchdog(context.Background(), 100*time.Millisecond)
	defer wd.Cancel()

	for i := 0; i < 5; i++ {
		time.Sleep(40 * time.Millisecond)
		wd.Kick()
	}
	require.NoError(t, ctx.Err())
}

func TestWatchdogDisabled(t *testing.T) {
	ctx, wd := newWatchdog(context.Background(), 0)
	wd.Kick()
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, ctx.Err())

	wd.Cancel()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	other := errors.New("other")
	require.Equal(t, other, wd.Wrap(other))
}

func TestKickingReader(t *testing.T) {
	ctx, wd := newWatchdog(context.Background(), 100*time.Millisecond)
	defer wd.Cancel()

	r := &kickingReader{r: &slowReader{data: strings.Repeat("x", 5), delay: 40 * time.Millisecond}, wd: wd}
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			break
		}
	}
	require.NoError(t, ctx.Err())
}

// slowReader returns one byte per Read after waiting delay
type slowReader struct {
	data  string
	delay time.Duration
}

func (s *slowReader) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	time.Sleep(s.delay)
	p[0] = s.data[0]
	s.data = s.data[1:]
	return 1, nil
}
