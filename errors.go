//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrDirectoryLocked is returned by Run when another run holds the
// destination directory.
var ErrDirectoryLocked = errors.New("destination directory is locked by another run")

// NetworkError is a failure to reach the server or to read the response:
// malformed URL, connection or DNS failure, timeout, truncated body.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	// url.Error already names the method and URL
	var ue *url.Error
	if errors.As(e.Err, &ue) {
		return e.Err.Error()
	}
	return fmt.Sprintf("GET %s: %s", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is returned when the server answers with a non-2xx status
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}

// IOError is a local filesystem failure. Err usually is a *fs.PathError
// that already carries Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
