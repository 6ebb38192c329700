//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"net/http"
	"sync"
	"time"
)

// Config contains the configuration for the fetcher
type Config struct {
	// HttpClient to use to perform HTTP requests
	HttpClient http.Client
	// Timeout is the duration after which, if no data is received,
	// the request is aborted. It covers connecting, waiting for the
	// response headers and every read of the body. If set to 0, no
	// timeout is applied.
	Timeout time.Duration
}

var defaultConfig Config = Config{Timeout: DefaultTimeout}
var defaultConfigLock sync.Mutex

// SetDefaultConfig sets the configuration that will be used by New.
func SetDefaultConfig(newConfig Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	defaultConfig = newConfig
}

// GetDefaultConfig returns a copy of the default configuration. The default
// configuration can be changed using the SetDefaultConfig function.
func GetDefaultConfig() Config {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()

	// deep copy struct
	return defaultConfig
}
