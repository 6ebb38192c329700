//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package libfetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibrariesTable(t *testing.T) {
	require.Len(t, Libraries, 7)
	require.NoError(t, ValidateTasks(Libraries))
	for _, task := range Libraries {
		require.True(t, strings.HasPrefix(task.URL, "https://cdn.jsdelivr.net/npm/"), task.URL)
	}
	require.Equal(t, "dexie.min.js", Libraries[0].Filename)
	require.Equal(t, "browser-image-compression.js", Libraries[6].Filename)
}

func TestValidateTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		ok    bool
	}{
		{"empty table", nil, true},
		{"valid", []Task{{"a.js", "http://x/a"}, {"b.js", "http://x/b"}}, true},
		{"duplicate filename", []Task{{"a.js", "http://x/a"}, {"a.js", "http://x/b"}}, false},
		{"missing url", []Task{{"a.js", ""}}, false},
		{"missing filename", []Task{{"", "http://x/a"}}, false},
		{"dot", []Task{{".", "http://x/a"}}, false},
		{"dot dot", []Task{{"..", "http://x/a"}}, false},
		{"subdirectory", []Task{{"js/a.js", "http://x/a"}}, false},
		{"escaping", []Task{{"../a.js", "http://x/a"}}, false},
		{"backslash", []Task{{`js\a.js`, "http://x/a"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTasks(tt.tasks)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidTask)
			}
		})
	}
}
