// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixes(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/a/b/c", []string{"/a/b/c", "/a/b", "/a", ""}},
		{"/pkg", []string{"/pkg", ""}},
		{"/", []string{"/", ""}},
		{"", []string{""}},
		{"/a/b/", []string{"/a/b/", "/a/b", "/a", ""}},
		{"//x", []string{"//x", "/", ""}},
		{"abc", []string{"abc", ""}},
		{"abc/def", []string{"abc/def", "abc", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(Prefixes(tt.path)))
		})
	}
}

func TestPrefixesStopsEarly(t *testing.T) {
	var got []string
	for p := range Prefixes("/a/b/c") {
		got = append(got, p)
		if p == "/a/b" {
			break
		}
	}
	assert.Equal(t, []string{"/a/b/c", "/a/b"}, got)
}
