// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"iter"
	"strings"
)

// Prefixes returns the lookup candidates for path, longest first:
// path itself, then path with its final element removed, and so on,
// ending with "". For "/a/b/c" that is "/a/b/c", "/a/b", "/a", "".
//
// The empty path yields exactly one candidate, "".
// A candidate with no slash is followed directly by "".
func Prefixes(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(path) {
				return
			}
			if path == "" {
				return
			}
			i := strings.LastIndex(path, "/")
			if i < 0 {
				i = 0
			}
			path = path[:i]
		}
	}
}
