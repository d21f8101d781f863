// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import "context"

// DefaultVCS is the version control system assumed when a record names none.
const DefaultVCS = "git"

// A Record maps a vanity import path prefix to its repository.
// Records are keyed by the exact (Host, Path) pair.
type Record struct {
	Host          string `json:"host" yaml:"host"`
	Path          string `json:"path" yaml:"path"`
	VCS           string `json:"vcs,omitempty" yaml:"vcs,omitempty"`
	RepositoryURL string `json:"repositoryURL,omitempty" yaml:"repositoryURL,omitempty"`
	Source        Source `json:"source,omitempty" yaml:"source,omitempty"`
}

// Source holds the go-source URL templates for a record.
// Empty fields are derived from the repository URL when rendering.
type Source struct {
	Home      string `json:"home,omitempty" yaml:"home,omitempty"`
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`
	File      string `json:"file,omitempty" yaml:"file,omitempty"`
}

// A Store looks up records by exact (host, path) key.
//
// Lookup returns every record stored under the key, which is normally
// zero or one. A missing key is not an error: Lookup returns no records.
// Implementations must be safe for concurrent use.
type Store interface {
	Lookup(ctx context.Context, host, path string) ([]Record, error)
}
