// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/govanity/resolver"
)

func TestStoreLookup(t *testing.T) {
	s := New(
		resolver.Record{Host: "example.com", Path: "/a", RepositoryURL: "https://one"},
		resolver.Record{Host: "example.com", Path: "/a", RepositoryURL: "https://two"},
		resolver.Record{Host: "example.com", Path: "", RepositoryURL: "https://root"},
	)
	ctx := context.Background()

	recs, err := s.Lookup(ctx, "example.com", "/a")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "https://two", recs[0].RepositoryURL)

	recs, err = s.Lookup(ctx, "example.com", "")
	require.NoError(t, err)
	require.Len(t, recs, 1)

	recs, err = s.Lookup(ctx, "example.com", "/a/b")
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = s.Lookup(ctx, "other.com", "/a")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStoreWithResolver(t *testing.T) {
	s := New(resolver.Record{Host: "example.com", Path: "/pkg", RepositoryURL: "https://example.com/r"})
	resp := resolver.New(s).Resolve(context.Background(), "example.com", "/pkg/sub/file")

	assert.Equal(t, 200, resp.Status)
	assert.Contains(t, resp.Body, `content="example.com/pkg/sub/file git https://example.com/r"`)
}
