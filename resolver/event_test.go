// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEvent(t *testing.T) {
	store := newFakeStore(Record{Host: "example.com", Path: "/pkg", RepositoryURL: "https://github.com/x/pkg"})
	r := New(store)

	tests := []struct {
		name   string
		event  string
		status int
		body   string
	}{
		{"found", `{"headers":{"Host":"example.com"},"path":"/pkg/sub"}`, http.StatusOK, ""},
		{"not found", `{"headers":{"Host":"example.com"},"path":"/other"}`, http.StatusNotFound, "Not Found"},
		{"no headers", `{"path":"/pkg"}`, http.StatusInternalServerError, "'headers' is missing from the event"},
		{"null headers", `{"headers":null,"path":"/pkg"}`, http.StatusInternalServerError, "'headers' is missing from the event"},
		{"no path", `{"headers":{"Host":"example.com"}}`, http.StatusInternalServerError, "'path' is missing from the event"},
		{"no host", `{"headers":{"Accept":"*/*"},"path":"/pkg"}`, http.StatusInternalServerError, "'Host' header is not set"},
		{"empty path", `{"headers":{"Host":"example.com"},"path":""}`, http.StatusNotFound, "Not Found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseEvent([]byte(tt.event))
			require.NoError(t, err)

			resp := r.HandleEvent(context.Background(), ev)
			assert.Equal(t, tt.status, resp.Status)
			if tt.body != "" {
				assert.Equal(t, tt.body, resp.Body)
			}
		})
	}
}

func TestHandleEventStrict(t *testing.T) {
	r := New(newFakeStore(), WithStrictRequests(true))
	resp := r.HandleEvent(context.Background(), Event{})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestParseEventInvalidJSON(t *testing.T) {
	_, err := ParseEvent([]byte(`{"headers":`))
	assert.Error(t, err)
}
