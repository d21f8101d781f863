// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory provides an in-memory resolver.Store.
package memory

import (
	"context"
	"sync"

	"rsc.io/govanity/resolver"
)

var _ resolver.Store = (*Store)(nil)

type key struct{ host, path string }

// Store is an in-memory record store.
type Store struct {
	mu   sync.RWMutex
	recs map[key]resolver.Record
}

// New returns a Store holding recs.
// A later record replaces an earlier one with the same key.
func New(recs ...resolver.Record) *Store {
	s := &Store{recs: make(map[key]resolver.Record)}
	for _, r := range recs {
		s.Put(r)
	}
	return s
}

// Put stores rec under its (Host, Path) key.
func (s *Store) Put(rec resolver.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[key{rec.Host, rec.Path}] = rec
}

// Lookup returns the record stored under (host, path), if any.
func (s *Store) Lookup(_ context.Context, host, path string) ([]resolver.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recs[key{host, path}]
	if !ok {
		return nil, nil
	}
	return []resolver.Record{rec}, nil
}
