// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memcache caches record lookups in App Engine memcache.
//
// Only hits are cached; a miss always reaches the underlying store.
// Keys include the deployment ID, so a new deployment starts cold.
// Lookups must be made with a context derived from appengine.NewContext.
package memcache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"google.golang.org/appengine/v2/memcache"

	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
)

// Expiration is how long a cached record lives.
const Expiration = 15 * time.Minute

type cache interface {
	get(ctx context.Context, key string, recs *[]resolver.Record) error
	set(ctx context.Context, key string, recs []resolver.Record) error
}

type appengineCache struct{}

func (appengineCache) get(ctx context.Context, key string, recs *[]resolver.Record) error {
	_, err := memcache.JSON.Get(ctx, key, recs)
	return err
}

func (appengineCache) set(ctx context.Context, key string, recs []resolver.Record) error {
	return memcache.JSON.Set(ctx, &memcache.Item{
		Key:        key,
		Object:     recs,
		Expiration: Expiration,
	})
}

var _ resolver.Store = (*Store)(nil)

// Store is a read-through cache in front of another store.
type Store struct {
	next     resolver.Store
	deployID string
	cache    cache
	log      *logging.Logger
}

// New returns a Store caching lookups made against next.
func New(next resolver.Store, deployID string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{next: next, deployID: deployID, cache: appengineCache{}, log: log}
}

// Key returns the memcache key for (host, path).
func (s *Store) Key(host, path string) string {
	sum := sha256.Sum256([]byte(host + path + "#" + s.deployID))
	return fmt.Sprintf("vanity.%x", sum[:])
}

// Lookup returns the cached records for (host, path), consulting the
// underlying store on a miss. Cache failures are logged, not returned.
func (s *Store) Lookup(ctx context.Context, host, path string) ([]resolver.Record, error) {
	key := s.Key(host, path)
	var recs []resolver.Record
	err := s.cache.get(ctx, key, &recs)
	if err == nil && len(recs) > 0 {
		return recs, nil
	}
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		s.log.Warnf("memcache get %s%s: %v", host, path, err)
	}

	recs, err = s.next.Lookup(ctx, host, path)
	if err != nil || len(recs) == 0 {
		return recs, err
	}
	if err := s.cache.set(ctx, key, recs); err != nil {
		s.log.Warnf("memcache set %s%s: %v", host, path, err)
	}
	return recs, nil
}
