// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs serves import records from a Google Cloud Storage bucket.
//
// Each record is a JSON object (see resolver.Record) stored at
//
//	<prefix>/<host><path>.json
//
// so the record for example.com/pkg with prefix "vanity" lives at
// vanity/example.com/pkg.json and the record for the bare host at
// vanity/example.com.json.
//
//	client, err := storage.NewClient(ctx)
//	...
//	store := gcs.New(client, "my-bucket", "vanity")
//
// The bucket may also be given as "my-bucket/vanity" with an empty prefix.
package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"rsc.io/govanity/resolver"
)

var _ resolver.Store = (*Store)(nil)

// An objectReader returns the content of a named object,
// or storage.ErrObjectNotExist.
type objectReader interface {
	readObject(ctx context.Context, name string) ([]byte, error)
}

type bucketReader struct {
	bucket *storage.BucketHandle
}

func (b bucketReader) readObject(ctx context.Context, name string) ([]byte, error) {
	r, err := b.bucket.Object(name).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Store reads records from a bucket.
type Store struct {
	objects objectReader
	bucket  string
	prefix  string
}

// New returns a Store reading objects under prefix in bucket. The bucket
// is either a bucket name or "bucket/prefix"; a prefix carried in bucket
// comes before the prefix argument. The client is shared and must
// outlive the Store.
func New(client *storage.Client, bucket, prefix string) *Store {
	name, prefix := splitBucket(bucket, prefix)
	return &Store{
		objects: bucketReader{client.Bucket(name)},
		bucket:  name,
		prefix:  prefix,
	}
}

func splitBucket(bucket, extra string) (name, prefix string) {
	name, prefix, _ = strings.Cut(bucket, "/")
	prefix = strings.Trim(prefix, "/")
	if extra = strings.Trim(extra, "/"); extra != "" {
		if prefix != "" {
			prefix += "/"
		}
		prefix += extra
	}
	return name, prefix
}

// ObjectName returns the name of the object holding the record for (host, path).
func (s *Store) ObjectName(host, path string) string {
	name := host + path + ".json"
	if s.prefix != "" {
		name = s.prefix + "/" + name
	}
	return name
}

// Lookup returns the record stored for exactly (host, path).
func (s *Store) Lookup(ctx context.Context, host, path string) ([]resolver.Record, error) {
	name := s.ObjectName(host, path)
	data, err := s.objects.readObject(ctx, name)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s/%s: %w", s.bucket, name, err)
	}

	var rec resolver.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", s.bucket, name, err)
	}
	// The object name is the key; fields inside the object cannot move it.
	rec.Host, rec.Path = host, path
	return []resolver.Record{rec}, nil
}
