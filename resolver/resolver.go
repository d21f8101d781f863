// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolver answers vanity import path requests.
//
// Given the host and path of a request, a Resolver looks for a Record
// registered for that exact path, then for each shorter prefix of it,
// and renders the first match as an HTML page carrying go-import and
// go-source meta tags:
//
//	r := resolver.New(store)
//	resp := r.Resolve(ctx, "example.com", "/pkg/sub")
//
// A record registered for /pkg therefore serves every package below /pkg.
package resolver

import (
	"context"
	"fmt"
	"net/http"

	"rsc.io/govanity/logging"
)

// A Response is the outcome of one resolution.
type Response struct {
	Status int
	Body   string
}

// NotFound is returned when no prefix of the request path is registered.
var NotFound = Response{Status: http.StatusNotFound, Body: "Not Found"}

// A Resolver resolves requests against a Store.
// It holds no per-request state and is safe for concurrent use.
type Resolver struct {
	store   Store
	docBase string
	strict  bool
	log     *logging.Logger
}

// An Option configures a Resolver.
type Option func(*Resolver)

// WithDocBase sets the documentation browser URL linked from rendered pages.
func WithDocBase(url string) Option {
	return func(r *Resolver) {
		if url != "" {
			r.docBase = url
		}
	}
}

// WithStrictRequests reports malformed requests as 400 Bad Request
// instead of 500 Internal Server Error.
func WithStrictRequests(strict bool) Option {
	return func(r *Resolver) { r.strict = strict }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *logging.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New returns a Resolver reading records from store.
func New(store Store, opts ...Option) *Resolver {
	r := &Resolver{
		store:   store,
		docBase: DefaultDocBase,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve looks up host and path and returns the page to serve.
// It logs with a fresh invocation logger; use ResolveLog to supply one.
func (r *Resolver) Resolve(ctx context.Context, host, path string) Response {
	return r.ResolveLog(ctx, r.log.Invocation(), host, path)
}

// ResolveLog is like Resolve but logs to log.
func (r *Resolver) ResolveLog(ctx context.Context, log *logging.Logger, host, path string) (resp Response) {
	log.Infof("=== Starting go-vanity-server ===")
	defer log.Infof("=== Finished go-vanity-server ===")
	defer func() {
		if e := recover(); e != nil {
			resp = r.fail(log, &Error{Kind: Internal, Msg: fmt.Sprint(e)})
		}
	}()

	if host == "" {
		return r.fail(log, invalid("'Host' header is not set"))
	}
	log.Infof("Vanity Host: %s", host)
	log.Infof("Vanity URI:  %s", path)

	rec, ok, err := r.lookup(ctx, log, host, path)
	if err != nil {
		return r.fail(log, err)
	}
	if !ok {
		log.Warnf("Not Found")
		return NotFound
	}

	if rec.RepositoryURL == "" {
		log.Warnf("'RepositoryURL' string is missing from entry %s%s", rec.Host, rec.Path)
	}
	body, err := Render(r.docBase, host, path, rec)
	if err != nil {
		return r.fail(log, &Error{Kind: Internal, Msg: err.Error(), Err: err})
	}
	log.Infof("Found match: %s", rec.RepositoryURL)
	log.Debugf("Response:\n%s", body)
	return Response{Status: http.StatusOK, Body: body}
}

// lookup walks the prefixes of path and returns the first record found.
func (r *Resolver) lookup(ctx context.Context, log *logging.Logger, host, path string) (Record, bool, error) {
	for candidate := range Prefixes(path) {
		log.Infof("Searching DB for URL: https://%s%s", host, candidate)
		recs, err := r.store.Lookup(ctx, host, candidate)
		if err != nil {
			return Record{}, false, &Error{Kind: StoreUnavailable, Msg: err.Error(), Err: err}
		}
		if len(recs) > 0 {
			if len(recs) > 1 {
				log.Warnf("%d records for %s%s; using the first", len(recs), host, candidate)
			}
			return recs[0], true, nil
		}
	}
	return Record{}, false, nil
}

func (r *Resolver) fail(log *logging.Logger, err error) Response {
	log.Criticalf("%v", err)
	return Response{Status: status(err, r.strict), Body: err.Error()}
}
