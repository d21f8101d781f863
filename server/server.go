// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves vanity import pages over HTTP.
//
//	http.Handle("/", server.Handler(resolver.New(store), log, false))
package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime"

	"google.golang.org/appengine/v2"

	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
)

// Handler returns an http.Handler answering every path with the
// resolver's page for the request host and path. It also serves
// /.info (Go version) and /.healthz on every host. A module path
// element cannot begin with a dot, so these never shadow the root of a
// vanity module; only a package directory named .info or .healthz
// directly under a host-level module is unreachable.
//
// If appEngine is set, lookups run in an App Engine request context,
// as the memcache store requires.
func Handler(r *resolver.Resolver, log *logging.Logger, appEngine bool) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/.info", info)
	mux.HandleFunc("/.healthz", healthz)
	mux.Handle("/", &vanity{r: r, log: log, appEngine: appEngine})
	return mux
}

type vanity struct {
	r         *resolver.Resolver
	log       *logging.Logger
	appEngine bool
}

func (v *vanity) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != "GET" && req.Method != "HEAD" {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("only GET or HEAD"))
		return
	}

	var ctx context.Context = req.Context()
	if v.appEngine {
		ctx = appengine.WithContext(ctx, req)
	}
	resp := v.r.ResolveLog(ctx, v.log.ForRequest(req), req.Host, req.URL.Path)

	if resp.Status == http.StatusOK {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.WriteHeader(resp.Status)
	if req.Method != "HEAD" {
		w.Write([]byte(resp.Body))
	}
}

func info(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
