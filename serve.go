// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/appengine/v2"

	"rsc.io/govanity/config"
	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
	"rsc.io/govanity/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve vanity import pages over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			return serve(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "serve http on `address` (default $PORT or :8080)")
	return cmd
}

func serve(cmd *cobra.Command, cfg config.Config) error {
	log := logging.New(os.Stdout)
	store, closeStore, err := openStore(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	r := resolver.New(store,
		resolver.WithDocBase(cfg.DocBase),
		resolver.WithStrictRequests(cfg.StrictRequests),
		resolver.WithLogger(log),
	)
	onAppEngine := cfg.DeploymentID != ""
	h := server.Handler(r, log, onAppEngine)

	if onAppEngine {
		http.Handle("/", h)
		log.Infof("serving on App Engine deployment %s (store %s)", cfg.DeploymentID, cfg.Store)
		appengine.Main()
		return nil
	}
	log.Infof("serving on %s (store %s)", cfg.ListenAddr, cfg.Store)
	return http.ListenAndServe(cfg.ListenAddr, h)
}
