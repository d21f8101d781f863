// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"rsc.io/govanity/config"
	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
	"rsc.io/govanity/store/memory"
)

func newResolveCmd() *cobra.Command {
	var records string
	cmd := &cobra.Command{
		Use:   "resolve <JSON event file>",
		Short: "Resolve one request event and log the response",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("USAGE: " + cmd.CommandPath() + " <JSON event file>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cmd.OutOrStdout())

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			var store resolver.Store
			if records != "" {
				recs, err := readRecords(records)
				if err != nil {
					return err
				}
				store = memory.New(recs...)
			} else {
				s, closeStore, err := openStore(cmd.Context(), cfg, log)
				if err != nil {
					return err
				}
				defer closeStore()
				store = s
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				log.Errorf("%v", err)
				return nil
			}
			ev, err := resolver.ParseEvent(data)
			if err != nil {
				log.Errorf("%v", err)
				return nil
			}

			r := resolver.New(store,
				resolver.WithDocBase(cfg.DocBase),
				resolver.WithStrictRequests(cfg.StrictRequests),
				resolver.WithLogger(log),
			)
			resp := r.HandleEvent(cmd.Context(), ev)
			log.Infof("statusCode: %d", resp.Status)
			log.Infof("body: %s", resp.Body)
			return nil
		},
	}
	cmd.Flags().StringVar(&records, "records", "", "resolve against the records in YAML `file` instead of the configured store")
	return cmd
}
