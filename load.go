// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"rsc.io/govanity/config"
	"rsc.io/govanity/logging"
	"rsc.io/govanity/store/sqlite"
)

func newLoadCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "load <records.yaml>",
		Short: "Load records from a YAML file into the SQLite store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(cmd.OutOrStdout())
			if dir == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dir = cfg.SQLiteDir
			}
			if dir == "" {
				return errors.New("no SQLite directory: use --dir or set VANITY_SQLITE_DIR")
			}

			recs, err := readRecords(args[0])
			if err != nil {
				return err
			}
			s, err := sqlite.Open(dir)
			if err != nil {
				return err
			}
			defer s.Close()
			for _, rec := range recs {
				if err := s.Put(cmd.Context(), rec); err != nil {
					return err
				}
				log.Infof("loaded %s%s -> %s", rec.Host, rec.Path, rec.RepositoryURL)
			}
			log.Infof("loaded %d records into %s", len(recs), s.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "SQLite data `directory` (default $VANITY_SQLITE_DIR)")
	return cmd
}
