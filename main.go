// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Govanity serves vanity import paths.
//
// Usage:
//
//	govanity serve [--addr address]
//	govanity resolve [--records file.yaml] event.json
//	govanity load [--dir dir] records.yaml
//	govanity version
//
// Serve answers HTTP requests for host/path with a page whose go-import
// and go-source meta tags point at the repository registered for the
// longest matching prefix of path. Records come from the store selected
// by $VANITY_STORE (dynamodb, gcs, sqlite or memory); see package config
// for the full list of settings.
//
// Resolve runs a single request event, as a function trigger would
// deliver it, and logs the response:
//
//	{"headers": {"Host": "example.com"}, "path": "/pkg/sub"}
//
// Load copies records from a YAML file into the SQLite store.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "govanity",
		Short:         "Serve vanity Go import paths",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newResolveCmd(), newLoadCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("govanity version %s\n", version)
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("govanity: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
