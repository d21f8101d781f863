// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"rsc.io/govanity/config"
	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
	"rsc.io/govanity/store/dynamo"
	"rsc.io/govanity/store/gcs"
	"rsc.io/govanity/store/memcache"
	"rsc.io/govanity/store/memory"
	"rsc.io/govanity/store/sqlite"
)

// openStore connects to the store named by cfg.
// The returned close function releases the client.
func openStore(ctx context.Context, cfg config.Config, log *logging.Logger) (resolver.Store, func() error, error) {
	var (
		store   resolver.Store
		closeFn = func() error { return nil }
	)
	switch cfg.Store {
	case config.StoreDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("loading AWS config: %w", err)
		}
		store = dynamo.New(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable, log)
	case config.StoreGCS:
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("creating storage client: %w", err)
		}
		store, closeFn = gcs.New(client, cfg.GCSBucket, cfg.GCSPrefix), client.Close
	case config.StoreSQLite:
		s, err := sqlite.Open(cfg.SQLiteDir)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = s, s.Close
	case config.StoreMemory:
		store = memory.New()
	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	if cfg.DeploymentID != "" {
		store = memcache.New(store, cfg.DeploymentID, log)
	}
	return store, closeFn, nil
}

type recordFile struct {
	Records []resolver.Record `yaml:"records"`
}

// readRecords reads and checks the records in a YAML file:
//
//	records:
//	  - host: example.com
//	    path: /pkg
//	    repositoryURL: https://github.com/example/pkg
func readRecords(file string) ([]resolver.Record, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var f recordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	for i, rec := range f.Records {
		if rec.Host == "" {
			return nil, fmt.Errorf("%s: record %d: missing host", file, i+1)
		}
		if rec.Path != "" && !strings.HasPrefix(rec.Path, "/") {
			return nil, fmt.Errorf("%s: record %d: path %q does not begin with /", file, i+1, rec.Path)
		}
		if err := module.CheckImportPath(rec.Host + rec.Path); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", file, i+1, err)
		}
	}
	return f.Records, nil
}
