// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads server settings from the environment and,
// optionally, a TOML file named by $VANITY_CONFIG.
// Environment variables override the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Store backends.
const (
	StoreDynamoDB = "dynamodb"
	StoreGCS      = "gcs"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

type Config struct {
	ListenAddr string `toml:"listen_addr"`
	Store      string `toml:"store"`

	DynamoDBTable string `toml:"dynamodb_table"`
	GCSBucket     string `toml:"gcs_bucket"`
	GCSPrefix     string `toml:"gcs_prefix"`
	SQLiteDir     string `toml:"sqlite_dir"`

	DocBase        string `toml:"doc_base"`
	StrictRequests bool   `toml:"strict_requests"`

	// DeploymentID is set on App Engine; it enables memcache.
	DeploymentID string `toml:"-"`
}

func defaults() Config {
	return Config{
		ListenAddr:    ":8080",
		Store:         StoreDynamoDB,
		DynamoDBTable: "go-vanity-urls",
		DocBase:       "https://godoc.org",
	}
}

// Load returns the configuration for this process.
func Load() (Config, error) {
	cfg := defaults()
	if file := os.Getenv("VANITY_CONFIG"); file != "" {
		if err := loadFile(&cfg, file); err != nil {
			return Config{}, err
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
	cfg.ListenAddr = getEnv("VANITY_LISTEN_ADDR", cfg.ListenAddr)
	cfg.Store = strings.ToLower(getEnv("VANITY_STORE", cfg.Store))
	cfg.DynamoDBTable = getEnv("DYNAMODB_TABLE", cfg.DynamoDBTable)
	cfg.GCSBucket = getEnv("VANITY_GCS_BUCKET", cfg.GCSBucket)
	cfg.GCSPrefix = getEnv("VANITY_GCS_PREFIX", cfg.GCSPrefix)
	cfg.SQLiteDir = getEnv("VANITY_SQLITE_DIR", cfg.SQLiteDir)
	cfg.DocBase = getEnv("VANITY_DOC_BASE", cfg.DocBase)
	cfg.StrictRequests = getEnvBool("VANITY_STRICT_REQUESTS", cfg.StrictRequests)
	cfg.DeploymentID = os.Getenv("GAE_DEPLOYMENT_ID")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", file, err)
	}
	return nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreDynamoDB, StoreMemory:
	case StoreGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("store %q requires VANITY_GCS_BUCKET", c.Store)
		}
	case StoreSQLite:
		if c.SQLiteDir == "" {
			return fmt.Errorf("store %q requires VANITY_SQLITE_DIR", c.Store)
		}
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
