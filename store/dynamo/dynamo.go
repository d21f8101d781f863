// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamo serves import records from an Amazon DynamoDB table.
//
// The table has partition key RequestHost and sort key RequestURI, both
// strings. Other attributes:
//
//	VCS            S   version control system, default "git"
//	RepositoryURL  S   repository root
//	Source         M   optional Home, Directory and File strings
package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "go-vanity-urls"

const keyCondition = "RequestHost = :host and RequestURI = :uri"

// QueryAPI is the part of the DynamoDB client the store uses.
type QueryAPI interface {
	Query(ctx context.Context, in *dynamodb.QueryInput, opts ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ resolver.Store = (*Store)(nil)

// Store queries a DynamoDB table.
type Store struct {
	client QueryAPI
	table  string
	log    *logging.Logger
}

// New returns a Store querying table through client.
// If table is empty, New uses DefaultTable.
func New(client QueryAPI, table string, log *logging.Logger) *Store {
	if table == "" {
		table = DefaultTable
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Store{client: client, table: table, log: log}
}

// Table returns the table name.
func (s *Store) Table() string { return s.table }

// Lookup queries for items keyed exactly by (host, path).
// Items without a RequestURI string are skipped.
func (s *Store) Lookup(ctx context.Context, host, path string) ([]resolver.Record, error) {
	// DynamoDB rejects empty strings as key values, so no item can
	// have an empty RequestHost or RequestURI.
	if host == "" || path == "" {
		return nil, nil
	}
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String(keyCondition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":host": &types.AttributeValueMemberS{Value: host},
			":uri":  &types.AttributeValueMemberS{Value: path},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}

	var recs []resolver.Record
	for _, item := range out.Items {
		uri, ok := stringAttr(item, "RequestURI")
		if !ok {
			s.log.Warnf("'RequestURI' string is missing from entry - skipping")
			continue
		}
		rec := resolver.Record{Host: host, Path: uri}
		if h, ok := stringAttr(item, "RequestHost"); ok {
			rec.Host = h
		}
		rec.VCS, _ = stringAttr(item, "VCS")
		rec.RepositoryURL, _ = stringAttr(item, "RepositoryURL")
		if m, ok := item["Source"].(*types.AttributeValueMemberM); ok {
			rec.Source.Home, _ = stringAttr(m.Value, "Home")
			rec.Source.Directory, _ = stringAttr(m.Value, "Directory")
			rec.Source.File, _ = stringAttr(m.Value, "File")
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, bool) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return v.Value, true
}
