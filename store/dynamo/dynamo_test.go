// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamo

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsc.io/govanity/logging"
	"rsc.io/govanity/resolver"
)

type item = map[string]types.AttributeValue

func s(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }

// fakeDB answers queries from items keyed by host and uri.
type fakeDB struct {
	items  map[[2]string][]item
	err    error
	inputs []*dynamodb.QueryInput
}

func (f *fakeDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	host := in.ExpressionAttributeValues[":host"].(*types.AttributeValueMemberS).Value
	uri := in.ExpressionAttributeValues[":uri"].(*types.AttributeValueMemberS).Value
	for name, v := range map[string]string{":host": host, ":uri": uri} {
		if v == "" {
			return nil, errors.New("ValidationException: One or more parameter values are not valid. " +
				"The AttributeValue for a key attribute cannot contain an empty string value. Key: " + name)
		}
	}
	return &dynamodb.QueryOutput{Items: f.items[[2]string{host, uri}]}, nil
}

func TestLookupQueryShape(t *testing.T) {
	db := &fakeDB{}
	store := New(db, "", nil)
	_, err := store.Lookup(context.Background(), "example.com", "/pkg")
	require.NoError(t, err)

	require.Len(t, db.inputs, 1)
	in := db.inputs[0]
	assert.Equal(t, DefaultTable, aws.ToString(in.TableName))
	assert.Equal(t, "RequestHost = :host and RequestURI = :uri", aws.ToString(in.KeyConditionExpression))
	assert.Equal(t, s("example.com"), in.ExpressionAttributeValues[":host"])
	assert.Equal(t, s("/pkg"), in.ExpressionAttributeValues[":uri"])
}

func TestLookupDecodesItems(t *testing.T) {
	db := &fakeDB{items: map[[2]string][]item{
		{"example.com", "/pkg"}: {{
			"RequestHost":   s("example.com"),
			"RequestURI":    s("/pkg"),
			"VCS":           s("hg"),
			"RepositoryURL": s("https://hg.example.com/pkg"),
			"Source": &types.AttributeValueMemberM{Value: item{
				"Home":      s("https://src/pkg"),
				"Directory": s("https://src/pkg/d{/dir}"),
				"File":      s("https://src/pkg/f{/dir}/{file}#L{line}"),
			}},
		}},
	}}
	recs, err := New(db, "custom", nil).Lookup(context.Background(), "example.com", "/pkg")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, resolver.Record{
		Host:          "example.com",
		Path:          "/pkg",
		VCS:           "hg",
		RepositoryURL: "https://hg.example.com/pkg",
		Source: resolver.Source{
			Home:      "https://src/pkg",
			Directory: "https://src/pkg/d{/dir}",
			File:      "https://src/pkg/f{/dir}/{file}#L{line}",
		},
	}, recs[0])
	assert.Equal(t, "custom", aws.ToString(db.inputs[0].TableName))
}

func TestLookupSkipsItemsWithoutURI(t *testing.T) {
	var buf bytes.Buffer
	db := &fakeDB{items: map[[2]string][]item{
		{"example.com", "/pkg"}: {
			{"RequestHost": s("example.com"), "RepositoryURL": s("https://skipped")},
			{"RequestHost": s("example.com"), "RequestURI": s("/pkg"), "RepositoryURL": s("https://kept")},
		},
	}}
	recs, err := New(db, "", logging.New(&buf)).Lookup(context.Background(), "example.com", "/pkg")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "https://kept", recs[0].RepositoryURL)
	assert.Contains(t, buf.String(), "'RequestURI' string is missing")
}

func TestLookupError(t *testing.T) {
	db := &fakeDB{err: errors.New("ResourceNotFoundException")}
	_, err := New(db, "", nil).Lookup(context.Background(), "example.com", "/pkg")
	assert.ErrorContains(t, err, "query go-vanity-urls: ResourceNotFoundException")
}

func TestStoreServesResolver(t *testing.T) {
	db := &fakeDB{items: map[[2]string][]item{
		{"example.com", "/pkg"}: {{"RequestHost": s("example.com"), "RequestURI": s("/pkg"), "RepositoryURL": s("https://example.com/r")}},
	}}
	resp := resolver.New(New(db, "", nil)).Resolve(context.Background(), "example.com", "/pkg/sub/file")

	assert.Equal(t, 200, resp.Status)
	assert.Contains(t, resp.Body, `content="example.com/pkg/sub/file git https://example.com/r"`)
	assert.Len(t, db.inputs, 3)

	db.inputs = nil
	resp = resolver.New(New(db, "", nil)).Resolve(context.Background(), "example.com", "/nothing/here")
	assert.Equal(t, resolver.NotFound, resp)
	assert.Len(t, db.inputs, 2, "the empty candidate is never queried")
}

func TestLookupEmptyPath(t *testing.T) {
	db := &fakeDB{}
	store := New(db, "", nil)

	recs, err := store.Lookup(context.Background(), "example.com", "")
	require.NoError(t, err)
	assert.Empty(t, recs)

	recs, err = store.Lookup(context.Background(), "", "/pkg")
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, db.inputs)

	resp := resolver.New(store).Resolve(context.Background(), "example.com", "")
	assert.Equal(t, resolver.NotFound, resp)
}

func TestFakeRejectsEmptyKeys(t *testing.T) {
	db := &fakeDB{}
	_, err := db.Query(context.Background(), &dynamodb.QueryInput{
		ExpressionAttributeValues: map[string]types.AttributeValue{":host": s("example.com"), ":uri": s("")},
	})
	assert.ErrorContains(t, err, "ValidationException")
}
