// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"context"
	"encoding/json"
	"fmt"
)

// An Event is a request as delivered by a function trigger,
// in the API Gateway proxy shape:
//
//	{"headers": {"Host": "example.com"}, "path": "/pkg/sub"}
//
// Nil fields were absent from the event.
type Event struct {
	Headers map[string]string `json:"headers"`
	Path    *string           `json:"path"`
}

// ParseEvent decodes a JSON event.
func ParseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("parsing event: %w", err)
	}
	return ev, nil
}

// HandleEvent validates ev and resolves it.
func (r *Resolver) HandleEvent(ctx context.Context, ev Event) Response {
	log := r.log.Invocation()
	if ev.Headers == nil {
		return r.fail(log, invalid("'headers' is missing from the event"))
	}
	if ev.Path == nil {
		return r.fail(log, invalid("'path' is missing from the event"))
	}
	host, ok := ev.Headers["Host"]
	if !ok {
		return r.fail(log, invalid("'Host' header is not set"))
	}
	return r.ResolveLog(ctx, log, host, *ev.Path)
}
