// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"errors"
	"net/http"
)

// A Kind classifies resolver failures.
type Kind int

const (
	Internal Kind = iota
	InvalidRequest
	StoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case InvalidRequest:
		return "invalid request"
	case StoreUnavailable:
		return "store unavailable"
	}
	return "internal error"
}

// An Error is a classified resolver failure.
// Its message is what the client sees in the response body.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func invalid(msg string) error {
	return &Error{Kind: InvalidRequest, Msg: msg}
}

// KindOf returns the kind of err, or Internal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// status maps err to an HTTP status code.
// Invalid requests are reported as 500 unless strict is set.
func status(err error, strict bool) int {
	if strict && KindOf(err) == InvalidRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
