// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging writes structured log lines in the JSON shape
// understood by Google Cloud Logging:
//
//	{"message":"...","severity":"INFO","logging.googleapis.com/trace":"projects/p/traces/t"}
//
// Lines are written one per call to the configured writer (stdout by default).
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Severity names match Cloud Logging's LogSeverity enum.
const (
	Debug    = "DEBUG"
	Info     = "INFO"
	Warning  = "WARNING"
	Error    = "ERROR"
	Critical = "CRITICAL"
)

// A Logger writes JSON log lines tagged with a trace.
// The zero value is not usable; call New.
type Logger struct {
	mu    *sync.Mutex
	w     io.Writer
	trace string
	id    string
}

// New returns a Logger writing to w.
// If w is nil, the logger writes to os.Stdout.
func New(w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{mu: new(sync.Mutex), w: w}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// ForRequest returns a copy of l tagged with the trace carried in
// r's X-Cloud-Trace-Context header, if any, and a fresh invocation ID.
func (l *Logger) ForRequest(r *http.Request) *Logger {
	c := l.Invocation()
	f := strings.Split(r.Header.Get("X-Cloud-Trace-Context"), "/")
	if len(f) > 0 && f[0] != "" {
		c.trace = fmt.Sprintf("projects/%s/traces/%s", os.Getenv("GOOGLE_CLOUD_PROJECT"), f[0])
	}
	return c
}

// Invocation returns a copy of l tagged with a fresh invocation ID.
// The copy shares l's writer.
func (l *Logger) Invocation() *Logger {
	c := *l
	c.id = uuid.NewString()
	return &c
}

// ID returns the invocation ID, or "" if l is not an invocation logger.
func (l *Logger) ID() string {
	return l.id
}

func (l *Logger) Debugf(format string, args ...interface{}) { l.logAny(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logAny(Info, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logAny(Warning, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logAny(Error, format, args...) }

// Criticalf logs at CRITICAL severity. Unlike log.Fatal, it does not exit.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.logAny(Critical, format, args...) }

func (l *Logger) logAny(severity, format string, args ...interface{}) {
	out, err := json.Marshal(struct {
		Message    string `json:"message"`
		Severity   string `json:"severity,omitempty"`
		Trace      string `json:"logging.googleapis.com/trace,omitempty"`
		Invocation string `json:"invocation,omitempty"`
	}{
		fmt.Sprintf(format, args...),
		severity,
		l.trace,
		l.id,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "json.Marshal: %v\n", err)
		return
	}
	out = append(out, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(out)
}
