// Copyright 2026 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resolver

import (
	"html/template"
	"strings"
)

// DefaultDocBase is the documentation browser linked from rendered pages.
const DefaultDocBase = "https://godoc.org"

var tmpl = template.Must(template.New("").Parse(`<!DOCTYPE html>
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="go-import" content="{{.ImportPath}} {{.VCS}} {{.RepositoryURL}}">
  <meta name="go-source" content="{{.ImportPath}} {{.Home}} {{.Directory}} {{.File}}">
  <meta http-equiv="refresh" content="0; url={{.DocURL}}">
</head>
<body>
Nothing to see here; <a href="{{.DocURL}}">see the package on godoc</a>.
</body>
</html>`))

type page struct {
	ImportPath    string
	VCS           string
	RepositoryURL string
	Home          string
	Directory     string
	File          string
	DocURL        string
}

// Render returns the HTML page for the import path host+path served by rec.
// The page always names host+path as requested, even when rec was
// registered for a shorter prefix of path.
//
// Missing source fields are derived in order: Home from the repository URL,
// then Directory and File from Home.
func Render(docBase, host, path string, rec Record) (string, error) {
	p := page{
		ImportPath:    host + path,
		VCS:           rec.VCS,
		RepositoryURL: rec.RepositoryURL,
		Home:          rec.Source.Home,
		Directory:     rec.Source.Directory,
		File:          rec.Source.File,
		DocURL:        strings.TrimSuffix(docBase, "/") + "/" + host + path,
	}
	if p.VCS == "" {
		p.VCS = DefaultVCS
	}
	if p.Home == "" {
		p.Home = rec.RepositoryURL
	}
	if p.Directory == "" {
		p.Directory = p.Home + "/tree/master{/dir}"
	}
	if p.File == "" {
		p.File = p.Home + "/blob/master{/dir}/{file}#L{line}"
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, &p); err != nil {
		return "", err
	}
	return b.String(), nil
}
