// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil implements helpers for building test fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// Declaration is the XML declaration written at the top of test articles.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

// File is a file in a test input directory.
type File struct {
	// Path is the file path relative to the directory root. Parent
	// directories are created as needed.
	Path string

	// Data is the file content.
	Data string
}

// Article returns an XML article whose headword is marked by an element with
// the given class. An empty headword returns an article without a headword
// element.
func Article(class, headword, body string) string {
	if headword == "" {
		return fmt.Sprintf("%s\n<div class=\"entry\">%s</div>\n", Declaration, body)
	}
	return fmt.Sprintf("%s\n<div class=\"entry\"><div class=%q>%s</div>%s</div>\n", Declaration, class, headword, body)
}

// ArticleContent returns the content extracted from an article made by
// Article.
func ArticleContent(class, headword, body string) string {
	if headword == "" {
		return fmt.Sprintf("<div class=\"entry\">%s</div>", body)
	}
	return fmt.Sprintf("<div class=\"entry\"><div class=%q>%s</div>%s</div>", class, headword, body)
}

// MakeTempDir creates a temporary input directory containing files and
// returns its path. The directory is removed when the test ends.
func MakeTempDir(t *testing.T, files []File) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(f.Data), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
