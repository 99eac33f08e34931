// Copyright 2021 Google LLC
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

package mdict

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-xmldict/internal/folding"
	"github.com/ianlewis/go-xmldict/internal/index"
)

type foldedRecord struct {
	folded string
	record *Record
}

// Options are options for a Dict.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on headwords and queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Dict. Headwords are compared
// with whitespace and case folded.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Chain(&folding.WhitespaceFolder{}, cases.Fold())
	},
}

// Dict is an in-memory dictionary read from a dictionary file. Dict is meant
// for inspecting converted files rather than serving lookups at scale.
type Dict struct {
	// index is sorted by the folded headword.
	index *index.Index[*foldedRecord]

	// folder performs folding on text.
	folder func() transform.Transformer
}

// New returns a new Dict by reading all records from r.
func New(r io.Reader, opts *Options) (*Dict, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	d := Dict{
		folder: DefaultOptions.Folder,
	}
	if opts.Folder != nil {
		d.folder = opts.Folder
	}

	var records []*foldedRecord
	s := NewScanner(r)
	for s.Scan() {
		rec := s.Record()
		folded, _, err := transform.String(d.folder(), rec.Headword)
		if err != nil {
			return nil, fmt.Errorf("folding headword %q: %w", rec.Headword, err)
		}
		records = append(records, &foldedRecord{
			folded: folded,
			record: rec,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	d.index = index.New(records, func(r *foldedRecord) string {
		return r.folded
	}, strings.Compare)

	return &d, nil
}

// Open reads the dictionary file at path. Files with a .dz or .gz extension
// are decompressed.
func Open(path string, opts *Options) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".dz" || ext == ".gz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer z.Close()
		r = z
	}

	d, err := New(r, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return d, nil
}

// Len returns the number of records in the dictionary.
func (d *Dict) Len() int {
	return d.index.Len()
}

// Search returns the records whose headword matches the query. Records are
// returned in file order.
func (d *Dict) Search(query string) ([]*Record, error) {
	folded, _, err := transform.String(d.folder(), query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	var records []*Record
	for _, r := range d.index.Search(folded) {
		records = append(records, r.record)
	}
	return records, nil
}
