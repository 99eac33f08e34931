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

// Package mdict implements reading and writing flat text dictionary source
// files.
//
// Each record in the file comes in three parts:
//  1. The headword: a single line of utf-8 text.
//  2. The content: the article data, usually HTML.
//  3. The terminator: a line containing only "</>".
//
// Records are not separated by anything other than the terminator. A record,
// terminator included, is at most MaxRecordSize bytes.
package mdict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Terminator is the line that ends every record.
const Terminator = "</>"

// ErrInvalidRecord indicates a record cannot be written without corrupting
// the file.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a dictionary record.
type Record struct {
	// Headword is the record's lookup key.
	Headword string

	// Content is the article data.
	Content string
}

// String returns the record as it is written to a file.
func (r *Record) String() string {
	return r.Headword + "\n" + r.Content + "\n" + Terminator + "\n"
}

// Writer writes records to a file. Writer is not safe for concurrent use.
type Writer struct {
	w *bufio.Writer
	n int
}

// NewWriter returns a new Writer that writes to w. Records are buffered and
// must be flushed with Flush.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

// Validate reports whether the record can be written and read back
// unchanged. The headword must be a single non-empty line, no content line may
// equal the terminator, and the record must not exceed MaxRecordSize.
func (r *Record) Validate() error {
	if r.Headword == "" {
		return fmt.Errorf("%w: empty headword", ErrInvalidRecord)
	}
	if strings.ContainsAny(r.Headword, "\r\n") {
		return fmt.Errorf("%w: line break in headword %q", ErrInvalidRecord, r.Headword)
	}
	if r.Content == Terminator ||
		strings.HasPrefix(r.Content, Terminator+"\n") ||
		strings.HasSuffix(r.Content, "\n"+Terminator) ||
		strings.Contains(r.Content, "\n"+Terminator+"\n") {
		return fmt.Errorf("%w: terminator line in content of %q", ErrInvalidRecord, r.Headword)
	}
	if n := len(r.Headword) + len(r.Content) + len(Terminator) + 3; n > MaxRecordSize {
		return fmt.Errorf("%w: %q is %d bytes, over %d", ErrInvalidRecord, r.Headword, n, MaxRecordSize)
	}
	return nil
}

// Write writes a record. Records that fail Validate are not written.
func (w *Writer) Write(r *Record) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if _, err := w.w.WriteString(r.String()); err != nil {
		return fmt.Errorf("writing record %q: %w", r.Headword, err)
	}
	w.n++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int {
	return w.n
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}
