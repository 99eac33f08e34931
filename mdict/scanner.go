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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxRecordSize is the maximum size of a single record read by a Scanner.
const MaxRecordSize = 16 << 20

// ErrTruncated indicates the file ended in the middle of a record.
var ErrTruncated = errors.New("truncated record")

var terminatorLine = []byte("\n" + Terminator + "\n")

// Scanner scans a dictionary file from start to end.
type Scanner struct {
	s   *bufio.Scanner
	rec *Record
	err error
}

// NewScanner returns a new Scanner that reads records from r.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, 64*1024), MaxRecordSize)
	s.s.Split(splitRecord)
	return s
}

// Scan advances to the next record. It returns false if the scan stops either
// by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil || !s.s.Scan() {
		return false
	}

	hw, content, _ := bytes.Cut(s.s.Bytes(), []byte{'\n'})
	if len(hw) == 0 {
		s.err = fmt.Errorf("%w: missing headword", ErrInvalidRecord)
		return false
	}
	s.rec = &Record{
		Headword: string(hw),
		Content:  string(content),
	}
	return true
}

// Record returns the most recent record read by Scan.
func (s *Scanner) Record() *Record {
	return s.rec
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning records: %w", err)
	}
	return nil
}

// splitRecord splits a record in the dictionary file. The returned token is
// the headword line followed by the content, without the final line break.
func splitRecord(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, terminatorLine); i >= 0 {
		return i + len(terminatorLine), data[:i], nil
	}

	if atEOF {
		// The final terminator may be missing its line break.
		if bytes.HasSuffix(data, terminatorLine[:len(terminatorLine)-1]) {
			return len(data), data[:len(data)-len(terminatorLine)+1], nil
		}
		return 0, nil, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(data))
	}

	// Request more data.
	return 0, nil, nil
}
