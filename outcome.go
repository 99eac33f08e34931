// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmldict

import (
	"errors"

	"github.com/ianlewis/go-xmldict/headword"
)

var (
	// ErrRead indicates an input file could not be read as text.
	ErrRead = errors.New("read error")

	// ErrParse indicates an input file is not well-formed XML or its article
	// cannot be stored as a record.
	ErrParse = errors.New("parse error")

	// ErrDiscover indicates the input directory could not be enumerated.
	ErrDiscover = errors.New("discovering input files")

	// ErrWrite indicates the output could not be written.
	ErrWrite = errors.New("writing output")

	errOutcome = errors.New("unexpected outcome")
)

// Status is the status of a processed file.
type Status int

const (
	// StatusExtracted indicates a headword and content were extracted.
	StatusExtracted Status = iota

	// StatusSkipped indicates the file has no headword.
	StatusSkipped

	// StatusFailed indicates the file could not be read or parsed.
	StatusFailed
)

// String implements [fmt.Stringer].
func (s Status) String() string {
	switch s {
	case StatusExtracted:
		return "extracted"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of processing a single file. Exactly one Outcome is
// produced for every discovered file.
type Outcome struct {
	// Index is the file's position in discovery order.
	Index int

	// Path is the file's path.
	Path string

	// Status is the outcome's status.
	Status Status

	// Result is set if Status is StatusExtracted.
	Result *headword.Result

	// Err is set if Status is StatusFailed.
	Err error
}

// Summary summarizes a conversion.
type Summary struct {
	// Total is the number of files processed.
	Total int

	// Written is the number of records written.
	Written int

	// Skipped are the outcomes of files without a headword.
	Skipped []Outcome

	// Failed are the outcomes of files that could not be read or parsed.
	Failed []Outcome
}
