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

package headword

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTag is the headword tag used when none is configured.
const DefaultTag = "mida"

// ErrInvalidOption indicates an option value could not be parsed.
var ErrInvalidOption = errors.New("invalid option")

// Capture selects what text of the headword element is captured.
type Capture int

const (
	// CaptureDefault is CaptureText in strict mode and CaptureInner otherwise.
	CaptureDefault Capture = iota

	// CaptureInner captures the element's inner markup verbatim.
	CaptureInner

	// CaptureText captures only character data directly inside the element,
	// with entities decoded.
	CaptureText

	// CaptureFlatten captures all text inside the element, with nested markup
	// rendered as plain text.
	CaptureFlatten
)

var captureNames = map[Capture]string{
	CaptureDefault: "default",
	CaptureInner:   "inner",
	CaptureText:    "text",
	CaptureFlatten: "flatten",
}

// String implements [fmt.Stringer].
func (c Capture) String() string {
	return captureNames[c]
}

// ParseCapture parses a capture mode name.
func ParseCapture(s string) (Capture, error) {
	return parseName(captureNames, s, "capture")
}

// Policy selects how the captured headword text is reduced.
type Policy int

const (
	// PolicyFull keeps the whole headword. Whitespace spans are folded to a
	// single space.
	PolicyFull Policy = iota

	// PolicyFirstToken keeps only the first whitespace delimited token.
	PolicyFirstToken
)

var policyNames = map[Policy]string{
	PolicyFull:       "full",
	PolicyFirstToken: "first-token",
}

// String implements [fmt.Stringer].
func (p Policy) String() string {
	return policyNames[p]
}

// ParsePolicy parses a headword policy name.
func ParsePolicy(s string) (Policy, error) {
	return parseName(policyNames, s, "headword policy")
}

// Join selects how the lines of the content are joined.
type Join int

const (
	// JoinSingle joins all lines into a single line.
	JoinSingle Join = iota

	// JoinLines keeps line breaks. CRLF line endings are converted to LF.
	JoinLines
)

var joinNames = map[Join]string{
	JoinSingle: "single",
	JoinLines:  "lines",
}

// String implements [fmt.Stringer].
func (j Join) String() string {
	return joinNames[j]
}

// ParseJoin parses a content join policy name.
func ParseJoin(s string) (Join, error) {
	return parseName(joinNames, s, "join policy")
}

// parseName returns the value named s. An empty name is the zero value.
func parseName[T comparable](names map[T]string, s, what string) (T, error) {
	var zero T
	if s == "" {
		return zero, nil
	}
	for v, name := range names {
		if strings.EqualFold(name, s) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidOption, what, s)
}

// Options configures headword extraction. Options are read-only once
// extraction starts and may be shared between goroutines.
type Options struct {
	// Tag is the element name or class attribute value that marks the
	// headword. Defaults to DefaultTag.
	Tag string

	// Strict restricts matches to entry regions.
	Strict bool

	// Capture selects the captured text.
	Capture Capture

	// Policy selects how the headword is reduced.
	Policy Policy

	// Join selects how content lines are joined.
	Join Join
}

// DefaultOptions are the default extraction options.
var DefaultOptions = &Options{
	Tag: DefaultTag,
}

func (o *Options) tag() string {
	if o.Tag == "" {
		return DefaultTag
	}
	return o.Tag
}

func (o *Options) capture() Capture {
	if o.Capture != CaptureDefault {
		return o.Capture
	}
	if o.Strict {
		return CaptureText
	}
	return CaptureInner
}
