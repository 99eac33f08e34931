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
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/k3a/html2text"
)

// entryClass is the class attribute value of an entry region.
const entryClass = "entry"

type state int

const (
	stateSearching state = iota
	stateInEntry
	stateInHeadword
)

// scanner finds the headword region of a document.
type scanner struct {
	d       *xml.Decoder
	doc     []byte
	tag     string
	strict  bool
	capture Capture

	state state

	// entryName is the name of the enclosing entry element and entryDepth the
	// number of open elements with that name, the entry itself included.
	entryName  xml.Name
	entryDepth int

	// hwDepth is the number of open elements within the headword region, the
	// headword element itself included.
	hwDepth int

	// innerStart is the offset just past the headword element's start tag.
	innerStart int64
	text       strings.Builder

	headword string
	done     bool
}

func newScanner(doc []byte, opts *Options) *scanner {
	d := xml.NewDecoder(bytes.NewReader(doc))
	d.Entity = xml.HTMLEntity
	d.CharsetReader = utf8CharsetReader

	return &scanner{
		d:       d,
		doc:     doc,
		tag:     opts.tag(),
		strict:  opts.Strict,
		capture: opts.capture(),
	}
}

// scan reads tokens until the headword region has been captured or the
// document ends. It reports whether a headword region was found.
func (s *scanner) scan() (string, bool, error) {
	for !s.done {
		off := s.d.InputOffset()
		tok, err := s.d.Token()
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if err != nil {
			return "", false, syntaxError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			s.startElement(t)
		case xml.EndElement:
			s.endElement(t, off)
		case xml.CharData:
			s.charData(t)
		}
	}
	return s.headword, true, nil
}

func (s *scanner) startElement(t xml.StartElement) {
	switch s.state {
	case stateSearching:
		if s.strict {
			if hasClass(t, entryClass) {
				s.state = stateInEntry
				s.entryName = t.Name
				s.entryDepth = 1
			}
			return
		}
		if s.matches(t) {
			s.beginHeadword()
		}

	case stateInEntry:
		if t.Name == s.entryName {
			s.entryDepth++
		}
		if s.matches(t) {
			s.beginHeadword()
		}

	case stateInHeadword:
		s.hwDepth++
	}
}

func (s *scanner) endElement(t xml.EndElement, off int64) {
	switch s.state {
	case stateInEntry:
		if t.Name != s.entryName {
			return
		}
		s.entryDepth--
		if s.entryDepth == 0 {
			s.state = stateSearching
		}

	case stateInHeadword:
		s.hwDepth--
		if s.hwDepth > 0 {
			return
		}
		// off is the offset of the headword element's end tag.
		inner := string(s.doc[s.innerStart:off])
		switch s.capture {
		case CaptureText:
			s.headword = s.text.String()
		case CaptureFlatten:
			s.headword = html2text.HTML2Text(inner)
		default:
			s.headword = inner
		}
		s.done = true
	}
}

func (s *scanner) charData(t xml.CharData) {
	if s.state == stateInHeadword && s.hwDepth == 1 {
		s.text.Write(t)
	}
}

func (s *scanner) beginHeadword() {
	s.state = stateInHeadword
	s.hwDepth = 1
	s.innerStart = s.d.InputOffset()
}

// matches reports whether t starts a headword region.
func (s *scanner) matches(t xml.StartElement) bool {
	return t.Name.Local == s.tag || hasClass(t, s.tag)
}

func hasClass(t xml.StartElement, value string) bool {
	for _, attr := range t.Attr {
		if attr.Name.Space == "" && attr.Name.Local == "class" && attr.Value == value {
			return true
		}
	}
	return false
}

func syntaxError(err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%w: line %d: %s", ErrSyntax, serr.Line, serr.Msg)
	}
	return fmt.Errorf("%w: %w", ErrSyntax, err)
}
