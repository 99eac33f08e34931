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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// LineFolder joins lines. Every whitespace span that contains a line break is
// replaced with a single ASCII space. Whitespace spans without a line break
// are copied unchanged so that markup within a line keeps its spacing.
type LineFolder struct {
	// span holds the pending whitespace span.
	span []byte

	// spanBreak is true if span contains a line break.
	spanBreak bool
}

// Transform implements [transform.Transformer.Transform].
func (l *LineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(c) {
			l.span = append(l.span, src[nSrc:nSrc+size]...)
			if c == '\n' || c == '\r' {
				l.spanBreak = true
			}
			nSrc += size
			continue
		}

		n, err := l.flush(dst[nDst:])
		nDst += n
		if err != nil {
			return nDst, nSrc, err
		}

		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	if atEOF {
		n, err := l.flush(dst[nDst:])
		nDst += n
		if err != nil {
			return nDst, nSrc, err
		}
	}

	return nDst, nSrc, nil
}

// flush writes the pending whitespace span to dst.
func (l *LineFolder) flush(dst []byte) (int, error) {
	if len(l.span) == 0 {
		return 0, nil
	}

	out := l.span
	if l.spanBreak {
		out = []byte{' '}
	}
	if len(out) > len(dst) {
		return 0, transform.ErrShortDst
	}
	n := copy(dst, out)
	l.span = l.span[:0]
	l.spanBreak = false
	return n, nil
}

// Reset implements [transform.Transformer.Reset].
func (l *LineFolder) Reset() {
	l.span = l.span[:0]
	l.spanBreak = false
}
