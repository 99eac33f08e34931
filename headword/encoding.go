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
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var encodingRegex = regexp.MustCompile(`^\s*<\?xml\s[^?]*\bencoding\s*=\s*["']([A-Za-z0-9._:-]+)["']`)

// decode returns the document as UTF-8. Documents that declare a different
// encoding in their XML declaration are converted.
func decode(src []byte) ([]byte, error) {
	src = bytes.TrimPrefix(src, utf8BOM)

	if m := encodingRegex.FindSubmatch(src); m != nil {
		label := strings.ToLower(string(m[1]))
		if label != "utf-8" && label != "utf8" {
			r, err := charset.NewReaderLabel(label, bytes.NewReader(src))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrEncoding, label)
			}
			src, err = io.ReadAll(r)
			if err != nil {
				return nil, fmt.Errorf("%w: decoding %q: %w", ErrEncoding, label, err)
			}
		}
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrEncoding)
	}
	return src, nil
}

// utf8CharsetReader is used as the decoder's CharsetReader. Documents are
// already converted to UTF-8 by decode.
func utf8CharsetReader(_ string, r io.Reader) (io.Reader, error) {
	return r, nil
}
