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

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-xmldict/internal/folding"
)

var (
	// ErrSyntax indicates the document is not well-formed XML up to the end
	// of the headword region.
	ErrSyntax = errors.New("xml syntax error")

	// ErrEncoding indicates the document could not be decoded as text.
	ErrEncoding = errors.New("unsupported encoding")
)

// Result is an extracted dictionary article.
type Result struct {
	// Headword is the article's headword. It is never empty and never
	// contains a line break.
	Headword string

	// Content is the document without its XML declaration, trimmed of
	// surrounding whitespace.
	Content string
}

// Extract scans the XML document in src and returns its headword and content.
// Extract returns a nil Result and a nil error if the document has no
// non-empty headword. If opts is nil, DefaultOptions is used.
func Extract(src []byte, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions
	}

	doc, err := decode(src)
	if err != nil {
		return nil, err
	}

	raw, found, err := newScanner(doc, opts).scan()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	hw, err := Normalize(raw, opts.Policy)
	if err != nil {
		return nil, err
	}
	if hw == "" {
		return nil, nil
	}

	content, err := Content(doc, opts.Join)
	if err != nil {
		return nil, err
	}

	return &Result{
		Headword: hw,
		Content:  content,
	}, nil
}

// Normalize trims and folds whitespace in a captured headword and applies the
// headword policy.
func Normalize(raw string, policy Policy) (string, error) {
	hw, _, err := transform.String(&folding.WhitespaceFolder{}, raw)
	if err != nil {
		return "", fmt.Errorf("folding headword: %w", err)
	}
	if policy == PolicyFirstToken {
		if i := strings.IndexByte(hw, ' '); i >= 0 {
			hw = hw[:i]
		}
	}
	return hw, nil
}
