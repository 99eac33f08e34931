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

package headword_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-xmldict/headword"
)

const decl = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// TestExtract tests Extract.
func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		opts     *headword.Options
		expected *headword.Result
		err      error
	}{
		{
			name: "default tag by class",
			doc:  decl + `<div class="mida">hoge</div>`,
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<div class="mida">hoge</div>`,
			},
		},
		{
			name: "tag name",
			doc:  decl + `<article><hw>hoge</hw><p>fuga</p></article>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<article><hw>hoge</hw><p>fuga</p></article>`,
			},
		},
		{
			name: "class attribute on any element",
			doc:  decl + `<article><span class="hw">hoge</span></article>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<article><span class="hw">hoge</span></article>`,
			},
		},
		{
			name: "first match wins",
			doc:  decl + `<d><hw>hoge</hw><hw>fuga</hw></d>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<d><hw>hoge</hw><hw>fuga</hw></d>`,
			},
		},
		{
			name: "class must match exactly",
			doc:  decl + `<d><span class="hw big">hoge</span></d>`,
			opts: &headword.Options{Tag: "hw"},
		},
		{
			name: "no match",
			doc:  decl + `<d><p>hoge</p></d>`,
			opts: &headword.Options{Tag: "hw"},
		},
		{
			name: "empty headword",
			doc:  decl + `<d><hw>  </hw><hw>fuga</hw></d>`,
			opts: &headword.Options{Tag: "hw"},
		},
		{
			name: "self closing headword",
			doc:  decl + `<d><hw/></d>`,
			opts: &headword.Options{Tag: "hw"},
		},
		{
			name: "whitespace folded",
			doc:  decl + "<d><hw>\n  hoge\n  fuga\n</hw></d>",
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge fuga",
				Content:  "<d><hw> hoge fuga </hw></d>",
			},
		},
		{
			name: "first token",
			doc:  decl + `<d><hw>hoge fuga</hw></d>`,
			opts: &headword.Options{Tag: "hw", Policy: headword.PolicyFirstToken},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<d><hw>hoge fuga</hw></d>`,
			},
		},
		{
			name: "inner markup",
			doc:  decl + `<d><hw>hoge <b>fuga</b></hw></d>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge <b>fuga</b>",
				Content:  `<d><hw>hoge <b>fuga</b></hw></d>`,
			},
		},
		{
			name: "direct text only",
			doc:  decl + `<d><hw>hoge <b>fuga</b> &amp; pico</hw></d>`,
			opts: &headword.Options{Tag: "hw", Capture: headword.CaptureText},
			expected: &headword.Result{
				Headword: "hoge & pico",
				Content:  `<d><hw>hoge <b>fuga</b> &amp; pico</hw></d>`,
			},
		},
		{
			name: "flattened text",
			doc:  decl + `<d><hw>hoge <b>fuga</b></hw></d>`,
			opts: &headword.Options{Tag: "hw", Capture: headword.CaptureFlatten},
			expected: &headword.Result{
				Headword: "hoge fuga",
				Content:  `<d><hw>hoge <b>fuga</b></hw></d>`,
			},
		},
		{
			name: "html entity",
			doc:  decl + `<d><hw>hoge&nbsp;fuga</hw></d>`,
			opts: &headword.Options{Tag: "hw", Capture: headword.CaptureText},
			expected: &headword.Result{
				Headword: "hoge fuga",
				Content:  `<d><hw>hoge&nbsp;fuga</hw></d>`,
			},
		},
		{
			name: "no declaration",
			doc:  `<d><hw>hoge</hw></d>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<d><hw>hoge</hw></d>`,
			},
		},
		{
			name: "unterminated headword",
			doc:  decl + `<d><hw>hoge`,
			opts: &headword.Options{Tag: "hw"},
			err:  headword.ErrSyntax,
		},
		{
			name: "malformed tag",
			doc:  decl + `<d><hw hoge</hw></d>`,
			opts: &headword.Options{Tag: "hw"},
			err:  headword.ErrSyntax,
		},
		{
			name: "invalid utf-8",
			doc:  decl + "<d><hw>\xff\xfe</hw></d>",
			opts: &headword.Options{Tag: "hw"},
			err:  headword.ErrEncoding,
		},
		{
			name: "unknown encoding",
			doc:  `<?xml version="1.0" encoding="x-unknown"?>` + "\n<d><hw>hoge</hw></d>",
			opts: &headword.Options{Tag: "hw"},
			err:  headword.ErrEncoding,
		},
		{
			name: "latin-1 document",
			doc:  `<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n<d><hw>caf\xe9</hw></d>",
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "café",
				Content:  `<d><hw>café</hw></d>`,
			},
		},
		{
			name: "byte order mark",
			doc:  "\xef\xbb\xbf" + decl + `<d><hw>hoge</hw></d>`,
			opts: &headword.Options{Tag: "hw"},
			expected: &headword.Result{
				Headword: "hoge",
				Content:  `<d><hw>hoge</hw></d>`,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := headword.Extract([]byte(test.doc), test.opts)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Extract: want error %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}

			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Extract (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestExtract_strict tests entry scoped matching.
func TestExtract_strict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "inside entry",
			doc:      `<body><div class="entry"><div class="mida">hoge</div></div></body>`,
			expected: "hoge",
		},
		{
			name:     "outside entry ignored",
			doc:      `<body><div class="mida">fuga</div><div class="entry"><div class="mida">hoge</div></div></body>`,
			expected: "hoge",
		},
		{
			name: "nested entry tag",
			doc: `<body><div class="entry"><div class="sense"><div>x</div></div>` +
				`<div class="mida">hoge</div></div></body>`,
			expected: "hoge",
		},
		{
			name:     "entry closed before match",
			doc:      `<body><div class="entry"><div>x</div></div><div class="mida">fuga</div></body>`,
			expected: "",
		},
		{
			name: "second entry",
			doc: `<body><div class="entry"><p>x</p></div>` +
				`<div class="entry"><span class="mida">hoge</span></div></body>`,
			expected: "hoge",
		},
		{
			name:     "direct text only by default",
			doc:      `<body><div class="entry"><div class="mida">hoge<sup>1</sup></div></div></body>`,
			expected: "hoge",
		},
		{
			name:     "tag name inside entry",
			doc:      `<body><section class="entry"><mida>hoge</mida></section></body>`,
			expected: "hoge",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := headword.Extract([]byte(decl+test.doc), &headword.Options{
				Tag:    headword.DefaultTag,
				Strict: true,
			})
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}

			var hw string
			if got != nil {
				hw = got.Headword
			}
			if diff := cmp.Diff(test.expected, hw); diff != "" {
				t.Fatalf("Extract (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestExtract_policyEquivalence checks that a tag name match and a class
// attribute match on the same value extract the same headword.
func TestExtract_policyEquivalence(t *testing.T) {
	t.Parallel()

	opts := &headword.Options{Tag: "hw"}
	byName, err := headword.Extract([]byte(decl+`<d><hw>hoge fuga</hw></d>`), opts)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	byClass, err := headword.Extract([]byte(decl+`<d><div class="hw">hoge fuga</div></d>`), opts)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if byName == nil || byClass == nil {
		t.Fatalf("Extract: want headwords, got: %v, %v", byName, byClass)
	}

	if diff := cmp.Diff(byName.Headword, byClass.Headword); diff != "" {
		t.Fatalf("headword (-name, +class):\n%s", diff)
	}
}
