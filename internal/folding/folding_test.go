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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    "  hoge \n",
			expected: "hoge",
		},
		{
			name:     "internal spans",
			input:    "hoge\n\t fuga  pico",
			expected: "hoge fuga pico",
		},
		{
			name:     "unicode",
			input:    "　ユニ　コード ",
			expected: "ユニ コード",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&WhitespaceFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("WhitespaceFolder (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLineFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single line",
			input:    "<p>A  B</p>",
			expected: "<p>A  B</p>",
		},
		{
			name:     "lines",
			input:    "<div>\n  <p>A</p>\n</div>",
			expected: "<div> <p>A</p> </div>",
		},
		{
			name:     "crlf",
			input:    "<p>A</p>\r\n<p>B</p>",
			expected: "<p>A</p> <p>B</p>",
		},
		{
			name:     "trailing span",
			input:    "A\n\n",
			expected: "A ",
		},
		{
			name:     "trailing span without break",
			input:    "A  ",
			expected: "A  ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&LineFolder{}, test.input)
			if err != nil {
				t.Fatalf("transform.String: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("LineFolder (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestLineFolder_long checks that spans survive buffer boundaries.
func TestLineFolder_long(t *testing.T) {
	t.Parallel()

	line := strings.Repeat("x", 1000)
	input := strings.Repeat(line+"\n"+strings.Repeat(" ", 700), 20)
	expected := strings.Repeat(line+" ", 20)

	got, _, err := transform.String(&LineFolder{}, input)
	if err != nil {
		t.Fatalf("transform.String: %v", err)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("LineFolder (-want, +got):\n%s", diff)
	}
}
