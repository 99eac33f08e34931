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
	"regexp"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-xmldict/internal/folding"
)

// declRegex matches a leading XML declaration. It does not match other
// processing instructions such as <?xml-stylesheet?>.
var declRegex = regexp.MustCompile(`^\s*<\?xml(\s[^?]*)?\?>[ \t]*(\r?\n)?`)

// Content returns the document with its XML declaration removed and its lines
// joined according to join. The result is trimmed of surrounding whitespace.
func Content(doc []byte, join Join) (string, error) {
	body := stripDeclaration(doc)

	switch join {
	case JoinLines:
		s := strings.ReplaceAll(string(body), "\r\n", "\n")
		return strings.TrimSpace(s), nil
	case JoinSingle:
		s, _, err := transform.Bytes(&folding.LineFolder{}, body)
		if err != nil {
			return "", fmt.Errorf("joining content: %w", err)
		}
		return string(bytes.TrimSpace(s)), nil
	default:
		return "", fmt.Errorf("%w: join %d", ErrInvalidOption, join)
	}
}

func stripDeclaration(doc []byte) []byte {
	if loc := declRegex.FindIndex(doc); loc != nil {
		return doc[loc[1]:]
	}
	return doc
}
