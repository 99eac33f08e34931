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
	"fmt"
	"os"

	"github.com/ianlewis/go-xmldict/headword"
	"github.com/ianlewis/go-xmldict/mdict"
)

// ProcessFile reads the file at path and extracts its headword and content.
// Errors are reported in the returned Outcome. The Outcome's Index is not set.
func ProcessFile(path string, opts *headword.Options) Outcome {
	o := Outcome{
		Path: path,
	}

	src, err := os.ReadFile(path)
	if err != nil {
		o.Status = StatusFailed
		o.Err = fmt.Errorf("%w: %w", ErrRead, err)
		return o
	}

	result, err := headword.Extract(src, opts)
	switch {
	case errors.Is(err, headword.ErrEncoding):
		o.Status = StatusFailed
		o.Err = fmt.Errorf("%w: %w", ErrRead, err)
	case err != nil:
		o.Status = StatusFailed
		o.Err = fmt.Errorf("%w: %w", ErrParse, err)
	case result == nil:
		o.Status = StatusSkipped
	default:
		// Records the writer would reject fail here so that they do not
		// stop the conversion.
		rec := &mdict.Record{Headword: result.Headword, Content: result.Content}
		if err := rec.Validate(); err != nil {
			o.Status = StatusFailed
			o.Err = fmt.Errorf("%w: %w", ErrParse, err)
			return o
		}
		o.Status = StatusExtracted
		o.Result = result
	}
	return o
}
