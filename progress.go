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
	"fmt"
	"io"
	"math"
)

// progressInterval returns the number of records between progress messages
// for a conversion of total files.
func progressInterval(total int) int {
	var n int
	switch {
	case total <= 100:
		n = 1
	case total <= 10_000:
		n = total / 100
	default:
		n = total / 200
	}
	return max(n, 1)
}

// progress reports the number of records written. It is owned by the writer.
type progress struct {
	w        io.Writer
	total    int
	interval int
	count    int
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{
		w:        w,
		total:    total,
		interval: progressInterval(total),
	}
}

func (p *progress) start() {
	fmt.Fprintf(p.w, "Processing %d files (updating progress every %d entries)...\n", p.total, p.interval)
}

// record counts a written record.
func (p *progress) record() {
	p.count++
	if p.count%p.interval != 0 {
		return
	}
	percent := math.Round(float64(p.count) / float64(p.total) * 100)
	fmt.Fprintf(p.w, "Progress: %.0f%% (%d/%d entries)\n", percent, p.count, p.total)
}

func (p *progress) finish() {
	fmt.Fprintf(p.w, "Final count: %d entries processed\n", p.count)
}
