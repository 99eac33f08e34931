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

	"go.uber.org/zap"

	"github.com/ianlewis/go-xmldict/mdict"
)

// aggregator writes outcomes in discovery order. Outcomes that arrive before
// their turn are held until every earlier outcome has been handled.
type aggregator struct {
	w        *mdict.Writer
	progress *progress
	logger   *zap.Logger

	// pending holds outcomes received out of order, by index.
	pending map[int]Outcome

	// next is the index of the next outcome to handle.
	next int

	summary Summary
}

func newAggregator(w *mdict.Writer, p *progress, logger *zap.Logger, total int) *aggregator {
	return &aggregator{
		w:        w,
		progress: p,
		logger:   logger,
		pending:  make(map[int]Outcome),
		summary: Summary{
			Total: total,
		},
	}
}

// run handles outcomes from in until it is closed.
func (a *aggregator) run(in <-chan Outcome) (*Summary, error) {
	a.progress.start()

	for o := range in {
		if err := a.add(o); err != nil {
			return nil, err
		}
	}

	if a.next != a.summary.Total || len(a.pending) > 0 {
		return nil, fmt.Errorf("%w: %d of %d outcomes received", errOutcome, a.next+len(a.pending), a.summary.Total)
	}
	if err := a.w.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	a.progress.finish()
	a.summary.Written = a.w.Count()
	return &a.summary, nil
}

func (a *aggregator) add(o Outcome) error {
	if _, dup := a.pending[o.Index]; dup || o.Index < a.next || o.Index >= a.summary.Total {
		return fmt.Errorf("%w: duplicate or out of range index %d for %q", errOutcome, o.Index, o.Path)
	}
	a.pending[o.Index] = o

	for {
		next, ok := a.pending[a.next]
		if !ok {
			return nil
		}
		delete(a.pending, a.next)
		a.next++

		if err := a.handle(next); err != nil {
			return err
		}
	}
}

func (a *aggregator) handle(o Outcome) error {
	switch o.Status {
	case StatusExtracted:
		if err := a.w.Write(&mdict.Record{
			Headword: o.Result.Headword,
			Content:  o.Result.Content,
		}); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		a.progress.record()

	case StatusSkipped:
		a.logger.Info("no headword found", zap.String("path", o.Path))
		a.summary.Skipped = append(a.summary.Skipped, o)

	case StatusFailed:
		a.logger.Warn("error processing file", zap.String("path", o.Path), zap.Error(o.Err))
		a.summary.Failed = append(a.summary.Failed, o)

	default:
		return fmt.Errorf("%w: status %v for %q", errOutcome, o.Status, o.Path)
	}
	return nil
}
