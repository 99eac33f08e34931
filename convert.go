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
	"context"
	"io"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-xmldict/headword"
	"github.com/ianlewis/go-xmldict/mdict"
)

// DefaultJobs returns the default number of workers.
func DefaultJobs() int {
	return 2 * runtime.NumCPU()
}

// Options are options for a Converter.
type Options struct {
	// Headword are the headword extraction options. Defaults to
	// headword.DefaultOptions.
	Headword *headword.Options

	// Jobs is the number of concurrent workers. Defaults to DefaultJobs().
	Jobs int

	// Logger receives per-file diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger

	// Progress receives progress messages. Defaults to [io.Discard].
	Progress io.Writer
}

// Converter converts XML dictionary articles into a dictionary file.
type Converter struct {
	headword *headword.Options
	jobs     int
	logger   *zap.Logger
	progress io.Writer

	// process is the file task run by the workers.
	process processFunc
}

// NewConverter returns a new Converter. If opts is nil, default options are
// used.
func NewConverter(opts *Options) *Converter {
	if opts == nil {
		opts = &Options{}
	}

	c := &Converter{
		headword: opts.Headword,
		jobs:     opts.Jobs,
		logger:   opts.Logger,
		progress: opts.Progress,
	}
	if c.headword == nil {
		c.headword = headword.DefaultOptions
	}
	if c.jobs <= 0 {
		c.jobs = DefaultJobs()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.progress == nil {
		c.progress = io.Discard
	}
	c.process = func(path string) Outcome {
		return ProcessFile(path, c.headword)
	}
	return c
}

// ConvertDir converts every .xml file below dir and writes the records to w.
func (c *Converter) ConvertDir(ctx context.Context, dir string, w io.Writer) (*Summary, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	return c.Convert(ctx, paths, w)
}

// Convert processes the files in paths and writes one record for each file
// with a headword to w. Records are written in the order of paths. Files that
// cannot be processed are reported in the returned Summary. An error is
// returned only if w cannot be written or ctx is done.
func (c *Converter) Convert(ctx context.Context, paths []string, w io.Writer) (*Summary, error) {
	c.logger.Debug("starting conversion",
		zap.Int("files", len(paths)),
		zap.Int("jobs", c.jobs),
		zap.String("tag", c.headword.Tag),
		zap.Bool("strict", c.headword.Strict),
	)

	agg := newAggregator(mdict.NewWriter(w), newProgress(c.progress, len(paths)), c.logger, len(paths))
	out := make(chan Outcome, c.jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(out)
		return distribute(gctx, newQueue(paths), c.jobs, c.process, out)
	})

	var summary *Summary
	g.Go(func() error {
		var err error
		summary, err = agg.run(out)
		return err
	})

	if err := g.Wait(); err != nil {
		// Report cancellation rather than the incomplete output it caused.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		//nolint:wrapcheck // errors are wrapped by the aggregator.
		return nil, err
	}
	return summary, nil
}
