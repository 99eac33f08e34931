// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/ianlewis/go-dictzip"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xmldict "github.com/ianlewis/go-xmldict"
	"github.com/ianlewis/go-xmldict/internal/config"
	"github.com/ianlewis/go-xmldict/internal/logging"
)

// loadConfig reads the config file, if any, and applies the flags that were
// set on the command line or in the environment.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			//nolint:wrapcheck // config errors are wrapped by the caller.
			return nil, err
		}
	}

	if c.IsSet("headword-tag") {
		cfg.HeadwordTag = c.String("headword-tag")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("capture") {
		cfg.Capture = c.String("capture")
	}
	if c.IsSet("headword") {
		cfg.Headword = c.String("headword")
	}
	if c.IsSet("join") {
		cfg.Join = c.String("join")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("dictzip") {
		cfg.Dictzip = c.Bool("dictzip")
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	//nolint:wrapcheck // config errors are wrapped by the caller.
	return cfg, cfg.Validate()
}

func convertAction(c *cli.Context) error {
	if c.NArg() != 1 {
		fmt.Fprintf(c.App.ErrWriter, "Usage: %s [--headword-tag TAG] INPUT_DIR\n", c.App.Name)
		return fmt.Errorf("%w: expected one INPUT_DIR argument, got %d", ErrFlagParse, c.NArg())
	}
	dir := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	// Validated by loadConfig.
	opts, err := cfg.HeadwordOptions()
	check(err)

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: zapcore.AddSync(c.App.ErrWriter),
	})
	check(err)
	//nolint:errcheck // nothing to do if the log can't be synced.
	defer logger.Sync()

	// Enumerate the input before the output is truncated.
	paths, err := xmldict.Discover(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrXML2Mdict, err)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("%w: creating output: %w", ErrXML2Mdict, err)
	}
	defer f.Close()

	var w io.Writer = f
	var z *dictzip.Writer
	if cfg.Dictzip {
		z, err = dictzip.NewWriter(f)
		if err != nil {
			return fmt.Errorf("%w: creating dictzip writer: %w", ErrXML2Mdict, err)
		}
		w = z
	}

	conv := xmldict.NewConverter(&xmldict.Options{
		Headword: opts,
		Jobs:     cfg.Jobs,
		Logger:   logger,
		Progress: c.App.Writer,
	})
	summary, err := conv.Convert(c.Context, paths, w)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrXML2Mdict, err)
	}

	if z != nil {
		if err := z.Close(); err != nil {
			return fmt.Errorf("%w: closing dictzip writer: %w", ErrXML2Mdict, err)
		}
	}
	// Closing the dictzip writer may close f.
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("%w: closing output: %w", ErrXML2Mdict, err)
	}

	logger.Debug("conversion finished",
		zap.String("output", cfg.Output),
		zap.Int("written", summary.Written),
		zap.Int("skipped", len(summary.Skipped)),
		zap.Int("failed", len(summary.Failed)),
	)
	printProblems(c.App.Writer, summary)
	return nil
}

// printProblems prints the files that were skipped or failed in discovery
// order.
func printProblems(w io.Writer, s *xmldict.Summary) {
	problems := slices.Concat(s.Skipped, s.Failed)
	if len(problems) == 0 {
		return
	}
	slices.SortFunc(problems, func(a, b xmldict.Outcome) int {
		return a.Index - b.Index
	})

	tbl := table.New("STATUS", "FILE", "REASON").WithWriter(w)
	for _, o := range problems {
		reason := "no headword found"
		if o.Err != nil {
			reason = o.Err.Error()
		}
		tbl.AddRow(o.Status, o.Path, reason)
	}
	tbl.Print()
}
