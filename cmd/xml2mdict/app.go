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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-xmldict/headword"
	"github.com/ianlewis/go-xmldict/internal/config"
	"github.com/ianlewis/go-xmldict/internal/logging"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// envPrefix is the prefix of environment variables that set flags.
const envPrefix = "XML2MDICT_"

// ErrXML2Mdict is a parent error for all command errors.
var ErrXML2Mdict = errors.New("xml2mdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrXML2Mdict)

// ErrNotFound indicates a lookup matched no records.
var ErrNotFound = fmt.Errorf("%w: not found", ErrXML2Mdict)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands for conversion.
	//
	// This is done because `xml2mdict --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// envVars returns the environment variable for the flag name.
func envVars(name string) []string {
	return []string{envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

func newXML2MdictApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Convert a directory of XML dictionary articles to an mdict source file.",
		ArgsUsage: "INPUT_DIR",
		Description: strings.Join([]string{
			"Every .xml file below INPUT_DIR is scanned for its headword and",
			"written as a record to the output in a stable order.",
			"http://github.com/ianlewis/go-xmldict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "headword-tag",
				Usage:   "element name or class attribute `TAG` marking the headword",
				Aliases: []string{"t"},
				Value:   headword.DefaultTag,
				EnvVars: envVars("headword-tag"),
			},
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "only accept headwords inside an entry element",
				EnvVars: envVars("strict"),
			},
			&cli.StringFlag{
				Name:    "capture",
				Usage:   "headword capture `MODE`: inner, text, or flatten",
				EnvVars: envVars("capture"),
			},
			&cli.StringFlag{
				Name:    "headword",
				Usage:   "headword `POLICY`: full or first-token",
				Value:   headword.PolicyFull.String(),
				EnvVars: envVars("headword"),
			},
			&cli.StringFlag{
				Name:    "join",
				Usage:   "content line `POLICY`: single or lines",
				Value:   headword.JoinSingle.String(),
				EnvVars: envVars("join"),
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write the dictionary to `FILE`",
				Aliases: []string{"o"},
				Value:   config.DefaultOutput,
				EnvVars: envVars("output"),
			},
			&cli.BoolFlag{
				Name:    "dictzip",
				Usage:   "compress the output with dictzip",
				EnvVars: envVars("dictzip"),
			},
			&cli.IntFlag{
				Name:        "jobs",
				Usage:       "process `N` files concurrently",
				Aliases:     []string{"j"},
				EnvVars:     envVars("jobs"),
				DefaultText: "twice the number of CPUs",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read settings from the YAML `FILE`",
				EnvVars: envVars("config"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log `LEVEL`: debug, info, warn, or error",
				Value:   "info",
				EnvVars: envVars("log-level"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log `FORMAT`: console or json",
				Value:   logging.FormatConsole,
				EnvVars: envVars("log-format"),
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			return convertAction(c)
		},
		Commands: []*cli.Command{
			lookupCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"), versionInfo.String())
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}
