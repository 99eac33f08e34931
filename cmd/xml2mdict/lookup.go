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
	"fmt"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-xmldict/mdict"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Print the records for a headword in a converted dictionary.",
	ArgsUsage: "FILE WORD",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "render the content as plain text",
		},
	},
	HideHelp: true,
	OnUsageError: func(_ *cli.Context, err error, _ bool) error {
		return fmt.Errorf("%w: %w", ErrFlagParse, err)
	},
	Action: lookupAction,
}

func lookupAction(c *cli.Context) error {
	if c.NArg() != 2 {
		fmt.Fprintf(c.App.ErrWriter, "Usage: %s lookup [--plain] FILE WORD\n", c.App.Name)
		return fmt.Errorf("%w: expected FILE and WORD arguments, got %d", ErrFlagParse, c.NArg())
	}
	path, word := c.Args().Get(0), c.Args().Get(1)

	d, err := mdict.Open(path, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrXML2Mdict, err)
	}

	records, err := d.Search(word)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrXML2Mdict, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: %q in %s", ErrNotFound, word, path)
	}

	tbl := table.New("HEADWORD", "CONTENT").WithWriter(c.App.Writer)
	for _, r := range records {
		content := r.Content
		if c.Bool("plain") {
			content = strings.Join(strings.Fields(html2text.HTML2Text(content)), " ")
		}
		tbl.AddRow(r.Headword, content)
	}
	tbl.Print()
	return nil
}
