// Copyright 2026 Ian Lewis
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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ipadic/lexicon"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Show lexicon statistics",
		UsageText: "stats [OPTIONS] DIR",
		Description: "Scan the lexicon files in a directory and report entry counts.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "lexicon text encoding `NAME`",
				Value: "EUC-JP",
			},
		},
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() != 1 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			stats, err := lexicon.DirStats(args.Get(0), &lexicon.ScannerOptions{
				Encoding: c.String("encoding"),
			})
			if err != nil {
				return err
			}

			tbl := table.New("File", "Entries", "Bytes").WithWriter(c.App.Writer)
			for _, f := range stats.Files {
				tbl.AddRow(f.Path, f.Entries, f.Size)
			}
			tbl.AddRow("total", stats.Entries, stats.Size)
			tbl.Print()

			return nil
		},
	}
}
