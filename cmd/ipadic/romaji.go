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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ipadic/kana"
)

func romajiCommand() *cli.Command {
	return &cli.Command{
		Name:      "romaji",
		Usage:     "Romanize kana text",
		UsageText: "romaji [TEXT...]",
		Description: strings.Join([]string{
			"Transliterate katakana and hiragana to Hepburn romaji.",
			"Arguments are romanized one per line. With no arguments, lines are",
			"read from standard input.",
		}, "\n"),
		Action: func(c *cli.Context) error {
			if c.Args().Len() > 0 {
				for _, arg := range c.Args().Slice() {
					fmt.Fprintln(c.App.Writer, kana.Romanize(arg))
				}
				return nil
			}

			s := bufio.NewScanner(os.Stdin)
			for s.Scan() {
				fmt.Fprintln(c.App.Writer, kana.Romanize(s.Text()))
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			return nil
		},
	}
}
