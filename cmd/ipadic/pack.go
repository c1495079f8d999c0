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
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ipadic/archive"
)

func packCommand() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Usage:     "Package a dictionary directory",
		UsageText: "pack DIR [ZIP]",
		Description: strings.Join([]string{
			"Package a dictionary directory into a zip archive.",
			"The archive path defaults to DIR.zip.",
		}, "\n"),
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() < 1 || args.Len() > 2 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			dir := args.Get(0)
			zipPath := args.Get(1)
			if zipPath == "" {
				zipPath = filepath.Clean(dir) + ".zip"
			}

			return archive.Create(zipPath, dir)
		},
	}
}
