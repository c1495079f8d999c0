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
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ipadic/archive"
)

func unpackCommand() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Unpack a dictionary archive",
		UsageText: "unpack ZIP DIR",
		Description: strings.Join([]string{
			"Unpack a dictionary archive flat into a directory the way a",
			"dictionary loader stages it: directory entries are discarded and",
			"all files land directly in DIR.",
		}, "\n"),
		Action: func(c *cli.Context) error {
			args := c.Args()
			if args.Len() != 2 {
				return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
			}

			zipPath := args.Get(0)
			outDir := args.Get(1)

			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return fmt.Errorf("creating %q: %w", outDir, err)
			}

			return archive.ExtractFile(zipPath, outDir)
		},
	}
}
