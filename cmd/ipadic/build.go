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
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	ipadic "github.com/ianlewis/go-ipadic"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Build and package a dictionary",
		UsageText: "build [OPTIONS]",
		Description: strings.Join([]string{
			"Build a binary dictionary from lexicon source files and package it",
			"into a zip archive. The intermediate dictionary directory is removed",
			"after packaging.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read build settings from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:    "lexicon",
				Usage:   "lexicon source `DIR`",
				Aliases: []string{"l"},
			},
			&cli.StringFlag{
				Name:  "dict-dir",
				Usage: "intermediate dictionary `DIR`",
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "output archive `FILE`",
				Aliases: []string{"o"},
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "lexicon text encoding `NAME`",
			},
			&cli.StringFlag{
				Name:  "java",
				Usage: "java executable `PATH`",
			},
			&cli.StringFlag{
				Name:  "jar",
				Usage: "dictionary builder jar `PATH`",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := &ipadic.Config{}
			if path := c.String("config"); path != "" {
				var err error
				cfg, err = ipadic.LoadConfig(path)
				if err != nil {
					return err
				}
			}

			if v := c.String("lexicon"); v != "" {
				cfg.LexiconDir = v
			}
			if v := c.String("dict-dir"); v != "" {
				cfg.DictDir = v
			}
			if v := c.String("output"); v != "" {
				cfg.Output = v
			}
			if v := c.String("encoding"); v != "" {
				cfg.Encoding = v
			}
			if v := c.String("java"); v != "" {
				cfg.Java = v
			}
			if v := c.String("jar"); v != "" {
				cfg.Jar = v
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			step := color.New(color.FgCyan)
			step.Fprintf(os.Stderr, "building %s from %s (%s)\n", cfg.DictDir, cfg.LexiconDir, cfg.Encoding)

			if err := ipadic.Build(c.Context, cfg.Builder(), cfg); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %s\n", cfg.Output)
			return nil
		},
	}
}
