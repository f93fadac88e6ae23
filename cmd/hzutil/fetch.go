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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzidata/source"
)

var fetchCommand = &cli.Command{
	Name:      "fetch",
	Usage:     "Fetch and normalize datasets",
	ArgsUsage: "[NAME...]",
	Description: `Download each named dataset, normalize it, and store the result in the
persistent cache. Bundled datasets are read directly.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Usage:   "re-download even when a cached copy exists",
			Aliases: []string{"f"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: no dataset names given", ErrHzutil)
		}

		env, err := newAppEnv(c)
		if err != nil {
			return err
		}
		defer env.Close()

		for _, name := range c.Args().Slice() {
			if err := fetchOne(c, env, name); err != nil {
				return err
			}
		}
		return nil
	},
}

// fetchOne downloads and normalizes a single dataset.
func fetchOne(c *cli.Context, env *appEnv, name string) error {
	src, err := env.newSource(name)
	if err != nil {
		return err
	}
	defer src.Close()

	if dl, ok := src.(source.Downloader); ok {
		if err := dl.Download(c.Context, c.Bool("force")); err != nil {
			//nolint:wrapcheck // download errors carry context
			return err
		}
	}

	data, err := src.Read()
	if err != nil {
		//nolint:wrapcheck // read errors carry context
		return err
	}

	fmt.Fprintf(c.App.Writer, "%s: %d entries\n", src.Name(), len(data))
	return nil
}
