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
	"sort"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzidata/source"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "Show normalized dataset entries",
	ArgsUsage: "NAME [KEY...]",
	Description: `Show the normalized records of a dataset. With keys, only the matching
entries are shown; otherwise entries are listed up to the --limit.`,
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "limit",
			Usage:   "show at most `N` entries (0 for all)",
			Aliases: []string{"n"},
			Value:   20,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() < 1 {
			return fmt.Errorf("%w: no dataset name given", ErrHzutil)
		}

		env, err := newAppEnv(c)
		if err != nil {
			return err
		}
		defer env.Close()

		src, err := env.newSource(c.Args().First())
		if err != nil {
			return err
		}
		defer src.Close()

		if dl, ok := src.(source.Downloader); ok {
			if err := dl.Download(c.Context, false); err != nil {
				//nolint:wrapcheck // download errors carry context
				return err
			}
		}
		data, err := src.Read()
		if err != nil {
			//nolint:wrapcheck // read errors carry context
			return err
		}

		keys := c.Args().Slice()[1:]
		if len(keys) == 0 {
			keys = sortedKeys(data, c.Int("limit"))
		}

		tbl := table.New("KEY", "FIELD", "VALUE").WithWriter(c.App.Writer)
		for _, key := range keys {
			record, ok := data[key]
			if !ok {
				continue
			}
			fields := make([]string, 0, len(record))
			for field := range record {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				tbl.AddRow(key, field, record[field])
			}
		}
		tbl.Print()

		return nil
	},
}

// sortedKeys returns up to limit keys of data in sorted order.
func sortedKeys(data source.Data, limit int) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
