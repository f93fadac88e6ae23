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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-hanzidata/datasets"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "List known datasets",
	Description: `List the built-in datasets and any datasets defined in the
configuration file.`,
	Action: func(c *cli.Context) error {
		env, err := newAppEnv(c)
		if err != nil {
			return err
		}
		defer env.Close()

		tbl := table.New("NAME", "TRANSPORT", "DESCRIPTION").WithWriter(c.App.Writer)
		for _, def := range datasets.All() {
			transport := "bundled"
			if def.Remote {
				transport = "remote"
			}
			tbl.AddRow(def.Name, transport, def.Description)
		}
		for _, sc := range env.config.Sources {
			transport := "remote"
			if len(sc.Files) > 0 {
				transport = "local"
			}
			tbl.AddRow(sc.Name, transport, sc.Description)
		}
		tbl.Print()

		return nil
	},
}
