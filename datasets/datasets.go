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

// Package datasets provides ready-made sources for well-known Chinese
// word and character datasets. Each dataset composes a transport from the
// source package with a format-specific row parser; small reference lists
// are bundled with the package itself while the larger datasets are
// downloaded on demand.
package datasets

import (
	"embed"
	"sort"

	"github.com/ianlewis/go-hanzidata/source"
)

//go:embed data/*.csv
var dataFS embed.FS

// Definition describes one known dataset.
type Definition struct {
	// Name is the dataset's short stable label.
	Name string

	// Description is a one-line description of the dataset.
	Description string

	// Remote is true when the dataset is downloaded rather than bundled.
	Remote bool

	// New constructs the dataset's source.
	New func(opts ...source.Option) (source.Source, error)
}

// All returns the definitions of every known dataset, sorted by name.
func All() []Definition {
	defs := []Definition{
		{
			Name:        "HSK",
			Description: "HSK (汉语水平考试) vocabulary list with levels",
			New: func(opts ...source.Option) (source.Source, error) {
				return NewHSK(opts...)
			},
		},
		{
			Name:        "TOCFL",
			Description: "TOCFL (華語文能力測驗) vocabulary list",
			New: func(opts ...source.Option) (source.Source, error) {
				return NewTOCFL(opts...)
			},
		},
		{
			Name:        "XDCYZ",
			Description: "Modern Chinese commonly used characters (现代汉语常用字表)",
			New: func(opts ...source.Option) (source.Source, error) {
				return NewXDCYZ(opts...)
			},
		},
		{
			Name:        "SUBTLEX",
			Description: "SUBTLEX-CH word frequencies from film subtitles",
			Remote:      true,
			New: func(opts ...source.Option) (source.Source, error) {
				return NewSUBTLEX(opts...)
			},
		},
		{
			Name:        "Unihan",
			Description: "Unicode Han database readings",
			Remote:      true,
			New: func(opts ...source.Option) (source.Source, error) {
				return NewUnihan(opts...)
			},
		},
		{
			Name:        "CEDICT",
			Description: "CC-CEDICT Chinese-English dictionary",
			Remote:      true,
			New: func(opts ...source.Option) (source.Source, error) {
				return NewCEDICT(opts...)
			},
		},
		{
			Name:        "JunDa",
			Description: "Jun Da modern Chinese character frequency list",
			Remote:      true,
			New: func(opts ...source.Option) (source.Source, error) {
				return NewJunDa(opts...)
			},
		},
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Lookup returns the definition of the named dataset.
func Lookup(name string) (Definition, bool) {
	for _, def := range All() {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}
