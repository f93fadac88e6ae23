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

package datasets

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-hanzidata/internal/folding"
	"github.com/ianlewis/go-hanzidata/source"
)

// subtlexURL is the SUBTLEX-CH word frequency archive with English
// translations, UTF-8 edition.
const subtlexURL = "http://expsy.ugent.be/subtlex-ch/SUBTLEX_CH_131210_CE.utf8.zip"

// subtlexMember is the data file inside the SUBTLEX-CH archive.
const subtlexMember = "SUBTLEX_CH_131210_CE.utf8"

// subtlexHeaders are the columns of the SUBTLEX-CH data file. The first
// column is the word key and the trailing free-text English gloss is
// dropped from records.
var subtlexHeaders = []string{
	"word", "length", "pinyin", "pinyin.input", "wcount", "w.million",
	"log10w", "w-cd", "w-cd%", "log10cd", "dominant.pos",
	"dominant.pos.freq", "all.pos", "all.pos.freq", "english",
}

// NewSUBTLEX returns a source for the SUBTLEX-CH word frequency dataset.
// Records are keyed by word and carry frequency and part-of-speech fields
// such as "SUBTLEX-wcount" and "SUBTLEX-dominant.pos".
func NewSUBTLEX(opts ...source.Option) (*source.RemoteArchive, error) {
	defaults := []source.Option{
		source.WithParser(&subtlexParser{keyPrefix: "SUBTLEX-"}),
	}
	return source.NewRemoteArchive(
		"SUBTLEX",
		subtlexURL,
		[]string{subtlexMember},
		append(defaults, opts...)...,
	)
}

// subtlexParser parses the tab-delimited SUBTLEX-CH data file.
type subtlexParser struct {
	keyPrefix string
}

// ProcessFile implements [source.RowParser].
func (p *subtlexParser) ProcessFile(name string, rows *source.Scanner) (source.Data, error) {
	data := make(source.Data)
	for rows.Scan() {
		row := rows.Row()
		// The header row starts with the "Word" column name.
		if row == "" || strings.HasPrefix(row, "Word") {
			continue
		}

		cells := strings.Split(row, "\t")
		key := folding.Fold(cells[0])
		if key == "" {
			continue
		}

		// Skip the word key and the trailing English gloss.
		record := make(source.Record)
		for i := 1; i < len(cells) && i < len(subtlexHeaders)-1; i++ {
			record[p.keyPrefix+subtlexHeaders[i]] = folding.Fold(cells[i])
		}
		data[key] = record
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", source.ErrUnavailable, name, err)
	}
	return data, nil
}
