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

	hanzidata "github.com/ianlewis/go-hanzidata"
	"github.com/ianlewis/go-hanzidata/internal/folding"
	"github.com/ianlewis/go-hanzidata/source"
)

// unihanURL is the Unicode Han database archive.
const unihanURL = "https://www.unicode.org/Public/UCD/latest/ucd/Unihan.zip"

// unihanMember is the readings file inside the Unihan archive.
const unihanMember = "Unihan_Readings.txt"

// NewUnihan returns a source for the Unihan readings dataset. Records are
// keyed by character and carry one field per Unihan tag, such as
// "Unihan-kMandarin" and "Unihan-kDefinition".
func NewUnihan(opts ...source.Option) (*source.RemoteArchive, error) {
	defaults := []source.Option{
		source.WithParser(&unihanParser{keyPrefix: "Unihan-"}),
	}
	return source.NewRemoteArchive(
		"Unihan",
		unihanURL,
		[]string{unihanMember},
		append(defaults, opts...)...,
	)
}

// unihanParser parses Unihan data files. Each row holds one
// (code point, tag, value) triple and a character's record accumulates
// one field per tag.
type unihanParser struct {
	keyPrefix string
}

// ProcessFile implements [source.RowParser].
func (p *unihanParser) ProcessFile(name string, rows *source.Scanner) (source.Data, error) {
	data := make(source.Data)
	for rows.Scan() {
		row := rows.Row()
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		cells := strings.SplitN(row, "\t", 3)
		if len(cells) != 3 {
			continue
		}

		char, err := hanzidata.HexToRune(cells[0])
		if err != nil {
			// Rows not keyed by a code point are ragged data.
			continue
		}
		tag := folding.Fold(cells[1])
		if tag == "" {
			continue
		}

		key := string(char)
		record, ok := data[key]
		if !ok {
			record = make(source.Record)
			data[key] = record
		}
		record[p.keyPrefix+tag] = folding.Fold(cells[2])
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", source.ErrUnavailable, name, err)
	}
	return data, nil
}
