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

	"github.com/ianlewis/go-hanzidata/source"
)

// cedictURL is the gzip-compressed CC-CEDICT export published by MDBG.
const cedictURL = "https://www.mdbg.net/chinese/export/cedict/cedict_1_0_ts_utf-8_mdbg.txt.gz"

// cedictMember names the decompressed dictionary file.
const cedictMember = "cedict_1_0_ts_utf-8_mdbg.txt"

// NewCEDICT returns a source for the CC-CEDICT dictionary. Records are
// keyed by simplified form and carry "CEDICT-traditional",
// "CEDICT-pinyin", and "CEDICT-definitions" fields.
func NewCEDICT(opts ...source.Option) (*source.RemoteArchive, error) {
	defaults := []source.Option{
		source.WithParser(&cedictParser{keyPrefix: "CEDICT-"}),
	}
	return source.NewRemoteArchive(
		"CEDICT",
		cedictURL,
		[]string{cedictMember},
		append(defaults, opts...)...,
	)
}

// cedictParser parses CC-CEDICT entry lines of the form
//
//	傳統 传统 [chuan2 tong3] /tradition/traditional/
type cedictParser struct {
	keyPrefix string
}

// ProcessFile implements [source.RowParser].
func (p *cedictParser) ProcessFile(name string, rows *source.Scanner) (source.Data, error) {
	data := make(source.Data)
	for rows.Scan() {
		row := rows.Row()
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		traditional, rest, ok := strings.Cut(row, " ")
		if !ok {
			continue
		}
		simplified, rest, ok := strings.Cut(rest, " ")
		if !ok || simplified == "" {
			continue
		}

		pinyinStart := strings.IndexByte(rest, '[')
		pinyinEnd := strings.IndexByte(rest, ']')
		if pinyinStart < 0 || pinyinEnd < pinyinStart {
			continue
		}
		pinyin := rest[pinyinStart+1 : pinyinEnd]
		definitions := strings.Trim(strings.TrimSpace(rest[pinyinEnd+1:]), "/")

		data[simplified] = source.Record{
			p.keyPrefix + "traditional": traditional,
			p.keyPrefix + "pinyin":      pinyin,
			p.keyPrefix + "definitions": definitions,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", source.ErrUnavailable, name, err)
	}
	return data, nil
}
