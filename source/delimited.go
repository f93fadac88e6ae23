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

package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ianlewis/go-hanzidata/internal/folding"
)

// Delimited is a [RowParser] for delimited text files. It keys each row by
// the value of the index column and stores the remaining columns as the
// record, with field names namespaced by KeyPrefix.
//
// Rows with a missing or empty index value are skipped rather than
// reported as errors; most published word lists contain at least a few
// ragged rows and a single bad row should not discard a whole dataset.
// Comment rows starting with '#' are always skipped.
type Delimited struct {
	// Comma is the column separator. The default is ','.
	Comma rune

	// Headers are the expected column names in row order. When set, a
	// first row whose cells match Headers is skipped, and Headers
	// provides the record field names. When empty, field names are the
	// column positions.
	Headers []string

	// IndexColumn is the column whose value becomes the row's mapping
	// key. Rows where the index column is out of range are skipped.
	IndexColumn int

	// KeyPrefix namespaces the record field names.
	KeyPrefix string
}

// ProcessFile implements [RowParser].
func (d *Delimited) ProcessFile(name string, rows *Scanner) (Data, error) {
	sep := ","
	if d.Comma != 0 {
		sep = string(d.Comma)
	}

	data := make(Data)
	first := true
	for rows.Scan() {
		row := rows.Row()
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		cells := strings.Split(row, sep)
		for i := range cells {
			cells[i] = folding.Fold(cells[i])
		}

		if first {
			first = false
			if d.isHeaderRow(cells) {
				continue
			}
		}

		if d.IndexColumn < 0 || d.IndexColumn >= len(cells) {
			continue
		}
		key := cells[d.IndexColumn]
		if key == "" {
			continue
		}

		data[key] = d.record(cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %w", ErrUnavailable, name, err)
	}

	return data, nil
}

// isHeaderRow reports whether cells is a literal header row.
func (d *Delimited) isHeaderRow(cells []string) bool {
	if len(d.Headers) == 0 || len(cells) != len(d.Headers) {
		return false
	}
	for i, h := range d.Headers {
		if !strings.EqualFold(cells[i], h) {
			return false
		}
	}
	return true
}

// record builds the record for one row from every column except the index
// column.
func (d *Delimited) record(cells []string) Record {
	record := make(Record)
	for i, cell := range cells {
		if i == d.IndexColumn {
			continue
		}
		fieldName := strconv.Itoa(i)
		if i < len(d.Headers) {
			fieldName = d.Headers[i]
		}
		record[d.KeyPrefix+fieldName] = cell
	}
	return record
}
