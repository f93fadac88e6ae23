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

package hanzidata

import (
	"errors"
	"strings"

	"github.com/ianlewis/go-hanzidata/source"
)

// ErrMash indicates that Mash was called with too few datasets.
var ErrMash = errors.New("mash expects at least 2 datasets")

// valueSeparator joins conflicting field values collected from different
// sources for the same key.
const valueSeparator = "; "

// Mash merges the normalized data of two or more sources into a single
// dataset. Records for the same key are combined field by field; because
// every source namespaces its field names with its key prefix, fields
// from different sources never collide. When the same field does appear
// more than once, the first value is kept and each genuinely different
// later value is appended, separated by "; ". Duplicate values are
// dropped.
//
// The inputs are not modified.
func Mash(datasets ...source.Data) (source.Data, error) {
	return mash(false, datasets)
}

// MashAnnotate is like [Mash] but treats the first dataset as the base:
// keys that are not present in the first dataset are ignored, so the
// remaining datasets only annotate existing entries.
func MashAnnotate(datasets ...source.Data) (source.Data, error) {
	return mash(true, datasets)
}

func mash(annotate bool, datasets []source.Data) (source.Data, error) {
	if len(datasets) < 2 {
		return nil, ErrMash
	}

	mashed := make(source.Data)
	for i, data := range datasets {
		// The first dataset always seeds the result, even when
		// annotating.
		update(mashed, data, annotate && i > 0)
	}
	return mashed, nil
}

// update merges other into mashed. When annotate is true, keys missing
// from mashed are skipped.
func update(mashed, other source.Data, annotate bool) {
	for key, record := range other {
		existing, ok := mashed[key]
		if !ok {
			if annotate {
				continue
			}
			existing = make(source.Record, len(record))
			mashed[key] = existing
		}
		for field, value := range record {
			existing[field] = combine(existing[field], value)
		}
	}
}

// combine merges a new field value into an existing one, dropping
// duplicates.
func combine(existing, value string) string {
	if existing == "" {
		return value
	}
	if value == "" {
		return existing
	}
	for _, v := range strings.Split(existing, valueSeparator) {
		if v == value {
			return existing
		}
	}
	return existing + valueSeparator + value
}
