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

package hanzidata_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	hanzidata "github.com/ianlewis/go-hanzidata"
	"github.com/ianlewis/go-hanzidata/source"
)

func TestMash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		datasets []source.Data
		expected source.Data
		err      error
	}{
		{
			name: "disjoint fields",
			datasets: []source.Data{
				{
					"的": {"HSK-level": "1"},
				},
				{
					"的": {"TOCFL-level": "1"},
					"爱": {"TOCFL-level": "1"},
				},
			},
			expected: source.Data{
				"的": {"HSK-level": "1", "TOCFL-level": "1"},
				"爱": {"TOCFL-level": "1"},
			},
		},
		{
			name: "conflicting values joined",
			datasets: []source.Data{
				{"的": {"pinyin": "de"}},
				{"的": {"pinyin": "dì"}},
			},
			expected: source.Data{
				"的": {"pinyin": "de; dì"},
			},
		},
		{
			name: "duplicate values dropped",
			datasets: []source.Data{
				{"的": {"pinyin": "de"}},
				{"的": {"pinyin": "de"}},
				{"的": {"pinyin": "dì"}},
				{"的": {"pinyin": "de"}},
			},
			expected: source.Data{
				"的": {"pinyin": "de; dì"},
			},
		},
		{
			name: "three datasets",
			datasets: []source.Data{
				{"爱": {"HSK-level": "1"}},
				{"爱": {"TOCFL-level": "1"}},
				{"爱": {"XDCYZ-strokes": "10"}},
			},
			expected: source.Data{
				"爱": {
					"HSK-level":     "1",
					"TOCFL-level":   "1",
					"XDCYZ-strokes": "10",
				},
			},
		},
		{
			name: "too few datasets",
			datasets: []source.Data{
				{"的": {"HSK-level": "1"}},
			},
			err: hanzidata.ErrMash,
		},
		{
			name:     "no datasets",
			datasets: nil,
			err:      hanzidata.ErrMash,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mashed, err := hanzidata.Mash(tc.datasets...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got: %v", tc.err, err)
			}
			if diff := cmp.Diff(tc.expected, mashed); diff != "" {
				t.Errorf("unexpected data (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMashAnnotate(t *testing.T) {
	t.Parallel()

	base := source.Data{
		"的": {"HSK-level": "1"},
	}
	extra := source.Data{
		"的": {"TOCFL-level": "1"},
		"爱": {"TOCFL-level": "1"},
	}

	mashed, err := hanzidata.MashAnnotate(base, extra)
	if err != nil {
		t.Fatalf("MashAnnotate: %v", err)
	}

	expected := source.Data{
		"的": {"HSK-level": "1", "TOCFL-level": "1"},
	}
	if diff := cmp.Diff(expected, mashed); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}

	// Inputs are not modified.
	if diff := cmp.Diff(source.Data{"的": {"HSK-level": "1"}}, base); diff != "" {
		t.Errorf("base modified (-want +got):\n%s", diff)
	}
}
