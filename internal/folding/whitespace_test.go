// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package folding

import (
	"testing"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    " \t \n ",
			expected: "",
		},
		{
			name:     "leading and trailing",
			input:    "  的  ",
			expected: "的",
		},
		{
			name:     "internal span collapsed",
			input:    "to\t\tbuy",
			expected: "to buy",
		},
		{
			name:     "ideographic space",
			input:    "　便宜　",
			expected: "便宜",
		},
		{
			name:     "mixed spans",
			input:    " pián 　\tyi ",
			expected: "pián yi",
		},
		{
			name:     "no whitespace",
			input:    "piányi",
			expected: "piányi",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got, want := Fold(tc.input), tc.expected; got != want {
				t.Errorf("Fold(%q): got %q, want %q", tc.input, got, want)
			}
		})
	}
}
