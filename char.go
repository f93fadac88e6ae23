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
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// HexToRune converts a Unicode code point notation string like "U+4E5D"
// to its corresponding character. The "U+" prefix is optional. Unihan
// keys its data by this notation.
func HexToRune(s string) (rune, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "U+")
	ordinal, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return utf8.RuneError, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	r := rune(ordinal)
	if !utf8.ValidRune(r) {
		return utf8.RuneError, fmt.Errorf("invalid code point %q", s)
	}
	return r, nil
}
