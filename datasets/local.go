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
	"github.com/ianlewis/go-hanzidata/source"
)

// NewHSK returns a source over the bundled HSK vocabulary list. Records
// are keyed by word and carry an "HSK-level" field.
func NewHSK(opts ...source.Option) (*source.FS, error) {
	return newBundled("HSK", "data/hsk.csv", []string{"word", "level"}, opts)
}

// NewTOCFL returns a source over the bundled TOCFL vocabulary list.
// Records are keyed by word and carry "TOCFL-level", "TOCFL-pos", and
// "TOCFL-category" fields.
func NewTOCFL(opts ...source.Option) (*source.FS, error) {
	return newBundled("TOCFL", "data/tocfl.csv", []string{"word", "level", "pos", "category"}, opts)
}

// NewXDCYZ returns a source over the bundled 现代汉语常用字表 character
// list. Records are keyed by character and carry "XDCYZ-level" and
// "XDCYZ-strokes" fields.
func NewXDCYZ(opts ...source.Option) (*source.FS, error) {
	return newBundled("XDCYZ", "data/xdcyz.csv", []string{"character", "level", "strokes"}, opts)
}

func newBundled(name, file string, headers []string, opts []source.Option) (*source.FS, error) {
	defaults := []source.Option{
		source.WithParser(&source.Delimited{
			Headers:   headers,
			KeyPrefix: name + "-",
		}),
	}
	return source.NewFS(name, dataFS, []string{file}, append(defaults, opts...)...)
}
