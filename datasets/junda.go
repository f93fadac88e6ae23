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

// jundaURL is Jun Da's modern Chinese character frequency list. The list
// is published as an HTML page encoded in GB2312.
const jundaURL = "https://lingua.mtsu.edu/chinese-computing/statistics/char/list.php?Which=MO"

// jundaHeaders are the columns of the frequency table rows.
var jundaHeaders = []string{
	"serial", "character", "count", "percentile", "pinyin", "definition",
}

// NewJunDa returns a source for the Jun Da modern Chinese character
// frequency list. Records are keyed by character and carry fields such as
// "JunDa-serial", "JunDa-count", and "JunDa-pinyin".
//
// The page is HTML rather than a plain data file, so the source composes
// [source.HTMLFilter] with a tab-delimited parser over the page text.
func NewJunDa(opts ...source.Option) (*source.Remote, error) {
	defaults := []source.Option{
		source.WithEncodingName("gb18030"),
		source.WithContentFilter(source.HTMLFilter),
		source.WithFilename("junda-modern.html"),
		source.WithParser(&source.Delimited{
			Comma:       '\t',
			Headers:     jundaHeaders,
			IndexColumn: 1,
			KeyPrefix:   "JunDa-",
		}),
	}
	return source.NewRemote("JunDa", jundaURL, append(defaults, opts...)...)
}
