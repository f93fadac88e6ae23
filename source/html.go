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
	"io"
	"strings"

	"github.com/k3a/html2text"
)

// HTMLFilter is a [ContentFilter] that converts an HTML page into plain
// text rows. Several character frequency tables are published only as
// HTML pages; filtered through HTMLFilter their tables become ordinary
// delimited rows for a [Delimited] parser.
func HTMLFilter(r io.Reader) (io.Reader, error) {
	page, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(html2text.HTML2Text(string(page))), nil
}
