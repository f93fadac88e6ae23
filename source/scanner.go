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
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// maxRowSize is the largest row the scanner will accept. Frequency tables
// and dictionaries keep entries on single short lines; anything beyond
// this is a malformed file.
const maxRowSize = 1024 * 1024

// ContentFilter rewrites a file's decoded contents before row scanning.
// It is used for sources whose payload is wrapped in another format, such
// as frequency tables published as HTML pages.
type ContentFilter func(r io.Reader) (io.Reader, error)

// Scanner is a lazy, single-pass reader over the raw rows of one source
// file. The Scanner assumes ownership of the underlying reader and should
// be closed with the Close method.
type Scanner struct {
	r io.ReadCloser
	s *bufio.Scanner
}

// NewScanner returns a row scanner over r. The contents are decoded with
// enc (UTF-8 when nil) and then passed through filter when one is given.
func NewScanner(r io.ReadCloser, enc encoding.Encoding, filter ContentFilter) (*Scanner, error) {
	var contents io.Reader = bufio.NewReader(r)
	if enc != nil {
		contents = transform.NewReader(contents, enc.NewDecoder())
	}
	if filter != nil {
		filtered, err := filter(contents)
		if err != nil {
			return nil, fmt.Errorf("filtering contents: %w", err)
		}
		contents = filtered
	}

	s := bufio.NewScanner(contents)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRowSize)

	return &Scanner{
		r: r,
		s: s,
	}, nil
}

// Scan advances to the next row. It returns false when the scan stops,
// either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Row returns the current row's text.
func (s *Scanner) Row() string {
	return s.s.Text()
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing source file: %w", err)
	}
	return nil
}
