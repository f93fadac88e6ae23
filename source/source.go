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

// Package source implements the data source lifecycle shared by all
// linguistic reference datasets: acquire files, read each file, parse its
// rows, and merge the results into one normalized mapping.
//
// Transport varies by source type. [Local] reads fixed filesystem paths,
// [FS] reads resources bundled via [io/fs] (typically an embed.FS),
// [Remote] fetches a single file over HTTP, and [RemoteArchive] fetches a
// compressed bundle and extracts a whitelisted subset of its members.
// Parsing is supplied separately as a [RowParser] so that each concrete
// dataset only provides its format-specific column handling.
package source

import (
	"fmt"
	"io"
	"log/slog"
)

// Record is one normalized dataset entry. Field names are namespaced by
// the owning source's key prefix so that records from different sources
// can be merged without colliding.
type Record map[string]string

// Data is a normalized mapping from dataset-specific keys (a character, a
// word) to their records.
type Data map[string]Record

// RowParser converts the raw rows of one file into a fragment of the
// normalized mapping. Concrete datasets supply their own implementation or
// configure [Delimited].
type RowParser interface {
	ProcessFile(name string, rows *Scanner) (Data, error)
}

// Source is the read side of the contract every source variant supports.
// Remote variants additionally implement [Downloader].
type Source interface {
	// Name returns the source's short stable label.
	Name() string

	// KeyPrefix returns the namespace string for this source's cache
	// entry and its record field names.
	KeyPrefix() string

	// Files returns the source's current file locations in read order.
	Files() []string

	// Data returns the normalized mapping. It is nil until Read
	// succeeds.
	Data() Data

	// Read reads every file, parses it, and merges the fragments into
	// the normalized mapping.
	Read() (Data, error)

	// Close releases any resources held by the source, including its
	// temporary workspace.
	Close() error
}

// state tracks the source lifecycle explicitly rather than inferring it
// from attribute emptiness.
type state int

const (
	// stateEmpty is the initial state; no files have been acquired.
	stateEmpty state = iota

	// stateAcquired means files are available to read.
	stateAcquired

	// stateNormalized means the normalized mapping has been produced.
	stateNormalized
)

type openFunc func(name string) (io.ReadCloser, error)

// base holds the identity and lifecycle state shared by all source
// variants.
type base struct {
	name      string
	keyPrefix string
	opts      options

	state state
	files []string
	data  Data
}

func newBase(name string, opts []Option) base {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	keyPrefix := o.keyPrefix
	if keyPrefix == "" {
		keyPrefix = name + "-"
	}
	if o.parser == nil {
		o.parser = &Delimited{KeyPrefix: keyPrefix}
	}
	return base{
		name:      name,
		keyPrefix: keyPrefix,
		opts:      o,
	}
}

// Name returns the source's short stable label.
func (b *base) Name() string {
	return b.name
}

// KeyPrefix returns the source's namespace string.
func (b *base) KeyPrefix() string {
	return b.keyPrefix
}

// Files returns the source's current file locations in read order.
func (b *base) Files() []string {
	files := make([]string, len(b.files))
	copy(files, b.files)
	return files
}

// Data returns the normalized mapping, or nil if Read has not succeeded.
func (b *base) Data() Data {
	return b.data
}

// HasFiles reports whether the source has acquired files.
func (b *base) HasFiles() bool {
	return len(b.files) > 0
}

// HasData reports whether the normalized mapping has been produced.
func (b *base) HasData() bool {
	return len(b.data) > 0
}

func (b *base) logger() *slog.Logger {
	return b.opts.logger
}

// readFile opens one file location and returns a lazy row scanner over its
// decoded contents.
func (b *base) readFile(open openFunc, name string) (*Scanner, error) {
	b.logger().Debug("opening file", "source", b.name, "file", name)
	f, err := open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", ErrUnavailable, name, err)
	}
	s, err := NewScanner(f, b.opts.encoding, b.opts.filter)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: reading %q: %w", ErrUnavailable, name, err)
	}
	return s, nil
}

// read iterates files in order, parses each one, and merges the fragments
// into a single mapping. Later files overwrite colliding keys so that
// datasets split across multiple files resolve to the last file's record.
// It only mutates the source on success.
func (b *base) read(open openFunc) (Data, error) {
	if b.state == stateEmpty || !b.HasFiles() {
		return nil, ErrNoFiles
	}

	merged := make(Data)
	for _, name := range b.files {
		rows, err := b.readFile(open, name)
		if err != nil {
			return nil, err
		}

		b.logger().Debug("processing file", "source", b.name, "file", name)
		frag, err := b.opts.parser.ProcessFile(name, rows)
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: closing %q: %w", ErrUnavailable, name, cerr)
		}
		if err != nil {
			return nil, err
		}

		for key, record := range frag {
			merged[key] = record
		}
	}

	b.data = merged
	b.state = stateNormalized
	return merged, nil
}
