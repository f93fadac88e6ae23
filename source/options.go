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
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/ianlewis/go-hanzidata/cache"
)

// DefaultTimeout is the request timeout used for downloads when no
// explicit timeout is configured.
const DefaultTimeout = 5 * time.Second

// options holds per-source configuration. All fields have working
// defaults; remote-only fields are ignored by local sources.
type options struct {
	keyPrefix string
	encoding  encoding.Encoding
	parser    RowParser
	filter    ContentFilter
	logger    *slog.Logger

	timeout    time.Duration
	httpClient *http.Client
	cache      cache.Cache
	filename   string
}

func defaultOptions() options {
	return options{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeout: DefaultTimeout,
		cache:   cache.Null{},
	}
}

// Option configures a source during construction.
type Option func(*options)

// WithKeyPrefix overrides the source's key prefix. The default is the
// source name followed by a hyphen.
func WithKeyPrefix(prefix string) Option {
	return func(o *options) {
		o.keyPrefix = prefix
	}
}

// WithEncoding sets the text encoding used to decode source files. Files
// are treated as UTF-8 when no encoding is set.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}

// WithEncodingName sets the text encoding by its IANA/WHATWG name (e.g.
// "gb18030"). Unknown names are ignored and the source falls back to
// UTF-8.
func WithEncodingName(name string) Option {
	return func(o *options) {
		if enc, err := htmlindex.Get(name); err == nil {
			o.encoding = enc
		}
	}
}

// WithParser sets the row parser used to process file contents.
func WithParser(p RowParser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// WithContentFilter sets a filter applied to each file's decoded contents
// before row scanning. See [HTMLFilter].
func WithContentFilter(f ContentFilter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithLogger configures structured logging. Log output is discarded by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTimeout overrides [DefaultTimeout] for downloads.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithCache enables the persistent cache for a remote source. Without it
// a no-op cache is used and every download fetches from the network.
func WithCache(c cache.Cache) Option {
	return func(o *options) {
		if c != nil {
			o.cache = c
		}
	}
}

// WithFilename overrides the file name a download is saved under. The
// default is the base name of the URL path.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}
