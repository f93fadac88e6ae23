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

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ianlewis/go-hanzidata/source"
)

// config is the hzutil configuration file.
type config struct {
	// CachePath overrides the default cache database location.
	CachePath string `yaml:"cache_path"`

	// Timeout is the download timeout as a Go duration string (e.g.
	// "30s").
	Timeout string `yaml:"timeout"`

	// Sources defines additional datasets beyond the built-in ones.
	Sources []sourceConfig `yaml:"sources"`
}

// sourceConfig defines one user-configured dataset by composing a
// transport with delimited-text parsing.
type sourceConfig struct {
	Name        string `yaml:"name"`
	KeyPrefix   string `yaml:"key_prefix"`
	Description string `yaml:"description"`

	// Files makes this a local source over fixed paths. Mutually
	// exclusive with URL.
	Files []string `yaml:"files"`

	// URL makes this a remote source. With a whitelist the download is
	// treated as an archive and the whitelisted members are extracted.
	URL       string   `yaml:"url"`
	Whitelist []string `yaml:"whitelist"`

	// Parsing configuration.
	Comma       string   `yaml:"comma"`
	Headers     []string `yaml:"headers"`
	IndexColumn int      `yaml:"index_column"`
	Encoding    string   `yaml:"encoding"`
	HTML        bool     `yaml:"html"`
}

// loadConfig reads the configuration file at path. A missing file is not
// an error; the zero config is returned.
func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var c config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	for _, src := range c.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("parsing config %q: source with no name", path)
		}
		if src.URL == "" && len(src.Files) == 0 {
			return nil, fmt.Errorf("parsing config %q: source %q has no url or files", path, src.Name)
		}
		if src.IndexColumn < 0 {
			return nil, fmt.Errorf("parsing config %q: source %q has a negative index_column", path, src.Name)
		}
	}
	return &c, nil
}

// timeout returns the configured download timeout.
func (c *config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return source.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parsing timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// newSource constructs the source a sourceConfig describes.
func (sc *sourceConfig) newSource(opts ...source.Option) (source.Source, error) {
	comma := ','
	if sc.Comma != "" {
		comma = []rune(sc.Comma)[0]
	}
	keyPrefix := sc.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = sc.Name + "-"
	}

	defaults := []source.Option{
		source.WithKeyPrefix(keyPrefix),
		source.WithParser(&source.Delimited{
			Comma:       comma,
			Headers:     sc.Headers,
			IndexColumn: sc.IndexColumn,
			KeyPrefix:   keyPrefix,
		}),
	}
	if sc.Encoding != "" {
		defaults = append(defaults, source.WithEncodingName(sc.Encoding))
	}
	if sc.HTML {
		defaults = append(defaults, source.WithContentFilter(source.HTMLFilter))
	}
	opts = append(defaults, opts...)

	switch {
	case len(sc.Files) > 0:
		//nolint:wrapcheck // constructor errors carry context
		return source.NewLocal(sc.Name, sc.Files, opts...)
	case len(sc.Whitelist) > 0:
		//nolint:wrapcheck // constructor errors carry context
		return source.NewRemoteArchive(sc.Name, sc.URL, sc.Whitelist, opts...)
	default:
		//nolint:wrapcheck // constructor errors carry context
		return source.NewRemote(sc.Name, sc.URL, opts...)
	}
}
