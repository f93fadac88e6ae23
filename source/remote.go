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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/ianlewis/go-hanzidata/cache"
	"github.com/ianlewis/go-hanzidata/internal/workspace"
)

// Downloader is the acquisition side of the contract implemented by
// remote source variants.
type Downloader interface {
	// Download acquires the source's files, or its cached data when a
	// valid cache entry exists and force is false.
	Download(ctx context.Context, force bool) error
}

// Remote is a source that fetches a single file over HTTP into a
// temporary workspace. When constructed with [WithCache] a previously
// normalized mapping is reused across runs instead of re-fetching.
type Remote struct {
	base

	url    string
	client *http.Client
	cache  cache.Cache
	ws     workspace.Workspace
}

// NewRemote returns a source that downloads the file at rawURL.
func NewRemote(name, rawURL string, opts ...Option) (*Remote, error) {
	r := &Remote{
		base: newBase(name, opts),
		url:  rawURL,
	}
	if _, err := url.Parse(rawURL); err != nil {
		return nil, fmt.Errorf("%w: parsing url %q: %w", ErrDownload, rawURL, err)
	}

	client := r.opts.httpClient
	if client == nil {
		client = &http.Client{}
	}
	if client.Timeout == 0 {
		client.Timeout = r.opts.timeout
	}
	r.client = client
	r.cache = r.opts.cache

	return r, nil
}

// Download implements [Downloader]. If a cache entry exists for the
// source's key prefix and force is false, the normalized mapping is set
// from the cache without touching the network. Otherwise the URL is
// fetched into the workspace with a bounded timeout. On failure the
// source's prior files and data are left unchanged.
func (r *Remote) Download(ctx context.Context, force bool) error {
	if !force {
		if data, ok := r.cachedData(); ok {
			r.logger().Info("using cached data", "source", r.name, "key", r.keyPrefix)
			r.data = data
			r.state = stateNormalized
			return nil
		}
		if r.HasFiles() {
			r.logger().Info("source has unprocessed files, skipping download", "source", r.name)
			return nil
		}
	}
	file, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	r.files = []string{file}
	r.state = stateAcquired
	return nil
}

// Read parses the downloaded files into the normalized mapping and
// refreshes the cache entry. When the data came from the cache and no
// files were downloaded, the cached mapping is returned as is.
func (r *Remote) Read() (Data, error) {
	if !r.HasFiles() && r.state == stateNormalized {
		return r.data, nil
	}
	data, err := r.read(func(name string) (io.ReadCloser, error) {
		//nolint:wrapcheck // wrapped by the caller
		return os.Open(name)
	})
	if err != nil {
		return nil, err
	}
	r.updateCache()
	return data, nil
}

// Close releases the source's temporary workspace. The cache is shared
// with other sources and is left open.
func (r *Remote) Close() error {
	return r.ws.Release()
}

// URL returns the source's download URL.
func (r *Remote) URL() string {
	return r.url
}

// fetch issues the network request and saves the response body into the
// workspace, returning the saved location.
func (r *Remote) fetch(ctx context.Context) (string, error) {
	dir, err := r.ws.Dir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDownload, err)
	}

	name := r.opts.filename
	if name == "" {
		u, _ := url.Parse(r.url)
		name = path.Base(u.Path)
	}
	if name == "" || name == "/" || name == "." {
		name = r.name
	}
	dst := filepath.Join(dir, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %w", ErrDownload, err)
	}

	r.logger().Debug("downloading", "source", r.name, "url", r.url)
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching %q: %w", ErrDownload, r.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: fetching %q: %s", ErrDownload, r.url, resp.Status)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("%w: saving %q: %w", ErrDownload, dst, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: saving %q: %w", ErrDownload, dst, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("%w: saving %q: %w", ErrDownload, dst, err)
	}

	return dst, nil
}

// cachedData returns the source's cache entry. Cache failures degrade to
// a miss; a broken cache must never prevent a fresh fetch.
func (r *Remote) cachedData() (Data, bool) {
	value, ok, err := r.cache.Get(r.keyPrefix)
	if err != nil {
		r.logger().Warn("cache read failed",
			"source", r.name, "err", fmt.Errorf("%w: %w", ErrCache, err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var data Data
	if err := json.Unmarshal(value, &data); err != nil {
		r.logger().Warn("discarding undecodable cache entry",
			"source", r.name, "key", r.keyPrefix, "err", err)
		return nil, false
	}
	return data, true
}

// updateCache writes the normalized mapping to the cache. Every
// successful read refreshes the entry; failures are reported through the
// logger rather than failing the read.
func (r *Remote) updateCache() {
	value, err := json.Marshal(r.data)
	if err != nil {
		r.logger().Warn("cache encode failed", "source", r.name, "err", err)
		return
	}
	if err := r.cache.Put(r.keyPrefix, value); err != nil {
		r.logger().Warn("cache write failed",
			"source", r.name, "err", fmt.Errorf("%w: %w", ErrCache, err))
	}
}
