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
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-hanzidata/unpack"
)

// RemoteArchive is a source that downloads a compressed bundle and
// extracts a whitelisted subset of its members into the workspace. The
// extracted members, in whitelist order, become the source's file list.
type RemoteArchive struct {
	Remote

	whitelist []string
}

// NewRemoteArchive returns a source that downloads the archive at rawURL
// and extracts the whitelisted member paths.
func NewRemoteArchive(name, rawURL string, whitelist []string, opts ...Option) (*RemoteArchive, error) {
	if len(whitelist) == 0 {
		return nil, fmt.Errorf("%w: empty whitelist", ErrExtract)
	}
	r, err := NewRemote(name, rawURL, opts...)
	if err != nil {
		return nil, err
	}
	return &RemoteArchive{
		Remote:    *r,
		whitelist: append([]string{}, whitelist...),
	}, nil
}

// Whitelist returns the archive member paths the source extracts.
func (a *RemoteArchive) Whitelist() []string {
	whitelist := make([]string, len(a.whitelist))
	copy(whitelist, a.whitelist)
	return whitelist
}

// Download implements [Downloader]. It behaves as [Remote.Download] and
// additionally extracts the whitelisted members from the downloaded
// archive. Extraction is all-or-nothing: if any whitelisted member is
// missing or the archive is corrupt, the source's files are left
// unchanged.
func (a *RemoteArchive) Download(ctx context.Context, force bool) error {
	if !force {
		if data, ok := a.cachedData(); ok {
			a.logger().Info("using cached data", "source", a.name, "key", a.keyPrefix)
			a.data = data
			a.state = stateNormalized
			return nil
		}
		if a.HasFiles() {
			a.logger().Info("source has unprocessed files, skipping download", "source", a.name)
			return nil
		}
	}

	archive, err := a.fetch(ctx)
	if err != nil {
		return err
	}
	// The archive itself never appears in the file list, so a failed
	// extraction leaves files exactly as they were before the download.
	defer os.Remove(archive)

	dir, err := a.ws.Dir()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExtract, err)
	}

	a.logger().Debug("extracting archive",
		"source", a.name, "archive", archive, "members", len(a.whitelist))
	files, err := unpack.Extract(archive, dir, a.whitelist)
	if err != nil {
		if errors.Is(err, unpack.ErrMember) || errors.Is(err, unpack.ErrFormat) {
			return fmt.Errorf("%w: %w", ErrExtract, err)
		}
		return fmt.Errorf("%w: unpacking %q: %w", ErrExtract, archive, err)
	}

	a.files = files
	a.state = stateAcquired
	return nil
}
