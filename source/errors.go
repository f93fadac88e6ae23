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

import "errors"

var (
	// ErrUnavailable indicates that a source file could not be opened or
	// read.
	ErrUnavailable = errors.New("file unavailable")

	// ErrDownload indicates that a network fetch failed due to a timeout,
	// a connection error, or a non-success response status.
	ErrDownload = errors.New("download failed")

	// ErrExtract indicates that an archive was corrupt or that a
	// whitelisted member was missing from it.
	ErrExtract = errors.New("extraction failed")

	// ErrCache indicates that the persistent cache could not be read or
	// written. Cache errors are non-fatal and are reported via the
	// source's logger rather than returned from Read.
	ErrCache = errors.New("cache unavailable")

	// ErrNoFiles indicates that Read was called before the source
	// acquired any files.
	ErrNoFiles = errors.New("no files to read")
)
