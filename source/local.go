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
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Local is a source that reads fixed filesystem paths. It has no
// acquisition step; Read is the complete contract.
type Local struct {
	base
}

// NewLocal returns a source over the given file paths, which are read in
// order.
func NewLocal(name string, files []string, opts ...Option) (*Local, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files configured", ErrNoFiles)
	}
	l := &Local{
		base: newBase(name, opts),
	}
	l.files = append(l.files, files...)
	l.state = stateAcquired
	return l, nil
}

// Read reads and parses every file and returns the merged normalized
// mapping.
func (l *Local) Read() (Data, error) {
	return l.read(func(name string) (io.ReadCloser, error) {
		//nolint:wrapcheck // wrapped by the caller
		return os.Open(name)
	})
}

// Close implements [Source]. Local sources hold no resources.
func (l *Local) Close() error {
	return nil
}

// FS is a source that reads resources bundled with the distributed
// artifact through an [fs.FS], typically an embed.FS. Resources are
// addressed by logical name rather than filesystem path.
type FS struct {
	base

	fsys fs.FS
}

// NewFS returns a source over the named resources in fsys, which are read
// in order.
func NewFS(name string, fsys fs.FS, files []string, opts ...Option) (*FS, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files configured", ErrNoFiles)
	}
	s := &FS{
		base: newBase(name, opts),
		fsys: fsys,
	}
	s.files = append(s.files, files...)
	s.state = stateAcquired
	return s, nil
}

// Read reads and parses every resource and returns the merged normalized
// mapping.
func (s *FS) Read() (Data, error) {
	return s.read(func(name string) (io.ReadCloser, error) {
		//nolint:wrapcheck // wrapped by the caller
		return s.fsys.Open(name)
	})
}

// Close implements [Source]. FS sources hold no resources.
func (s *FS) Close() error {
	return nil
}
