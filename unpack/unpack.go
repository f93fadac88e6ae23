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

// Package unpack extracts whitelisted members from dataset archives.
//
// Supported formats are zip, gzip compressed tarballs, and single-member
// gzip and dictzip files. Member selection is by exact path match and
// extraction is all-or-nothing: members are unpacked into a staging
// directory first and only moved into place once every requested member
// has been found.
package unpack

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

var (
	// ErrFormat indicates an archive in an unsupported format.
	ErrFormat = errors.New("unsupported archive format")

	// ErrMember indicates a requested member that is missing from the
	// archive or has an unsafe path.
	ErrMember = errors.New("archive member not found")
)

// Extract unpacks the named members of archive into dir and returns their
// extracted locations in member order. Member paths are matched exactly
// against the archive's internal paths. If any member is missing, or the
// archive is corrupt, nothing is written to dir.
func Extract(archive, dir string, members []string) ([]string, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("%w: no members requested", ErrMember)
	}
	for _, member := range members {
		if !filepath.IsLocal(filepath.FromSlash(member)) {
			return nil, fmt.Errorf("%w: unsafe member path %q", ErrMember, member)
		}
	}

	staging, err := os.MkdirTemp(dir, ".unpack-*")
	if err != nil {
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	switch name := strings.ToLower(filepath.Base(archive)); {
	case strings.HasSuffix(name, ".zip"):
		err = extractZip(archive, staging, members)
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		err = extractTar(archive, staging, members)
	case strings.HasSuffix(name, ".dz"):
		err = extractSingle(archive, staging, members, true)
	case strings.HasSuffix(name, ".gz"):
		err = extractSingle(archive, staging, members, false)
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, filepath.Base(archive))
	}
	if err != nil {
		return nil, err
	}

	// Every member is staged; move them into place.
	paths := make([]string, 0, len(members))
	for _, member := range members {
		dst := filepath.Join(dir, filepath.FromSlash(member))
		if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
			return nil, fmt.Errorf("extracting %q: %w", member, err)
		}
		if err := os.Rename(filepath.Join(staging, filepath.FromSlash(member)), dst); err != nil {
			return nil, fmt.Errorf("extracting %q: %w", member, err)
		}
		paths = append(paths, dst)
	}
	return paths, nil
}

func extractZip(archive, staging string, members []string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("opening archive %q: %w", archive, err)
	}
	defer r.Close()

	for _, member := range members {
		f, err := r.Open(member)
		if err != nil {
			return fmt.Errorf("%w: %q in %q", ErrMember, member, archive)
		}
		err = writeMember(staging, member, f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTar(archive, staging string, members []string) error {
	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("opening archive %q: %w", archive, err)
	}
	defer f.Close()

	z, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf("opening archive %q: %w", archive, err)
	}
	defer z.Close()

	wanted := make(map[string]bool, len(members))
	for _, member := range members {
		wanted[member] = true
	}

	tr := tar.NewReader(z)
	for len(wanted) > 0 {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading archive %q: %w", archive, err)
		}
		// Duplicate entries for a member are possible in a tar stream;
		// the first one wins and does not count again.
		if hdr.Typeflag != tar.TypeReg || !wanted[hdr.Name] {
			continue
		}
		if err := writeMember(staging, hdr.Name, tr); err != nil {
			return err
		}
		delete(wanted, hdr.Name)
	}
	for _, member := range members {
		if wanted[member] {
			return fmt.Errorf("%w: %q in %q", ErrMember, member, archive)
		}
	}
	return nil
}

// extractSingle handles single-member compression formats. The one
// whitelisted member names the decompressed output file; the compressed
// stream has no member paths of its own.
func extractSingle(archive, staging string, members []string, dz bool) error {
	if len(members) != 1 {
		return fmt.Errorf("%w: %q holds a single member, %d requested",
			ErrMember, filepath.Base(archive), len(members))
	}

	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("opening archive %q: %w", archive, err)
	}
	defer f.Close()

	var r io.Reader
	if dz {
		z, err := dictzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening archive %q: %w", archive, err)
		}
		defer z.Close()
		r = z
	} else {
		z, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening archive %q: %w", archive, err)
		}
		defer z.Close()
		r = z
	}

	return writeMember(staging, members[0], r)
}

func writeMember(staging, member string, r io.Reader) error {
	dst := filepath.Join(staging, filepath.FromSlash(member))
	if err := os.MkdirAll(filepath.Dir(dst), 0o700); err != nil {
		return fmt.Errorf("extracting %q: %w", member, err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("extracting %q: %w", member, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("extracting %q: %w", member, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("extracting %q: %w", member, err)
	}
	return nil
}
