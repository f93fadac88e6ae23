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

package unpack_test

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-hanzidata/unpack"
)

func makeZip(t *testing.T, dir string, members map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, "test.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, contents := range members {
		m, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := m.Write([]byte(contents)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// tarEntry is one tar member in stream order. Unlike zip, a tar stream
// may contain the same member name more than once.
type tarEntry struct {
	name     string
	contents string
}

func makeTarGz(t *testing.T, dir string, entries []tarEntry) string {
	t.Helper()

	path := filepath.Join(dir, "test.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	w := tar.NewWriter(z)
	for _, entry := range entries {
		if err := w.WriteHeader(&tar.Header{
			Name: entry.name,
			Mode: 0o600,
			Size: int64(len(entry.contents)),
		}); err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(entry.contents)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(contents)
}

// TestExtract_zip tests extracting whitelisted members from a zip
// archive.
func TestExtract_zip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := makeZip(t, dir, map[string]string{
		"a.txt":        "foo",
		"sub/b.txt":    "bar",
		"unwanted.txt": "junk",
	})

	dst := t.TempDir()
	paths, err := unpack.Extract(archive, dst, []string{"sub/b.txt", "a.txt"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	expected := []string{
		filepath.Join(dst, "sub", "b.txt"),
		filepath.Join(dst, "a.txt"),
	}
	if diff := cmp.Diff(expected, paths); diff != "" {
		t.Errorf("unexpected paths (-want +got):\n%s", diff)
	}
	if got, want := readFile(t, paths[0]), "bar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := readFile(t, paths[1]), "foo"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(dst, "unwanted.txt")); err == nil {
		t.Error("unwanted member was extracted")
	}
}

// TestExtract_targz tests extracting whitelisted members from a
// compressed tarball.
func TestExtract_targz(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := makeTarGz(t, dir, []tarEntry{
		{name: "a.txt", contents: "foo"},
		{name: "b.txt", contents: "bar"},
	})

	dst := t.TempDir()
	paths, err := unpack.Extract(archive, dst, []string{"b.txt"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := readFile(t, paths[0]), "bar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestExtract_targz_duplicateEntries tests a tar stream that repeats a
// member name before a different wanted member appears. The first entry
// wins and the later member must still be found.
func TestExtract_targz_duplicateEntries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := makeTarGz(t, dir, []tarEntry{
		{name: "a.txt", contents: "first"},
		{name: "a.txt", contents: "second"},
		{name: "b.txt", contents: "bar"},
	})

	dst := t.TempDir()
	paths, err := unpack.Extract(archive, dst, []string{"a.txt", "b.txt"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := readFile(t, paths[0]), "first"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := readFile(t, paths[1]), "bar"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestExtract_gz tests extracting a single-member gzip file.
func TestExtract_gz(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(dir, "words.txt.gz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	z := gzip.NewWriter(f)
	if _, err := z.Write([]byte("的 100\n")); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	dst := t.TempDir()
	paths, err := unpack.Extract(archive, dst, []string{"words.txt"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := readFile(t, paths[0]), "的 100\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestExtract_dz tests extracting a single-member dictzip file.
func TestExtract_dz(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := filepath.Join(dir, "words.txt.dz")
	f, err := os.Create(archive)
	if err != nil {
		t.Fatal(err)
	}
	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write([]byte("的 100\n")); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	dst := t.TempDir()
	paths, err := unpack.Extract(archive, dst, []string{"words.txt"})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := readFile(t, paths[0]), "的 100\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestExtract_errors tests extraction failure modes.
func TestExtract_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		archive  func(t *testing.T, dir string) string
		members  []string
		expected error
	}{
		{
			name: "missing member",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				return makeZip(t, dir, map[string]string{"a.txt": "foo"})
			},
			members:  []string{"a.txt", "missing.txt"},
			expected: unpack.ErrMember,
		},
		{
			name: "no members",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				return makeZip(t, dir, map[string]string{"a.txt": "foo"})
			},
			members:  nil,
			expected: unpack.ErrMember,
		},
		{
			name: "unsafe member path",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				return makeZip(t, dir, map[string]string{"a.txt": "foo"})
			},
			members:  []string{"../escape.txt"},
			expected: unpack.ErrMember,
		},
		{
			name: "unsupported format",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				path := filepath.Join(dir, "test.rar")
				if err := os.WriteFile(path, []byte("junk"), 0o600); err != nil {
					t.Fatal(err)
				}
				return path
			},
			members:  []string{"a.txt"},
			expected: unpack.ErrFormat,
		},
		{
			name: "missing tar member",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				return makeTarGz(t, dir, []tarEntry{{name: "a.txt", contents: "foo"}})
			},
			members:  []string{"missing.txt"},
			expected: unpack.ErrMember,
		},
		{
			name: "missing tar member after duplicates",
			archive: func(t *testing.T, dir string) string {
				t.Helper()
				return makeTarGz(t, dir, []tarEntry{
					{name: "a.txt", contents: "first"},
					{name: "a.txt", contents: "second"},
				})
			},
			members:  []string{"a.txt", "missing.txt"},
			expected: unpack.ErrMember,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			dst := t.TempDir()
			archive := tc.archive(t, dir)

			if _, err := unpack.Extract(archive, dst, tc.members); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got: %v", tc.expected, err)
			}

			// Nothing may be left behind on failure.
			entries, err := os.ReadDir(dst)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("expected empty directory, got: %v", entries)
			}
		})
	}
}
