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

package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-hanzidata/source"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLocal_Read tests reading fixed filesystem paths.
func TestLocal_Read(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "freq.csv", "word,freq\nA,10\nB,20\n")

	l, err := source.NewLocal("freq", []string{path},
		source.WithParser(&source.Delimited{
			Headers:   []string{"word", "freq"},
			KeyPrefix: "freq-",
		}),
	)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer l.Close()

	data, err := l.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	expected := source.Data{
		"A": {"freq-freq": "10"},
		"B": {"freq-freq": "20"},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(expected, l.Data()); diff != "" {
		t.Errorf("unexpected Data() (-want +got):\n%s", diff)
	}
}

// TestLocal_Read_idempotent tests that repeated reads produce identical
// mappings.
func TestLocal_Read_idempotent(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "freq.csv", "word,freq\nA,10\n")

	l, err := source.NewLocal("freq", []string{path})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer l.Close()

	first, err := l.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	second, err := l.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("reads differ (-first +second):\n%s", diff)
	}
}

// TestLocal_Read_lastFileWins tests the merge policy for keys defined in
// multiple files.
func TestLocal_Read_lastFileWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeFile(t, dir, "first.csv", "的,100\n")
	second := writeFile(t, dir, "second.csv", "的,200\n一,300\n")

	l, err := source.NewLocal("freq", []string{first, second})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer l.Close()

	data, err := l.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	expected := source.Data{
		"的": {"freq-1": "200"},
		"一": {"freq-1": "300"},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}
}

// TestLocal_Read_missingFile tests the failure mode for a missing path.
func TestLocal_Read_missingFile(t *testing.T) {
	t.Parallel()

	l, err := source.NewLocal("freq", []string{filepath.Join(t.TempDir(), "missing.csv")})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer l.Close()

	if _, err := l.Read(); !errors.Is(err, source.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
	if l.Data() != nil {
		t.Errorf("expected no data, got: %v", l.Data())
	}
}

// TestLocal_noFiles tests that a source cannot be constructed without
// files.
func TestLocal_noFiles(t *testing.T) {
	t.Parallel()

	if _, err := source.NewLocal("freq", nil); !errors.Is(err, source.ErrNoFiles) {
		t.Fatalf("expected ErrNoFiles, got: %v", err)
	}
}

// TestFS_Read tests reading bundled resources.
func TestFS_Read(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data/words.csv": &fstest.MapFile{
			Data: []byte("word,level\n爱,1\n"),
		},
	}

	s, err := source.NewFS("words", fsys, []string{"data/words.csv"},
		source.WithParser(&source.Delimited{
			Headers:   []string{"word", "level"},
			KeyPrefix: "words-",
		}),
	)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	defer s.Close()

	data, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	expected := source.Data{
		"爱": {"words-level": "1"},
	}
	if diff := cmp.Diff(expected, data); diff != "" {
		t.Errorf("unexpected data (-want +got):\n%s", diff)
	}
}

// TestFS_Read_missingResource tests the failure mode for a missing
// resource name.
func TestFS_Read_missingResource(t *testing.T) {
	t.Parallel()

	s, err := source.NewFS("words", fstest.MapFS{}, []string{"data/words.csv"})
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	defer s.Close()

	if _, err := s.Read(); !errors.Is(err, source.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
}

// TestSource_defaults tests default identity values.
func TestSource_defaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "freq.csv", "A,10\n")

	l, err := source.NewLocal("freq", []string{path})
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	defer l.Close()

	if got, want := l.Name(), "freq"; got != want {
		t.Errorf("Name: got %q, want %q", got, want)
	}
	if got, want := l.KeyPrefix(), "freq-"; got != want {
		t.Errorf("KeyPrefix: got %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{path}, l.Files()); diff != "" {
		t.Errorf("unexpected files (-want +got):\n%s", diff)
	}
}
