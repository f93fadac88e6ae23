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

// Package workspace manages the scoped temporary directory that holds a
// source's downloaded and extracted files. Each workspace is owned by
// exactly one source instance and must be released on every exit path so
// disk space is not leaked.
package workspace

import (
	"fmt"
	"os"
)

// Workspace is a lazily created temporary directory. The zero value is
// ready to use.
type Workspace struct {
	dir string
}

// Dir returns the workspace directory, creating it under the host's
// temporary-directory location on first use.
func (w *Workspace) Dir() (string, error) {
	if w.dir != "" {
		return w.dir, nil
	}
	dir, err := os.MkdirTemp("", "hanzidata-*")
	if err != nil {
		return "", fmt.Errorf("creating workspace: %w", err)
	}
	w.dir = dir
	return dir, nil
}

// Created reports whether the workspace directory exists.
func (w *Workspace) Created() bool {
	return w.dir != ""
}

// Release deletes the workspace directory and everything in it. It is
// idempotent; releasing a workspace that was never created is a no-op.
// Files inside the workspace must not be referenced after Release.
func (w *Workspace) Release() error {
	if w.dir == "" {
		return nil
	}
	dir := w.dir
	w.dir = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("releasing workspace: %w", err)
	}
	return nil
}
