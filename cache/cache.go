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

// Package cache implements the persistent cache for normalized source
// data. Entries are whole-value replacements keyed by a source's key
// prefix and survive process restarts; there is no expiry policy. Entries
// persist until overwritten by a forced refresh or the store is cleared.
package cache

// Cache is a durable key-value store for normalized mappings. Values are
// opaque to the cache; sources store JSON-encoded data.
//
// One store may be shared by many sources, so each source must use a
// unique key. Writes are whole-entry replacements and concurrent writers
// to the same key are not coordinated; the last writer wins.
type Cache interface {
	// Get returns the value stored under key. The second return value
	// is false when no entry exists.
	Get(key string) ([]byte, bool, error)

	// Put stores value under key, replacing any existing entry.
	Put(key string, value []byte) error

	// Delete removes the entry under key. Deleting a missing entry is
	// not an error.
	Delete(key string) error

	// Close releases the store.
	Close() error
}

// Null is a no-op [Cache]. It is substituted when caching is disabled so
// that call sites do not need to special-case the disabled state: every
// Get is a miss and every Put is discarded.
type Null struct{}

// Get implements [Cache.Get]. It always reports a miss.
func (Null) Get(_ string) ([]byte, bool, error) {
	return nil, false, nil
}

// Put implements [Cache.Put]. The value is discarded.
func (Null) Put(_ string, _ []byte) error {
	return nil
}

// Delete implements [Cache.Delete].
func (Null) Delete(_ string) error {
	return nil
}

// Close implements [Cache.Close].
func (Null) Close() error {
	return nil
}
