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

// Package hanzidata provides access to Chinese word and character
// reference data in pure Go.
//
// Heterogeneous datasets (word lists, character frequency tables,
// dictionaries) are acquired from bundled files or remote archives,
// normalized into a uniform key-to-record mapping, and optionally cached
// across runs:
//   - The source package implements the acquisition and normalization
//     lifecycle and is composed into concrete datasets.
//   - The datasets package provides ready-made sources such as HSK,
//     SUBTLEX, Unihan, CC-CEDICT, and the Jun Da frequency lists.
//   - The cache package persists normalized data so unchanged datasets
//     are not re-downloaded.
//
// This package itself holds the cross-source operations: [Mash] combines
// the normalized data of several sources into a single annotated dataset.
package hanzidata
