// Copyright the go-murphi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ids assigns a construction-time-unique identity to every AST node,
// used only as a lookup key in the symbolic environment (pkg/symctx).
// Grounded on the teacher's monotonic identifier pattern for finalised
// bindings (pkg/corset/ast/binding.go's LocalVariableBinding.Index), but
// here the identifier is minted once, eagerly, at node construction, per
// spec.md §3's "unique_id: ... assigned at construction" requirement.
package ids

// ID is a node's unique identity within one compilation.
type ID uint64

// Indexer mints fresh, strictly increasing IDs.  One Indexer exists per
// compilation (spec.md §5: "the unique-id counter ... [is] per-indexer").
type Indexer struct {
	next ID
}

// NewIndexer constructs a fresh indexer whose first minted id is 0.
func NewIndexer() *Indexer {
	return &Indexer{}
}

// Next mints and returns the next unique id.
func (idx *Indexer) Next() ID {
	id := idx.next
	idx.next++

	return id
}
