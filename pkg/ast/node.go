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

// Package ast implements the typed heterogeneous AST for Murphi models:
// types, declarations, expressions, statements, rules and the top-level
// model, together with the traversal framework every later pass is built
// on. Dispatch is by Go type switch over a closed set of concrete struct
// variants per syntactic category, grounded on the teacher's own use of
// type switches to lower its IR (pkg/ir/air.go, pkg/ir/computation.go)
// rather than a virtual-call visitor hierarchy.
package ast

import (
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/source"
)

// Node is embedded by every AST node. unique_id is assigned once at
// construction (spec.md §3) and loc never participates in equality or
// cloning comparisons.
type Node interface {
	UID() ids.ID
	Loc() source.Location
}

// base is embedded by every concrete node to provide its Node
// implementation. It is unexported: nodes outside this package cannot be
// constructed without going through the New* constructors, which is how the
// unique-id invariant (minted once, at construction) is enforced.
type base struct {
	id  ids.ID
	loc source.Location
}

// UID returns this node's construction-time-unique identity.
func (b base) UID() ids.ID { return b.id }

// Loc returns this node's source location.
func (b base) Loc() source.Location { return b.loc }

func newBase(idx *ids.Indexer, loc source.Location) base {
	return base{idx.Next(), loc}
}
