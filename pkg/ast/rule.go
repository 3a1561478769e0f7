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

package ast

import (
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

// Rule is the closed set of rule variants named in spec.md §3:
// SimpleRule, StartState and Invariant.
type Rule interface {
	Node
	Name() string
	isRule()
}

// SimpleRule is a guard/body pair: Body executes whenever Guard holds (or
// unconditionally if Guard is nil).
type SimpleRule struct {
	base
	RuleName string
	Guard    Expr // optional; nil means unconditionally enabled
	Decls    []Decl
	Body     []Stmt
}

func (*SimpleRule) isRule()        {}
func (r *SimpleRule) Name() string { return r.RuleName }

// NewSimpleRule constructs a SimpleRule.
func NewSimpleRule(idx *ids.Indexer, loc source.Location, name string, guard Expr, decls []Decl, body []Stmt) *SimpleRule {
	return &SimpleRule{newBase(idx, loc), name, guard, decls, body}
}

// StartState initialises model state.
type StartState struct {
	base
	RuleName string
	Decls    []Decl
	Body     []Stmt
}

func (*StartState) isRule()        {}
func (r *StartState) Name() string { return r.RuleName }

// NewStartState constructs a StartState.
func NewStartState(idx *ids.Indexer, loc source.Location, name string, decls []Decl, body []Stmt) *StartState {
	return &StartState{newBase(idx, loc), name, decls, body}
}

// Invariant is a property checked in every reachable state.
type Invariant struct {
	base
	RuleName string
	Guard    Expr
}

func (*Invariant) isRule()        {}
func (r *Invariant) Name() string { return r.RuleName }

// NewInvariant constructs an Invariant.
func NewInvariant(idx *ids.Indexer, loc source.Location, name string, guard Expr) *Invariant {
	return &Invariant{newBase(idx, loc), name, guard}
}

// ============================================================================
// Model
// ============================================================================

// Model is the top-level compilation unit: declarations, functions and
// rules (spec.md §3).
type Model struct {
	Decls     []Decl
	Functions []*FunctionDecl
	Rules     []Rule
}

// NewModel constructs a Model.
func NewModel(decls []Decl, functions []*FunctionDecl, rules []Rule) *Model {
	return &Model{decls, functions, rules}
}

// SizeBits is the sum of widths of all top-level state VarDecls.
func (m *Model) SizeBits() num.Int {
	total := num.Zero()

	for _, d := range m.Decls {
		if v, ok := d.(*VarDecl); ok && v.IsState {
			total = num.Add(total, v.Type.Width())
		}
	}

	return total
}

// StateVars returns the top-level state VarDecls, in declaration order.
func (m *Model) StateVars() []*VarDecl {
	var vars []*VarDecl

	for _, d := range m.Decls {
		if v, ok := d.(*VarDecl); ok && v.IsState {
			vars = append(vars, v)
		}
	}

	return vars
}
