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

// Decl is the closed set of declaration variants named in spec.md §3:
// ConstDecl, TypeDecl, VarDecl, AliasDecl and Quantifier, plus FunctionDecl
// (this module's representation of the "functions" named in the Model,
// spec.md §3's "Model: top-level decls, functions, rules").
type Decl interface {
	Node
	// Name returns the declared identifier.
	Name() string
	isDecl()
}

// ============================================================================
// ConstDecl
// ============================================================================

// ConstDecl binds Name to a constant expression Value. The spec.md §3
// invariant "ConstDecl.value.constant()" must hold must be checked by
// Validate (pkg/validate), not enforced at construction, since Value may be
// built before the rest of the model is resolved.
type ConstDecl struct {
	base
	DeclName     string
	Value        Expr
	DeclaredType TypeExpr // optional; nil if the type is to be inferred
}

// NewConstDecl constructs a ConstDecl.
func NewConstDecl(idx *ids.Indexer, loc source.Location, name string, value Expr, declared TypeExpr) *ConstDecl {
	return &ConstDecl{newBase(idx, loc), name, value, declared}
}

func (*ConstDecl) isDecl()          {}
func (d *ConstDecl) Name() string   { return d.DeclName }

// ============================================================================
// TypeDecl
// ============================================================================

// TypeDecl binds Name to a type expression.
type TypeDecl struct {
	base
	DeclName string
	Value    TypeExpr
}

// NewTypeDecl constructs a TypeDecl.
func NewTypeDecl(idx *ids.Indexer, loc source.Location, name string, value TypeExpr) *TypeDecl {
	return &TypeDecl{newBase(idx, loc), name, value}
}

func (*TypeDecl) isDecl()        {}
func (d *TypeDecl) Name() string { return d.DeclName }

// ============================================================================
// VarDecl
// ============================================================================

// VarDecl declares a variable of a given type, either as module state or as
// a local (rule-scoped, record field, or function parameter) variable.
// Offset is the bit offset within the enclosing state or record and is
// computed only after structure is finalised (spec.md §3 invariant);
// reading it before then is meaningless and is the caller's responsibility
// to avoid.
type VarDecl struct {
	base
	DeclName  string
	Type      TypeExpr
	IsState   bool
	offset    num.Int
	hasOffset bool
}

// NewVarDecl constructs a VarDecl with no offset assigned yet.
func NewVarDecl(idx *ids.Indexer, loc source.Location, name string, typ TypeExpr, isState bool) *VarDecl {
	return &VarDecl{newBase(idx, loc), name, typ, isState, num.Zero(), false}
}

func (*VarDecl) isDecl()        {}
func (d *VarDecl) Name() string { return d.DeclName }

// Offset returns the assigned bit offset. Panics if SetOffset has not been
// called yet (an internal invariant: every pass that reads offsets runs
// after the optimiser, spec.md §4.6).
func (d *VarDecl) Offset() num.Int {
	if !d.hasOffset {
		panic("ast: VarDecl " + d.DeclName + " read before offset assignment")
	}

	return d.offset
}

// HasOffset reports whether SetOffset has been called.
func (d *VarDecl) HasOffset() bool {
	return d.hasOffset
}

// SetOffset assigns this declaration's bit offset, called by the
// field-ordering optimiser (pkg/optimiser) once structure is finalised.
func (d *VarDecl) SetOffset(offset num.Int) {
	d.offset = offset
	d.hasOffset = true
}

// ============================================================================
// AliasDecl
// ============================================================================

// AliasDecl binds Name to an expression. Per the redesign note in
// spec.md §9, an alias owns a deep clone of whatever it binds to rather
// than sharing a pointer with the aliased expression's original owner.
type AliasDecl struct {
	base
	DeclName string
	Value    Expr
	readonly bool
}

// NewAliasDecl constructs an AliasDecl. readonly marks an alias to a
// constant or other non-assignable target, consulted by IsReadonly of any
// ExprID bound to this declaration.
func NewAliasDecl(idx *ids.Indexer, loc source.Location, name string, value Expr, readonly bool) *AliasDecl {
	return &AliasDecl{newBase(idx, loc), name, value, readonly}
}

func (*AliasDecl) isDecl()        {}
func (d *AliasDecl) Name() string { return d.DeclName }

// IsReadonly reports whether assigning through this alias is illegal.
func (d *AliasDecl) IsReadonly() bool { return d.readonly }

// ============================================================================
// Quantifier
// ============================================================================

// Quantifier binds Name to a range of values, introduced by Forall/Exists
// expressions (spec.md §3: "Quantifier ... bind a name to ... a range").
type Quantifier struct {
	base
	DeclName string
	Domain   TypeExpr // must be simple: Range, Enum or Scalarset
}

// NewQuantifier constructs a Quantifier declaration.
func NewQuantifier(idx *ids.Indexer, loc source.Location, name string, domain TypeExpr) *Quantifier {
	return &Quantifier{newBase(idx, loc), name, domain}
}

func (*Quantifier) isDecl()        {}
func (d *Quantifier) Name() string { return d.DeclName }

// ============================================================================
// FunctionDecl
// ============================================================================

// FunctionDecl is a top-level function or procedure. A procedure is
// represented as a FunctionDecl with a nil ReturnType.
type FunctionDecl struct {
	base
	DeclName   string
	Params     []*VarDecl
	ReturnType TypeExpr // nil for a procedure
	Decls      []Decl   // local declarations
	Body       []Stmt
}

// NewFunctionDecl constructs a FunctionDecl.
func NewFunctionDecl(
	idx *ids.Indexer,
	loc source.Location,
	name string,
	params []*VarDecl,
	ret TypeExpr,
	decls []Decl,
	body []Stmt,
) *FunctionDecl {
	return &FunctionDecl{newBase(idx, loc), name, params, ret, decls, body}
}

func (*FunctionDecl) isDecl()        {}
func (d *FunctionDecl) Name() string { return d.DeclName }

// IsProcedure reports whether this FunctionDecl has no return value.
func (d *FunctionDecl) IsProcedure() bool {
	return d.ReturnType == nil
}
