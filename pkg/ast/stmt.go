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
	"github.com/go-murphi/murphicore/pkg/source"
)

// Stmt is the closed set of statement variants named in spec.md §3:
// Assignment, If, Switch, While, Return, ProcedureCall, Put and ErrorStmt.
type Stmt interface {
	Node
	isStmt()
}

// Assignment is lhs := rhs. Neither the constructor nor Validate
// (pkg/validate) checks lhs.IsLvalue() (spec.md §3), since lhs may reference
// a declaration not yet resolved at construction time; pkg/smt's
// TranslateAssignment rejects a non-lvalue target with MalformedLvalue.
type Assignment struct {
	base
	Lhs Expr
	Rhs Expr
}

func (*Assignment) isStmt() {}

// NewAssignment constructs lhs := rhs.
func NewAssignment(idx *ids.Indexer, loc source.Location, lhs, rhs Expr) *Assignment {
	return &Assignment{newBase(idx, loc), lhs, rhs}
}

// If is a conditional statement with an optional else branch.
type If struct {
	base
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if there is no else branch
}

func (*If) isStmt() {}

// NewIf constructs if Cond then Then else Else.
func NewIf(idx *ids.Indexer, loc source.Location, cond Expr, then, els []Stmt) *If {
	return &If{newBase(idx, loc), cond, then, els}
}

// SwitchCase is one case arm of a Switch: Body runs when Subject equals any
// value in Values.
type SwitchCase struct {
	Values []Expr
	Body   []Stmt
}

// Switch dispatches on Subject to the first matching SwitchCase, or Default
// if none match.
type Switch struct {
	base
	Subject Expr
	Cases   []SwitchCase
	Default []Stmt // nil if there is no default arm
}

func (*Switch) isStmt() {}

// NewSwitch constructs a Switch statement.
func NewSwitch(idx *ids.Indexer, loc source.Location, subject Expr, cases []SwitchCase, def []Stmt) *Switch {
	return &Switch{newBase(idx, loc), subject, cases, def}
}

// While is a pre-condition loop.
type While struct {
	base
	Cond Expr
	Body []Stmt
}

func (*While) isStmt() {}

// NewWhile constructs while Cond do Body.
func NewWhile(idx *ids.Indexer, loc source.Location, cond Expr, body []Stmt) *While {
	return &While{newBase(idx, loc), cond, body}
}

// Return exits the enclosing function, optionally with Value (nil inside a
// procedure).
type Return struct {
	base
	Value Expr
}

func (*Return) isStmt() {}

// NewReturn constructs a return statement.
func NewReturn(idx *ids.Indexer, loc source.Location, value Expr) *Return {
	return &Return{newBase(idx, loc), value}
}

// ProcedureCall invokes Name with Args for effect, resolved by name to
// Target.
type ProcedureCall struct {
	base
	Name   string
	Target *FunctionDecl
	Args   []Expr
}

func (*ProcedureCall) isStmt() {}

// NewProcedureCall constructs an as-yet-unresolved call to Name.
func NewProcedureCall(idx *ids.Indexer, loc source.Location, name string, args []Expr) *ProcedureCall {
	return &ProcedureCall{newBase(idx, loc), name, nil, args}
}

// Put writes Value to the diagnostic output stream.
type Put struct {
	base
	Value Expr
}

func (*Put) isStmt() {}

// NewPut constructs put Value.
func NewPut(idx *ids.Indexer, loc source.Location, value Expr) *Put {
	return &Put{newBase(idx, loc), value}
}

// ErrorStmt unconditionally reports Message as a user-level model error
// (not a checkerr.CheckError: this is a statement a Murphi model can
// execute, distinct from a compiler-internal failure).
type ErrorStmt struct {
	base
	Message string
}

func (*ErrorStmt) isStmt() {}

// NewErrorStmt constructs error "Message".
func NewErrorStmt(idx *ids.Indexer, loc source.Location, message string) *ErrorStmt {
	return &ErrorStmt{newBase(idx, loc), message}
}
