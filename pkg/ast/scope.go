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

import "github.com/go-murphi/murphicore/pkg/checkerr"

// Scope is a lexical name-resolution environment: declarations and type
// names are looked up here rather than through owning back-pointers
// (spec.md §9 redesign note). Scopes chain to a parent, so an inner rule
// or quantifier scope sees everything the enclosing model scope defines.
type Scope struct {
	parent *Scope
	decls  map[string]Decl
	types  map[string]TypeExpr
}

// NewScope constructs a child of parent (nil for the model's root scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent, make(map[string]Decl), make(map[string]TypeExpr)}
}

// Define registers d under its own name in this scope, shadowing any
// same-named declaration in an enclosing scope.
func (s *Scope) Define(d Decl) {
	s.decls[d.Name()] = d
}

// DefineType registers name as resolving to t in this scope.
func (s *Scope) DefineType(name string, t TypeExpr) {
	s.types[name] = t
}

// LookupDecl searches this scope, then each enclosing parent, for name.
func (s *Scope) LookupDecl(name string) (Decl, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if d, ok := sc.decls[name]; ok {
			return d, true
		}
	}

	return nil, false
}

// LookupType searches this scope, then each enclosing parent, for name.
func (s *Scope) LookupType(name string) (TypeExpr, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.types[name]; ok {
			return t, true
		}
	}

	return nil, false
}

// Resolve binds every ExprID.Target, TypeExprID resolution, FunctionCall.Target
// and ProcedureCall.Target in model, walking a scope chain rooted at
// model's top-level declarations. It returns the first checkerr.CheckError
// encountered (spec.md §7: a single error type, not a collected list),
// matching the teacher's fail-fast diagnostic style (pkg/sexp/error.go).
func Resolve(model *Model) error {
	root := NewScope(nil)

	for _, d := range model.Decls {
		root.Define(d)

		if td, ok := d.(*TypeDecl); ok {
			root.DefineType(td.DeclName, td.Value)
		}
	}

	for _, f := range model.Functions {
		root.Define(f)
	}

	for _, d := range model.Decls {
		if err := resolveDecl(root, d); err != nil {
			return err
		}
	}

	for _, f := range model.Functions {
		if err := resolveFunction(root, f); err != nil {
			return err
		}
	}

	for _, r := range model.Rules {
		if err := resolveRule(root, r); err != nil {
			return err
		}
	}

	return nil
}

func resolveFunction(parent *Scope, f *FunctionDecl) error {
	scope := NewScope(parent)

	for _, p := range f.Params {
		scope.Define(p)

		if err := resolveType(scope, p.Type); err != nil {
			return err
		}
	}

	if err := resolveType(scope, f.ReturnType); err != nil {
		return err
	}

	for _, d := range f.Decls {
		scope.Define(d)
	}

	for _, d := range f.Decls {
		if err := resolveDecl(scope, d); err != nil {
			return err
		}
	}

	return resolveStmts(scope, f.Body)
}

func resolveRule(parent *Scope, r Rule) error {
	switch x := r.(type) {
	case *SimpleRule:
		scope := NewScope(parent)
		for _, d := range x.Decls {
			scope.Define(d)
		}

		for _, d := range x.Decls {
			if err := resolveDecl(scope, d); err != nil {
				return err
			}
		}

		if err := resolveExpr(scope, x.Guard); err != nil {
			return err
		}

		return resolveStmts(scope, x.Body)
	case *StartState:
		scope := NewScope(parent)
		for _, d := range x.Decls {
			scope.Define(d)
		}

		for _, d := range x.Decls {
			if err := resolveDecl(scope, d); err != nil {
				return err
			}
		}

		return resolveStmts(scope, x.Body)
	case *Invariant:
		return resolveExpr(parent, x.Guard)
	default:
		return checkerr.New(checkerr.InternalInvariant, "resolveRule: unhandled Rule variant", r.Loc())
	}
}

func resolveDecl(scope *Scope, d Decl) error {
	switch x := d.(type) {
	case *ConstDecl:
		if err := resolveType(scope, x.DeclaredType); err != nil {
			return err
		}

		return resolveExpr(scope, x.Value)
	case *TypeDecl:
		return resolveType(scope, x.Value)
	case *VarDecl:
		return resolveType(scope, x.Type)
	case *AliasDecl:
		return resolveExpr(scope, x.Value)
	case *Quantifier:
		return resolveType(scope, x.Domain)
	case *FunctionDecl:
		return nil // resolved separately via resolveFunction, once per Model.Functions entry
	default:
		return checkerr.New(checkerr.InternalInvariant, "resolveDecl: unhandled Decl variant", d.Loc())
	}
}

func resolveStmts(scope *Scope, stmts []Stmt) error {
	for _, s := range stmts {
		if err := resolveStmt(scope, s); err != nil {
			return err
		}
	}

	return nil
}

func resolveStmt(scope *Scope, s Stmt) error {
	switch x := s.(type) {
	case *Assignment:
		if err := resolveExpr(scope, x.Lhs); err != nil {
			return err
		}

		return resolveExpr(scope, x.Rhs)
	case *If:
		if err := resolveExpr(scope, x.Cond); err != nil {
			return err
		}

		if err := resolveStmts(scope, x.Then); err != nil {
			return err
		}

		return resolveStmts(scope, x.Else)
	case *Switch:
		if err := resolveExpr(scope, x.Subject); err != nil {
			return err
		}

		for _, c := range x.Cases {
			for _, v := range c.Values {
				if err := resolveExpr(scope, v); err != nil {
					return err
				}
			}

			if err := resolveStmts(scope, c.Body); err != nil {
				return err
			}
		}

		return resolveStmts(scope, x.Default)
	case *While:
		if err := resolveExpr(scope, x.Cond); err != nil {
			return err
		}

		return resolveStmts(scope, x.Body)
	case *Return:
		return resolveExpr(scope, x.Value)
	case *ProcedureCall:
		target, ok := scope.LookupDecl(x.Name)
		if !ok {
			return checkerr.New(checkerr.UnknownSymbol, "undefined procedure "+x.Name, x.Loc())
		}

		fd, ok := target.(*FunctionDecl)
		if !ok || !fd.IsProcedure() {
			return checkerr.New(checkerr.UnknownSymbol, x.Name+" is not a procedure", x.Loc())
		}

		x.Target = fd

		return resolveExprs(scope, x.Args)
	case *Put:
		return resolveExpr(scope, x.Value)
	case *ErrorStmt:
		return nil
	default:
		return checkerr.New(checkerr.InternalInvariant, "resolveStmt: unhandled Stmt variant", s.Loc())
	}
}

func resolveExprs(scope *Scope, exprs []Expr) error {
	for _, e := range exprs {
		if err := resolveExpr(scope, e); err != nil {
			return err
		}
	}

	return nil
}

func resolveExpr(scope *Scope, e Expr) error {
	if e == nil {
		return nil
	}

	switch x := e.(type) {
	case *ExprID:
		target, ok := scope.LookupDecl(x.Name)
		if !ok {
			return checkerr.New(checkerr.UnknownSymbol, "undefined symbol "+x.Name, x.Loc())
		}

		x.Target = target

		return nil
	case *Field:
		return resolveExpr(scope, x.Record)
	case *Element:
		if err := resolveExpr(scope, x.Array); err != nil {
			return err
		}

		return resolveExpr(scope, x.Index)
	case *Number:
		return nil
	case *FunctionCall:
		target, ok := scope.LookupDecl(x.Name)
		if !ok {
			return checkerr.New(checkerr.UnknownSymbol, "undefined function "+x.Name, x.Loc())
		}

		fd, ok := target.(*FunctionDecl)
		if !ok || fd.IsProcedure() {
			return checkerr.New(checkerr.UnknownSymbol, x.Name+" is not a function", x.Loc())
		}

		x.Target = fd

		return resolveExprs(scope, x.Args)
	case *Ternary:
		if err := resolveExpr(scope, x.Cond); err != nil {
			return err
		}

		if err := resolveExpr(scope, x.Then); err != nil {
			return err
		}

		return resolveExpr(scope, x.Else)
	case *Forall:
		return resolveQuantified(scope, x.Bound, x.Body)
	case *Exists:
		return resolveQuantified(scope, x.Bound, x.Body)
	case *IsUndefined:
		return resolveExpr(scope, x.Arg)
	}

	// every remaining variant is a binary or unary combination: recurse
	// through the embedded Left/Right or Arg field via the binaryOperands and
	// unaryOperand helpers so this switch does not need one case per operator.
	if l, r, ok := binaryOperands(e); ok {
		if err := resolveExpr(scope, l); err != nil {
			return err
		}

		return resolveExpr(scope, r)
	}

	if arg, ok := unaryOperand(e); ok {
		return resolveExpr(scope, arg)
	}

	return checkerr.New(checkerr.InternalInvariant, "resolveExpr: unhandled Expr variant", e.Loc())
}

func resolveQuantified(parent *Scope, bound *Quantifier, body Expr) error {
	if err := resolveType(parent, bound.Domain); err != nil {
		return err
	}

	scope := NewScope(parent)
	scope.Define(bound)

	return resolveExpr(scope, body)
}

func resolveType(scope *Scope, t TypeExpr) error {
	if t == nil {
		return nil
	}

	switch x := t.(type) {
	case *TypeExprID:
		target, ok := scope.LookupType(x.Name)
		if !ok {
			return checkerr.New(checkerr.TypeResolution, "undefined type "+x.Name, x.Loc())
		}

		return x.BindResolution(target)
	case *RecordType:
		for _, f := range x.Fields {
			if err := resolveType(scope, f.Type); err != nil {
				return err
			}
		}

		return nil
	case *ArrayType:
		if err := resolveType(scope, x.Index); err != nil {
			return err
		}

		return resolveType(scope, x.Element)
	case *RangeType, *EnumType, *ScalarsetType:
		return nil
	default:
		return checkerr.New(checkerr.InternalInvariant, "resolveType: unhandled TypeExpr variant", t.Loc())
	}
}

// binaryOperands extracts the Left/Right operands of any two-argument
// expression built on the embedded binary struct.
func binaryOperands(e Expr) (Expr, Expr, bool) {
	switch x := e.(type) {
	case *Add:
		return x.Left, x.Right, true
	case *Sub:
		return x.Left, x.Right, true
	case *Mul:
		return x.Left, x.Right, true
	case *Div:
		return x.Left, x.Right, true
	case *Mod:
		return x.Left, x.Right, true
	case *Band:
		return x.Left, x.Right, true
	case *Bor:
		return x.Left, x.Right, true
	case *Bxor:
		return x.Left, x.Right, true
	case *Lsh:
		return x.Left, x.Right, true
	case *Rsh:
		return x.Left, x.Right, true
	case *Lt:
		return x.Left, x.Right, true
	case *Leq:
		return x.Left, x.Right, true
	case *Gt:
		return x.Left, x.Right, true
	case *Geq:
		return x.Left, x.Right, true
	case *Eq:
		return x.Left, x.Right, true
	case *Neq:
		return x.Left, x.Right, true
	case *And:
		return x.Left, x.Right, true
	case *Or:
		return x.Left, x.Right, true
	case *Implication:
		return x.Left, x.Right, true
	default:
		return nil, nil, false
	}
}

// unaryOperand extracts the Arg operand of any one-argument expression
// built on the embedded unary struct.
func unaryOperand(e Expr) (Expr, bool) {
	switch x := e.(type) {
	case *Negative:
		return x.Arg, true
	case *Bnot:
		return x.Arg, true
	case *Not:
		return x.Arg, true
	default:
		return nil, false
	}
}
