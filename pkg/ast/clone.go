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

import "github.com/go-murphi/murphicore/pkg/ids"

// CloneExpr deep-copies e, minting a fresh unique_id for every node from idx
// (spec.md §8 Invariant 1: "for every well-formed AST A: clone(A) == A").
// Reference nodes (ExprID, FunctionCall) clone with their Target reset to
// nil: a clone is re-resolved against whatever scope it is spliced into
// (pkg/ast/scope.go), never sharing the original's binding (spec.md §9
// redesign note on AliasDecl ownership).
func CloneExpr(idx *ids.Indexer, e Expr) Expr {
	if e == nil {
		return nil
	}

	loc := e.Loc()

	switch x := e.(type) {
	case *Add:
		return NewAdd(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Sub:
		return NewSub(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Mul:
		return NewMul(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Div:
		return NewDiv(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Mod:
		return NewMod(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Negative:
		return NewNegative(idx, loc, CloneExpr(idx, x.Arg))
	case *Band:
		return NewBand(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Bor:
		return NewBor(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Bxor:
		return NewBxor(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Bnot:
		return NewBnot(idx, loc, CloneExpr(idx, x.Arg))
	case *Lsh:
		return NewLsh(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Rsh:
		return NewRsh(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Lt:
		return NewLt(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Leq:
		return NewLeq(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Gt:
		return NewGt(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Geq:
		return NewGeq(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Eq:
		return NewEq(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Neq:
		return NewNeq(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *And:
		return NewAnd(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Or:
		return NewOr(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Not:
		return NewNot(idx, loc, CloneExpr(idx, x.Arg))
	case *Implication:
		return NewImplication(idx, loc, CloneExpr(idx, x.Left), CloneExpr(idx, x.Right))
	case *Ternary:
		return NewTernary(idx, loc, CloneExpr(idx, x.Cond), CloneExpr(idx, x.Then), CloneExpr(idx, x.Else))
	case *Forall:
		return NewForall(idx, loc, CloneDecl(idx, x.Bound).(*Quantifier), CloneExpr(idx, x.Body))
	case *Exists:
		return NewExists(idx, loc, CloneDecl(idx, x.Bound).(*Quantifier), CloneExpr(idx, x.Body))
	case *ExprID:
		return NewExprID(idx, loc, x.Name)
	case *Field:
		return NewField(idx, loc, CloneExpr(idx, x.Record), x.FieldName)
	case *Element:
		return NewElement(idx, loc, CloneExpr(idx, x.Array), CloneExpr(idx, x.Index))
	case *Number:
		return NewNumber(idx, loc, x.Value)
	case *FunctionCall:
		return NewFunctionCall(idx, loc, x.Name, cloneExprSlice(idx, x.Args))
	case *IsUndefined:
		return NewIsUndefined(idx, loc, CloneExpr(idx, x.Arg))
	default:
		panic("ast: CloneExpr: unhandled Expr variant")
	}
}

func cloneExprSlice(idx *ids.Indexer, exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}

	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(idx, e)
	}

	return out
}

// CloneType deep-copies t, minting a fresh unique_id for every node. A
// cloned TypeExprID is left unresolved, re-bound by a subsequent
// scope.Resolve pass.
func CloneType(idx *ids.Indexer, t TypeExpr) TypeExpr {
	if t == nil {
		return nil
	}

	loc := t.Loc()

	switch x := t.(type) {
	case *RangeType:
		return NewRangeType(idx, loc, x.Min, x.Max)
	case *EnumType:
		members := make([]string, len(x.Members))
		copy(members, x.Members)

		return NewEnumType(idx, loc, members)
	case *ScalarsetType:
		return NewScalarsetType(idx, loc, x.Bound)
	case *RecordType:
		fields := make([]*VarDecl, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = CloneDecl(idx, f).(*VarDecl)
		}

		return NewRecordType(idx, loc, fields)
	case *ArrayType:
		return NewArrayType(idx, loc, CloneType(idx, x.Index), CloneType(idx, x.Element))
	case *TypeExprID:
		return NewTypeExprID(idx, loc, x.Name)
	default:
		panic("ast: CloneType: unhandled TypeExpr variant")
	}
}

// CloneStmt deep-copies s, minting a fresh unique_id for every node.
func CloneStmt(idx *ids.Indexer, s Stmt) Stmt {
	if s == nil {
		return nil
	}

	loc := s.Loc()

	switch x := s.(type) {
	case *Assignment:
		return NewAssignment(idx, loc, CloneExpr(idx, x.Lhs), CloneExpr(idx, x.Rhs))
	case *If:
		return NewIf(idx, loc, CloneExpr(idx, x.Cond), cloneStmtSlice(idx, x.Then), cloneStmtSlice(idx, x.Else))
	case *Switch:
		cases := make([]SwitchCase, len(x.Cases))
		for i, c := range x.Cases {
			cases[i] = SwitchCase{Values: cloneExprSlice(idx, c.Values), Body: cloneStmtSlice(idx, c.Body)}
		}

		return NewSwitch(idx, loc, CloneExpr(idx, x.Subject), cases, cloneStmtSlice(idx, x.Default))
	case *While:
		return NewWhile(idx, loc, CloneExpr(idx, x.Cond), cloneStmtSlice(idx, x.Body))
	case *Return:
		return NewReturn(idx, loc, CloneExpr(idx, x.Value))
	case *ProcedureCall:
		return NewProcedureCall(idx, loc, x.Name, cloneExprSlice(idx, x.Args))
	case *Put:
		return NewPut(idx, loc, CloneExpr(idx, x.Value))
	case *ErrorStmt:
		return NewErrorStmt(idx, loc, x.Message)
	default:
		panic("ast: CloneStmt: unhandled Stmt variant")
	}
}

func cloneStmtSlice(idx *ids.Indexer, stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}

	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(idx, s)
	}

	return out
}

// CloneDecl deep-copies d, minting a fresh unique_id for every node. A
// cloned VarDecl starts with no offset assigned, since offsets are
// recomputed by the field-ordering optimiser (pkg/optimiser) for whatever
// structure the clone ends up embedded in.
func CloneDecl(idx *ids.Indexer, d Decl) Decl {
	if d == nil {
		return nil
	}

	loc := d.Loc()

	switch x := d.(type) {
	case *ConstDecl:
		return NewConstDecl(idx, loc, x.DeclName, CloneExpr(idx, x.Value), CloneType(idx, x.DeclaredType))
	case *TypeDecl:
		return NewTypeDecl(idx, loc, x.DeclName, CloneType(idx, x.Value))
	case *VarDecl:
		return NewVarDecl(idx, loc, x.DeclName, CloneType(idx, x.Type), x.IsState)
	case *AliasDecl:
		return NewAliasDecl(idx, loc, x.DeclName, CloneExpr(idx, x.Value), x.readonly)
	case *Quantifier:
		return NewQuantifier(idx, loc, x.DeclName, CloneType(idx, x.Domain))
	case *FunctionDecl:
		params := make([]*VarDecl, len(x.Params))
		for i, p := range x.Params {
			params[i] = CloneDecl(idx, p).(*VarDecl)
		}

		return NewFunctionDecl(idx, loc, x.DeclName, params, CloneType(idx, x.ReturnType),
			cloneDeclSlice(idx, x.Decls), cloneStmtSlice(idx, x.Body))
	default:
		panic("ast: CloneDecl: unhandled Decl variant")
	}
}

func cloneDeclSlice(idx *ids.Indexer, decls []Decl) []Decl {
	if decls == nil {
		return nil
	}

	out := make([]Decl, len(decls))
	for i, d := range decls {
		out[i] = CloneDecl(idx, d)
	}

	return out
}

// CloneRule deep-copies r, minting a fresh unique_id for every node.
func CloneRule(idx *ids.Indexer, r Rule) Rule {
	loc := r.Loc()

	switch x := r.(type) {
	case *SimpleRule:
		return NewSimpleRule(idx, loc, x.RuleName, CloneExpr(idx, x.Guard), cloneDeclSlice(idx, x.Decls),
			cloneStmtSlice(idx, x.Body))
	case *StartState:
		return NewStartState(idx, loc, x.RuleName, cloneDeclSlice(idx, x.Decls), cloneStmtSlice(idx, x.Body))
	case *Invariant:
		return NewInvariant(idx, loc, x.RuleName, CloneExpr(idx, x.Guard))
	default:
		panic("ast: CloneRule: unhandled Rule variant")
	}
}

// CloneModel deep-copies m in its entirety, minting a fresh unique_id for
// every node via idx.
func CloneModel(idx *ids.Indexer, m *Model) *Model {
	functions := make([]*FunctionDecl, len(m.Functions))
	for i, f := range m.Functions {
		functions[i] = CloneDecl(idx, f).(*FunctionDecl)
	}

	rules := make([]Rule, len(m.Rules))
	for i, r := range m.Rules {
		rules[i] = CloneRule(idx, r)
	}

	return NewModel(cloneDeclSlice(idx, m.Decls), functions, rules)
}
