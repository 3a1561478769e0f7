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

// EqualExpr reports whether a and b are structurally equal, ignoring
// unique_id and source location (spec.md §3: "locations do not participate
// in equality").
func EqualExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *Add:
		y, ok := b.(*Add)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Sub:
		y, ok := b.(*Sub)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Div:
		y, ok := b.(*Div)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Mod:
		y, ok := b.(*Mod)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Negative:
		y, ok := b.(*Negative)
		return ok && EqualExpr(x.Arg, y.Arg)
	case *Band:
		y, ok := b.(*Band)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Bor:
		y, ok := b.(*Bor)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Bxor:
		y, ok := b.(*Bxor)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Bnot:
		y, ok := b.(*Bnot)
		return ok && EqualExpr(x.Arg, y.Arg)
	case *Lsh:
		y, ok := b.(*Lsh)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Rsh:
		y, ok := b.(*Rsh)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Lt:
		y, ok := b.(*Lt)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Leq:
		y, ok := b.(*Leq)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Gt:
		y, ok := b.(*Gt)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Geq:
		y, ok := b.(*Geq)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Eq:
		y, ok := b.(*Eq)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Neq:
		y, ok := b.(*Neq)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *And:
		y, ok := b.(*And)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Or:
		y, ok := b.(*Or)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Not:
		y, ok := b.(*Not)
		return ok && EqualExpr(x.Arg, y.Arg)
	case *Implication:
		y, ok := b.(*Implication)
		return ok && EqualExpr(x.Left, y.Left) && EqualExpr(x.Right, y.Right)
	case *Ternary:
		y, ok := b.(*Ternary)
		return ok && EqualExpr(x.Cond, y.Cond) && EqualExpr(x.Then, y.Then) && EqualExpr(x.Else, y.Else)
	case *Forall:
		y, ok := b.(*Forall)
		return ok && x.Bound.Name() == y.Bound.Name() && equalQuantifierDomain(x.Bound, y.Bound) &&
			EqualExpr(x.Body, y.Body)
	case *Exists:
		y, ok := b.(*Exists)
		return ok && x.Bound.Name() == y.Bound.Name() && equalQuantifierDomain(x.Bound, y.Bound) &&
			EqualExpr(x.Body, y.Body)
	case *ExprID:
		y, ok := b.(*ExprID)
		return ok && x.Name == y.Name
	case *Field:
		y, ok := b.(*Field)
		return ok && x.FieldName == y.FieldName && EqualExpr(x.Record, y.Record)
	case *Element:
		y, ok := b.(*Element)
		return ok && EqualExpr(x.Array, y.Array) && EqualExpr(x.Index, y.Index)
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value.String() == y.Value.String()
	case *FunctionCall:
		y, ok := b.(*FunctionCall)
		return ok && x.Name == y.Name && equalExprSlice(x.Args, y.Args)
	case *IsUndefined:
		y, ok := b.(*IsUndefined)
		return ok && EqualExpr(x.Arg, y.Arg)
	default:
		return false
	}
}

func equalExprSlice(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !EqualExpr(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalQuantifierDomain(a, b *Quantifier) bool {
	return EqualType(a.Domain, b.Domain)
}

// EqualType reports whether a and b are structurally equal type
// expressions, ignoring unique_id and source location.
func EqualType(a, b TypeExpr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case *RangeType:
		y, ok := b.(*RangeType)
		return ok && x.Min.String() == y.Min.String() && x.Max.String() == y.Max.String()
	case *EnumType:
		y, ok := b.(*EnumType)
		if !ok || len(x.Members) != len(y.Members) {
			return false
		}

		for i := range x.Members {
			if x.Members[i] != y.Members[i] {
				return false
			}
		}

		return true
	case *ScalarsetType:
		y, ok := b.(*ScalarsetType)
		return ok && x.Bound.String() == y.Bound.String()
	case *RecordType:
		y, ok := b.(*RecordType)
		if !ok || len(x.Fields) != len(y.Fields) {
			return false
		}

		for i := range x.Fields {
			if x.Fields[i].Name() != y.Fields[i].Name() || !EqualType(x.Fields[i].Type, y.Fields[i].Type) {
				return false
			}
		}

		return true
	case *ArrayType:
		y, ok := b.(*ArrayType)
		return ok && EqualType(x.Index, y.Index) && EqualType(x.Element, y.Element)
	case *TypeExprID:
		y, ok := b.(*TypeExprID)
		return ok && x.Name == y.Name
	default:
		return false
	}
}

// EqualStmt reports whether a and b are structurally equal statements.
func EqualStmt(a, b Stmt) bool {
	switch x := a.(type) {
	case *Assignment:
		y, ok := b.(*Assignment)
		return ok && EqualExpr(x.Lhs, y.Lhs) && EqualExpr(x.Rhs, y.Rhs)
	case *If:
		y, ok := b.(*If)
		return ok && EqualExpr(x.Cond, y.Cond) && equalStmtSlice(x.Then, y.Then) && equalStmtSlice(x.Else, y.Else)
	case *Switch:
		y, ok := b.(*Switch)
		if !ok || !EqualExpr(x.Subject, y.Subject) || len(x.Cases) != len(y.Cases) {
			return false
		}

		for i := range x.Cases {
			if !equalExprSlice(x.Cases[i].Values, y.Cases[i].Values) ||
				!equalStmtSlice(x.Cases[i].Body, y.Cases[i].Body) {
				return false
			}
		}

		return equalStmtSlice(x.Default, y.Default)
	case *While:
		y, ok := b.(*While)
		return ok && EqualExpr(x.Cond, y.Cond) && equalStmtSlice(x.Body, y.Body)
	case *Return:
		y, ok := b.(*Return)
		return ok && EqualExpr(x.Value, y.Value)
	case *ProcedureCall:
		y, ok := b.(*ProcedureCall)
		return ok && x.Name == y.Name && equalExprSlice(x.Args, y.Args)
	case *Put:
		y, ok := b.(*Put)
		return ok && EqualExpr(x.Value, y.Value)
	case *ErrorStmt:
		y, ok := b.(*ErrorStmt)
		return ok && x.Message == y.Message
	default:
		return false
	}
}

func equalStmtSlice(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !EqualStmt(a[i], b[i]) {
			return false
		}
	}

	return true
}

// EqualDecl reports whether a and b are structurally equal declarations.
func EqualDecl(a, b Decl) bool {
	switch x := a.(type) {
	case *ConstDecl:
		y, ok := b.(*ConstDecl)
		return ok && x.DeclName == y.DeclName && EqualExpr(x.Value, y.Value)
	case *TypeDecl:
		y, ok := b.(*TypeDecl)
		return ok && x.DeclName == y.DeclName && EqualType(x.Value, y.Value)
	case *VarDecl:
		y, ok := b.(*VarDecl)
		return ok && x.DeclName == y.DeclName && x.IsState == y.IsState && EqualType(x.Type, y.Type)
	case *AliasDecl:
		y, ok := b.(*AliasDecl)
		return ok && x.DeclName == y.DeclName && x.readonly == y.readonly && EqualExpr(x.Value, y.Value)
	case *Quantifier:
		y, ok := b.(*Quantifier)
		return ok && x.DeclName == y.DeclName && EqualType(x.Domain, y.Domain)
	case *FunctionDecl:
		y, ok := b.(*FunctionDecl)
		if !ok || x.DeclName != y.DeclName || len(x.Params) != len(y.Params) {
			return false
		}

		for i := range x.Params {
			if !EqualDecl(x.Params[i], y.Params[i]) {
				return false
			}
		}

		return EqualType(x.ReturnType, y.ReturnType) && equalDeclSlice(x.Decls, y.Decls) &&
			equalStmtSlice(x.Body, y.Body)
	default:
		return false
	}
}

func equalDeclSlice(a, b []Decl) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !EqualDecl(a[i], b[i]) {
			return false
		}
	}

	return true
}
