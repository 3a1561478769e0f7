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

import "github.com/go-murphi/murphicore/pkg/num"

// IsConstant reports whether e is evaluable without reading model state
// (spec.md §3: Expr.constant()).
func IsConstant(e Expr) bool {
	switch x := e.(type) {
	case *Number:
		return true
	case *Add:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Sub:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Mul:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Div:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Mod:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Negative:
		return IsConstant(x.Arg)
	case *Band:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Bor:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Bxor:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Bnot:
		return IsConstant(x.Arg)
	case *Lsh:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Rsh:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Lt:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Leq:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Gt:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Geq:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Eq:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Neq:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *And:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Or:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Not:
		return IsConstant(x.Arg)
	case *Implication:
		return IsConstant(x.Left) && IsConstant(x.Right)
	case *Ternary:
		return IsConstant(x.Cond) && IsConstant(x.Then) && IsConstant(x.Else)
	case *Forall:
		return IsConstant(x.Body)
	case *Exists:
		return IsConstant(x.Body)
	case *ExprID:
		switch x.Target.(type) {
		case *ConstDecl, *Quantifier:
			return true
		case *AliasDecl:
			return IsConstant(x.Target.(*AliasDecl).Value)
		default:
			return false
		}
	case *Field:
		return IsConstant(x.Record)
	case *Element:
		return IsConstant(x.Array) && IsConstant(x.Index)
	case *FunctionCall:
		return false
	case *IsUndefined:
		return false
	default:
		return false
	}
}

// IsLvalue reports whether e can appear on the left of an assignment
// (spec.md §3): true for an ExprID bound to a variable or alias, and for
// Field/Element whose root is itself an lvalue.
func IsLvalue(e Expr) bool {
	switch x := e.(type) {
	case *ExprID:
		switch x.Target.(type) {
		case *VarDecl, *AliasDecl:
			return true
		default:
			return false
		}
	case *Field:
		return IsLvalue(x.Record)
	case *Element:
		return IsLvalue(x.Array)
	default:
		return false
	}
}

// IsReadonly reports whether assigning through lvalue e would be illegal
// (spec.md §3), e.g. because it is an AliasDecl to a constant.
func IsReadonly(e Expr) bool {
	switch x := e.(type) {
	case *ExprID:
		switch t := x.Target.(type) {
		case *VarDecl:
			return false
		case *AliasDecl:
			return t.IsReadonly()
		default:
			return true
		}
	case *Field:
		return IsReadonly(x.Record)
	case *Element:
		return IsReadonly(x.Array)
	default:
		return true
	}
}

// StaticType returns e's static type, or nil if e is polymorphic numeric
// (an untyped literal or an arithmetic/bitwise combination thereof) or its
// type cannot be determined without a full type-checker (spec.md §3:
// Expr.type(); per spec.md §4.7 type compatibility checking beyond this is
// not the subject of this specification).
func StaticType(e Expr) TypeExpr {
	switch x := e.(type) {
	case *ExprID:
		switch t := x.Target.(type) {
		case *VarDecl:
			return t.Type
		case *ConstDecl:
			return t.DeclaredType
		case *Quantifier:
			return t.Domain
		case *AliasDecl:
			return StaticType(t.Value)
		default:
			return nil
		}
	case *Field:
		rt, ok := Underlying(StaticType(x.Record)).(*RecordType)
		if !ok {
			return nil
		}

		for _, f := range rt.Fields {
			if f.Name() == x.FieldName {
				return f.Type
			}
		}

		return nil
	case *Element:
		at, ok := Underlying(StaticType(x.Array)).(*ArrayType)
		if !ok {
			return nil
		}

		return at.Element
	case *Ternary:
		if t := StaticType(x.Then); t != nil {
			return t
		}

		return StaticType(x.Else)
	case *FunctionCall:
		if x.Target == nil {
			return nil
		}

		return x.Target.ReturnType
	default:
		return nil
	}
}

// EvalConstant folds e to a concrete value when it is built entirely from
// arithmetic over numeric literals and constants. Returns false when e is
// not foldable by this (intentionally partial) evaluator; this is weaker
// than IsConstant, which also accepts bit-vector, relational and logical
// combinations that this evaluator does not attempt to fold.
func EvalConstant(e Expr) (num.Int, bool) {
	switch x := e.(type) {
	case *Number:
		return x.Value, true
	case *Add:
		return foldBinary(x.Left, x.Right, num.Add)
	case *Sub:
		return foldBinary(x.Left, x.Right, num.Sub)
	case *Mul:
		return foldBinary(x.Left, x.Right, num.Mul)
	case *Div:
		return foldBinary(x.Left, x.Right, num.Div)
	case *Mod:
		return foldBinary(x.Left, x.Right, num.Mod)
	case *Negative:
		v, ok := EvalConstant(x.Arg)
		if !ok {
			return num.Zero(), false
		}

		return num.Neg(v), true
	case *ExprID:
		if cd, ok := x.Target.(*ConstDecl); ok {
			return EvalConstant(cd.Value)
		}

		return num.Zero(), false
	default:
		return num.Zero(), false
	}
}

func foldBinary(l, r Expr, fn func(num.Int, num.Int) num.Int) (num.Int, bool) {
	lv, ok := EvalConstant(l)
	if !ok {
		return num.Zero(), false
	}

	rv, ok := EvalConstant(r)
	if !ok {
		return num.Zero(), false
	}

	return fn(lv, rv), true
}
