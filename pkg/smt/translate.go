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

// Package smt translates resolved Murphi expressions, assignments and
// record-update statements to SMT-LIB v2 text, in one of two theories
// (spec.md §4.4): unbounded integer arithmetic, or fixed-width bit-vectors
// when the model needs bitwise operators. The translator renders each
// expression as a parenthesised operator-and-operands list, the same
// shape the teacher's Lisp() methods build for their own s-expression IR
// (pkg/corset/ast/expression.go), generalised from a generic sexp.SExp
// tree to SMT-LIB text emitted directly via fmt.
package smt

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/checkerr"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/symctx"
)

// Translator holds the configuration and running symbol state for one
// translation session. A session's theory choice (PreferBitvectors) and
// BitvectorWidth are fixed for its whole lifetime: every sort emitted
// against it uses the same width, matching the single-width SMT encoding
// named in spec.md §9's design notes.
type Translator struct {
	PreferBitvectors bool
	BitvectorWidth   uint32

	ctx              *symctx.SymContext
	recordNames      map[*ast.RecordType]string
	emittedDatatypes map[string]bool
}

// NewTranslator constructs a Translator. When preferBitvectors is false,
// width is ignored and every simple type is rendered as SMT-LIB Int.
func NewTranslator(preferBitvectors bool, width uint32) *Translator {
	return &Translator{
		PreferBitvectors: preferBitvectors,
		BitvectorWidth:   width,
		ctx:              symctx.NewSymContext(),
		recordNames:      make(map[*ast.RecordType]string),
		emittedDatatypes: make(map[string]bool),
	}
}

// RegisterModel associates every named record type declared in m with its
// declared name, so record-update translation can emit a stable
// "declare-datatypes" identifier instead of a synthesised one. Call this
// once before translating any expression drawn from m.
func (t *Translator) RegisterModel(m *ast.Model) {
	for _, d := range m.Decls {
		td, ok := d.(*ast.TypeDecl)
		if !ok {
			continue
		}

		if rt, ok := ast.Underlying(td.Value).(*ast.RecordType); ok {
			t.recordNames[rt] = td.DeclName
		}
	}
}

// DeclareModelSymbols registers the initial symbol for every top-level
// declaration in m that a well-formed translation may later read via
// ExprID: state variables get an opaque fresh name with no defining
// assertion (their value comes from the pre-state, not a computed term);
// constants and aliases get a fresh name plus an asserted definition,
// each free to reference only symbols already declared earlier in m.Decls.
// Call this once, before translating any rule body drawn from m, in the
// context's outermost scope.
func (t *Translator) DeclareModelSymbols(w io.Writer, m *ast.Model) error {
	for _, d := range m.Decls {
		switch decl := d.(type) {
		case *ast.VarDecl:
			t.ctx.RegisterSymbol(decl.UID())
		case *ast.ConstDecl:
			valueTerm, err := t.TranslateExpr(decl.Value)
			if err != nil {
				return err
			}

			name := t.ctx.RegisterSymbol(decl.UID())
			if _, err := fmt.Fprintf(w, "(assert (= %s %s))\n", name, valueTerm); err != nil {
				return err
			}
		case *ast.AliasDecl:
			valueTerm, err := t.TranslateExpr(decl.Value)
			if err != nil {
				return err
			}

			name := t.ctx.RegisterSymbol(decl.UID())
			if _, err := fmt.Fprintf(w, "(assert (= %s %s))\n", name, valueTerm); err != nil {
				return err
			}
		}
	}

	return nil
}

// OpenScope and CloseScope expose the session's underlying symbol scope
// stack directly, so a caller translating an entire rule body can bracket
// it in one lexical frame shared across every assignment it contains.
func (t *Translator) OpenScope()  { t.ctx.OpenScope() }
func (t *Translator) CloseScope() { t.ctx.CloseScope() }

// TranslateExpr renders e as an SMT-LIB term.
func (t *Translator) TranslateExpr(e ast.Expr) (string, error) {
	switch x := e.(type) {
	case *ast.Number:
		return t.renderNumber(x.Value), nil
	case *ast.ExprID:
		return t.translateExprID(x)
	case *ast.Negative:
		if t.PreferBitvectors {
			return t.unary("bvneg", x.Arg)
		}

		return t.unary("-", x.Arg)
	case *ast.Bnot:
		if !t.PreferBitvectors {
			return "", checkerr.New(checkerr.BitOpWithoutBitvectors, "bitwise not used without bit-vector theory", x.Loc())
		}

		return t.unary("bvnot", x.Arg)
	case *ast.Not:
		return t.unary("not", x.Arg)
	case *ast.IsUndefined:
		return "", checkerr.New(checkerr.UnsupportedConstruct, "isundefined has no SMT representation", x.Loc())
	case *ast.Ternary:
		cond, err := t.TranslateExpr(x.Cond)
		if err != nil {
			return "", err
		}

		then, err := t.TranslateExpr(x.Then)
		if err != nil {
			return "", err
		}

		els, err := t.TranslateExpr(x.Else)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("(ite %s %s %s)", cond, then, els), nil
	case *ast.Forall:
		return t.translateQuantifier("forall", x.Bound, x.Body)
	case *ast.Exists:
		return t.translateQuantifier("exists", x.Bound, x.Body)
	case *ast.Field:
		return t.translateField(x)
	case *ast.Element:
		array, err := t.TranslateExpr(x.Array)
		if err != nil {
			return "", err
		}

		index, err := t.TranslateExpr(x.Index)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("(select %s %s)", array, index), nil
	case *ast.FunctionCall:
		return t.translateCall(x)
	}

	if _, isBitOnly := bitvectorOnlyOp(e); isBitOnly && !t.PreferBitvectors {
		return "", checkerr.New(checkerr.BitOpWithoutBitvectors, "bitwise operator used without bit-vector theory", e.Loc())
	}

	if op, ok := t.binaryOp(e); ok {
		l, r, _ := binaryOperandsOf(e)

		left, err := t.TranslateExpr(l)
		if err != nil {
			return "", err
		}

		right, err := t.TranslateExpr(r)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("(%s %s %s)", op, left, right), nil
	}

	return "", checkerr.New(checkerr.UnsupportedConstruct, "cannot translate expression to SMT", e.Loc())
}

func (t *Translator) unary(op string, arg ast.Expr) (string, error) {
	a, err := t.TranslateExpr(arg)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("(%s %s)", op, a), nil
}

// translateExprID emits lookup_symbol(n.value.unique_id, n): every kind
// of declaration an ExprID can reference must have had its symbol
// registered earlier, either by DeclareModelSymbols, by a preceding
// TranslateAssignment, or (for a Quantifier) by translateQuantifier's own
// binder scope.
func (t *Translator) translateExprID(x *ast.ExprID) (string, error) {
	if x.Target == nil {
		return "", checkerr.New(checkerr.UnknownSymbol, "unresolved symbol "+x.Name, x.Loc())
	}

	return t.ctx.LookupSymbol(x.Target.UID(), x.Loc())
}

func (t *Translator) translateQuantifier(keyword string, bound *ast.Quantifier, body ast.Expr) (string, error) {
	t.ctx.OpenScope()
	name := t.ctx.RegisterSymbol(bound.UID())

	bodyText, err := t.TranslateExpr(body)

	t.ctx.CloseScope()

	if err != nil {
		return "", err
	}

	return fmt.Sprintf("(%s ((%s %s)) %s)", keyword, name, t.sortFor(bound.Domain), bodyText), nil
}

func (t *Translator) translateCall(x *ast.FunctionCall) (string, error) {
	if x.Target == nil {
		return "", checkerr.New(checkerr.UnknownSymbol, "unresolved function call "+x.Name, x.Loc())
	}

	args := make([]string, len(x.Args))

	for i, a := range x.Args {
		s, err := t.TranslateExpr(a)
		if err != nil {
			return "", err
		}

		args[i] = s
	}

	return fmt.Sprintf("(%s %s)", x.Name, strings.Join(args, " ")), nil
}

func (t *Translator) translateField(x *ast.Field) (string, error) {
	rt, ok := ast.Underlying(ast.StaticType(x.Record)).(*ast.RecordType)
	if !ok {
		return "", checkerr.New(checkerr.TypeResolution, "field access on non-record expression", x.Loc())
	}

	record, err := t.TranslateExpr(x.Record)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("(%s.%s %s)", t.recordName(rt), x.FieldName, record), nil
}

// binaryOp returns the SMT-LIB operator symbol for e and whether e is a
// two-operand expression this translator can render, given the current
// theory (spec.md §4.4's operator-selection table).
func (t *Translator) binaryOp(e ast.Expr) (string, bool) {
	bv := t.PreferBitvectors

	switch e.(type) {
	case *ast.Add:
		if bv {
			return "bvadd", true
		}

		return "+", true
	case *ast.Sub:
		if bv {
			return "bvsub", true
		}

		return "-", true
	case *ast.Mul:
		if bv {
			return "bvmul", true
		}

		return "*", true
	case *ast.Div:
		if bv {
			return "bvsdiv", true
		}

		return "div", true
	case *ast.Mod:
		if bv {
			return "bvsmod", true
		}

		return "mod", true
	case *ast.Lt:
		if bv {
			return "bvslt", true
		}

		return "<", true
	case *ast.Leq:
		if bv {
			return "bvsle", true
		}

		return "<=", true
	case *ast.Gt:
		if bv {
			return "bvsgt", true
		}

		return ">", true
	case *ast.Geq:
		if bv {
			return "bvsge", true
		}

		return ">=", true
	case *ast.Eq:
		return "=", true
	case *ast.Neq:
		return "distinct", true
	case *ast.And:
		return "and", true
	case *ast.Or:
		return "or", true
	case *ast.Implication:
		return "=>", true
	}

	bitOnly, is := bitvectorOnlyOp(e)
	if !is {
		return "", false
	}

	if !bv {
		return "", false
	}

	return bitOnly, true
}

// bitvectorOnlyOp returns the SMT-LIB operator for a bit-vector-only
// expression regardless of theory, so binaryOp's caller can distinguish
// "not a binary expression at all" from "a bit-vector op used without
// bit-vector theory enabled" and raise checkerr.BitOpWithoutBitvectors for
// the latter.
func bitvectorOnlyOp(e ast.Expr) (string, bool) {
	switch e.(type) {
	case *ast.Band:
		return "bvand", true
	case *ast.Bor:
		return "bvor", true
	case *ast.Bxor:
		return "bvxor", true
	case *ast.Lsh:
		return "bvshl", true
	case *ast.Rsh:
		return "bvashr", true
	default:
		return "", false
	}
}

func binaryOperandsOf(e ast.Expr) (ast.Expr, ast.Expr, bool) {
	switch x := e.(type) {
	case *ast.Add:
		return x.Left, x.Right, true
	case *ast.Sub:
		return x.Left, x.Right, true
	case *ast.Mul:
		return x.Left, x.Right, true
	case *ast.Div:
		return x.Left, x.Right, true
	case *ast.Mod:
		return x.Left, x.Right, true
	case *ast.Band:
		return x.Left, x.Right, true
	case *ast.Bor:
		return x.Left, x.Right, true
	case *ast.Bxor:
		return x.Left, x.Right, true
	case *ast.Lsh:
		return x.Left, x.Right, true
	case *ast.Rsh:
		return x.Left, x.Right, true
	case *ast.Lt:
		return x.Left, x.Right, true
	case *ast.Leq:
		return x.Left, x.Right, true
	case *ast.Gt:
		return x.Left, x.Right, true
	case *ast.Geq:
		return x.Left, x.Right, true
	case *ast.Eq:
		return x.Left, x.Right, true
	case *ast.Neq:
		return x.Left, x.Right, true
	case *ast.And:
		return x.Left, x.Right, true
	case *ast.Or:
		return x.Left, x.Right, true
	case *ast.Implication:
		return x.Left, x.Right, true
	default:
		return nil, nil, false
	}
}

func (t *Translator) renderNumber(v num.Int) string {
	if t.PreferBitvectors {
		return fmt.Sprintf("(_ bv%s %d)", unsignedBitPattern(v, t.BitvectorWidth).String(), t.BitvectorWidth)
	}

	if v.Sign() < 0 {
		return fmt.Sprintf("(- %s)", num.Neg(v).String())
	}

	return v.String()
}

// unsignedBitPattern reduces v into [0, 2^width) via two's-complement
// wraparound, the representation SMT-LIB's (_ bvN width) literal syntax
// expects.
func unsignedBitPattern(v num.Int, width uint32) *big.Int {
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(width))
	r := new(big.Int).Mod(v.BigInt(), modulus)

	if r.Sign() < 0 {
		r.Add(r, modulus)
	}

	return r
}

func (t *Translator) sortFor(typ ast.TypeExpr) string {
	switch x := ast.Underlying(typ).(type) {
	case *ast.RecordType:
		return t.recordName(x)
	case *ast.ArrayType:
		return fmt.Sprintf("(Array %s %s)", t.sortFor(x.Index), t.sortFor(x.Element))
	default:
		if t.PreferBitvectors {
			return fmt.Sprintf("(_ BitVec %d)", t.BitvectorWidth)
		}

		return "Int"
	}
}

// recordName returns the SMT-LIB datatype identifier for rt: its model
// declaration name if RegisterModel has seen it, or a name synthesised
// from its field list otherwise.
func (t *Translator) recordName(rt *ast.RecordType) string {
	if name, ok := t.recordNames[rt]; ok {
		return name
	}

	parts := make([]string, len(rt.Fields))
	for i, f := range rt.Fields {
		parts[i] = f.Name()
	}

	return "AnonRecord_" + strings.Join(parts, "_")
}

// EmitRecordDatatype writes the declare-datatypes block for rt to w,
// unless it has already been emitted in this session (spec.md §9: once
// per record type, cached in the Translator's emittedDatatypes set).
func (t *Translator) EmitRecordDatatype(w io.Writer, rt *ast.RecordType) error {
	name := t.recordName(rt)

	if t.emittedDatatypes[name] {
		return nil
	}

	fields := make([]string, len(rt.Fields))

	for i, f := range rt.Fields {
		fields[i] = fmt.Sprintf("(%s.%s %s)", name, f.Name(), t.sortFor(f.Type))
	}

	_, err := fmt.Fprintf(w, "(declare-datatypes () ((%s (mk-%s %s))))\n", name, name, strings.Join(fields, " "))
	if err != nil {
		return err
	}

	t.emittedDatatypes[name] = true
	log.Debugf("smt: emitted declare-datatypes for %s", name)

	return nil
}

// TranslateAssignment renders lhs := rhs as an SMT-LIB assertion against a
// freshly registered SSA name for lhs's root variable, written to w. When
// lhs is a direct variable reference this is a plain rebind; when lhs is a
// Field or Element access, the root variable's new value is the result of
// a nested datatype/array update built outward from rhs (spec.md §9's
// record-update encoding decision), which is why this is a distinct
// operation from TranslateExpr rather than just another expression kind.
func (t *Translator) TranslateAssignment(w io.Writer, lhs, rhs ast.Expr) error {
	if !ast.IsLvalue(lhs) {
		return checkerr.New(checkerr.MalformedLvalue, "assignment target is not an lvalue", lhs.Loc())
	}

	if ast.IsReadonly(lhs) {
		return checkerr.New(checkerr.MalformedLvalue, "assignment target is read-only", lhs.Loc())
	}

	rhsTerm, err := t.TranslateExpr(rhs)
	if err != nil {
		return err
	}

	if err := t.emitRecordDatatypesAlongPath(w, lhs); err != nil {
		return err
	}

	newValue, root, err := t.buildUpdatedValue(lhs, rhsTerm)
	if err != nil {
		return err
	}

	varDecl, ok := root.Target.(*ast.VarDecl)
	if !ok {
		return checkerr.New(checkerr.MalformedLvalue, "assignment stump does not resolve to a variable", lhs.Loc())
	}

	newName := t.ctx.RegisterSymbol(varDecl.UID())

	_, err = fmt.Fprintf(w, "(assert (= %s %s))\n", newName, newValue)

	return err
}

// emitRecordDatatypesAlongPath walks lhs from the leaf towards its root
// variable, emitting the declare-datatypes block for every record type
// touched, so buildUpdatedValue never references an undeclared sort.
func (t *Translator) emitRecordDatatypesAlongPath(w io.Writer, lhs ast.Expr) error {
	switch x := lhs.(type) {
	case *ast.Field:
		rt, ok := ast.Underlying(ast.StaticType(x.Record)).(*ast.RecordType)
		if !ok {
			return checkerr.New(checkerr.TypeResolution, "field access on non-record expression", x.Loc())
		}

		if err := t.EmitRecordDatatype(w, rt); err != nil {
			return err
		}

		return t.emitRecordDatatypesAlongPath(w, x.Record)
	case *ast.Element:
		return t.emitRecordDatatypesAlongPath(w, x.Array)
	default:
		return nil
	}
}

// buildUpdatedValue returns the SMT-LIB term for lhs's enclosing root
// variable's new value, given that the leaf addressed by lhs now holds
// rhsTerm, and the ExprID at that root.
func (t *Translator) buildUpdatedValue(lhs ast.Expr, rhsTerm string) (string, *ast.ExprID, error) {
	switch x := lhs.(type) {
	case *ast.ExprID:
		return rhsTerm, x, nil
	case *ast.Field:
		rt, ok := ast.Underlying(ast.StaticType(x.Record)).(*ast.RecordType)
		if !ok {
			return "", nil, checkerr.New(checkerr.TypeResolution, "field access on non-record expression", x.Loc())
		}

		recordTerm, err := t.TranslateExpr(x.Record)
		if err != nil {
			return "", nil, err
		}

		name := t.recordName(rt)
		args := make([]string, len(rt.Fields))

		for i, f := range rt.Fields {
			if f.Name() == x.FieldName {
				args[i] = rhsTerm
				continue
			}

			args[i] = fmt.Sprintf("(%s.%s %s)", name, f.Name(), recordTerm)
		}

		newRecord := fmt.Sprintf("(mk-%s %s)", name, strings.Join(args, " "))

		return t.buildUpdatedValue(x.Record, newRecord)
	case *ast.Element:
		arrayTerm, err := t.TranslateExpr(x.Array)
		if err != nil {
			return "", nil, err
		}

		indexTerm, err := t.TranslateExpr(x.Index)
		if err != nil {
			return "", nil, err
		}

		newArray := fmt.Sprintf("(store %s %s %s)", arrayTerm, indexTerm, rhsTerm)

		return t.buildUpdatedValue(x.Array, newArray)
	default:
		return "", nil, checkerr.New(checkerr.MalformedLvalue, "unsupported assignment stump", lhs.Loc())
	}
}
