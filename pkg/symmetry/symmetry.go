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

// Package symmetry emits C source implementing symmetry reduction over a
// scalarset-bearing model state: a swap/compare/sort triple per scalarset
// plus an exhaustive and a heuristic canonicaliser over the whole state.
// The emitted code addresses model state exclusively through five runtime
// primitives (`state_handle`, `handle_read_raw`, `handle_write_raw`,
// `state_cmp`, `memcpy`), used with fixed signatures this package never
// deviates from; it treats those primitives as an assumed collaborator,
// the same way an instruction-selection pass treats its target ISA's
// encoding as a given rather than something it also generates.
package symmetry

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/num"
)

// scalarset names one TypeDecl in the model whose value resolves to a
// ScalarsetType, together with the resolved node itself (used for
// pointer-identity matching against occurrences elsewhere in the state).
type scalarset struct {
	name string
	typ  *ast.ScalarsetType
}

// Emitter walks a Model's state variables and produces the symmetry
// routines for every scalarset it finds.
type Emitter struct {
	stateVars []*ast.VarDecl
	sets      []scalarset
}

// NewEmitter scans m for state variables and scalarset type declarations.
// Call EmitModel afterwards to write the generated C source.
func NewEmitter(m *ast.Model) *Emitter {
	e := &Emitter{}

	for _, d := range m.Decls {
		if v, ok := d.(*ast.VarDecl); ok && v.IsState {
			e.stateVars = append(e.stateVars, v)
		}
	}

	for _, d := range m.Decls {
		td, ok := d.(*ast.TypeDecl)
		if !ok {
			continue
		}

		if st, ok := ast.Underlying(td.Value).(*ast.ScalarsetType); ok {
			e.sets = append(e.sets, scalarset{td.DeclName, st})
		}
	}

	if len(e.sets) == 0 {
		log.Warn("symmetry: model declares no scalarset types; nothing to emit")
	}

	return e
}

// EmitModel writes swap_{T}/compare_{T}/sort_{T} for every scalarset found
// by NewEmitter, then state_canonicalise_exhaustive and
// state_canonicalise_heuristic.
func (e *Emitter) EmitModel(w io.Writer) error {
	for _, s := range e.sets {
		if num.Cmp(s.typ.Bound, num.FromInt64(1)) <= 0 {
			log.Warnf("symmetry: scalarset %s has bound <= 1; sort_%s is a no-op", s.name, s.name)
		}

		if err := e.emitSwap(w, s); err != nil {
			return err
		}

		if err := e.emitCompare(w, s); err != nil {
			return err
		}

		if err := e.emitSort(w, s); err != nil {
			return err
		}
	}

	if err := e.emitExhaustive(w); err != nil {
		return err
	}

	return e.emitHeuristic(w)
}

// path accumulates the offset of the node currently being visited: base is
// the compile-time-constant portion (bits), runtime is a sequence of
// "+ jN*width" C expression fragments contributed by array descents whose
// index variable is only known at generation time as a loop counter, not
// as a constant.
type path struct {
	base    num.Int
	runtime []string
}

func (p path) plusConst(n num.Int) path {
	return path{num.Add(p.base, n), p.runtime}
}

func (p path) plusRuntime(term string) path {
	next := make([]string, len(p.runtime)+1)
	copy(next, p.runtime)
	next[len(next)-1] = term

	return path{p.base, next}
}

// expr renders the accumulated offset as a single C expression.
func (p path) expr() string {
	var sb strings.Builder

	sb.WriteString(p.base.String())

	for _, term := range p.runtime {
		sb.WriteString(" + ")
		sb.WriteString(term)
	}

	return sb.String()
}

// isScalarset reports whether t's underlying resolved type is the same
// ScalarsetType node as s.typ (identity, not name: two scalarsets never
// alias the same node).
func isScalarset(t ast.TypeExpr, s scalarset) bool {
	st, ok := ast.Underlying(t).(*ast.ScalarsetType)
	return ok && st == s.typ
}

// ============================================================================
// swap_T
// ============================================================================

func (e *Emitter) emitSwap(w io.Writer, s scalarset) error {
	var body strings.Builder

	loopVar := 0

	for _, v := range e.stateVars {
		emitSwapType(&body, v.Type, path{base: v.Offset()}, s, &loopVar)
	}

	_, err := fmt.Fprintf(w, `static void swap_%[1]s(struct state *s, size_t x, size_t y) {
%[2]s}

`, s.name, body.String())

	return err
}

func emitSwapType(sb *strings.Builder, typ ast.TypeExpr, p path, s scalarset, loopVar *int) {
	u := ast.Underlying(typ)

	switch t := u.(type) {
	case *ast.RecordType:
		cum := p
		for _, f := range t.Fields {
			emitSwapType(sb, f.Type, cum, s, loopVar)
			cum = cum.plusConst(f.Type.Width())
		}
	case *ast.ArrayType:
		w := t.Element.Width()

		if isScalarset(t.Index, s) {
			offA := fmt.Sprintf("(%s) + x * %s", p.expr(), w.String())
			offB := fmt.Sprintf("(%s) + y * %s", p.expr(), w.String())
			fmt.Fprintf(sb, "    if (x != y) {\n")
			fmt.Fprintf(sb, "        void *ha = state_handle(s, %s, %s);\n", offA, w.String())
			fmt.Fprintf(sb, "        void *hb = state_handle(s, %s, %s);\n", offB, w.String())
			fmt.Fprintf(sb, "        value_t va = handle_read_raw(ha);\n")
			fmt.Fprintf(sb, "        value_t vb = handle_read_raw(hb);\n")
			fmt.Fprintf(sb, "        handle_write_raw(ha, vb);\n")
			fmt.Fprintf(sb, "        handle_write_raw(hb, va);\n")
			fmt.Fprintf(sb, "    }\n")
		}

		j := freshLoopVar(loopVar)
		count := ast.IndexCount(t.Index)
		elemPath := p.plusRuntime(fmt.Sprintf("%s * %s", j, w.String()))

		fmt.Fprintf(sb, "    for (size_t %s = 0; %s < %s; %s++) {\n", j, j, count.String(), j)
		emitSwapType(sb, t.Element, elemPath, s, loopVar)
		sb.WriteString("    }\n")
	default:
		if isScalarset(typ, s) {
			w := typ.Width()
			fmt.Fprintf(sb, "    {\n")
			fmt.Fprintf(sb, "        void *h = state_handle(s, %s, %s);\n", p.expr(), w.String())
			fmt.Fprintf(sb, "        value_t v = handle_read_raw(h);\n")
			fmt.Fprintf(sb, "        if (v == x) {\n")
			fmt.Fprintf(sb, "            handle_write_raw(h, y);\n")
			fmt.Fprintf(sb, "        } else if (v == y) {\n")
			fmt.Fprintf(sb, "            handle_write_raw(h, x);\n")
			fmt.Fprintf(sb, "        }\n")
			fmt.Fprintf(sb, "    }\n")
		}
	}
}

func freshLoopVar(counter *int) string {
	name := fmt.Sprintf("j%d", *counter)
	*counter++

	return name
}

// ============================================================================
// compare_T
// ============================================================================

func (e *Emitter) emitCompare(w io.Writer, s scalarset) error {
	var body strings.Builder

	loopVar := 0

	for _, v := range e.stateVars {
		emitCompareType(&body, v.Type, path{base: v.Offset()}, s, &loopVar)
	}

	_, err := fmt.Fprintf(w, `static int compare_%[1]s(const struct state *s, size_t x, size_t y) {
%[2]s    return 0;
}

`, s.name, body.String())

	return err
}

func emitCompareType(sb *strings.Builder, typ ast.TypeExpr, p path, s scalarset, loopVar *int) {
	u := ast.Underlying(typ)

	switch t := u.(type) {
	case *ast.RecordType:
		cum := p
		for _, f := range t.Fields {
			emitCompareType(sb, f.Type, cum, s, loopVar)
			cum = cum.plusConst(f.Type.Width())
		}
	case *ast.ArrayType:
		w := t.Element.Width()

		if isScalarset(t.Index, s) {
			offA := fmt.Sprintf("(%s) + x * %s", p.expr(), w.String())
			offB := fmt.Sprintf("(%s) + y * %s", p.expr(), w.String())
			fmt.Fprintf(sb, "    {\n")
			fmt.Fprintf(sb, "        value_t va = handle_read_raw(state_handle(s, %s, %s));\n", offA, w.String())
			fmt.Fprintf(sb, "        value_t vb = handle_read_raw(state_handle(s, %s, %s));\n", offB, w.String())
			fmt.Fprintf(sb, "        if (va < vb) return -1;\n")
			fmt.Fprintf(sb, "        if (va > vb) return 1;\n")
			fmt.Fprintf(sb, "    }\n")
		}

		j := freshLoopVar(loopVar)
		count := ast.IndexCount(t.Index)
		elemPath := p.plusRuntime(fmt.Sprintf("%s * %s", j, w.String()))

		fmt.Fprintf(sb, "    for (size_t %s = 0; %s < %s; %s++) {\n", j, j, count.String(), j)
		emitCompareType(sb, t.Element, elemPath, s, loopVar)
		sb.WriteString("    }\n")
	default:
		if isScalarset(typ, s) {
			w := typ.Width()
			fmt.Fprintf(sb, "    {\n")
			fmt.Fprintf(sb, "        value_t v = handle_read_raw(state_handle(s, %s, %s));\n", p.expr(), w.String())
			fmt.Fprintf(sb, "        if (v == x) return -1;\n")
			fmt.Fprintf(sb, "        if (v == y) return 1;\n")
			fmt.Fprintf(sb, "    }\n")
		}
	}
}

// ============================================================================
// sort_T
// ============================================================================

// emitSort writes an in-place Hoare-partition quicksort over the
// conceptual positions [lower, upper] of s: pivot = lower, i = lower-1,
// j = upper+1, advance i/j while compare < 0 / > 0, swap when i < j,
// recurse on [lower, j] and [j+1, upper]. Recursion is expressed in C as
// the function calling itself rather than an explicit work-stack.
// lower/upper are size_t, matching every other primitive's size_t
// position arguments; the partition cursors i/j are kept as ptrdiff_t
// locally since they must run one step past either end of the range
// during the scan.
func (e *Emitter) emitSort(w io.Writer, s scalarset) error {
	_, err := fmt.Fprintf(w, `static void sort_%[1]s(struct state *s, size_t lower, size_t upper) {
    if (lower >= upper) {
        return;
    }

    ptrdiff_t i = (ptrdiff_t) lower - 1;
    ptrdiff_t j = (ptrdiff_t) upper + 1;

    for (;;) {
        do { i++; } while (compare_%[1]s(s, (size_t) i, lower) < 0);
        do { j--; } while (compare_%[1]s(s, (size_t) j, lower) > 0);

        if (i >= j) {
            break;
        }

        swap_%[1]s(s, (size_t) i, (size_t) j);
    }

    sort_%[1]s(s, lower, (size_t) j);
    sort_%[1]s(s, (size_t) j + 1, upper);
}

`, s.name)

	return err
}

// ============================================================================
// state_canonicalise_exhaustive / state_canonicalise_heuristic
// ============================================================================

// emitExhaustive emits a Steinhaus-Johnson-Trotter-style schedule-array
// permutation enumerator, nested one level per scalarset: each scalarset
// keeps its own schedule array and counter index, and the
// innermost scalarset's step evaluates and compares the candidate state
// against the best snapshot taken so far, kept as a whole second `struct
// state` value and synchronised via memcpy over the full structure (no
// handle is needed for a whole-state copy, since sizeof(struct state) is
// known at the point the generated file is compiled alongside the
// runtime's own state definition).
func (e *Emitter) emitExhaustive(w io.Writer) error {
	var body strings.Builder

	if len(e.sets) == 0 {
		body.WriteString("    /* no scalarsets declared; the state is already canonical */\n")
	} else {
		emitExhaustiveLevel(&body, e.sets)
	}

	_, err := fmt.Fprintf(w, `static void state_canonicalise_exhaustive(struct state *s) {
    struct state best;
    memcpy(&best, s, sizeof(struct state));

%s
    memcpy(s, &best, sizeof(struct state));
}

`, body.String())

	return err
}

func emitExhaustiveLevel(sb *strings.Builder, sets []scalarset) {
	s := sets[0]
	rest := sets[1:]
	n := s.typ.Bound.String()

	fmt.Fprintf(sb, "    {\n")
	fmt.Fprintf(sb, "        size_t sch_%s[%s] = {0};\n", s.name, n)
	fmt.Fprintf(sb, "        size_t i_%s = 0;\n\n", s.name)
	fmt.Fprintf(sb, "        while (i_%s < %s) {\n", s.name, n)
	fmt.Fprintf(sb, "            if (sch_%s[i_%s] < i_%s) {\n", s.name, s.name, s.name)
	fmt.Fprintf(sb, "                if (i_%s %% 2 == 0) {\n", s.name)
	fmt.Fprintf(sb, "                    swap_%s(s, 0, i_%s);\n", s.name, s.name)
	fmt.Fprintf(sb, "                } else {\n")
	fmt.Fprintf(sb, "                    swap_%s(s, sch_%s[i_%s], i_%s);\n", s.name, s.name, s.name, s.name)
	fmt.Fprintf(sb, "                }\n\n")

	if len(rest) == 0 {
		fmt.Fprintf(sb, "                if (state_cmp(s, &best) < 0) {\n")
		fmt.Fprintf(sb, "                    memcpy(&best, s, sizeof(struct state));\n")
		fmt.Fprintf(sb, "                }\n\n")
	} else {
		var inner strings.Builder
		emitExhaustiveLevel(&inner, rest)
		sb.WriteString(inner.String())
		sb.WriteString("\n")
	}

	fmt.Fprintf(sb, "                sch_%s[i_%s]++;\n", s.name, s.name)
	fmt.Fprintf(sb, "                i_%s = 0;\n", s.name)
	fmt.Fprintf(sb, "            } else {\n")
	fmt.Fprintf(sb, "                sch_%s[i_%s] = 0;\n", s.name, s.name)
	fmt.Fprintf(sb, "                i_%s++;\n", s.name)
	fmt.Fprintf(sb, "            }\n")
	fmt.Fprintf(sb, "        }\n")
	fmt.Fprintf(sb, "    }\n")
}

// emitHeuristic emits one independent sort_{T}(s, 0, bound(T)-1) call per
// scalarset. Each call re-orders "positions" along its own axis only; the
// overall result is order-dependent on the sequence of calls, an
// approximation traded for running in polynomial rather than factorial
// time.
func (e *Emitter) emitHeuristic(w io.Writer) error {
	var body strings.Builder

	for _, s := range e.sets {
		hi := num.Sub(s.typ.Bound, num.FromInt64(1))
		fmt.Fprintf(&body, "    sort_%s(s, 0, %s);\n", s.name, hi.String())
	}

	_, err := fmt.Fprintf(w, `static void state_canonicalise_heuristic(struct state *s) {
%s}
`, body.String())

	return err
}
