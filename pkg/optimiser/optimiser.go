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

// Package optimiser implements the field-ordering pass of spec.md §4.6: a
// mutating traversal that reorders a Record's fields and the model's
// top-level state-variable list to pack zero- and power-of-two-width
// fields ahead of the rest, then reassigns offsets to match. It runs
// before the symmetry-reduction emitter (pkg/symmetry), whose swap/compare
// routines read VarDecl.Offset() and panic if it has not yet been
// assigned.
package optimiser

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/num"
)

// Run applies the field-ordering optimiser to every Record type reachable
// from the types of m's top-level VarDecls and TypeDecls and of its
// functions' local VarDecls, and to m's own top-level state-variable list.
// Records reachable only through a function parameter or a rule-local
// declaration are not visited. Reordering happens
// in a local buffer per Record/state list and is assigned back only once
// built, mirroring the teacher's module builders that construct into a
// local slice and commit only on success (pkg/schema's builder pattern) —
// here there is no failure path, but the same discipline keeps a Record
// never observable half-reordered.
func Run(m *ast.Model) {
	for _, d := range m.Decls {
		switch decl := d.(type) {
		case *ast.VarDecl:
			optimiseType(decl.Type)
		case *ast.TypeDecl:
			optimiseType(decl.Value)
		}
	}

	for _, fn := range m.Functions {
		for _, d := range fn.Decls {
			if v, ok := d.(*ast.VarDecl); ok {
				optimiseType(v.Type)
			}
		}
	}

	orderModelState(m)
}

// optimiseType recurses into a type's structure, reordering every nested
// Record it finds. Array index types are always simple (spec.md §3) and
// need no recursion; only the element type can itself be or contain a
// Record.
func optimiseType(t ast.TypeExpr) {
	switch tt := t.(type) {
	case *ast.RecordType:
		for _, f := range tt.Fields {
			optimiseType(f.Type)
		}

		before := tt.Width()
		reordered := reorder(tt.Fields)
		assignOffsets(reordered)
		tt.Fields = reordered

		log.Debugf("optimiser: reordered record (%d fields, %s -> %s bits)",
			len(reordered), before.String(), tt.Width().String())
	case *ast.ArrayType:
		optimiseType(tt.Element)
	}
}

// reorder returns a new slice holding fields in field-ordering-pass order:
// zero-width first, then power-of-two-width, then everything else, each
// tier sorted by decreasing width with ties broken by original position
// (sort.SliceStable).
func reorder(fields []*ast.VarDecl) []*ast.VarDecl {
	out := make([]*ast.VarDecl, len(fields))
	copy(out, fields)

	sort.SliceStable(out, func(i, j int) bool {
		wi, wj := out[i].Type.Width(), out[j].Type.Width()

		ti, tj := tier(wi), tier(wj)
		if ti != tj {
			return ti < tj
		}

		return num.Cmp(wi, wj) > 0
	})

	return out
}

// tier buckets a width into 0 (zero-width), 1 (power-of-two, nonzero) or
// 2 (everything else), per spec.md §4.6 step 2.
func tier(width num.Int) int {
	if width.IsZero() {
		return 0
	}

	if num.Equal(width.PopCount(), num.FromInt64(1)) {
		return 1
	}

	return 2
}

// assignOffsets walks fields in order, assigning each the running sum of
// preceding widths.
func assignOffsets(fields []*ast.VarDecl) {
	offset := num.Zero()

	for _, f := range fields {
		f.SetOffset(offset)
		offset = num.Add(offset, f.Type.Width())
	}
}

// orderModelState partitions m.Decls into non-state-VarDecl declarations
// (kept in their original relative order) and state VarDecls, sorts the
// latter via reorder, assigns offsets, and rebuilds m.Decls with the
// sorted state variables appended after everything else (spec.md §4.6
// step 3: "re-append the sorted VarDecls after the non-VarDecls").
func orderModelState(m *ast.Model) {
	rest := make([]ast.Decl, 0, len(m.Decls))

	var stateVars []*ast.VarDecl

	for _, d := range m.Decls {
		if v, ok := d.(*ast.VarDecl); ok && v.IsState {
			stateVars = append(stateVars, v)
			continue
		}

		rest = append(rest, d)
	}

	sorted := reorder(stateVars)
	assignOffsets(sorted)

	newDecls := make([]ast.Decl, 0, len(rest)+len(sorted))
	newDecls = append(newDecls, rest...)

	for _, v := range sorted {
		newDecls = append(newDecls, v)
	}

	m.Decls = newDecls

	log.Debugf("optimiser: reordered %d state variables (%s bits total)", len(sorted), m.SizeBits().String())
}
