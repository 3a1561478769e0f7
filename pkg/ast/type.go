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
	"fmt"
	"strings"

	"github.com/go-murphi/murphicore/pkg/checkerr"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/source"
)

// TypeExpr is the closed set of type-expression variants named in
// spec.md §3: Range, Enum, Scalarset, Record, Array and the named
// reference TypeExprID.
type TypeExpr interface {
	Node
	// IsSimple is true for Range, Enum and Scalarset; false for Record and
	// Array.
	IsSimple() bool
	// Width returns the number of bits required to represent a value of
	// this type, per the formulas of spec.md §3.  Resolving a TypeExprID
	// must have occurred before this is called.  Per spec.md §4.1, no
	// fixed-width integer is used for this semantic quantity.
	Width() num.Int
	// String renders this type for diagnostics.
	String() string
	isTypeExpr()
}

// ============================================================================
// Range
// ============================================================================

// RangeType is a primitive integer interval [Min, Max].
type RangeType struct {
	base
	Min num.Int
	Max num.Int
}

// NewRangeType constructs a Range(min, max) type.
func NewRangeType(idx *ids.Indexer, loc source.Location, min, max num.Int) *RangeType {
	return &RangeType{newBase(idx, loc), min, max}
}

func (*RangeType) isTypeExpr()    {}
func (*RangeType) IsSimple() bool { return true }

// Width implements ceil(log2(max - min + 1)).
func (t *RangeType) Width() num.Int {
	return num.Log2Ceil(t.Count())
}

// Count returns max - min + 1, the number of values a RangeType admits.
func (t *RangeType) Count() num.Int {
	return num.Add(num.Sub(t.Max, t.Min), num.FromInt64(1))
}

func (t *RangeType) String() string {
	return fmt.Sprintf("%s..%s", t.Min.String(), t.Max.String())
}

// ============================================================================
// Enum
// ============================================================================

// EnumType is an ordered sequence of member names.
type EnumType struct {
	base
	Members []string
}

// NewEnumType constructs an Enum(members) type.
func NewEnumType(idx *ids.Indexer, loc source.Location, members []string) *EnumType {
	return &EnumType{newBase(idx, loc), members}
}

func (*EnumType) isTypeExpr()    {}
func (*EnumType) IsSimple() bool { return true }

// Width is ceil(log2(len(members))), the width of a range [0,len(members)).
func (t *EnumType) Width() num.Int {
	return num.Log2Ceil(t.Count())
}

// Count returns the number of members.
func (t *EnumType) Count() num.Int {
	return num.FromInt64(int64(len(t.Members)))
}

func (t *EnumType) String() string {
	return fmt.Sprintf("enum{%s}", strings.Join(t.Members, ","))
}

// ============================================================================
// Scalarset
// ============================================================================

// ScalarsetType is a symmetry-bearing finite type of a given bound.
type ScalarsetType struct {
	base
	Bound num.Int
}

// NewScalarsetType constructs a Scalarset(bound) type.
func NewScalarsetType(idx *ids.Indexer, loc source.Location, bound num.Int) *ScalarsetType {
	return &ScalarsetType{newBase(idx, loc), bound}
}

func (*ScalarsetType) isTypeExpr()    {}
func (*ScalarsetType) IsSimple() bool { return true }

// Width is the width of a range [0, bound).
func (t *ScalarsetType) Width() num.Int {
	return num.Log2Ceil(t.Bound)
}

func (t *ScalarsetType) String() string {
	return fmt.Sprintf("scalarset(%s)", t.Bound.String())
}

// ============================================================================
// Record
// ============================================================================

// RecordType is an ordered sequence of fields.
type RecordType struct {
	base
	Fields []*VarDecl
}

// NewRecordType constructs a Record(fields) type.
func NewRecordType(idx *ids.Indexer, loc source.Location, fields []*VarDecl) *RecordType {
	return &RecordType{newBase(idx, loc), fields}
}

func (*RecordType) isTypeExpr()    {}
func (*RecordType) IsSimple() bool { return false }

// Width is the sum of field widths.
func (t *RecordType) Width() num.Int {
	total := num.Zero()
	for _, f := range t.Fields {
		total = num.Add(total, f.Type.Width())
	}

	return total
}

func (t *RecordType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Name(), f.Type.String())
	}

	return fmt.Sprintf("record{%s}", strings.Join(parts, "; "))
}

// ============================================================================
// Array
// ============================================================================

// ArrayType indexes Element by Index; Index must resolve to a simple type.
type ArrayType struct {
	base
	Index   TypeExpr
	Element TypeExpr
}

// NewArrayType constructs an Array(index, element) type.
func NewArrayType(idx *ids.Indexer, loc source.Location, index, element TypeExpr) *ArrayType {
	return &ArrayType{newBase(idx, loc), index, element}
}

func (*ArrayType) isTypeExpr()    {}
func (*ArrayType) IsSimple() bool { return false }

// Width is count(index) * width(element).
func (t *ArrayType) Width() num.Int {
	return num.Mul(IndexCount(t.Index), t.Element.Width())
}

func (t *ArrayType) String() string {
	return fmt.Sprintf("array[%s] of %s", t.Index.String(), t.Element.String())
}

// ============================================================================
// TypeExprID: named reference
// ============================================================================

// TypeExprID is a named reference to a type declared elsewhere; it must
// resolve, via the enclosing scope, to one of the five structural variants
// above before any width/offset computation (spec.md §3 invariant).
type TypeExprID struct {
	base
	Name     string
	resolved TypeExpr
}

// NewTypeExprID constructs an as-yet-unresolved named type reference.
func NewTypeExprID(idx *ids.Indexer, loc source.Location, name string) *TypeExprID {
	return &TypeExprID{newBase(idx, loc), name, nil}
}

func (*TypeExprID) isTypeExpr() {}

// IsSimple panics if this reference has not been resolved; resolution is a
// precondition for any structural query (spec.md §3 invariant).
func (t *TypeExprID) IsSimple() bool {
	return t.mustResolve().IsSimple()
}

// Width delegates to the resolved type.
func (t *TypeExprID) Width() num.Int {
	return t.mustResolve().Width()
}

func (t *TypeExprID) String() string {
	return t.Name
}

// IsResolved reports whether Resolve has bound this reference yet.
func (t *TypeExprID) IsResolved() bool {
	return t.resolved != nil
}

// Resolved returns the type this reference resolves to, or nil.
func (t *TypeExprID) Resolved() TypeExpr {
	return t.resolved
}

// BindResolution sets the resolved target. Resolving is idempotent: binding
// the same target twice is permitted, but binding a different target to an
// already-resolved reference is an internal invariant violation.
func (t *TypeExprID) BindResolution(target TypeExpr) error {
	if t.resolved != nil && t.resolved != target {
		return checkerr.New(checkerr.InternalInvariant,
			"TypeExprID resolved to conflicting targets", t.Loc())
	}

	t.resolved = target

	return nil
}

func (t *TypeExprID) mustResolve() TypeExpr {
	if t.resolved == nil {
		panic("ast: TypeExprID " + t.Name + " used before resolution")
	}

	return t.resolved
}

// Underlying follows zero or more TypeExprID indirections to the first
// structural (non-TypeExprID) variant, per the spec.md §3 invariant that
// every occurrence resolves to one of the five structural variants.
func Underlying(t TypeExpr) TypeExpr {
	for {
		ref, ok := t.(*TypeExprID)
		if !ok {
			return t
		}

		t = ref.mustResolve()
	}
}

// IndexCount returns the number of distinct index values of a simple index
// type (Range, Enum or Scalarset), used by ArrayType.Width and by the
// symmetry emitter's addressing arithmetic.
func IndexCount(index TypeExpr) num.Int {
	switch t := Underlying(index).(type) {
	case *RangeType:
		return t.Count()
	case *EnumType:
		return t.Count()
	case *ScalarsetType:
		return t.Bound
	default:
		panic("ast: array index type is not simple")
	}
}
