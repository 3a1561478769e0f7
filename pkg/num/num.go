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

// Package num provides the arbitrary-precision signed integer arithmetic
// used throughout this module for widths, offsets, counts and literal
// values.  Every semantic quantity in the AST and its passes is represented
// using Int; no fixed-width integer type is used where a Murphi model could
// in principle require more precision than it provides.
package num

import "math/big"

// Int is an arbitrary-precision signed integer.  It wraps math/big.Int, the
// representation used pervasively for this purpose throughout the teacher
// corpus (e.g. column padding values, evaluated cell values), rather than a
// fixed-width type.
type Int struct {
	v big.Int
}

// Zero is the additive identity.
func Zero() Int { return Int{} }

// FromInt64 constructs an Int from a native int64.
func FromInt64(n int64) Int {
	var i Int
	i.v.SetInt64(n)
	return i
}

// FromUint64 constructs an Int from a native uint64.
func FromUint64(n uint64) Int {
	var i Int
	i.v.SetUint64(n)
	return i
}

// FromString parses a decimal string into an Int.  The second return value
// is false if the string was not a valid base-10 integer.
func FromString(s string) (Int, bool) {
	var i Int

	_, ok := i.v.SetString(s, 10)

	return i, ok
}

// Add returns l + r.
func Add(l, r Int) Int {
	var out Int
	out.v.Add(&l.v, &r.v)
	return out
}

// Sub returns l - r.
func Sub(l, r Int) Int {
	var out Int
	out.v.Sub(&l.v, &r.v)
	return out
}

// Mul returns l * r.
func Mul(l, r Int) Int {
	var out Int
	out.v.Mul(&l.v, &r.v)
	return out
}

// Div returns l / r, truncated towards zero (per spec.md §4.1).
func Div(l, r Int) Int {
	var out Int
	out.v.Quo(&l.v, &r.v)
	return out
}

// Mod returns the remainder of l / r, with the sign of l (truncating
// division semantics), matching Div above.
func Mod(l, r Int) Int {
	var out Int
	out.v.Rem(&l.v, &r.v)
	return out
}

// Neg returns -n.
func Neg(n Int) Int {
	var out Int
	out.v.Neg(&n.v)
	return out
}

// Cmp returns -1, 0 or +1 as l is less than, equal to, or greater than r.
func Cmp(l, r Int) int {
	return l.v.Cmp(&r.v)
}

// Equal returns true iff l == r.
func Equal(l, r Int) bool {
	return Cmp(l, r) == 0
}

// Lt returns true iff l < r.
func Lt(l, r Int) bool { return Cmp(l, r) < 0 }

// Leq returns true iff l <= r.
func Leq(l, r Int) bool { return Cmp(l, r) <= 0 }

// Gt returns true iff l > r.
func Gt(l, r Int) bool { return Cmp(l, r) > 0 }

// Geq returns true iff l >= r.
func Geq(l, r Int) bool { return Cmp(l, r) >= 0 }

// Sign returns -1, 0 or +1 according to the sign of n.
func (n Int) Sign() int { return n.v.Sign() }

// IsZero returns true iff n == 0.
func (n Int) IsZero() bool { return n.v.Sign() == 0 }

// String renders n in decimal.
func (n Int) String() string { return n.v.String() }

// Uint64 returns n as a native uint64.  Panics if n does not fit, or is
// negative; callers are expected to have validated widths/counts are
// representable before calling (an internal invariant, not user-facing).
func (n Int) Uint64() uint64 {
	if !n.v.IsUint64() {
		panic("num: value does not fit in uint64")
	}

	return n.v.Uint64()
}

// BigInt returns a copy of the underlying big.Int, for interop with code
// that must call into math/big directly (e.g. bit shifts).
func (n Int) BigInt() *big.Int {
	var out big.Int
	out.Set(&n.v)
	return &out
}

// PopCount returns the number of set bits in the two's-complement magnitude
// of n (n is expected to be non-negative; this is used for single-bit
// literals and bit-vector widths, which are always non-negative by
// construction).
func (n Int) PopCount() Int {
	count := 0

	for _, word := range n.v.Bits() {
		for word != 0 {
			count += int(word & 1)
			word >>= 1
		}
	}

	return FromInt64(int64(count))
}

// Log2Ceil computes ceil(log2(n)) for n >= 1, and returns 0 for n <= 1.
// This realises the width formula of spec.md §3: width = ceil(log2(max -
// min + 1)). The result is itself an Int (not a fixed-width integer): per
// spec.md §4.1, no fixed-width type is used for width/offset/count
// arithmetic, however astronomically large a model's declared widths
// might be.
func Log2Ceil(n Int) Int {
	if n.v.Sign() <= 0 {
		return Zero()
	}

	// bitLen(n-1) gives floor(log2(n-1))+1 which equals ceil(log2(n)) for
	// all n >= 1, including powers of two.
	var nMinusOne big.Int
	nMinusOne.Sub(&n.v, big.NewInt(1))

	if nMinusOne.Sign() <= 0 {
		return Zero()
	}

	return FromInt64(int64(nMinusOne.BitLen()))
}
