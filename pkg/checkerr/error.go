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

// Package checkerr defines the single structured error type used across all
// passes, grounded on the teacher's own preference for one concrete error
// type carrying a source position (pkg/sexp/error.go's SyntaxError) over a
// hierarchy of per-kind error types.
package checkerr

import (
	"fmt"

	"github.com/go-murphi/murphicore/pkg/source"
)

// Kind enumerates the error kinds named in spec.md §7.
type Kind int

const (
	// NotConstant signals a declaration required a constant expression and
	// did not get one.
	NotConstant Kind = iota
	// UnknownSymbol signals an SMT lookup of an unregistered id.
	UnknownSymbol
	// BitOpWithoutBitvectors signals a bit-operator used in integer mode.
	BitOpWithoutBitvectors
	// UnsupportedConstruct signals a construct with no SMT representation
	// (e.g. IsUndefined).
	UnsupportedConstruct
	// MalformedLvalue signals an assignment target that is not a chain of
	// ExprID/Field/Element.
	MalformedLvalue
	// TypeResolution signals a named type that did not resolve.
	TypeResolution
	// InternalInvariant signals an invariant of spec.md §3 was violated
	// mid-pass: a bug, not a user-facing condition.
	InternalInvariant
)

// String renders the kind's name, as used in the "{kind}: ..." prefix of
// Error().
func (k Kind) String() string {
	switch k {
	case NotConstant:
		return "NotConstant"
	case UnknownSymbol:
		return "UnknownSymbol"
	case BitOpWithoutBitvectors:
		return "BitOpWithoutBitvectors"
	case UnsupportedConstruct:
		return "UnsupportedConstruct"
	case MalformedLvalue:
		return "MalformedLvalue"
	case TypeResolution:
		return "TypeResolution"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// CheckError is the one structured error type returned by every pass in this
// module.
type CheckError struct {
	kind     Kind
	message  string
	location source.Location
}

// New constructs a CheckError of the given kind, message and location.
func New(kind Kind, message string, location source.Location) *CheckError {
	return &CheckError{kind, message, location}
}

// Kind returns the error's kind.
func (e *CheckError) Kind() Kind {
	return e.kind
}

// Location returns the originating location of this error.
func (e *CheckError) Location() source.Location {
	return e.location
}

// Error implements the error interface, rendering the one-line form required
// by spec.md §7: "{kind}: {message} at {file}:{line}:{col}".
func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.kind, e.message, e.location)
}
