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

// Package validate composes the structural checks spec.md §4.7 assigns to
// this pass: scope/type resolution (delegated to ast.Resolve, which already
// binds every ExprID/TypeExprID/FunctionCall/ProcedureCall target and
// surfaces UnknownSymbol/TypeResolution on failure) followed by the
// constant-ness check on every ConstDecl. Composite declarations are
// walked depth-first so a ConstDecl nested in a function or rule is
// checked the same way as one declared at the model's top level.
package validate

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/checkerr"
)

// Validate runs ast.Resolve over model, then checks every ConstDecl's
// value is constant (spec.md §3: "ConstDecl.value.constant()"). It returns
// the first error encountered, matching spec.md §7's single fail-fast
// error type rather than a collected diagnostic list.
func Validate(model *ast.Model) error {
	if err := ast.Resolve(model); err != nil {
		log.Error(err)
		return err
	}

	if err := validateDecls(model.Decls); err != nil {
		log.Error(err)
		return err
	}

	for _, fn := range model.Functions {
		if err := validateDecls(fn.Decls); err != nil {
			log.Error(err)
			return err
		}
	}

	for _, r := range model.Rules {
		if err := validateRule(r); err != nil {
			log.Error(err)
			return err
		}
	}

	return nil
}

func validateRule(r ast.Rule) error {
	switch rule := r.(type) {
	case *ast.SimpleRule:
		return validateDecls(rule.Decls)
	case *ast.StartState:
		return validateDecls(rule.Decls)
	case *ast.Invariant:
		return nil
	default:
		return checkerr.New(checkerr.InternalInvariant, "validate: unhandled Rule variant", r.Loc())
	}
}

func validateDecls(decls []ast.Decl) error {
	for _, d := range decls {
		if err := validateDecl(d); err != nil {
			return err
		}
	}

	return nil
}

func validateDecl(d ast.Decl) error {
	if cd, ok := d.(*ast.ConstDecl); ok && !ast.IsConstant(cd.Value) {
		return checkerr.New(checkerr.NotConstant, "const "+cd.DeclName+" is not a constant expression", cd.Loc())
	}

	return nil
}
