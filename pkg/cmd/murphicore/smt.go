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

package murphicore

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-murphi/murphicore/internal/termio"
	"github.com/go-murphi/murphicore/pkg/ast"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/num"
	"github.com/go-murphi/murphicore/pkg/optimiser"
	"github.com/go-murphi/murphicore/pkg/smt"
	"github.com/go-murphi/murphicore/pkg/source"
)

var smtCmd = &cobra.Command{
	Use:   "smt",
	Short: "Exercise the SMT translator against a small built-in model.",
}

var smtDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a tiny model (x := x + 1), translate it in both integer and bit-vector mode, and print the emitted SMT-LIB text.",
	Run: func(cmd *cobra.Command, args []string) {
		model, x := buildCounterModel()
		optimiser.Run(model)

		rule := strings.Repeat("-", int(termio.Width(os.Stdout)))

		fmt.Println(rule)
		fmt.Println("; integer theory")
		fmt.Print(translateCounterAssignment(model, x, false, 0))

		fmt.Println(rule)
		fmt.Println("; bit-vector theory (width 8)")
		fmt.Print(translateCounterAssignment(model, x, true, 8))
	},
}

// buildCounterModel returns a model with a single state variable x: [0,7]
// and its ExprID, ready to be read by translateCounterAssignment.
func buildCounterModel() (*ast.Model, *ast.ExprID) {
	idx := ids.NewIndexer()
	loc := source.Unknown

	xType := ast.NewRangeType(idx, loc, num.Zero(), num.FromInt64(7))
	xDecl := ast.NewVarDecl(idx, loc, "x", xType, true)
	xRef := ast.NewExprID(idx, loc, "x")
	xRef.Target = xDecl

	model := ast.NewModel([]ast.Decl{xDecl}, nil, nil)

	return model, xRef
}

func translateCounterAssignment(model *ast.Model, x *ast.ExprID, bitvectors bool, width uint32) string {
	idx := ids.NewIndexer()
	loc := source.Unknown

	tr := smt.NewTranslator(bitvectors, width)
	tr.RegisterModel(model)
	tr.OpenScope()
	defer tr.CloseScope()

	var buf bytes.Buffer
	if err := tr.DeclareModelSymbols(&buf, model); err != nil {
		return err.Error()
	}

	rhs := ast.NewAdd(idx, loc, x, ast.NewNumber(idx, loc, num.FromInt64(1)))
	if err := tr.TranslateAssignment(&buf, x, rhs); err != nil {
		return err.Error()
	}

	return buf.String()
}

func init() {
	smtCmd.AddCommand(smtDemoCmd)
	rootCmd.AddCommand(smtCmd)
}
