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
	"github.com/go-murphi/murphicore/pkg/source"
	"github.com/go-murphi/murphicore/pkg/symmetry"
)

var symmetryCmd = &cobra.Command{
	Use:   "symmetry",
	Short: "Exercise the symmetry-reduction emitter against a small built-in model.",
}

var symmetryDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a model with one scalarset-typed variable pair, run the field-ordering optimiser then the symmetry emitter, and print the emitted C fragment.",
	Run: func(cmd *cobra.Command, args []string) {
		model := buildRingModel()
		optimiser.Run(model)

		e := symmetry.NewEmitter(model)

		var buf bytes.Buffer
		if err := e.EmitModel(&buf); err != nil {
			fmt.Println(err.Error())
			return
		}

		fmt.Println(strings.Repeat("-", int(termio.Width(os.Stdout))))
		fmt.Print(buf.String())
	},
}

// buildRingModel returns a model with a two-element scalarset Node and a
// state variable owner: array[Node] of Node, the same fixture shape
// pkg/symmetry's own tests use.
func buildRingModel() *ast.Model {
	idx := ids.NewIndexer()
	loc := source.Unknown

	nodeType := ast.NewScalarsetType(idx, loc, num.FromInt64(2))
	nodeDecl := ast.NewTypeDecl(idx, loc, "Node", nodeType)

	arrayType := ast.NewArrayType(idx, loc, nodeType, nodeType)
	owner := ast.NewVarDecl(idx, loc, "owner", arrayType, true)

	return ast.NewModel([]ast.Decl{nodeDecl, owner}, nil, nil)
}

func init() {
	symmetryCmd.AddCommand(symmetryDemoCmd)
	rootCmd.AddCommand(symmetryCmd)
}
