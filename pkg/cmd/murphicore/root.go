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

// Package murphicore is the developer-facing CLI front door of §4.9: it
// does not parse .m files (the parser and driver proper are out of
// scope) and instead builds small models programmatically, running them
// through the real optimiser/SMT translator/symmetry emitter to give the
// library a runnable surface. Structured the way the teacher's
// pkg/cmd/corset is: one root cobra.Command with leaf sub-commands each
// its own &cobra.Command{...}.
package murphicore

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in when building with a release process; left empty
// for a plain "go build"/"go run".
var Version string

var rootCmd = &cobra.Command{
	Use:   "murphicore",
	Short: "A symbolic-execution core for Murphi models.",
	Long:  "A symbolic-execution core for Murphi models: SMT translation, symmetry reduction and field-ordering, exercised via small built-in demo models.",
}

// Execute adds all child commands to the root command. Called once by
// cmd/murphicore's main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	}
}
