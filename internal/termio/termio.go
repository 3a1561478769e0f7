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

// Package termio sizes the CLI's demo output to the attached terminal,
// grounded on the teacher's pkg/util/termio.Terminal.GetSize, which wraps
// golang.org/x/term the same way.
package termio

import (
	"os"

	"golang.org/x/term"
)

// defaultWidth is used when stdout is not a terminal (e.g. piped output
// or a test harness), matching the teacher's own fallback convention.
const defaultWidth = 80

// Width returns the current terminal column width of fd, or defaultWidth
// if fd is not a terminal.
func Width(fd *os.File) uint {
	if !term.IsTerminal(int(fd.Fd())) {
		return defaultWidth
	}

	w, _, err := term.GetSize(int(fd.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}

	return uint(w)
}
