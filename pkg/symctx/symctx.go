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

// Package symctx provides the lexically scoped SSA symbol environment the
// SMT translator (pkg/smt) uses to give every assigned-to variable a
// fresh symbol name at each rebind.
package symctx

import (
	"fmt"

	"github.com/go-murphi/murphicore/pkg/checkerr"
	"github.com/go-murphi/murphicore/pkg/ids"
	"github.com/go-murphi/murphicore/pkg/source"
	"github.com/go-murphi/murphicore/pkg/util/collection/stack"
)

type scope struct {
	bindings map[ids.ID]string
}

func newScope() *scope {
	return &scope{make(map[ids.ID]string)}
}

// SymContext is a stack of lexical scope frames mapping unique_id to a
// freshly invented symbol name. Registering the same id twice within one
// frame overwrites the prior binding: this is the mechanism that
// implements SSA-style renaming on assignment (pkg/smt's
// TranslateAssignment).
type SymContext struct {
	scopes   *stack.Stack[*scope]
	counter  int
	archive  bool
	archived []map[ids.ID]string
}

// NewSymContext constructs a SymContext with one open scope (the initial
// state every translation session starts in) whose bindings are
// discarded when it closes.
func NewSymContext() *SymContext {
	c := &SymContext{stack.New[*scope](), 0, false, nil}
	c.scopes.Push(newScope())

	return c
}

// NewSymContextArchiving constructs a SymContext like NewSymContext, but
// additionally keeps a copy of every closed scope's bindings, retrievable
// via Archived. Opt-in: a pass that needs to resolve a symbol after its
// scope has closed (e.g. counterexample rendering) requests this mode
// explicitly; the default is to let closed bindings be garbage.
func NewSymContextArchiving() *SymContext {
	c := &SymContext{stack.New[*scope](), 0, true, nil}
	c.scopes.Push(newScope())

	return c
}

// OpenScope pushes a new, empty lexical frame.
func (c *SymContext) OpenScope() {
	c.scopes.Push(newScope())
}

// CloseScope pops the innermost lexical frame. In archiving mode, its
// bindings are copied into Archived before being discarded.
//
// Panics if called with no open scope: NewSymContext/NewSymContextArchiving
// always leave one scope open, so this only fires on an unbalanced
// OpenScope/CloseScope pairing by the caller.
func (c *SymContext) CloseScope() {
	s, ok := c.scopes.TryPop()
	if !ok {
		panic("symctx: CloseScope called with no open scope")
	}

	if c.archive {
		snapshot := make(map[ids.ID]string, len(s.bindings))
		for id, name := range s.bindings {
			snapshot[id] = name
		}

		c.archived = append(c.archived, snapshot)
	}
}

// RegisterSymbol invents a fresh symbol name "s{n}" from a monotonic
// counter shared across the whole context, and binds it to id in the
// innermost open scope. A second call for the same id within the same
// frame overwrites the prior binding rather than erroring: each
// assignment to the same variable mints a new name, and subsequent reads
// within that frame resolve to the newest one.
func (c *SymContext) RegisterSymbol(id ids.ID) string {
	name := fmt.Sprintf("s%d", c.counter)
	c.counter++

	c.scopes.Peek(0).bindings[id] = name

	return name
}

// LookupSymbol searches outward from the innermost open scope for id,
// returning its current symbol name. A well-formed translation never
// calls this on an id that was not previously registered in an enclosing
// scope; failing that, it reports checkerr.UnknownSymbol at origin.
func (c *SymContext) LookupSymbol(id ids.ID, origin source.Location) (string, error) {
	for i := uint(0); i < c.scopes.Len(); i++ {
		if name, ok := c.scopes.Peek(i).bindings[id]; ok {
			return name, nil
		}
	}

	return "", checkerr.New(checkerr.UnknownSymbol, "symbol not registered in any enclosing scope", origin)
}

// Archived returns the bindings of every closed scope, in the order the
// scopes were closed (earliest first), if this SymContext was constructed with
// NewSymContextArchiving; otherwise it returns nil.
func (c *SymContext) Archived() []map[ids.ID]string {
	return c.archived
}
