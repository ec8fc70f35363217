// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/btree"

	"github.com/bufbuild/pl0compile/source"
)

// SymbolKind is the kind of entity a name refers to.
type SymbolKind int8

const (
	Constant SymbolKind = iota + 1
	Variable
	Procedure
)

// String implements [fmt.Stringer].
func (k SymbolKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case Procedure:
		return "procedure"
	default:
		return fmt.Sprintf("analyzer.SymbolKind(%d)", int(k))
	}
}

// Symbol is what the analyzer knows about a declared name.
type Symbol struct {
	Name string
	Kind SymbolKind
	// Where the name was declared.
	Pos source.Pos

	// The value of a constant. HasValue is false for other kinds.
	Value    int64
	HasValue bool

	// The nesting level of the declaring scope. The program block is
	// level 1.
	Level int
	// The slot of a variable within its declaring scope, assigned in
	// declaration order from 0.
	Index int

	used bool
}

// scope is the symbol table of one block.
type scope struct {
	level    int
	symbols  btree.Map[string, *Symbol]
	nextSlot int
}

// enterScope pushes a new, empty scope one level deeper than the current
// one. Variable slots restart at 0.
func (a *Analyzer) enterScope() {
	a.level++
	a.scopes = append(a.scopes, &scope{level: a.level})
}

// leaveScope pops the innermost scope, discarding its symbols.
func (a *Analyzer) leaveScope() {
	top := a.scopes[len(a.scopes)-1]

	names := make([]string, 0, top.symbols.Len())
	top.symbols.Scan(func(name string, sym *Symbol) bool {
		names = append(names, name)
		if !sym.used {
			a.unused(sym)
		}
		return true
	})
	if len(names) == 0 {
		a.infof("Leaving scope at level %d: no symbols", top.level)
	} else {
		a.infof("Leaving scope at level %d: %s", top.level, strings.Join(names, ", "))
	}

	a.scopes = a.scopes[:len(a.scopes)-1]
	a.level--
}

// declareSymbol adds sym to the innermost scope. It fails and returns the
// existing symbol if that scope already declares the name; declarations in
// enclosing scopes are shadowed, not duplicated.
func (a *Analyzer) declareSymbol(sym *Symbol) (*Symbol, bool) {
	top := a.scopes[len(a.scopes)-1]
	if prev, ok := top.symbols.Get(sym.Name); ok {
		return prev, false
	}
	sym.Level = top.level
	if sym.Kind == Variable {
		sym.Index = top.nextSlot
		top.nextSlot++
	}
	top.symbols.Set(sym.Name, sym)
	return sym, true
}

// lookupSymbol finds the innermost declaration of name.
func (a *Analyzer) lookupSymbol(name string) *Symbol {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if sym, ok := a.scopes[i].symbols.Get(name); ok {
			return sym
		}
	}
	return nil
}

// markUsed records a read of sym or a call to it. Calls that a procedure makes
// from inside its own body do not count.
func (a *Analyzer) markUsed(sym *Symbol) {
	if slices.Contains(a.procs, sym) {
		return
	}
	sym.used = true
}
