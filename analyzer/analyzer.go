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

	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
)

// Analyzer checks the static semantics of a program.
//
// An Analyzer may be reused; each call to Analyze starts from a clean
// state. It must not be used by more than one goroutine at a time.
type Analyzer struct {
	rep        reporter.Reporter
	warnUnused bool

	// One scope per enclosing block, innermost last.
	scopes []*scope
	level  int
	// The procedures whose bodies are being analyzed, innermost last.
	procs []*Symbol

	diags    []reporter.ErrorWithPos
	warnings []reporter.ErrorWithPos
	info     []string
}

// Option configures an [Analyzer].
type Option func(*Analyzer)

// WithReporter forwards every error and warning to rep as soon as it is
// found. The result of rep.Error is ignored: analysis always runs to
// completion.
func WithReporter(rep reporter.Reporter) Option {
	return func(a *Analyzer) { a.rep = rep }
}

// WithUnusedWarnings enables warnings for constants and variables that are
// never read, and for procedures that are never called from outside their
// own body.
func WithUnusedWarnings() Option {
	return func(a *Analyzer) { a.warnUnused = true }
}

// New returns a new analyzer.
func New(opts ...Option) *Analyzer {
	a := new(Analyzer)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze checks prog and returns whether it is free of semantic errors.
// Warnings do not affect the result.
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	a.scopes = nil
	a.level = 0
	a.procs = nil
	a.diags = nil
	a.warnings = nil
	a.info = nil

	prog.Accept(visitor{a})
	return len(a.diags) == 0
}

// Errors returns the messages of the errors found by the last call to
// Analyze, without positions, such as "undeclared identifier: y".
func (a *Analyzer) Errors() []string {
	msgs := make([]string, len(a.diags))
	for i, d := range a.diags {
		msgs[i] = d.Unwrap().Error()
	}
	return msgs
}

// Diagnostics returns the errors found by the last call to Analyze, with
// their positions.
func (a *Analyzer) Diagnostics() []reporter.ErrorWithPos {
	return a.diags
}

// Warnings returns the warnings found by the last call to Analyze.
func (a *Analyzer) Warnings() []reporter.ErrorWithPos {
	return a.warnings
}

// Info returns a trace of the declarations and scopes processed by the
// last call to Analyze.
func (a *Analyzer) Info() []string {
	return a.info
}

func (a *Analyzer) errorf(pos source.Pos, format string, args ...any) {
	a.report(reporter.Errorf(pos, format, args...))
}

func (a *Analyzer) report(err reporter.ErrorWithPos) {
	a.diags = append(a.diags, err)
	if a.rep != nil {
		_ = a.rep.Error(err)
	}
}

func (a *Analyzer) unused(sym *Symbol) {
	if !a.warnUnused {
		return
	}
	err := reporter.Error(sym.Pos, &UnusedError{Kind: sym.Kind, Name: sym.Name})
	a.warnings = append(a.warnings, err)
	if a.rep != nil {
		a.rep.Warning(err)
	}
}

func (a *Analyzer) infof(format string, args ...any) {
	a.info = append(a.info, fmt.Sprintf(format, args...))
}

// declare declares sym in the innermost scope, reporting a duplicate.
func (a *Analyzer) declare(sym *Symbol) {
	if prev, ok := a.declareSymbol(sym); !ok {
		// The duplicate never becomes visible, so it cannot be unused.
		a.report(reporter.Error(sym.Pos, &DuplicateError{Kind: sym.Kind, Name: sym.Name, Previous: prev.Pos}))
	}
}
