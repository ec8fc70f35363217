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

package pl0compile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/pl0compile/analyzer"
	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/parser"
	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
	"github.com/bufbuild/pl0compile/token"
)

// Compiler handles compilation tasks, to turn PL/0 source files into
// checked syntax trees.
//
// The compilation process involves three steps for each file:
//  1. Lexing the whole source into tokens. A lexical error stops the file
//     here.
//  2. Parsing the tokens into an AST.
//  3. Analyzing the AST for semantic errors.
//
// Files are independent of each other and are compiled in parallel.
type Compiler struct {
	// Resolves path/file names into source code or ASTs. This is how the
	// compiler loads the files to be compiled. This field is the only
	// required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the compilation after encountering any
	// errors and ignores all warnings.
	Reporter reporter.Reporter

	// If true, the parser skips ahead after a syntax error in a statement
	// list and keeps going, so that one file can report several syntax
	// errors. Recovery stops as soon as the reporter aborts.
	Recover bool
	// If true, names that are declared but never used produce warnings.
	WarnUnused bool

	// Receives debug logs about each phase. If nil, nothing is logged.
	Logger *slog.Logger
}

// Result is the outcome of compiling one file.
type Result struct {
	Path string
	// The source text. Nil if the resolver supplied an AST.
	File *source.File
	// Every token of the file, ending with EOF. Nil if the resolver supplied
	// an AST.
	Tokens []token.Token
	// Nil if lexing or parsing failed.
	AST *ast.Program

	// Lexical, syntax and semantic errors, in that order.
	Errors   []reporter.ErrorWithPos
	Warnings []reporter.ErrorWithPos
	// The semantic analyzer's trace. Empty if there is no AST.
	Info []string
}

// Failed reports whether any error was found in the file.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// Compile compiles the given files. The compiler's resolver is used to
// locate each file's source or AST.
//
// If a file cannot be resolved or ctx is cancelled, Compile returns a nil
// slice and that error. Otherwise it returns one result per file, in the
// given order, together with the handler's error: nil if no file had
// errors, the error the reporter aborted with, or
// [reporter.ErrInvalidSource]. Naming the same file twice compiles it once
// and yields the same *Result twice.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]*Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := executor{
		c:       c,
		h:       reporter.NewHandler(c.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		log:     logger,
		results: map[string]*result{},
	}

	pending := make([]*result, len(files))
	for i, f := range files {
		pending[i] = e.compile(ctx, f)
	}

	results := make([]*Result, len(files))
	for i, r := range pending {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		results[i] = r.res
	}

	return results, e.h.Error()
}

type result struct {
	ready chan struct{}
	res   *Result
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res *Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	c   *Compiler
	h   *reporter.Handler
	s   *semaphore.Weighted
	log *slog.Logger

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// if results included a source, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	t := task{e: e, log: e.log.With("file", file)}
	res, err := t.run(ctx, file, sr)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(res)
}

// A compilation task for a single file.
type task struct {
	e   *executor
	log *slog.Logger
}

func (t *task) run(ctx context.Context, name string, sr SearchResult) (*Result, error) {
	if err := checkName(name, sr); err != nil {
		return nil, err
	}

	res := &Result{Path: name, AST: sr.AST}
	if res.AST == nil {
		data, err := io.ReadAll(sr.Source)
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", name, err)
		}
		res.File = source.FromBytes(name, data)

		if !t.lex(res) {
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !t.parse(res) {
			return res, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.analyze(res)
	return res, nil
}

// lex tokenizes the whole file. It reports the first lexical error, if
// any, and returns whether the file can be parsed.
func (t *task) lex(res *Result) bool {
	start := time.Now()
	res.Tokens = parser.Tokenize(res.File)
	t.log.Debug("lexed", "tokens", len(res.Tokens), "elapsed", time.Since(start))

	for _, tok := range res.Tokens {
		if tok.Kind != token.Error {
			continue
		}
		err := reporter.Errorf(tok.Pos, "lexical error: %s", tok.Text())
		res.Errors = append(res.Errors, err)
		_ = t.e.h.HandleError(err)
		return false
	}
	return true
}

func (t *task) parse(res *Result) bool {
	start := time.Now()
	opts := []parser.Option{parser.WithHandler(t.e.h)}
	if t.e.c.Recover {
		opts = append(opts, parser.WithRecovery())
	}
	p := parser.New(parser.TokenSlice(res.Tokens), opts...)
	res.AST, _ = p.Parse()
	res.Errors = append(res.Errors, p.Diagnostics()...)
	t.log.Debug("parsed", "errors", len(p.Diagnostics()), "elapsed", time.Since(start))
	return res.AST != nil
}

func (t *task) analyze(res *Result) {
	start := time.Now()
	opts := []analyzer.Option{analyzer.WithReporter(handlerReporter{t.e.h})}
	if t.e.c.WarnUnused {
		opts = append(opts, analyzer.WithUnusedWarnings())
	}
	a := analyzer.New(opts...)
	a.Analyze(res.AST)

	res.Errors = append(res.Errors, a.Diagnostics()...)
	res.Warnings = a.Warnings()
	res.Info = a.Info()
	for _, line := range res.Info {
		t.log.Debug(line)
	}
	t.log.Debug("analyzed", "errors", len(a.Diagnostics()), "elapsed", time.Since(start))
}

// handlerReporter adapts a [reporter.Handler] to the [reporter.Reporter]
// interface expected by the analyzer.
type handlerReporter struct {
	h *reporter.Handler
}

func (r handlerReporter) Error(err reporter.ErrorWithPos) error {
	return r.h.HandleError(err)
}

func (r handlerReporter) Warning(err reporter.ErrorWithPos) {
	r.h.HandleWarning(err.GetPosition(), err.Unwrap())
}
