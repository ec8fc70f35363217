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

package parser

import (
	"io"

	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
	"github.com/bufbuild/pl0compile/token"
)

// Parser is a recursive-descent parser for PL/0.
//
// A Parser is single-use: construct one per token source and call
// [Parser.Parse] once.
type Parser struct {
	src      TokenSource
	handler  *reporter.Handler
	recovery bool

	diags   []reporter.ErrorWithPos
	aborted bool
}

// Option configures a [Parser].
type Option func(*Parser)

// WithRecovery enables error recovery in statement lists. After a syntax
// error the parser skips to the next ";" or to a token that can start a
// statement and continues, collecting further errors.
func WithRecovery() Option {
	return func(p *Parser) { p.recovery = true }
}

// WithHandler sends every syntax error to h as it is found. If the handler's
// reporter returns a non-nil error, parsing stops even when recovery is
// enabled.
func WithHandler(h *reporter.Handler) Option {
	return func(p *Parser) { p.handler = h }
}

// New returns a parser that reads from src.
func New(src TokenSource, opts ...Option) *Parser {
	p := &Parser{src: src}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a whole program. On success it returns the AST and a nil
// error. On failure it returns a nil AST and the first syntax error, which
// is a [reporter.ErrorWithPos].
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			prog, err = nil, b.err
		}
	}()

	prog = p.parseProgram()
	if len(p.diags) > 0 {
		return nil, p.diags[0]
	}
	return prog, nil
}

// Errors returns the formatted syntax errors found by Parse, in the order
// they were found.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.diags))
	for i, d := range p.diags {
		msgs[i] = d.Error()
	}
	return msgs
}

// Diagnostics returns the syntax errors found by Parse.
func (p *Parser) Diagnostics() []reporter.ErrorWithPos {
	return p.diags
}

// Parse reads all of r and parses it as a PL/0 program named filename.
//
// Syntax errors are sent to handler, which may be nil to use the default
// fail-fast handler. The returned error is handler.Error(): either the
// error the reporter aborted with, or [reporter.ErrInvalidSource] if the
// reporter accepted every error.
func Parse(filename string, r io.Reader, handler *reporter.Handler, opts ...Option) (*ast.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	file := source.FromBytes(filename, data)
	p := New(NewLexer(file), append([]Option{WithHandler(handler)}, opts...)...)
	prog, _ := p.Parse()
	if err := handler.Error(); err != nil {
		return nil, err
	}
	return prog, nil
}

// bailout is the panic value used to unwind the parser on a syntax error.
type bailout struct {
	err reporter.ErrorWithPos
}

func (p *Parser) peek() token.Token {
	return p.src.Peek()
}

func (p *Parser) advance() token.Token {
	return p.src.Next()
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// match consumes the next token if it has the given kind.
func (p *Parser) match(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// consume returns the next token and advances, or fails with message if
// the next token is not of the given kind.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if !p.check(kind) {
		p.fail(message)
	}
	return p.advance()
}

// fail records a syntax error at the next token and unwinds the parser.
// The message says what was expected; a description of the token that was
// found is appended. An error token is always reported as a lexical error.
func (p *Parser) fail(message string) {
	tok := p.peek()
	var err reporter.ErrorWithPos
	if tok.Kind == token.Error {
		err = reporter.Errorf(tok.Pos, "lexical error: %s", tok.Text())
	} else {
		err = reporter.Errorf(tok.Pos, "%s, found %s", message, tok.Describe())
	}

	p.diags = append(p.diags, err)
	if p.handler != nil && p.handler.HandleError(err) != nil {
		p.aborted = true
	}
	panic(bailout{err: err})
}
