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
	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/token"
)

// parseStatement parses a single statement. It returns nil for the empty
// statement, which is recognized by a following "end" or ";".
//
//	statement := assign | call | begin | if | while | ε
func (p *Parser) parseStatement() ast.Stmt {
	switch p.peek().Kind {
	case token.Ident:
		return p.parseAssign()
	case token.Call:
		return p.parseCall()
	case token.Begin:
		return p.parseBegin()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.End, token.Semi:
		return nil
	default:
		p.fail("expected statement")
		return nil
	}
}

// assign := ident ':=' expression
func (p *Parser) parseAssign() ast.Stmt {
	name := p.consume(token.Ident, "expected identifier")
	p.consume(token.Assign, "expected ':=' in assignment")
	value := p.parseExpression()
	return ast.NewAssign(name.Pos, name.Text(), value)
}

// call := 'call' ident
func (p *Parser) parseCall() ast.Stmt {
	kw := p.advance()
	name := p.consume(token.Ident, "expected procedure name after 'call'")
	return ast.NewCall(kw.Pos, name.Text())
}

// begin := 'begin' statement (';' statement)* 'end'
func (p *Parser) parseBegin() ast.Stmt {
	kw := p.advance()
	var stmts []ast.Stmt
	for !p.check(token.End) {
		p.recoverable(func() {
			if s := p.parseStatement(); s != nil {
				stmts = append(stmts, s)
			}
			if !p.match(token.Semi) && !p.check(token.End) {
				p.fail("expected ';' between statements")
			}
		})
	}
	p.consume(token.End, "expected 'end' to close 'begin'")
	return ast.NewBegin(kw.Pos, stmts)
}

// if := 'if' condition 'then' statement
//
// See the package documentation for how statements following the
// then-branch are absorbed into it.
func (p *Parser) parseIf() ast.Stmt {
	kw := p.advance()
	cond := p.parseCondition()
	p.consume(token.Then, "expected 'then' after condition")
	then := p.parseStatement()

	if then != nil && then.Kind() != ast.StmtBegin && !p.check(token.End) && !p.check(token.Semi) {
		stmts := []ast.Stmt{then}
		for !p.check(token.End) && !p.check(token.Semi) {
			if s := p.parseStatement(); s != nil {
				stmts = append(stmts, s)
			}
			p.match(token.Semi)
		}
		then = ast.NewBegin(then.Pos(), stmts)
	}
	return ast.NewIf(kw.Pos, cond, then)
}

// while := 'while' condition 'do' statement
func (p *Parser) parseWhile() ast.Stmt {
	kw := p.advance()
	cond := p.parseCondition()
	p.consume(token.Do, "expected 'do' after condition")
	body := p.parseStatement()
	return ast.NewWhile(kw.Pos, cond, body)
}
