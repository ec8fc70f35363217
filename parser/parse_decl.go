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

// program := block '.'
func (p *Parser) parseProgram() *ast.Program {
	pos := p.peek().Pos
	block := p.parseBlock()
	p.consume(token.Period, "expected '.' at end of program")
	return ast.NewProgram(pos, block)
}

// block := constDecls varDecls procDecls statement
func (p *Parser) parseBlock() *ast.Block {
	pos := p.peek().Pos
	consts := p.parseConstDecls()
	vars := p.parseVarDecls()
	procs := p.parseProcedureDecls()
	body := p.parseStatement()
	return ast.NewBlock(pos, consts, vars, procs, body)
}

// constDecls := ('const' ident '=' number (',' ident '=' number)* ';')?
func (p *Parser) parseConstDecls() []*ast.ConstDecl {
	if !p.match(token.Const) {
		return nil
	}
	var decls []*ast.ConstDecl
	for {
		name := p.consume(token.Ident, "expected identifier in constant declaration")
		p.consume(token.Eq, "expected '=' in constant declaration")
		value := p.consume(token.Number, "expected number in constant declaration")
		decls = append(decls, ast.NewConstDecl(name.Pos, name.Text(), value.Value()))
		if !p.match(token.Comma) {
			break
		}
	}
	p.consume(token.Semi, "expected ';' after constant declarations")
	return decls
}

// varDecls := ('var' ident (',' ident)* ';')?
func (p *Parser) parseVarDecls() []*ast.VarDecl {
	if !p.match(token.Var) {
		return nil
	}
	var decls []*ast.VarDecl
	for {
		name := p.consume(token.Ident, "expected identifier in variable declaration")
		decls = append(decls, ast.NewVarDecl(name.Pos, name.Text()))
		if !p.match(token.Comma) {
			break
		}
	}
	p.consume(token.Semi, "expected ';' after variable declarations")
	return decls
}

// procDecls := ('procedure' ident ';' block ';')*
func (p *Parser) parseProcedureDecls() []*ast.ProcedureDecl {
	var decls []*ast.ProcedureDecl
	for p.match(token.Procedure) {
		name := p.consume(token.Ident, "expected procedure name")
		p.consume(token.Semi, "expected ';' after procedure name")
		body := p.parseBlock()
		p.consume(token.Semi, "expected ';' after procedure body")
		decls = append(decls, ast.NewProcedureDecl(name.Pos, name.Text(), body))
	}
	return decls
}
