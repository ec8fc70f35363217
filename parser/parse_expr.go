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

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:  ast.OpAdd,
	token.Minus: ast.OpSub,
	token.Star:  ast.OpMul,
	token.Slash: ast.OpDiv,
	token.Caret: ast.OpPow,
	token.Eq:    ast.OpEq,
	token.Hash:  ast.OpNeq,
	token.Lt:    ast.OpLt,
	token.Lte:   ast.OpLte,
	token.Gt:    ast.OpGt,
	token.Gte:   ast.OpGte,
}

// condition := 'odd' expression | expression relOp expression
func (p *Parser) parseCondition() ast.Expr {
	if p.check(token.Odd) {
		kw := p.advance()
		return ast.NewUnary(kw.Pos, ast.OpOdd, p.parseExpression())
	}

	left := p.parseExpression()
	if !p.peek().Kind.IsRelational() {
		p.fail("expected relational operator")
	}
	op := p.advance()
	right := p.parseExpression()
	return ast.NewBinary(left.Pos(), left, binaryOps[op.Kind], right)
}

// expression := term (('+'|'-') term)*
func (p *Parser) parseExpression() ast.Expr {
	return p.parseLeftAssoc(p.parseTerm, token.Plus, token.Minus)
}

// term := power (('*'|'/') power)*
func (p *Parser) parseTerm() ast.Expr {
	return p.parseLeftAssoc(p.parsePower, token.Star, token.Slash)
}

// parseLeftAssoc parses a left-associative chain of operands separated by
// any of the given operators.
func (p *Parser) parseLeftAssoc(operand func() ast.Expr, ops ...token.Kind) ast.Expr {
	expr := operand()
	for p.peek().Is(ops...) {
		op := p.advance()
		right := operand()
		expr = ast.NewBinary(expr.Pos(), expr, binaryOps[op.Kind], right)
	}
	return expr
}

// power := factor ('^' power)?
//
// Exponentiation is right-associative.
func (p *Parser) parsePower() ast.Expr {
	base := p.parseFactor()
	if !p.match(token.Caret) {
		return base
	}
	exp := p.parsePower()
	return ast.NewBinary(base.Pos(), base, ast.OpPow, exp)
}

// factor := number | ident | '(' expression ')'
func (p *Parser) parseFactor() ast.Expr {
	switch tok := p.peek(); tok.Kind {
	case token.Number:
		p.advance()
		return ast.NewNumber(tok.Pos, tok.Value())
	case token.Ident:
		p.advance()
		return ast.NewIdent(tok.Pos, tok.Text())
	case token.LParen:
		p.advance()
		expr := p.parseExpression()
		p.consume(token.RParen, "expected ')' to close '('")
		return expr
	default:
		p.fail("expected expression")
		return nil
	}
}
