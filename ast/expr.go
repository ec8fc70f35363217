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

package ast

import (
	"fmt"

	"github.com/bufbuild/pl0compile/source"
)

// ExprKind is a kind of expression. There is one value of ExprKind for each
// type implementing [Expr].
type ExprKind int8

const (
	ExprInvalid ExprKind = iota
	ExprBinary
	ExprUnary
	ExprNumber
	ExprIdent
)

// String implements [fmt.Stringer].
func (k ExprKind) String() string {
	switch k {
	case ExprBinary:
		return "ExprBinary"
	case ExprUnary:
		return "ExprUnary"
	case ExprNumber:
		return "ExprNumber"
	case ExprIdent:
		return "ExprIdent"
	default:
		return fmt.Sprintf("ast.ExprKind(%d)", int(k))
	}
}

// Expr is an expression.
//
// This interface is sealed: only the types in this package implement it.
type Expr interface {
	Node
	Kind() ExprKind

	// IsConstant returns whether this expression is built only from number
	// literals. A constant expression may still fail to fold, for example
	// when it divides by zero.
	IsConstant() bool

	// Fold computes the value of this expression, if it can be known
	// statically. The second result is false if the expression is not
	// constant or if evaluating it is undefined.
	Fold() (int64, bool)

	isExpr()
}

var (
	_ Expr = (*Binary)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Number)(nil)
	_ Expr = (*Ident)(nil)
)

// BinaryOp is a binary operator.
type BinaryOp int8

const (
	OpAdd BinaryOp = iota + 1 // +
	OpSub                     // -
	OpMul                     // *
	OpDiv                     // /
	OpPow                     // ^
	OpEq                      // =
	OpNeq                     // #
	OpLt                      // <
	OpLte                     // <=
	OpGt                      // >
	OpGte                     // >=
)

// String returns the operator's source spelling.
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpEq:
		return "="
	case OpNeq:
		return "#"
	case OpLt:
		return "<"
	case OpLte:
		return "<="
	case OpGt:
		return ">"
	case OpGte:
		return ">="
	default:
		return fmt.Sprintf("ast.BinaryOp(%d)", int(op))
	}
}

// IsComparison returns whether this operator produces a truth value.
func (op BinaryOp) IsComparison() bool {
	return op >= OpEq && op <= OpGte
}

// UnaryOp is a unary operator.
type UnaryOp int8

const (
	OpNegate     UnaryOp = iota + 1 // -
	OpLogicalNot                    // !
	OpOdd                           // odd
)

// String returns the operator's spelling.
func (op UnaryOp) String() string {
	switch op {
	case OpNegate:
		return "-"
	case OpLogicalNot:
		return "!"
	case OpOdd:
		return "odd"
	default:
		return fmt.Sprintf("ast.UnaryOp(%d)", int(op))
	}
}

// Binary is an expression with two operands, as in "a + b" or "a <= b".
type Binary struct {
	pos         source.Pos
	op          BinaryOp
	left, right Expr
}

// NewBinary creates a new *Binary.
func NewBinary(pos source.Pos, left Expr, op BinaryOp, right Expr) *Binary {
	if left == nil || right == nil {
		panic("operand is nil")
	}
	return &Binary{pos: pos, op: op, left: left, right: right}
}

func (e *Binary) Pos() source.Pos  { return e.pos }
func (e *Binary) Accept(v Visitor) { v.VisitBinary(e) }
func (*Binary) Kind() ExprKind     { return ExprBinary }
func (*Binary) isExpr()            {}

func (e *Binary) Op() BinaryOp { return e.op }
func (e *Binary) Left() Expr   { return e.left }
func (e *Binary) Right() Expr  { return e.right }

// IsConstant implements [Expr].
func (e *Binary) IsConstant() bool {
	return e.left.IsConstant() && e.right.IsConstant()
}

// Fold implements [Expr].
func (e *Binary) Fold() (int64, bool) {
	l, ok := e.left.Fold()
	if !ok {
		return 0, false
	}
	r, ok := e.right.Fold()
	if !ok {
		return 0, false
	}
	return foldBinary(e.op, l, r)
}

// Unary is an expression with one operand.
//
// The parser produces OpOdd for "odd e" conditions. Negation and logical
// not are not reachable from source text but may be constructed directly.
type Unary struct {
	pos     source.Pos
	op      UnaryOp
	operand Expr
}

// NewUnary creates a new *Unary.
func NewUnary(pos source.Pos, op UnaryOp, operand Expr) *Unary {
	if operand == nil {
		panic("operand is nil")
	}
	return &Unary{pos: pos, op: op, operand: operand}
}

func (e *Unary) Pos() source.Pos  { return e.pos }
func (e *Unary) Accept(v Visitor) { v.VisitUnary(e) }
func (*Unary) Kind() ExprKind     { return ExprUnary }
func (*Unary) isExpr()            {}

func (e *Unary) Op() UnaryOp      { return e.op }
func (e *Unary) Operand() Expr    { return e.operand }
func (e *Unary) IsConstant() bool { return e.operand.IsConstant() }

// Fold implements [Expr].
func (e *Unary) Fold() (int64, bool) {
	v, ok := e.operand.Fold()
	if !ok {
		return 0, false
	}
	return foldUnary(e.op, v)
}

// Number is an integer literal.
type Number struct {
	pos   source.Pos
	value int64
}

// NewNumber creates a new *Number.
func NewNumber(pos source.Pos, value int64) *Number {
	return &Number{pos: pos, value: value}
}

func (e *Number) Pos() source.Pos     { return e.pos }
func (e *Number) Accept(v Visitor)    { v.VisitNumber(e) }
func (*Number) Kind() ExprKind        { return ExprNumber }
func (*Number) isExpr()               {}
func (e *Number) Value() int64        { return e.value }
func (*Number) IsConstant() bool      { return true }
func (e *Number) Fold() (int64, bool) { return e.value, true }

// Ident is a reference to a named constant or variable.
//
// Identifiers are never constant, even when they name a constant: folding
// does not consult any symbol table.
type Ident struct {
	pos  source.Pos
	name string
}

// NewIdent creates a new *Ident.
func NewIdent(pos source.Pos, name string) *Ident {
	return &Ident{pos: pos, name: name}
}

func (e *Ident) Pos() source.Pos   { return e.pos }
func (e *Ident) Accept(v Visitor)  { v.VisitIdent(e) }
func (*Ident) Kind() ExprKind      { return ExprIdent }
func (*Ident) isExpr()             {}
func (e *Ident) Name() string      { return e.name }
func (*Ident) IsConstant() bool    { return false }
func (*Ident) Fold() (int64, bool) { return 0, false }
