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

// StmtKind is a kind of statement. There is one value of StmtKind for each
// type implementing [Stmt].
type StmtKind int8

const (
	StmtInvalid StmtKind = iota
	StmtAssign
	StmtCall
	StmtBegin
	StmtIf
	StmtWhile
)

// String implements [fmt.Stringer].
func (k StmtKind) String() string {
	switch k {
	case StmtAssign:
		return "StmtAssign"
	case StmtCall:
		return "StmtCall"
	case StmtBegin:
		return "StmtBegin"
	case StmtIf:
		return "StmtIf"
	case StmtWhile:
		return "StmtWhile"
	default:
		return fmt.Sprintf("ast.StmtKind(%d)", int(k))
	}
}

// Stmt is a statement.
//
// This interface is sealed: only the types in this package implement it.
// An absent statement (as in "begin end" or "while c do ;") is represented
// by a nil Stmt.
type Stmt interface {
	Node
	Kind() StmtKind

	isStmt()
}

var (
	_ Stmt = (*Assign)(nil)
	_ Stmt = (*Call)(nil)
	_ Stmt = (*Begin)(nil)
	_ Stmt = (*If)(nil)
	_ Stmt = (*While)(nil)
)

// Assign is an assignment, as in "x := e".
type Assign struct {
	pos    source.Pos
	target string
	value  Expr
}

// NewAssign creates a new *Assign.
func NewAssign(pos source.Pos, target string, value Expr) *Assign {
	if value == nil {
		panic("value is nil")
	}
	return &Assign{pos: pos, target: target, value: value}
}

func (s *Assign) Pos() source.Pos  { return s.pos }
func (s *Assign) Accept(v Visitor) { v.VisitAssign(s) }
func (*Assign) Kind() StmtKind     { return StmtAssign }
func (*Assign) isStmt()            {}

// Target returns the name being assigned to.
func (s *Assign) Target() string { return s.target }

// Value returns the expression being assigned.
func (s *Assign) Value() Expr { return s.value }

// Call is a procedure call, as in "call p".
type Call struct {
	pos  source.Pos
	name string
}

// NewCall creates a new *Call.
func NewCall(pos source.Pos, name string) *Call {
	return &Call{pos: pos, name: name}
}

func (s *Call) Pos() source.Pos  { return s.pos }
func (s *Call) Accept(v Visitor) { v.VisitCall(s) }
func (*Call) Kind() StmtKind     { return StmtCall }
func (*Call) isStmt()            {}

// Name returns the name of the procedure being called.
func (s *Call) Name() string { return s.name }

// Begin is a sequence of statements, as in "begin s1; s2 end". The sequence
// may be empty. Empty statements in the source are not recorded.
type Begin struct {
	pos   source.Pos
	stmts []Stmt
}

// NewBegin creates a new *Begin. None of stmts may be nil.
func NewBegin(pos source.Pos, stmts []Stmt) *Begin {
	for i, s := range stmts {
		if s == nil {
			panic(fmt.Sprintf("statement %d is nil", i))
		}
	}
	return &Begin{pos: pos, stmts: stmts}
}

func (s *Begin) Pos() source.Pos  { return s.pos }
func (s *Begin) Accept(v Visitor) { v.VisitBegin(s) }
func (*Begin) Kind() StmtKind     { return StmtBegin }
func (*Begin) isStmt()            {}

// Stmts returns the statements of this block, in order.
func (s *Begin) Stmts() []Stmt { return s.stmts }

// If is a conditional statement, as in "if c then s". There is no else
// branch.
type If struct {
	pos  source.Pos
	cond Expr
	then Stmt
}

// NewIf creates a new *If. then may be nil.
func NewIf(pos source.Pos, cond Expr, then Stmt) *If {
	if cond == nil {
		panic("cond is nil")
	}
	return &If{pos: pos, cond: cond, then: then}
}

func (s *If) Pos() source.Pos  { return s.pos }
func (s *If) Accept(v Visitor) { v.VisitIf(s) }
func (*If) Kind() StmtKind     { return StmtIf }
func (*If) isStmt()            {}

// Cond returns the condition being tested.
func (s *If) Cond() Expr { return s.cond }

// Then returns the guarded statement, which may be nil.
func (s *If) Then() Stmt { return s.then }

// While is a loop, as in "while c do s".
type While struct {
	pos  source.Pos
	cond Expr
	body Stmt
}

// NewWhile creates a new *While. body may be nil.
func NewWhile(pos source.Pos, cond Expr, body Stmt) *While {
	if cond == nil {
		panic("cond is nil")
	}
	return &While{pos: pos, cond: cond, body: body}
}

func (s *While) Pos() source.Pos  { return s.pos }
func (s *While) Accept(v Visitor) { v.VisitWhile(s) }
func (*While) Kind() StmtKind     { return StmtWhile }
func (*While) isStmt()            {}

// Cond returns the loop condition.
func (s *While) Cond() Expr { return s.cond }

// Body returns the loop body, which may be nil.
func (s *While) Body() Stmt { return s.body }
