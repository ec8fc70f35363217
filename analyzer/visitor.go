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
	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/reporter"
)

// visitor is the traversal of the analyzer. It visits every node once,
// depth-first, in source order.
type visitor struct {
	a *Analyzer
}

var _ ast.Visitor = visitor{}

func (v visitor) VisitProgram(prog *ast.Program) {
	v.a.infof("Analyzing program...")
	v.a.enterScope()
	prog.Block().Accept(v)
	v.a.leaveScope()
}

func (v visitor) VisitBlock(block *ast.Block) {
	for _, decl := range block.Consts() {
		decl.Accept(v)
	}
	for _, decl := range block.Vars() {
		decl.Accept(v)
	}
	for _, decl := range block.Procedures() {
		decl.Accept(v)
	}
	ast.AcceptStmt(block.Body(), v)
}

func (v visitor) VisitConstDecl(decl *ast.ConstDecl) {
	v.a.infof("Declaring constant: %s = %d", decl.Name(), decl.Value())
	v.a.declare(&Symbol{
		Name:     decl.Name(),
		Kind:     Constant,
		Pos:      decl.Pos(),
		Value:    decl.Value(),
		HasValue: true,
	})
}

func (v visitor) VisitVarDecl(decl *ast.VarDecl) {
	top := v.a.scopes[len(v.a.scopes)-1]
	v.a.infof("Declaring variable: %s at level %d (slot %d)", decl.Name(), top.level, top.nextSlot)
	v.a.declare(&Symbol{
		Name: decl.Name(),
		Kind: Variable,
		Pos:  decl.Pos(),
	})
}

// VisitProcedureDecl declares the procedure in the enclosing scope before
// analyzing its body, so a procedure may call itself. Such calls do not
// count as uses of it.
func (v visitor) VisitProcedureDecl(decl *ast.ProcedureDecl) {
	v.a.infof("Declaring procedure: %s at level %d", decl.Name(), v.a.level)
	sym := &Symbol{
		Name: decl.Name(),
		Kind: Procedure,
		Pos:  decl.Pos(),
	}
	v.a.declare(sym)

	v.a.procs = append(v.a.procs, sym)
	v.a.enterScope()
	decl.Body().Accept(v)
	v.a.leaveScope()
	v.a.procs = v.a.procs[:len(v.a.procs)-1]
}

func (v visitor) VisitAssign(stmt *ast.Assign) {
	switch sym := v.a.lookupSymbol(stmt.Target()); {
	case sym == nil:
		v.a.errorf(stmt.Pos(), "undeclared identifier: %s", stmt.Target())
	case sym.Kind == Constant:
		v.a.errorf(stmt.Pos(), "cannot assign to constant: %s", stmt.Target())
	case sym.Kind == Procedure:
		v.a.errorf(stmt.Pos(), "cannot assign to procedure: %s", stmt.Target())
	}
	stmt.Value().Accept(v)
}

func (v visitor) VisitCall(stmt *ast.Call) {
	switch sym := v.a.lookupSymbol(stmt.Name()); {
	case sym == nil:
		v.a.errorf(stmt.Pos(), "undeclared procedure: %s", stmt.Name())
	case sym.Kind != Procedure:
		v.a.errorf(stmt.Pos(), "cannot call non-procedure: %s", stmt.Name())
	default:
		v.a.markUsed(sym)
	}
}

func (v visitor) VisitBegin(stmt *ast.Begin) {
	for _, s := range stmt.Stmts() {
		s.Accept(v)
	}
}

func (v visitor) VisitIf(stmt *ast.If) {
	stmt.Cond().Accept(v)
	ast.AcceptStmt(stmt.Then(), v)
}

func (v visitor) VisitWhile(stmt *ast.While) {
	stmt.Cond().Accept(v)
	ast.AcceptStmt(stmt.Body(), v)
}

func (v visitor) VisitBinary(expr *ast.Binary) {
	expr.Left().Accept(v)
	expr.Right().Accept(v)

	if expr.Op() != ast.OpDiv {
		return
	}
	if divisor, ok := expr.Right().Fold(); ok && divisor == 0 {
		v.a.report(reporter.Error(expr.Right().Pos(), ErrDivisionByZero))
	}
}

func (v visitor) VisitUnary(expr *ast.Unary) {
	expr.Operand().Accept(v)
}

func (visitor) VisitNumber(*ast.Number) {}

func (v visitor) VisitIdent(expr *ast.Ident) {
	switch sym := v.a.lookupSymbol(expr.Name()); {
	case sym == nil:
		v.a.errorf(expr.Pos(), "undeclared identifier: %s", expr.Name())
	case sym.Kind == Procedure:
		v.a.errorf(expr.Pos(), "procedure used as expression: %s", expr.Name())
	default:
		v.a.markUsed(sym)
	}
}
