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

package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pl0compile/ast"
)

// recorder logs the name of every visited node and recurses into children.
type recorder struct {
	names []string
}

func (r *recorder) VisitProgram(p *ast.Program) {
	r.names = append(r.names, "Program")
	p.Block().Accept(r)
}

func (r *recorder) VisitBlock(b *ast.Block) {
	r.names = append(r.names, "Block")
	for _, d := range b.Consts() {
		d.Accept(r)
	}
	for _, d := range b.Vars() {
		d.Accept(r)
	}
	for _, d := range b.Procedures() {
		d.Accept(r)
	}
	ast.AcceptStmt(b.Body(), r)
}

func (r *recorder) VisitConstDecl(d *ast.ConstDecl) { r.names = append(r.names, "Const "+d.Name()) }
func (r *recorder) VisitVarDecl(d *ast.VarDecl)     { r.names = append(r.names, "Var "+d.Name()) }

func (r *recorder) VisitProcedureDecl(d *ast.ProcedureDecl) {
	r.names = append(r.names, "Procedure "+d.Name())
	d.Body().Accept(r)
}

func (r *recorder) VisitAssign(s *ast.Assign) {
	r.names = append(r.names, "Assign "+s.Target())
	s.Value().Accept(r)
}

func (r *recorder) VisitCall(s *ast.Call) { r.names = append(r.names, "Call "+s.Name()) }

func (r *recorder) VisitBegin(s *ast.Begin) {
	r.names = append(r.names, "Begin")
	for _, stmt := range s.Stmts() {
		stmt.Accept(r)
	}
}

func (r *recorder) VisitIf(s *ast.If) {
	r.names = append(r.names, "If")
	s.Cond().Accept(r)
	ast.AcceptStmt(s.Then(), r)
}

func (r *recorder) VisitWhile(s *ast.While) {
	r.names = append(r.names, "While")
	s.Cond().Accept(r)
	ast.AcceptStmt(s.Body(), r)
}

func (r *recorder) VisitBinary(e *ast.Binary) {
	r.names = append(r.names, "Binary "+e.Op().String())
	e.Left().Accept(r)
	e.Right().Accept(r)
}

func (r *recorder) VisitUnary(e *ast.Unary) {
	r.names = append(r.names, "Unary "+e.Op().String())
	e.Operand().Accept(r)
}

func (r *recorder) VisitNumber(*ast.Number) { r.names = append(r.names, "Number") }
func (r *recorder) VisitIdent(e *ast.Ident) { r.names = append(r.names, "Ident "+e.Name()) }

func TestVisitor(t *testing.T) {
	t.Parallel()

	// const a = 1; var b; procedure p; ; begin b := a ^ 2; if odd b then call p; while b > 0 do end.
	proc := ast.NewProcedureDecl(nowhere, "p", ast.NewBlock(nowhere, nil, nil, nil, nil))
	body := ast.NewBegin(nowhere, []ast.Stmt{
		ast.NewAssign(nowhere, "b", bin(ast.NewIdent(nowhere, "a"), ast.OpPow, num(2))),
		ast.NewIf(nowhere, un(ast.OpOdd, ast.NewIdent(nowhere, "b")), ast.NewCall(nowhere, "p")),
		ast.NewWhile(nowhere, bin(ast.NewIdent(nowhere, "b"), ast.OpGt, num(0)), nil),
	})
	prog := ast.NewProgram(nowhere, ast.NewBlock(nowhere,
		[]*ast.ConstDecl{ast.NewConstDecl(nowhere, "a", 1)},
		[]*ast.VarDecl{ast.NewVarDecl(nowhere, "b")},
		[]*ast.ProcedureDecl{proc},
		body,
	))

	var r recorder
	prog.Accept(&r)
	assert.Equal(t, strings.Join([]string{
		"Program", "Block", "Const a", "Var b", "Procedure p", "Block",
		"Begin",
		"Assign b", "Binary ^", "Ident a", "Number",
		"If", "Unary odd", "Ident b", "Call p",
		"While", "Binary >", "Ident b", "Number",
	}, "\n"), strings.Join(r.names, "\n"))
}

func TestKinds(t *testing.T) {
	t.Parallel()

	stmts := map[ast.StmtKind]ast.Stmt{
		ast.StmtAssign: ast.NewAssign(nowhere, "x", num(1)),
		ast.StmtCall:   ast.NewCall(nowhere, "p"),
		ast.StmtBegin:  ast.NewBegin(nowhere, nil),
		ast.StmtIf:     ast.NewIf(nowhere, num(1), nil),
		ast.StmtWhile:  ast.NewWhile(nowhere, num(0), nil),
	}
	for kind, stmt := range stmts {
		assert.Equal(t, kind, stmt.Kind())
	}

	exprs := map[ast.ExprKind]ast.Expr{
		ast.ExprBinary: bin(num(1), ast.OpAdd, num(2)),
		ast.ExprUnary:  un(ast.OpNegate, num(1)),
		ast.ExprNumber: num(1),
		ast.ExprIdent:  ast.NewIdent(nowhere, "x"),
	}
	for kind, expr := range exprs {
		assert.Equal(t, kind, expr.Kind())
	}

	assert.Panics(t, func() { ast.NewBegin(nowhere, []ast.Stmt{nil}) })
	assert.True(t, ast.OpGte.IsComparison())
	assert.False(t, ast.OpPow.IsComparison())
}
