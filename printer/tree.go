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

package printer

import (
	"fmt"
	"strings"

	"github.com/bufbuild/pl0compile/ast"
)

const indentWidth = 2

// Tree returns an indented outline of prog, one node per line.
//
// Children are indented two spaces deeper than their parent. Empty
// statements are not printed, so an empty body shows as a bare
// "Statement:" line.
func Tree(prog *ast.Program) string {
	var p treePrinter
	prog.Accept(&p)
	return p.out.String()
}

type treePrinter struct {
	out   strings.Builder
	level int
}

var _ ast.Visitor = (*treePrinter)(nil)

func (p *treePrinter) line(format string, args ...any) {
	p.out.WriteString(strings.Repeat(" ", p.level*indentWidth))
	fmt.Fprintf(&p.out, format, args...)
	p.out.WriteByte('\n')
}

// nested prints a header line and then runs fn one level deeper.
func (p *treePrinter) nested(header string, fn func()) {
	p.line("%s", header)
	p.level++
	fn()
	p.level--
}

func (p *treePrinter) VisitProgram(prog *ast.Program) {
	// The root is not indented, so the level is only raised afterwards.
	p.out.WriteString("Program\n")
	p.level++
	prog.Block().Accept(p)
	p.level--
}

func (p *treePrinter) VisitBlock(block *ast.Block) {
	p.nested("Block", func() {
		if consts := block.Consts(); len(consts) > 0 {
			p.nested("Constants:", func() {
				for _, decl := range consts {
					decl.Accept(p)
				}
			})
		}
		if vars := block.Vars(); len(vars) > 0 {
			p.nested("Variables:", func() {
				for _, decl := range vars {
					decl.Accept(p)
				}
			})
		}
		if procs := block.Procedures(); len(procs) > 0 {
			p.nested("Procedures:", func() {
				for _, decl := range procs {
					decl.Accept(p)
				}
			})
		}
		p.nested("Statement:", func() { ast.AcceptStmt(block.Body(), p) })
	})
}

func (p *treePrinter) VisitConstDecl(decl *ast.ConstDecl) {
	p.line("%s = %d: Constant Declaration", decl.Name(), decl.Value())
}

func (p *treePrinter) VisitVarDecl(decl *ast.VarDecl) {
	p.line("%s: Variable Declaration", decl.Name())
}

func (p *treePrinter) VisitProcedureDecl(decl *ast.ProcedureDecl) {
	p.nested(decl.Name()+": Procedure Declaration", func() { decl.Body().Accept(p) })
}

func (p *treePrinter) VisitAssign(stmt *ast.Assign) {
	p.nested(stmt.Target()+" := : Assignment Statement", func() { stmt.Value().Accept(p) })
}

func (p *treePrinter) VisitCall(stmt *ast.Call) {
	p.line("%s: Call Statement", stmt.Name())
}

func (p *treePrinter) VisitBegin(stmt *ast.Begin) {
	p.nested("Begin", func() {
		for _, s := range stmt.Stmts() {
			s.Accept(p)
		}
	})
}

func (p *treePrinter) VisitIf(stmt *ast.If) {
	p.nested("If", func() {
		p.nested("Condition:", func() { stmt.Cond().Accept(p) })
		p.nested("Then:", func() { ast.AcceptStmt(stmt.Then(), p) })
	})
}

func (p *treePrinter) VisitWhile(stmt *ast.While) {
	p.nested("While", func() {
		p.nested("Condition:", func() { stmt.Cond().Accept(p) })
		p.nested("Body:", func() { ast.AcceptStmt(stmt.Body(), p) })
	})
}

func (p *treePrinter) VisitBinary(expr *ast.Binary) {
	p.nested("Binary Operation "+expr.Op().String(), func() {
		p.nested("Left:", func() { expr.Left().Accept(p) })
		p.nested("Right:", func() { expr.Right().Accept(p) })
	})
}

func (p *treePrinter) VisitUnary(expr *ast.Unary) {
	p.nested("Unary Operation "+expr.Op().String(), func() { expr.Operand().Accept(p) })
}

func (p *treePrinter) VisitNumber(expr *ast.Number) {
	p.line("%d: Number", expr.Value())
}

func (p *treePrinter) VisitIdent(expr *ast.Ident) {
	p.line("%s: Identifier", expr.Name())
}
