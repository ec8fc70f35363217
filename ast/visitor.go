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

// Visitor has one method for every concrete node type. Calling
// [Node.Accept] with a Visitor invokes the method matching the node.
//
// Visitors are responsible for recursing into children themselves. Note that
// statements reachable through [Block.Body], [If.Then] and [While.Body] may
// be nil; [AcceptStmt] skips them.
type Visitor interface {
	VisitProgram(*Program)
	VisitBlock(*Block)
	VisitConstDecl(*ConstDecl)
	VisitVarDecl(*VarDecl)
	VisitProcedureDecl(*ProcedureDecl)

	VisitAssign(*Assign)
	VisitCall(*Call)
	VisitBegin(*Begin)
	VisitIf(*If)
	VisitWhile(*While)

	VisitBinary(*Binary)
	VisitUnary(*Unary)
	VisitNumber(*Number)
	VisitIdent(*Ident)
}

// AcceptStmt calls s.Accept(v) unless s is nil.
func AcceptStmt(s Stmt, v Visitor) {
	if s != nil {
		s.Accept(v)
	}
}

// NoOpVisitor is a [Visitor] whose methods do nothing. It can be embedded
// in visitors that only care about some node types.
type NoOpVisitor struct{}

var _ Visitor = NoOpVisitor{}

func (NoOpVisitor) VisitProgram(*Program)             {}
func (NoOpVisitor) VisitBlock(*Block)                 {}
func (NoOpVisitor) VisitConstDecl(*ConstDecl)         {}
func (NoOpVisitor) VisitVarDecl(*VarDecl)             {}
func (NoOpVisitor) VisitProcedureDecl(*ProcedureDecl) {}
func (NoOpVisitor) VisitAssign(*Assign)               {}
func (NoOpVisitor) VisitCall(*Call)                   {}
func (NoOpVisitor) VisitBegin(*Begin)                 {}
func (NoOpVisitor) VisitIf(*If)                       {}
func (NoOpVisitor) VisitWhile(*While)                 {}
func (NoOpVisitor) VisitBinary(*Binary)               {}
func (NoOpVisitor) VisitUnary(*Unary)                 {}
func (NoOpVisitor) VisitNumber(*Number)               {}
func (NoOpVisitor) VisitIdent(*Ident)                 {}
