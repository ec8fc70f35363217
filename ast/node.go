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

import "github.com/bufbuild/pl0compile/source"

// Node is implemented by every node in the AST.
type Node interface {
	// Pos returns where this node begins in its source file.
	Pos() source.Pos
	// Accept calls the method of v that corresponds to this node's concrete
	// type.
	Accept(v Visitor)
}

var (
	_ Node = (*Program)(nil)
	_ Node = (*Block)(nil)
	_ Node = (*ConstDecl)(nil)
	_ Node = (*VarDecl)(nil)
	_ Node = (*ProcedureDecl)(nil)
)

// Program is the root of the AST.
type Program struct {
	pos   source.Pos
	block *Block
}

// NewProgram creates a new *Program whose top-level block is block.
func NewProgram(pos source.Pos, block *Block) *Program {
	if block == nil {
		panic("block is nil")
	}
	return &Program{pos: pos, block: block}
}

// Pos implements [Node].
func (p *Program) Pos() source.Pos { return p.pos }

// Accept implements [Node].
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// Block returns the program's top-level block.
func (p *Program) Block() *Block { return p.block }

// Block is a declaration section followed by a single statement. Every block
// introduces one lexical scope.
type Block struct {
	pos    source.Pos
	consts []*ConstDecl
	vars   []*VarDecl
	procs  []*ProcedureDecl
	body   Stmt
}

// NewBlock creates a new *Block. The given slices are retained by the block
// and must not be modified by the caller afterwards. body may be nil, which
// represents the empty statement.
func NewBlock(pos source.Pos, consts []*ConstDecl, vars []*VarDecl, procs []*ProcedureDecl, body Stmt) *Block {
	return &Block{
		pos:    pos,
		consts: consts,
		vars:   vars,
		procs:  procs,
		body:   body,
	}
}

// Pos implements [Node].
func (b *Block) Pos() source.Pos { return b.pos }

// Accept implements [Node].
func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// Consts returns the block's constant declarations, in source order.
func (b *Block) Consts() []*ConstDecl { return b.consts }

// Vars returns the block's variable declarations, in source order.
func (b *Block) Vars() []*VarDecl { return b.vars }

// Procedures returns the block's procedure declarations, in source order.
func (b *Block) Procedures() []*ProcedureDecl { return b.procs }

// Body returns the block's statement. It is nil if the block has an empty
// body.
func (b *Block) Body() Stmt { return b.body }

// ConstDecl declares a named constant, as in "const a = 5".
type ConstDecl struct {
	pos   source.Pos
	name  string
	value int64
}

// NewConstDecl creates a new *ConstDecl.
func NewConstDecl(pos source.Pos, name string, value int64) *ConstDecl {
	return &ConstDecl{pos: pos, name: name, value: value}
}

func (d *ConstDecl) Pos() source.Pos  { return d.pos }
func (d *ConstDecl) Accept(v Visitor) { v.VisitConstDecl(d) }
func (d *ConstDecl) Name() string     { return d.name }
func (d *ConstDecl) Value() int64     { return d.value }

// VarDecl declares a variable. Variables have no initializer.
type VarDecl struct {
	pos  source.Pos
	name string
}

// NewVarDecl creates a new *VarDecl.
func NewVarDecl(pos source.Pos, name string) *VarDecl {
	return &VarDecl{pos: pos, name: name}
}

func (d *VarDecl) Pos() source.Pos  { return d.pos }
func (d *VarDecl) Accept(v Visitor) { v.VisitVarDecl(d) }
func (d *VarDecl) Name() string     { return d.name }

// ProcedureDecl declares a procedure and its body. Procedures take no
// parameters and return no value. The body is a nested block with its own
// scope.
type ProcedureDecl struct {
	pos  source.Pos
	name string
	body *Block
}

// NewProcedureDecl creates a new *ProcedureDecl.
func NewProcedureDecl(pos source.Pos, name string, body *Block) *ProcedureDecl {
	if body == nil {
		panic("body is nil")
	}
	return &ProcedureDecl{pos: pos, name: name, body: body}
}

func (d *ProcedureDecl) Pos() source.Pos  { return d.pos }
func (d *ProcedureDecl) Accept(v Visitor) { v.VisitProcedureDecl(d) }
func (d *ProcedureDecl) Name() string     { return d.name }
func (d *ProcedureDecl) Body() *Block     { return d.body }
