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

// Package walk provides helper functions for traversing all nodes in a PL/0
// syntax tree.
package walk

import (
	"errors"

	"github.com/bufbuild/pl0compile/ast"
)

// ErrSkipChildren may be returned by an enter function to prevent the walk
// from descending into the node's children. The exit function is still
// called for that node.
var ErrSkipChildren = errors.New("skip children")

// Nodes walks all nodes in the tree rooted at root, in pre-order. If the
// function returns an error, the walk is aborted and that error is returned.
// Absent (nil) statements are not visited.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks all nodes in the tree rooted at root. The enter
// function is called before a node's children are visited and exit is called
// after. Either may be nil. If either returns an error (other than
// [ErrSkipChildren] from enter), the walk is aborted and that error is
// returned.
//
// Children are visited in source order: a block's constants, then variables,
// then procedures, then its body.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	w := &walker{enter: enter, exit: exit}
	return w.walk(root)
}

type walker struct {
	enter, exit func(ast.Node) error
}

func (w *walker) walk(n ast.Node) error {
	if w.enter != nil {
		err := w.enter(n)
		switch {
		case errors.Is(err, ErrSkipChildren):
			return w.leave(n)
		case err != nil:
			return err
		}
	}
	for _, child := range children(n) {
		if err := w.walk(child); err != nil {
			return err
		}
	}
	return w.leave(n)
}

func (w *walker) leave(n ast.Node) error {
	if w.exit == nil {
		return nil
	}
	return w.exit(n)
}

// children returns the direct children of n, omitting absent statements.
func children(n ast.Node) []ast.Node {
	var out []ast.Node
	stmt := func(s ast.Stmt) {
		if s != nil {
			out = append(out, s)
		}
	}
	switch n := n.(type) {
	case *ast.Program:
		out = append(out, n.Block())
	case *ast.Block:
		for _, d := range n.Consts() {
			out = append(out, d)
		}
		for _, d := range n.Vars() {
			out = append(out, d)
		}
		for _, d := range n.Procedures() {
			out = append(out, d)
		}
		stmt(n.Body())
	case *ast.ProcedureDecl:
		out = append(out, n.Body())
	case *ast.Assign:
		out = append(out, n.Value())
	case *ast.Begin:
		for _, s := range n.Stmts() {
			stmt(s)
		}
	case *ast.If:
		out = append(out, n.Cond())
		stmt(n.Then())
	case *ast.While:
		out = append(out, n.Cond())
		stmt(n.Body())
	case *ast.Binary:
		out = append(out, n.Left(), n.Right())
	case *ast.Unary:
		out = append(out, n.Operand())
	}
	return out
}
