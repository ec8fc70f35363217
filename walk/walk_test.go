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

package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/source"
	"github.com/bufbuild/pl0compile/walk"
)

var nowhere source.Pos

func testProgram() *ast.Program {
	// var x; procedure p; x := 1; begin if odd x then call p; x := x + 2 end.
	p := ast.NewProcedureDecl(nowhere, "p", ast.NewBlock(nowhere, nil, nil, nil,
		ast.NewAssign(nowhere, "x", ast.NewNumber(nowhere, 1))))
	body := ast.NewBegin(nowhere, []ast.Stmt{
		ast.NewIf(nowhere,
			ast.NewUnary(nowhere, ast.OpOdd, ast.NewIdent(nowhere, "x")),
			ast.NewCall(nowhere, "p")),
		ast.NewAssign(nowhere, "x", ast.NewBinary(nowhere,
			ast.NewIdent(nowhere, "x"), ast.OpAdd, ast.NewNumber(nowhere, 2))),
	})
	return ast.NewProgram(nowhere, ast.NewBlock(nowhere,
		nil,
		[]*ast.VarDecl{ast.NewVarDecl(nowhere, "x")},
		[]*ast.ProcedureDecl{p},
		body,
	))
}

func name(n ast.Node) string {
	return fmt.Sprintf("%T", n)[len("*ast."):]
}

func TestNodes(t *testing.T) {
	t.Parallel()

	var names []string
	err := walk.Nodes(testProgram(), func(n ast.Node) error {
		names = append(names, name(n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Program", "Block", "VarDecl", "ProcedureDecl", "Block", "Assign", "Number",
		"Begin", "If", "Unary", "Ident", "Call", "Assign", "Binary", "Ident", "Number",
	}, names)
}

func TestNodesEnterAndExit(t *testing.T) {
	t.Parallel()

	var depth, maxDepth int
	err := walk.NodesEnterAndExit(testProgram(),
		func(ast.Node) error {
			depth++
			maxDepth = max(maxDepth, depth)
			return nil
		},
		func(ast.Node) error {
			depth--
			return nil
		})
	require.NoError(t, err)
	assert.Zero(t, depth)
	// Program > Block > Begin > Assign > Binary > Ident
	assert.Equal(t, 6, maxDepth)
}

func TestSkipChildren(t *testing.T) {
	t.Parallel()

	var names, exits []string
	err := walk.NodesEnterAndExit(testProgram(),
		func(n ast.Node) error {
			names = append(names, name(n))
			if _, ok := n.(*ast.ProcedureDecl); ok {
				return walk.ErrSkipChildren
			}
			if _, ok := n.(*ast.Begin); ok {
				return walk.ErrSkipChildren
			}
			return nil
		},
		func(n ast.Node) error {
			exits = append(exits, name(n))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"Program", "Block", "VarDecl", "ProcedureDecl", "Begin"}, names)
	assert.Equal(t, []string{"VarDecl", "ProcedureDecl", "Begin", "Block", "Program"}, exits)
}

func TestAbort(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	var count int
	err := walk.Nodes(testProgram(), func(n ast.Node) error {
		count++
		if _, ok := n.(*ast.Call); ok {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 12, count)
}
