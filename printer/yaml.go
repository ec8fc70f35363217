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

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/pl0compile/ast"
	"github.com/bufbuild/pl0compile/walk"
)

// Node is the YAML form of one AST node.
type Node struct {
	Node string `yaml:"node"`
	Line int    `yaml:"line"`
	Col  int    `yaml:"col"`

	Name  string `yaml:"name,omitempty"`
	Op    string `yaml:"op,omitempty"`
	Value *int64 `yaml:"value,omitempty"`

	Children []*Node `yaml:"children,omitempty"`
}

// YAML returns a YAML document describing prog. Empty statements are
// omitted from their parent's children.
func YAML(prog *ast.Program) ([]byte, error) {
	root, err := Dump(prog)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(root)
}

// Dump converts the tree rooted at n into [Node]s.
func Dump(n ast.Node) (*Node, error) {
	var root *Node
	var stack []*Node
	err := walk.NodesEnterAndExit(n,
		func(n ast.Node) error {
			node, err := dumpNode(n)
			if err != nil {
				return err
			}
			if len(stack) == 0 {
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
			return nil
		},
		func(ast.Node) error {
			stack = stack[:len(stack)-1]
			return nil
		},
	)
	return root, err
}

func dumpNode(n ast.Node) (*Node, error) {
	pos := n.Pos()
	out := &Node{Line: pos.Line, Col: pos.Col}
	switch n := n.(type) {
	case *ast.Program:
		out.Node = "program"
	case *ast.Block:
		out.Node = "block"
	case *ast.ConstDecl:
		out.Node = "const"
		out.Name = n.Name()
		out.Value = ptr(n.Value())
	case *ast.VarDecl:
		out.Node = "var"
		out.Name = n.Name()
	case *ast.ProcedureDecl:
		out.Node = "procedure"
		out.Name = n.Name()
	case *ast.Assign:
		out.Node = "assign"
		out.Name = n.Target()
	case *ast.Call:
		out.Node = "call"
		out.Name = n.Name()
	case *ast.Begin:
		out.Node = "begin"
	case *ast.If:
		out.Node = "if"
	case *ast.While:
		out.Node = "while"
	case *ast.Binary:
		out.Node = "binary"
		out.Op = n.Op().String()
	case *ast.Unary:
		out.Node = "unary"
		out.Op = n.Op().String()
	case *ast.Number:
		out.Node = "number"
		out.Value = ptr(n.Value())
	case *ast.Ident:
		out.Node = "ident"
		out.Name = n.Name()
	default:
		return nil, fmt.Errorf("printer: unexpected node type %T", n)
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }
