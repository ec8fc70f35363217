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

// Package ast defines types for modeling the abstract syntax tree (AST) of
// a PL/0 program.
//
// The root of the tree is a [*Program], which owns exactly one [*Block].
// Blocks hold declarations ([*ConstDecl], [*VarDecl], [*ProcedureDecl]) and a
// single body [Stmt]. Statements and expressions are closed sum types: each
// is an interface implemented only by the types in this package, and each
// reports a Kind that can be used in an exhaustive switch.
//
// Nodes are built bottom-up by the parser through the New* constructors and
// are never modified afterwards. Children are owned by exactly one parent;
// no node is shared between two places in the tree.
//
// Every node records the position where it begins via its Pos method.
// Expressions additionally support constant folding through [Expr.Fold].
package ast
