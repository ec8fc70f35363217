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

// Package pl0compile provides the entry point for a PL/0 compiler front
// end, capable of checking many PL/0 programs at once.
//
// A PL/0 program is a block of constant, variable and procedure
// declarations followed by a statement, and terminated by a period:
//
//	const limit = 10;
//	var i;
//	begin
//	  i := 0;
//	  while i < limit do i := i + 1
//	end.
//
// Compiling a file goes through three phases:
//  1. Lex the source into tokens.
//     Also see: parser.Tokenize
//  2. Parse the tokens into an AST.
//     Also see: parser.New
//  3. Check the AST for semantic errors, such as undeclared names or
//     assignments to constants.
//     Also see: analyzer.New
//
// This package provides an easy-to-use interface that does all of the phases
// for each input. It compiles files in parallel, so checking a large
// collection of programs takes advantage of multiple CPU cores.
//
// # Resolvers
//
// A [Resolver] is how the compiler locates its inputs. A Resolver can
// answer a query for a file name with either of:
//   - Source code: the compiler lexes, parses and analyzes it.
//   - AST: the compiler skips straight to semantic analysis.
//
// [SourceResolver] loads source code from the file system, or from any
// other place through its Accessor field. [SourceAccessorFromMap] serves
// sources from memory.
//
// # Compiler
//
// A [Compiler] accepts a list of file names and produces one [Result] per
// file. A Compiler has several fields that control how it works but only
// the Resolver field is required. A minimal Compiler, that resolves files
// by loading them from the file system based on the current working
// directory, can be had with the following simple snippet:
//
//	compiler := pl0compile.Compiler{
//	    Resolver: &pl0compile.SourceResolver{},
//	}
//
// This minimal Compiler will use default parallelism, equal to the number
// of CPU cores detected, and will fail fast at the first sign of any error.
// Set Reporter to a reporter that returns nil to collect every error
// instead.
package pl0compile
