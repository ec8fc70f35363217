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

// Package parser turns PL/0 source text into an AST.
//
// A [Lexer] splits text into tokens and a [Parser] builds an [ast.Program]
// from them by recursive descent with one token of lookahead. Parsing stops
// at the first syntax error: the result is no AST and exactly one
// diagnostic. [WithRecovery] makes the parser skip ahead after an error in a
// statement list and keep going, so that several independent errors can be
// reported at once; the AST is still discarded if any error was found.
//
// The if-then statement has one non-standard extension. When the statement
// after "then" is not a begin-end block and is not followed by "end" or
// ";", the statements that follow it, each optionally terminated by ";", are
// absorbed into the then-branch until "end" or ";" is reached. For example
//
//	if x > 0 then y := 1 z := 2; w := 3 end
//
// guards all three assignments.
package parser
