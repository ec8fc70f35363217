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

// Package analyzer implements semantic analysis of PL/0 programs.
//
// The [Analyzer] walks a parsed [ast.Program] once, depth-first, keeping a
// stack of lexical scopes that mirrors the nesting of blocks in the source.
// It resolves every name, classifies it as a constant, a variable or a
// procedure, and reports misuse: undeclared names, duplicate declarations in
// one scope, assignment to anything but a variable, calls to anything but a
// procedure, procedures used as values, and division by a divisor that folds
// to zero.
//
// Unlike the parser, the analyzer never stops at the first problem. Every
// rule violation is recorded and the traversal continues, so one call to
// [Analyzer.Analyze] reports every independent error.
package analyzer
