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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodProgram = "const a = 5; var b; begin b := a + 1 end."

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(append(args, "--color", "never"))
	err = root.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCompileCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "good.pl0", goodProgram)
	outDir := filepath.Join(dir, "out")
	// A stale error listing is removed.
	writeFile(t, outDir, "errors.txt", "old")

	stdout, _, err := run(t, "compile", input, outDir)
	require.NoError(t, err)
	assert.Equal(t, "Compilation successful!\n", stdout)

	assert.Equal(t, "Lexical Analysis Result:\n=======================\n\n"+
		"const: Keyword\na: Identifier\n=: Operator\n5: Number\n;: Delimiter\n"+
		"var: Keyword\nb: Identifier\n;: Delimiter\nbegin: Keyword\nb: Identifier\n"+
		":=: Operator\na: Identifier\n+: Operator\n1: Number\nend: Keyword\n"+
		".: Delimiter\nEOF: End of File\n",
		readFile(t, filepath.Join(outDir, "tokens.txt")))
	assert.Equal(t, `Abstract Syntax Tree:
===================

Program
  Block
    Constants:
      a = 5: Constant Declaration
    Variables:
      b: Variable Declaration
    Statement:
      Begin
        b := : Assignment Statement
          Binary Operation +
            Left:
              a: Identifier
            Right:
              1: Number
`, readFile(t, filepath.Join(outDir, "ast.txt")))
	assert.Equal(t, `Semantic Analysis Result:
=======================

Analysis Information:
- Analyzing program...
- Declaring constant: a = 5
- Declaring variable: b at level 1 (slot 0)
- Leaving scope at level 1: a, b

No semantic errors found.
`, readFile(t, filepath.Join(outDir, "semantic.txt")))
	assert.NoFileExists(t, filepath.Join(outDir, "errors.txt"))
}

func TestCompileCommandFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "bad.pl0", "var x;\nbegin x := y end.")
	outDir := filepath.Join(dir, "out")

	stdout, stderr, err := run(t, "compile", input, outDir, "--emit", "semantic")
	require.ErrorIs(t, err, errFailed)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Compilation failed!\n")
	assert.Contains(t, stderr, "error: undeclared identifier: y")
	assert.Contains(t, stderr, "encountered 1 error")

	assert.NoFileExists(t, filepath.Join(outDir, "tokens.txt"))
	assert.NoFileExists(t, filepath.Join(outDir, "ast.txt"))
	assert.Contains(t, readFile(t, filepath.Join(outDir, "semantic.txt")), "Semantic Errors:\n- undeclared identifier: y\n")
	assert.Equal(t, "Compilation Errors:\n===================\n\n"+input+":2:12: undeclared identifier: y\n\n",
		readFile(t, filepath.Join(outDir, "errors.txt")))
}

func TestCompileCommandSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "bad.pl0", "var x; x := .")
	outDir := filepath.Join(dir, "out")

	_, _, err := run(t, "compile", input, outDir)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, readFile(t, filepath.Join(outDir, "ast.txt")), "AST construction failed\n")
	assert.Equal(t, "Semantic Analysis Result:\n=======================\n\nSemantic Errors:\n- expected expression, found \".\"\n",
		readFile(t, filepath.Join(outDir, "semantic.txt")))
}

func TestCompileCommandConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "good.pl0", goodProgram)
	outDir := filepath.Join(dir, "configured")
	cfg := writeFile(t, dir, "pl0c.yaml", "output_dir: "+outDir+"\nemit: [ast]\n")

	_, _, err := run(t, "compile", input, "--config", cfg)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "ast.txt"))
	assert.NoFileExists(t, filepath.Join(outDir, "tokens.txt"))
}

func TestCheckCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a/one.pl0", goodProgram)
	writeFile(t, dir, "a/b/two.pl0", "var x; x := 1.")
	writeFile(t, dir, "a/b/notes.txt", "not a program")

	stdout, stderr, err := run(t, "check", filepath.Join(dir, "**", "*.pl0"), filepath.Join(dir, "a", "one.pl0"))
	require.NoError(t, err)
	assert.Equal(t, "checked 2 file(s), no errors\n", stdout)
	assert.Empty(t, stderr)

	writeFile(t, dir, "c/three.pl0", "var x, x; x := 1 / 0.")
	_, stderr, err = run(t, "check", filepath.Join(dir, "**", "*.pl0"), "--warn-unused")
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "error: duplicate variable declaration: x")
	assert.Contains(t, stderr, "first declared here")
	assert.Contains(t, stderr, "error: division by zero")
	assert.Contains(t, stderr, "encountered 2 errors")

	_, _, err = run(t, "check", filepath.Join(dir, "*.nothing"))
	assert.ErrorContains(t, err, "no files match")

	_, _, err = run(t, "check", filepath.Join(dir, "missing.pl0"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestASTCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "p.pl0", "call p.")

	stdout, _, err := run(t, "ast", input)
	require.NoError(t, err)
	assert.Equal(t, "Program\n  Block\n    Statement:\n      p: Call Statement\n", stdout)

	stdout, _, err = run(t, "ast", input, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "node: program\n")
	assert.Contains(t, stdout, "node: call\n")
	assert.Contains(t, stdout, "name: p\n")

	_, _, err = run(t, "ast", input, "--format", "json")
	assert.ErrorContains(t, err, `invalid format "json"`)

	bad := writeFile(t, dir, "bad.pl0", "call .")
	_, stderr, err := run(t, "ast", bad)
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stderr, "expected procedure name after 'call'")
}

func TestTokensCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout, _, err := run(t, "tokens", writeFile(t, dir, "t.pl0", "x := 1."))
	require.NoError(t, err)
	assert.Equal(t, "x: Identifier\n:=: Operator\n1: Number\n.: Delimiter\nEOF: End of File\n", stdout)

	stdout, stderr, err := run(t, "tokens", writeFile(t, dir, "bad.pl0", "x := @."))
	require.ErrorIs(t, err, errFailed)
	assert.Contains(t, stdout, "ERROR: Invalid Token\n")
	assert.Contains(t, stderr, "lexical error: unexpected character '@'")
}

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "x/b.pl0", "")
	writeFile(t, dir, "x/a.pl0", "")

	files, err := expand([]string{
		filepath.Join(dir, "x", "*.pl0"),
		filepath.Join(dir, "x", "a.pl0"),
		"plain.pl0",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "x", "a.pl0"),
		filepath.Join(dir, "x", "b.pl0"),
		"plain.pl0",
	}, files)
}
