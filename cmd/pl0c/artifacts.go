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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/pl0compile"
	"github.com/bufbuild/pl0compile/printer"
)

// Headers of the artifact files.
const (
	tokensHeader   = "Lexical Analysis Result:\n=======================\n\n"
	astHeader      = "Abstract Syntax Tree:\n===================\n\n"
	semanticHeader = "Semantic Analysis Result:\n=======================\n\n"
	errorsHeader   = "Compilation Errors:\n===================\n\n"
)

// writeArtifacts writes the requested listings for res into dir, creating
// it if needed. errors.txt is written only when res failed, and removed
// otherwise so that a stale one is not left behind.
func (a *app) writeArtifacts(dir string, res *pl0compile.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	files := map[string]string{}
	if a.cfg.emits(emitTokens) {
		files["tokens.txt"] = tokensHeader + printer.Tokens(res.Tokens)
	}
	if a.cfg.emits(emitAST) {
		tree := "AST construction failed\n"
		if res.AST != nil {
			tree = printer.Tree(res.AST)
		}
		files["ast.txt"] = astHeader + tree
	}
	if a.cfg.emits(emitSemantic) {
		files["semantic.txt"] = semanticHeader + printer.Semantic(res.Info, messages(res))
	}

	errorsPath := filepath.Join(dir, "errors.txt")
	if res.Failed() {
		var out strings.Builder
		out.WriteString(errorsHeader)
		for _, err := range res.Errors {
			fmt.Fprintf(&out, "%v\n\n", err)
		}
		files["errors.txt"] = out.String()
	} else if err := os.Remove(errorsPath); err != nil && !os.IsNotExist(err) {
		return err
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
		a.log.Debug("wrote artifact", "path", path, "bytes", len(content))
	}
	return nil
}

// messages returns the errors of res without their positions, in the form
// the semantic listing uses.
func messages(res *pl0compile.Result) []string {
	msgs := make([]string, len(res.Errors))
	for i, err := range res.Errors {
		msgs[i] = err.Unwrap().Error()
	}
	return msgs
}
