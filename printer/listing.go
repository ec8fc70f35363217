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
	"strings"

	"github.com/bufbuild/pl0compile/token"
)

// Tokens returns a listing of toks, one token per line, such as
// "x: Identifier" or ":=: Operator".
//
// Error tokens are listed as "ERROR: Invalid Token"; their messages are
// reported as diagnostics instead.
func Tokens(toks []token.Token) string {
	var out strings.Builder
	for _, tok := range toks {
		if tok.Kind == token.Error {
			out.WriteString("ERROR: Invalid Token\n")
			continue
		}
		out.WriteString(tok.String())
		out.WriteByte('\n')
	}
	return out.String()
}

// Semantic formats the result of semantic analysis: the analyzer's info
// trace, followed by its errors or a note that there were none.
func Semantic(info, errs []string) string {
	var out strings.Builder
	if len(info) > 0 {
		out.WriteString("Analysis Information:\n")
		writeList(&out, info)
		out.WriteByte('\n')
	}
	if len(errs) == 0 {
		out.WriteString("No semantic errors found.\n")
		return out.String()
	}
	out.WriteString("Semantic Errors:\n")
	writeList(&out, errs)
	return out.String()
}

func writeList(out *strings.Builder, items []string) {
	for _, item := range items {
		out.WriteString("- ")
		out.WriteString(item)
		out.WriteByte('\n')
	}
}
