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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pl0compile/source"
	"github.com/bufbuild/pl0compile/token"
)

func TestKeyword(t *testing.T) {
	t.Parallel()

	for _, word := range []string{"const", "var", "procedure", "call", "begin", "end", "if", "then", "while", "do", "odd"} {
		kind, ok := token.Keyword(word)
		assert.True(t, ok, word)
		assert.True(t, kind.IsKeyword(), word)
		assert.Equal(t, word, kind.Spelling())
	}

	_, ok := token.Keyword("BEGIN")
	assert.False(t, ok)
	_, ok = token.Keyword("odds")
	assert.False(t, ok)
}

func TestKindClasses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Operator", token.Assign.Category())
	assert.Equal(t, "Operator", token.Hash.Category())
	assert.Equal(t, "Delimiter", token.Semi.Category())
	assert.Equal(t, "Keyword", token.Odd.Category())
	assert.Equal(t, "End of File", token.EOF.Category())

	assert.True(t, token.Lte.IsRelational())
	assert.True(t, token.Hash.IsRelational())
	assert.False(t, token.Assign.IsRelational())
	assert.False(t, token.Plus.IsRelational())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	pos := source.Pos{Line: 1, Col: 1}
	tests := []struct {
		tok  token.Token
		want string
	}{
		{token.New(token.Var, pos, "var"), `keyword "var"`},
		{token.New(token.Ident, pos, "b"), `identifier "b"`},
		{token.NewNumber(pos, "42", 42), "number 42"},
		{token.New(token.Semi, pos, ""), `";"`},
		{token.New(token.Assign, pos, ":="), `":="`},
		{token.New(token.EOF, pos, ""), "end of file"},
		{token.NewError(pos, "unexpected character '$'"), "invalid token"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.tok.Describe())
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5: Number", token.NewNumber(source.Pos{}, "005", 5).String())
	assert.Equal(t, "x: Identifier", token.New(token.Ident, source.Pos{}, "x").String())
	assert.Equal(t, "const: Keyword", token.New(token.Const, source.Pos{}, "").String())
	assert.Equal(t, ":=: Operator", token.New(token.Assign, source.Pos{}, "").String())
	assert.Equal(t, ".: Delimiter", token.New(token.Period, source.Pos{}, ".").String())
	assert.Equal(t, "EOF: End of File", token.Token{}.String())
}

func TestPayload(t *testing.T) {
	t.Parallel()

	num := token.NewNumber(source.Pos{}, "12", 12)
	assert.Equal(t, int64(12), num.Value())
	assert.Equal(t, "12", num.Text())

	id := token.New(token.Ident, source.Pos{}, "abc")
	assert.Zero(t, id.Value())
	assert.True(t, id.Is(token.Number, token.Ident))
	assert.False(t, id.Is(token.Number))
}
