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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pl0compile/source"
)

func TestPos(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.pl0", "var x;\n\tx := 1\n\nbegin end.")
	assert.Equal(t, 4, file.Lines())

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{6, 1, 7},
		{7, 2, 1},
		// The tab expands to the next tabstop.
		{8, 2, 5},
		{10, 2, 7},
		{15, 3, 1},
		{16, 4, 1},
		{1000, 4, 11},
	}
	for _, test := range tests {
		pos := file.Pos(test.offset)
		assert.Equal(t, test.line, pos.Line, "offset %d", test.offset)
		assert.Equal(t, test.col, pos.Col, "offset %d", test.offset)
		assert.Equal(t, "a.pl0", pos.Filename)
	}

	assert.Equal(t, "\tx := 1", file.Line(2))
	assert.Empty(t, file.Line(3))
	assert.Empty(t, file.Line(5))
}

func TestPosWide(t *testing.T) {
	t.Parallel()

	file := source.NewFile("", "x := 变量")
	assert.Equal(t, source.Pos{Offset: 8, Line: 1, Col: 8}, file.Pos(8))
}

func TestFromBytes(t *testing.T) {
	t.Parallel()

	file := source.FromBytes("bom.pl0", []byte("\xEF\xBB\xBFvar x;"))
	assert.Equal(t, "var x;", file.Text())
	assert.Equal(t, "bom.pl0", file.Path())
}

func TestPosString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a.pl0:3:7", source.Pos{Filename: "a.pl0", Line: 3, Col: 7}.String())
	assert.Equal(t, "3:7", source.Pos{Line: 3, Col: 7}.String())
	assert.Equal(t, "a.pl0", source.UnknownPos("a.pl0").String())
	assert.Equal(t, "<input>", source.Pos{}.String())
}
