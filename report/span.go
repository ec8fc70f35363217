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

package report

import (
	"strings"

	"github.com/bufbuild/pl0compile/source"
)

// Span is a range of bytes within a source file.
type Span struct {
	File       *source.File
	Start, End int
}

// StartPos returns the position where this span begins.
func (s Span) StartPos() source.Pos { return s.File.Pos(s.Start) }

// EndPos returns the position immediately after this span.
func (s Span) EndPos() source.Pos { return s.File.Pos(s.End) }

// WordAt returns a span starting at offset and covering the identifier,
// number or operator found there. At the end of the file, or on whitespace,
// the span is empty.
func WordAt(file *source.File, offset int) Span {
	text := file.Text()
	offset = min(max(offset, 0), len(text))
	end := offset
	isWord := func(c byte) bool {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
	}
	switch {
	case end == len(text):
	case isWord(text[end]):
		for end < len(text) && isWord(text[end]) {
			end++
		}
	case strings.IndexByte(":<>", text[end]) >= 0 && end+1 < len(text) && text[end+1] == '=':
		end += 2
	case text[end] > ' ' && text[end] < 0x80:
		end++
	}
	return Span{File: file, Start: offset, End: end}
}
