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

package source

import (
	"bytes"
	"slices"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the width that all tabstops are rendered as when computing
// columns.
const TabstopWidth int = 4

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// File is a source code file.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is
	// possible to recover which line that offset is on by performing a binary
	// search on this list.
	//
	// Alternatively, this slice can be interpreted as the index after each \n
	// in the original file.
	lines []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// FromBytes constructs a new source file from raw file contents. A leading
// UTF-8 byte order mark is dropped.
func FromBytes(path string, data []byte) *File {
	data = bytes.TrimPrefix(data, utf8Bom)
	return NewFile(path, string(data))
}

// Path returns this file's path. It does not need to be a real filesystem
// path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Pos builds full position information for the given byte offset.
//
// This operation is O(log n) in the number of lines, plus the length of the
// line the offset falls on.
func (f *File) Pos(offset int) Pos {
	if f == nil {
		return Pos{Offset: offset, Line: 1, Col: offset + 1}
	}

	offset = min(max(offset, 0), len(f.text))
	lines := f.lineIndex()

	// Find the greatest index in lines such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	return Pos{
		Filename: f.path,
		Offset:   offset,
		Line:     line + 1,
		Col:      Width(f.text[lines[line]:offset]) + 1,
	}
}

// Line returns the text of the given 1-indexed line, without its trailing
// newline.
func (f *File) Line(line int) string {
	lines := f.lineIndex()
	if line < 1 || line > len(lines) {
		return ""
	}
	start := lines[line-1]
	end := len(f.text)
	if line < len(lines) {
		end = lines[line]
	}
	return strings.TrimRight(f.text[start:end], "\r\n")
}

// Lines returns the number of lines in this file.
func (f *File) Lines() int {
	return len(f.lineIndex())
}

func (f *File) lineIndex() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		text := f.text
		var next int
		for {
			// +1 gives the index immediately after the newline.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			next += newline
			f.lines = append(f.lines, next)
		}
	})
	return f.lines
}

// Width makes a best-effort guess at the width of s when displayed on a
// terminal. Tabstops justify text to the next multiple of [TabstopWidth].
func Width(s string) int {
	var width int
	for {
		tab := strings.IndexByte(s, '\t')
		if tab == -1 {
			return width + uniseg.StringWidth(s)
		}
		width += uniseg.StringWidth(s[:tab])
		width += TabstopWidth - width%TabstopWidth
		s = s[tab+1:]
	}
}
