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

import "fmt"

// Pos is a user-displayable location within a source file.
type Pos struct {
	// The path of the file this position refers to. May be empty for
	// anonymous sources.
	Filename string

	// The byte offset of this position.
	Offset int

	// The line and column for this position, 1-indexed.
	//
	// Col is not Offset with the length of all previous lines subtracted
	// off; it takes into account the Unicode width and tabstops. Because
	// these are 1-indexed, a zero Line can be used as a sentinel.
	Line, Col int
}

// UnknownPos is a placeholder position when only the source file name is
// known.
func UnknownPos(filename string) Pos {
	return Pos{Filename: filename}
}

// IsValid reports whether this position carries line information.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String implements [fmt.Stringer].
//
// The result has the form file:line:col, or line:col for anonymous sources.
func (p Pos) String() string {
	switch {
	case !p.IsValid() && p.Filename == "":
		return "<input>"
	case !p.IsValid():
		return p.Filename
	case p.Filename == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	default:
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
	}
}
