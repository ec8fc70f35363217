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

package token

import (
	"fmt"
	"strconv"

	"github.com/bufbuild/pl0compile/source"
)

// Token is a single lexical element of a PL/0 program.
//
// The zero value is an [EOF] token with no position.
type Token struct {
	Kind Kind
	Pos  source.Pos

	text  string
	value int64
}

// New returns a token of the given kind whose source text is text.
//
// For keywords, operators and delimiters text may be empty; [Token.Text]
// falls back to the kind's spelling.
func New(kind Kind, pos source.Pos, text string) Token {
	return Token{Kind: kind, Pos: pos, text: text}
}

// NewNumber returns a [Number] token with the given literal text and value.
func NewNumber(pos source.Pos, text string, value int64) Token {
	return Token{Kind: Number, Pos: pos, text: text, value: value}
}

// NewError returns an [Error] token carrying a lexical error message.
func NewError(pos source.Pos, message string) Token {
	return Token{Kind: Error, Pos: pos, text: message}
}

// Text returns the source text of this token.
//
// For identifiers this is the name, for numbers the literal as written, and
// for error tokens the error message. EOF has no text.
func (t Token) Text() string {
	if t.text == "" {
		return t.Kind.Spelling()
	}
	return t.text
}

// Value returns the integer payload of a [Number] token, and zero for every
// other kind.
func (t Token) Value() int64 {
	if t.Kind != Number {
		return 0
	}
	return t.value
}

// Is returns whether this token has any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// Describe returns a short description of this token suitable for use in
// "found ..." parts of diagnostics, such as `keyword "var"` or `";"`.
func (t Token) Describe() string {
	switch {
	case t.Kind == EOF:
		return "end of file"
	case t.Kind == Error:
		return "invalid token"
	case t.Kind == Ident:
		return "identifier " + strconv.Quote(t.text)
	case t.Kind == Number:
		return "number " + strconv.FormatInt(t.value, 10)
	case t.Kind.IsKeyword():
		return "keyword " + strconv.Quote(t.Kind.Spelling())
	default:
		return strconv.Quote(t.Text())
	}
}

// String implements [fmt.Stringer].
//
// The result is the form used in token listings, such as "x: Identifier".
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "EOF: End of File"
	case Number:
		return fmt.Sprintf("%d: %s", t.value, t.Kind.Category())
	default:
		return fmt.Sprintf("%s: %s", t.Text(), t.Kind.Category())
	}
}
