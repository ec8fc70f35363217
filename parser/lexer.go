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

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/pl0compile/source"
	"github.com/bufbuild/pl0compile/token"
)

// TokenSource is what the [Parser] reads tokens from.
//
// Next returns the next token and advances; Peek returns the next token
// without advancing, and calling it repeatedly returns the same token. Once
// input is exhausted both return an EOF token forever. Lexical errors are
// surfaced as tokens of kind [token.Error] rather than as failures.
type TokenSource interface {
	Next() token.Token
	Peek() token.Token
}

// Lexer is the [TokenSource] for PL/0 source text.
type Lexer struct {
	input *runeReader
	file  *source.File

	// One-token lookahead buffer, filled by Peek and drained by Next.
	peeked    token.Token
	hasPeeked bool
}

var _ TokenSource = (*Lexer)(nil)

// NewLexer returns a lexer that tokenizes the contents of file.
func NewLexer(file *source.File) *Lexer {
	text := file.Text()
	rr := &runeReader{data: text}
	// If the file has a UTF-8 byte order mark, skip it.
	if strings.HasPrefix(text, "\uFEFF") {
		rr.pos = len("\uFEFF")
	}
	return &Lexer{input: rr, file: file}
}

// File returns the file being tokenized.
func (l *Lexer) File() *source.File {
	return l.file
}

// Peek implements [TokenSource].
func (l *Lexer) Peek() token.Token {
	if !l.hasPeeked {
		l.peeked = l.lex()
		l.hasPeeked = true
	}
	return l.peeked
}

// Next implements [TokenSource].
func (l *Lexer) Next() token.Token {
	if l.hasPeeked {
		l.hasPeeked = false
		return l.peeked
	}
	return l.lex()
}

// Tokenize returns every token in file, ending with (and including) the
// EOF token.
func Tokenize(file *source.File) []token.Token {
	l := NewLexer(file)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) lex() token.Token {
	l.skipWhitespace()
	l.input.setMark()
	pos := l.file.Pos(l.input.pos)

	c, ok := l.input.readRune()
	if !ok {
		return token.New(token.EOF, pos, "")
	}

	switch {
	case isDigit(c):
		l.input.skipWhile(isDigit)
		text := l.input.getMark()
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return token.NewError(pos, numError(err, text))
		}
		return token.NewNumber(pos, text, v)

	case isLetter(c):
		l.input.skipWhile(func(c rune) bool { return isLetter(c) || isDigit(c) })
		text := l.input.getMark()
		if kind, ok := token.Keyword(text); ok {
			return token.New(kind, pos, text)
		}
		return token.New(token.Ident, pos, text)
	}

	kind := token.EOF
	switch c {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '^':
		kind = token.Caret
	case '=':
		kind = token.Eq
	case '#':
		kind = token.Hash
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semi
	case '.':
		kind = token.Period
	case '<':
		kind = token.Lt
		if l.input.accept('=') {
			kind = token.Lte
		}
	case '>':
		kind = token.Gt
		if l.input.accept('=') {
			kind = token.Gte
		}
	case ':':
		if l.input.accept('=') {
			kind = token.Assign
		}
	}
	if kind == token.EOF {
		if c == utf8.RuneError {
			return token.NewError(pos, "invalid UTF-8 in source")
		}
		return token.NewError(pos, fmt.Sprintf("unexpected character %q", c))
	}
	return token.New(kind, pos, l.input.getMark())
}

func (l *Lexer) skipWhitespace() {
	l.input.skipWhile(func(c rune) bool {
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		}
		return false
	})
}

func numError(err error, text string) string {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return "value out of range for integer: " + text
	}
	return "invalid syntax in integer value: " + text
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

type runeReader struct {
	data string
	pos  int
	mark int
}

func (rr *runeReader) readRune() (rune, bool) {
	if rr.pos == len(rr.data) {
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(rr.data[rr.pos:])
	rr.pos += sz
	return r, true
}

func (rr *runeReader) peekRune() (rune, bool) {
	if rr.pos == len(rr.data) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(rr.data[rr.pos:])
	return r, true
}

// accept consumes the next rune if it is want.
func (rr *runeReader) accept(want rune) bool {
	if r, ok := rr.peekRune(); ok && r == want {
		rr.pos += utf8.RuneLen(r)
		return true
	}
	return false
}

func (rr *runeReader) skipWhile(pred func(rune) bool) {
	for {
		r, ok := rr.peekRune()
		if !ok || !pred(r) {
			return
		}
		rr.pos += utf8.RuneLen(r)
	}
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return rr.data[rr.mark:rr.pos]
}
