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

import "fmt"

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

const (
	EOF   Kind = iota // End of input. Returned repeatedly once reached.
	Error             // A lexical error. The token's text is the message.

	Ident  // An identifier.
	Number // A decimal integer literal.

	// Keywords.
	Const
	Var
	Procedure
	Call
	Begin
	End
	If
	Then
	While
	Do
	Odd

	// Operators.
	Plus   // +
	Minus  // -
	Star   // *
	Slash  // /
	Caret  // ^
	Eq     // =
	Hash   // #
	Lt     // <
	Lte    // <=
	Gt     // >
	Gte    // >=
	Assign // :=

	// Delimiters.
	LParen // (
	RParen // )
	Comma  // ,
	Semi   // ;
	Period // .

	kindCount
)

var spellings = [...]string{
	Const:     "const",
	Var:       "var",
	Procedure: "procedure",
	Call:      "call",
	Begin:     "begin",
	End:       "end",
	If:        "if",
	Then:      "then",
	While:     "while",
	Do:        "do",
	Odd:       "odd",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Caret:     "^",
	Eq:        "=",
	Hash:      "#",
	Lt:        "<",
	Lte:       "<=",
	Gt:        ">",
	Gte:       ">=",
	Assign:    ":=",
	LParen:    "(",
	RParen:    ")",
	Comma:     ",",
	Semi:      ";",
	Period:    ".",
	kindCount: "",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, Odd-Const+1)
	for k := Const; k <= Odd; k++ {
		m[spellings[k]] = k
	}
	return m
}()

// Keyword returns the keyword kind spelled by text, if there is one.
// Keywords are case-sensitive.
func Keyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Const && k <= Odd
}

// IsOperator returns whether this is an arithmetic, relational or assignment
// operator.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Assign
}

// IsDelimiter returns whether this is a bracket or separator.
func (k Kind) IsDelimiter() bool {
	return k >= LParen && k <= Period
}

// IsRelational returns whether this operator may appear between the two
// operands of a condition.
func (k Kind) IsRelational() bool {
	return k >= Eq && k <= Gte
}

// Spelling returns the fixed source text of a keyword, operator or
// delimiter, and the empty string for every other kind.
func (k Kind) Spelling() string {
	if k < kindCount {
		return spellings[k]
	}
	return ""
}

// Category returns the human-readable class this kind belongs to, as used in
// token listings.
func (k Kind) Category() string {
	switch {
	case k == EOF:
		return "End of File"
	case k == Error:
		return "Error"
	case k == Ident:
		return "Identifier"
	case k == Number:
		return "Number"
	case k.IsKeyword():
		return "Keyword"
	case k.IsOperator():
		return "Operator"
	case k.IsDelimiter():
		return "Delimiter"
	default:
		return "Unknown"
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Error:
		return "Error"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	}
	if s := k.Spelling(); s != "" {
		return s
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}
