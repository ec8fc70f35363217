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

import "github.com/bufbuild/pl0compile/token"

// TokenSlice returns a [TokenSource] that replays toks, as returned by
// [Tokenize]. Once the slice is exhausted it returns the final EOF token
// forever, or an EOF token with no position if toks has none.
func TokenSlice(toks []token.Token) TokenSource {
	return &sliceSource{toks: toks}
}

type sliceSource struct {
	toks []token.Token
	idx  int
}

func (s *sliceSource) Peek() token.Token {
	if s.idx < len(s.toks) {
		return s.toks[s.idx]
	}
	if n := len(s.toks); n > 0 && s.toks[n-1].Kind == token.EOF {
		return s.toks[n-1]
	}
	return token.Token{}
}

func (s *sliceSource) Next() token.Token {
	tok := s.Peek()
	if s.idx < len(s.toks) {
		s.idx++
	}
	return tok
}
