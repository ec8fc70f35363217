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

// recoverable runs fn. With recovery enabled, a syntax error raised by fn
// is caught and the parser resynchronizes instead of unwinding further. The
// error stays recorded, so the final result is still a failure.
func (p *Parser) recoverable(fn func()) {
	if !p.recovery {
		fn()
		return
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bailout); !ok || p.aborted {
			panic(r)
		}
		switch p.peek().Kind {
		case token.End:
			// The enclosing statement list ends here.
		case token.Semi:
			p.advance()
		default:
			p.synchronize()
		}
		if p.check(token.EOF) {
			// Nothing left to resume from.
			panic(r)
		}
	}()
	fn()
}

// synchronize discards tokens until just past the next ";", or until a
// token that can begin a declaration or statement, or the end of input. It
// always consumes at least one token so that recovery makes progress.
func (p *Parser) synchronize() {
	p.advance()
	for !p.check(token.EOF) {
		switch p.peek().Kind {
		case token.Semi:
			p.advance()
			return
		case token.Var, token.Procedure, token.Begin, token.If, token.While, token.End:
			return
		}
		p.advance()
	}
}
