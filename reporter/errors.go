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

// Package reporter contains the types used for reporting errors from the
// parser and the semantic analyzer. The default behavior is that the first
// error is fatal, but a custom [ErrorReporter] can be used to collect every
// error and continue.
package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/pl0compile/source"
)

// ErrInvalidSource is a sentinel error that is returned by compilation
// functions in the event that syntax or semantic errors are encountered, but
// the configured ErrorReporter always returns nil.
var ErrInvalidSource = errors.New("compile failed: invalid PL/0 source")

// ErrorWithPos is an error about a PL/0 source file that includes
// information about the location in the file that caused the error.
//
// The value of Error() will contain both the position and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() source.Pos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos source.Pos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos source.Pos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithSourcePos is an error about a PL/0 source file that includes
// information about the location in the file that caused the error.
type errorWithSourcePos struct {
	underlying error
	pos        source.Pos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// PL/0 source that caused the error.
func (e errorWithSourcePos) GetPosition() source.Pos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
