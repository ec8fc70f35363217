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

// Package report provides a collection of diagnostics and renders them for
// humans, either in the terse style of the Go compiler or as annotated source
// windows in the style of rustc.
package report

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
)

const (
	Error Level = 1 + iota
	Warning
	Remark
	note // Used internally within the diagnostic renderer.
)

const (
	Simple Style = 1 + iota
	Monochrome
	Colored
)

// traceDepth is how much of the Go call stack a diagnostic records about
// where it was pushed.
type traceDepth int

const (
	traceNone traceDepth = iota
	// Rendered as the pushing function only.
	traceOrigin
	// Rendered as the whole stack.
	traceStack
)

// tracing is read from PL0_DEBUG once, at startup.
var tracing = parseTraceDepth(os.Getenv("PL0_DEBUG"))

// parseTraceDepth interprets PL0_DEBUG. Unset, off or false disables tracing,
// "stack" (or its alias "full") keeps the whole stack, and any other value
// keeps the origin.
func parseTraceDepth(value string) traceDepth {
	switch value {
	case "stack", "full", "STACK", "FULL":
		return traceStack
	case "", "off", "OFF":
		return traceNone
	}
	if on, err := strconv.ParseBool(value); err == nil && !on {
		return traceNone
	}
	return traceOrigin
}

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

// Diagnostic is a single message in a [Report].
//
// Not all diagnostics are errors; some represent warnings or remarks.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The kind of diagnostic this is.
	Level Level

	mention     string
	snippets    []snippet
	notes, help []string

	// Where the diagnostic was created. Only populated when the PL0_DEBUG
	// environment variable is set.
	trace []runtime.Frame
}

type snippet struct {
	span    Span
	message string
	primary bool
}

// Primary returns the file and starting position of this diagnostic's first
// snippet. Diagnostics without snippets return their mentioned file, if any,
// and an invalid position.
func (d *Diagnostic) Primary() (path string, pos source.Pos) {
	if len(d.snippets) == 0 {
		return d.mention, source.UnknownPos(d.mention)
	}
	span := d.snippets[0].span
	return span.File.Path(), span.StartPos()
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// MentionFile returns a DiagnosticOption that causes a diagnostic without
// a snippet to mention the given file.
func MentionFile(path string) DiagnosticOption {
	return func(d *Diagnostic) { d.mention = path }
}

// SnippetAt returns a DiagnosticOption that adds an annotated piece of
// source code to the diagnostic.
//
// The first snippet added is the primary one, and is rendered with the
// diagnostic's level; the rest are rendered as notes.
func SnippetAt(span Span, format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.snippets = append(d.snippets, snippet{
			span:    span,
			message: fmt.Sprintf(format, args...),
			primary: len(d.snippets) == 0,
		})
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the snippets.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.notes = append(d.notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a suggestion
// for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.help = append(d.help, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics.
type Report []Diagnostic

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err error, opts ...DiagnosticOption) {
	r.push(1, err, Error, opts)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err error, opts ...DiagnosticOption) {
	r.push(1, err, Warning, opts)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err error, opts ...DiagnosticOption) {
	r.push(1, err, Remark, opts)
}

// AddPositioned pushes a diagnostic for an error produced by the parser or
// analyzer. The error's position is underlined in file, extended to cover
// the word it points at. Errors that carry no position only mention the
// file.
func (r *Report) AddPositioned(level Level, file *source.File, err error, opts ...DiagnosticOption) {
	var ewp reporter.ErrorWithPos
	var msg error = err
	if errors.As(err, &ewp) {
		msg = ewp.Unwrap()
		if pos := ewp.GetPosition(); pos.IsValid() {
			opts = append([]DiagnosticOption{SnippetAt(WordAt(file, pos.Offset), "")}, opts...)
		}
	}
	opts = append(opts, MentionFile(file.Path()))
	r.push(1, msg, level, opts)
}

// Errors returns the number of error-level diagnostics in this report.
func (r Report) Errors() int {
	var n int
	for _, d := range r {
		if d.Level == Error {
			n++
		}
	}
	return n
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level, opts []DiagnosticOption) {
	*r = append(*r, Diagnostic{Err: err, Level: level})
	d := &(*r)[len(*r)-1]
	for _, opt := range opts {
		opt(d)
	}

	if tracing == traceNone {
		return
	}
	pc := make([]uintptr, 64)
	pc = pc[:runtime.Callers(skip+2, pc)]
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			d.trace = append(d.trace, frame)
		}
		if !more {
			break
		}
	}
}
