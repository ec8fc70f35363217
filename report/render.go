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
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/pl0compile/source"
)

// Render renders this diagnostic report in a format suitable for showing to
// a user.
func (r Report) Render(style Style) string {
	var out strings.Builder
	var errors, warnings int
	for i := range r {
		out.WriteString(r[i].Render(style))
		out.WriteString("\n")
		if style != Simple {
			out.WriteString("\n")
		}
		switch r[i].Level {
		case Error:
			errors++
		case Warning:
			warnings++
		}
	}
	if style == Simple {
		return out.String()
	}

	var color color
	if style == Colored {
		color = ansiColor()
	}

	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errors > 0:
		fmt.Fprint(&out, color.bRed, "encountered ", pluralize(errors, "error"))
		if warnings > 0 {
			fmt.Fprint(&out, " and ", pluralize(warnings, "warning"))
		}
		fmt.Fprintln(&out, color.reset)
	case warnings > 0:
		fmt.Fprintln(&out, color.bYellow+"encountered "+pluralize(warnings, "warning")+color.reset)
	}
	return out.String()
}

// Render renders this diagnostic in a format suitable for showing to a user.
func (d *Diagnostic) Render(style Style) string {
	level := d.Level.String()

	// The simple style imitates the Go compiler.
	if style == Simple {
		path, pos := d.Primary()
		if path == "" {
			path = "<unknown>"
		}
		if !pos.IsValid() {
			return fmt.Sprintf("%s: %s: %s", level, path, d.Err.Error())
		}
		return fmt.Sprintf("%s: %s:%d:%d: %s", level, path, pos.Line, pos.Col, d.Err.Error())
	}

	// The other styles imitate rustc.
	var color color
	if style == Colored {
		color = ansiColor()
	}

	var out strings.Builder
	fmt.Fprint(&out, color.BoldForLevel(d.Level), level, ": ", d.Err.Error(), color.reset)

	// The line number gutter is as wide as the greatest line number shown.
	var greatestLine int
	for _, snip := range d.snippets {
		greatestLine = max(greatestLine, snip.span.EndPos().Line)
	}
	gutter := max(2, len(fmt.Sprint(greatestLine)))
	pad := strings.Repeat(" ", gutter)

	for i, snippets := range partition(d.snippets, func(a, b *snippet) bool {
		return a.span.File.Path() != b.span.File.Path()
	}) {
		arrow := "-->"
		if i != 0 {
			arrow = ":::"
		}
		start := snippets[0].span.StartPos()
		fmt.Fprintf(&out, "\n%s%s%s %s:%d:%d", color.nBlue, pad, arrow, snippets[0].span.File.Path(), start.Line, start.Col)
		fmt.Fprintf(&out, "\n%s%s |", color.nBlue, pad)

		buildWindow(d.Level, snippets).render(gutter, &color, &out)
	}

	if len(d.snippets) == 0 {
		path := d.mention
		if path == "" {
			path = "<unknown>"
		}
		fmt.Fprintf(&out, "\n%s%s--> %s%s", color.nBlue, pad[1:], path, color.reset)
	}

	var footers [][2]string
	for _, note := range d.notes {
		footers = append(footers, [2]string{"note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [2]string{"help", help})
	}
	for i, frame := range d.trace {
		if tracing != traceStack && i > 0 {
			break
		}
		footers = append(footers,
			[2]string{"debug", "at " + frame.Function},
			[2]string{"debug", fmt.Sprintf("   %s:%d", frame.File, frame.Line)},
		)
	}
	for _, footer := range footers {
		fmt.Fprint(&out, "\n", color.nBlue, pad, " = ", color.bCyan, footer[0], ": ", color.reset, footer[1])
	}

	return out.String()
}

// window is an annotated range of lines from a single file.
type window struct {
	file        *source.File
	first, last int
	// Sorted by line, then by start column.
	underlines []underline
}

type underline struct {
	line       int
	start, end int // 1-indexed columns, end exclusive.
	level      Level
	message    string
}

// buildWindow lays out the given snippets, which must share a file.
func buildWindow(level Level, snippets []snippet) *window {
	w := &window{file: snippets[0].span.File}
	for i, snip := range snippets {
		start, end := snip.span.StartPos(), snip.span.EndPos()
		if end.Line != start.Line {
			// Only the first line of a multi-line span is underlined.
			end.Col = source.Width(w.file.Line(start.Line)) + 1
		}
		ul := underline{
			line:    start.Line,
			start:   start.Col,
			end:     max(end.Col, start.Col+1),
			level:   note,
			message: snip.message,
		}
		if snip.primary {
			ul.level = level
		}
		w.underlines = append(w.underlines, ul)

		if i == 0 || start.Line < w.first {
			w.first = start.Line
		}
		w.last = max(w.last, start.Line)
	}
	slices.SortStableFunc(w.underlines, func(a, b underline) int {
		if a.line != b.line {
			return a.line - b.line
		}
		return a.start - b.start
	})
	return w
}

func (w *window) render(gutter int, color *color, out *strings.Builder) {
	pad := strings.Repeat(" ", gutter)

	annotated := make(map[int][]underline)
	for _, part := range partition(w.underlines, func(a, b *underline) bool { return a.line != b.line }) {
		annotated[part[0].line] = part
	}

	// Lines next to an annotated line are shown for context.
	first, last := max(1, w.first-1), min(w.file.Lines(), w.last+1)
	emit := func(line int) bool {
		if annotated[line] != nil {
			return true
		}
		blank := strings.TrimSpace(w.file.Line(line)) == ""
		return !blank && (annotated[line-1] != nil || annotated[line+1] != nil)
	}

	skipped := false
	for line := first; line <= last; line++ {
		if !emit(line) {
			skipped = true
			continue
		}
		if skipped {
			fmt.Fprintf(out, "\n%s%s ~", color.bBlue, pad)
			skipped = false
		}
		fmt.Fprintf(out, "\n%s%*d | %s%s", color.nBlue, gutter, line, color.reset, expandTabs(w.file.Line(line)))

		for _, text := range layoutUnderlines(annotated[line], color) {
			fmt.Fprintf(out, "\n%s%s | %s%s", color.bBlue, pad, text, color.reset)
		}
	}
}

// layoutUnderlines renders the underlines of a single line. The message of
// the rightmost underline goes next to the carets; every other message gets
// a row of its own, placed under the start of its underline.
func layoutUnderlines(part []underline, color *color) []string {
	if len(part) == 0 {
		return nil
	}

	var width int
	for _, ul := range part {
		width = max(width, ul.end-1)
	}
	levels := make([]Level, width)
	// Longer underlines are painted first so shorter ones stay visible.
	byLen := slices.Clone(part)
	slices.SortStableFunc(byLen, func(a, b underline) int {
		return (b.end - b.start) - (a.end - a.start)
	})
	for _, ul := range byLen {
		for col := ul.start - 1; col < ul.end-1; col++ {
			levels[col] = ul.level
		}
	}

	var carets strings.Builder
	for _, run := range partition(levels, func(a, b *Level) bool { return *a != *b }) {
		if run[0] == 0 {
			carets.WriteString(color.reset)
			carets.WriteString(strings.Repeat(" ", len(run)))
			continue
		}
		mark := "^"
		if run[0] == note || run[0] == Remark {
			mark = "-"
		}
		carets.WriteString(color.BoldForLevel(run[0]))
		carets.WriteString(strings.Repeat(mark, len(run)))
	}

	rightmost := 0
	for i, ul := range part {
		if ul.end >= part[rightmost].end {
			rightmost = i
		}
	}
	first := carets.String()
	if msg := part[rightmost].message; msg != "" {
		first += " " + color.BoldForLevel(part[rightmost].level) + msg
	}
	rows := []string{first}

	for i := len(part) - 1; i >= 0; i-- {
		ul := part[i]
		if i == rightmost || ul.message == "" {
			continue
		}
		rows = append(rows, strings.Repeat(" ", ul.start-1)+color.BoldForLevel(ul.level)+ul.message)
	}
	return rows
}

// expandTabs replaces tabs in a line with enough spaces to reach the next
// tabstop, measuring the rest of the line in terminal cells.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var out strings.Builder
	var col int
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		cluster := g.Str()
		if cluster == "\t" {
			n := source.TabstopWidth - col%source.TabstopWidth
			out.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		out.WriteString(cluster)
		col += g.Width()
	}
	return out.String()
}

// color is the colors used for pretty-rendering diagnostics. The zero value
// renders without escapes.
type color struct {
	reset string
	// Normal colors.
	nRed, nYellow, nCyan, nBlue string
	// Bold colors.
	bRed, bYellow, bCyan, bBlue string
}

func ansiColor() color {
	return color{
		reset:   "\033[0m",
		nRed:    "\033[0;31m",
		nYellow: "\033[0;33m",
		nCyan:   "\033[0;36m",
		nBlue:   "\033[0;34m",
		bRed:    "\033[1;31m",
		bYellow: "\033[1;33m",
		bCyan:   "\033[1;36m",
		bBlue:   "\033[1;34m",
	}
}

func (c color) BoldForLevel(l Level) string {
	switch l {
	case Error:
		return c.bRed
	case Warning:
		return c.bYellow
	case Remark:
		return c.bCyan
	case note:
		return c.bBlue
	default:
		return ""
	}
}

// partition returns an iterator of subslices of s such that each yielded
// slice is delimited according to delimit. Also yields the starting index of
// the subslice.
//
// In other words, suppose delimit is !=. Then, the slice [a a a b c c] is
// yielded as the subslices [a a a], [b], and [c c].
//
// Will never yield an empty slice.
func partition[T any](s []T, delimit func(a, b *T) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		var start int
		for i := 1; i < len(s); i++ {
			if delimit(&s[i-1], &s[i]) {
				if !yield(start, s[start:i]) {
					return
				}
				start = i
			}
		}
		if rest := s[start:]; len(rest) > 0 {
			yield(start, rest)
		}
	}
}
