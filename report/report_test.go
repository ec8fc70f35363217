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

package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/pl0compile/report"
	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
)

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.pl0", "var x;\nbegin x := y end.")

	var r report.Report
	r.AddPositioned(report.Error, file,
		reporter.Errorf(file.Pos(18), "undeclared identifier: y"),
		report.Help("declare y with var"),
	)
	r.Warn(errors.New("file is empty"), report.MentionFile("b.pl0"))

	assert.Equal(t, 1, r.Errors())
	assert.Equal(t,
		"error: a.pl0:2:12: undeclared identifier: y\n"+
			"warning: b.pl0: file is empty\n",
		r.Render(report.Simple))

	assert.Equal(t,
		"error: undeclared identifier: y\n"+
			"  --> a.pl0:2:12\n"+
			"   |\n"+
			" 1 | var x;\n"+
			" 2 | begin x := y end.\n"+
			"   |            ^\n"+
			"   = help: declare y with var\n"+
			"\n"+
			"warning: file is empty\n"+
			" --> b.pl0\n"+
			"\n"+
			"encountered 1 error and 1 warning\n",
		r.Render(report.Monochrome))

	colored := r.Render(report.Colored)
	assert.Contains(t, colored, "\033[1;31merror: undeclared identifier: y")
	assert.Contains(t, colored, "\033[1;33mwarning: file is empty")
}

func TestRenderSecondarySnippet(t *testing.T) {
	t.Parallel()

	file := source.NewFile("c.pl0", "var x; var x;")

	var r report.Report
	r.Error(errors.New("duplicate variable declaration: x"),
		report.SnippetAt(report.WordAt(file, 11), "declared again"),
		report.SnippetAt(report.WordAt(file, 4), "first declared here"),
	)
	assert.Equal(t,
		"error: duplicate variable declaration: x\n"+
			"  --> c.pl0:1:12\n"+
			"   |\n"+
			" 1 | var x; var x;\n"+
			"   |     -      ^ declared again\n"+
			"   |     first declared here",
		r[0].Render(report.Monochrome))

	path, pos := r[0].Primary()
	assert.Equal(t, "c.pl0", path)
	assert.Equal(t, 12, pos.Col)
}

func TestWordAt(t *testing.T) {
	t.Parallel()

	file := source.NewFile("", "x := count1 <= 10;")
	tests := []struct {
		offset     int
		start, end int
	}{
		{0, 0, 1},
		{2, 2, 4},
		{5, 5, 11},
		{12, 12, 14},
		{15, 15, 17},
		{17, 17, 18},
		{18, 18, 18},
		{1, 1, 1},
	}
	for _, test := range tests {
		span := report.WordAt(file, test.offset)
		assert.Equal(t, test.start, span.Start, "offset %d", test.offset)
		assert.Equal(t, test.end, span.End, "offset %d", test.offset)
	}
}
