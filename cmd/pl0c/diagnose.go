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

package main

import (
	"errors"

	"github.com/bufbuild/pl0compile"
	"github.com/bufbuild/pl0compile/analyzer"
	"github.com/bufbuild/pl0compile/report"
	"github.com/bufbuild/pl0compile/reporter"
)

// diagnose adds the errors and warnings of res to rep.
func diagnose(rep *report.Report, res *pl0compile.Result) {
	for _, err := range res.Errors {
		add(rep, report.Error, res, err)
	}
	for _, err := range res.Warnings {
		add(rep, report.Warning, res, err)
	}
}

func add(rep *report.Report, level report.Level, res *pl0compile.Result, err reporter.ErrorWithPos) {
	if res.File == nil {
		opts := []report.DiagnosticOption{report.MentionFile(res.Path)}
		if level == report.Warning {
			rep.Warn(err, opts...)
		} else {
			rep.Error(err, opts...)
		}
		return
	}

	var opts []report.DiagnosticOption
	var dup *analyzer.DuplicateError
	var unused *analyzer.UnusedError
	switch {
	case errors.As(err, &dup):
		opts = append(opts, report.SnippetAt(report.WordAt(res.File, dup.Previous.Offset), "first declared here"))
	case errors.As(err, &unused):
		opts = append(opts, report.Help("remove the declaration of %s", unused.Name))
	case errors.Is(err, analyzer.ErrDivisionByZero):
		opts = append(opts, report.Note("the divisor is a constant expression that evaluates to zero"))
	}
	rep.AddPositioned(level, res.File, err, opts...)
}
