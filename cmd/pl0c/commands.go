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
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/bufbuild/pl0compile"
	"github.com/bufbuild/pl0compile/printer"
	"github.com/bufbuild/pl0compile/report"
	"github.com/bufbuild/pl0compile/reporter"
)

func (a *app) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <input> [output-dir]",
		Short: "Compile one program and write its listings",
		Long: `Compile one program and write its listings to the output directory:
tokens.txt, ast.txt and semantic.txt, plus errors.txt if compilation failed.
The output directory defaults to output_dir from the config file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.cfg.OutputDir
			if len(args) == 2 {
				dir = args[1]
			}
			res, err := a.compileOne(cmd, args[0])
			if err != nil {
				return err
			}
			if err := a.writeArtifacts(dir, res); err != nil {
				return err
			}

			if res.Failed() {
				fmt.Fprintln(a.stderr, "Compilation failed!")
				a.render(res)
				return errFailed
			}
			a.render(res)
			fmt.Fprintln(a.stdout, "Compilation successful!")
			return nil
		},
	}
	cmd.Flags().StringSlice("emit", nil, "listings to write: tokens, ast, semantic")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file or glob>...",
		Short: "Check programs for errors",
		Long: `Check programs for errors without writing any listings. Arguments may be
glob patterns, including ** to match any number of directories.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expand(args)
			if err != nil {
				return err
			}
			results, err := a.compiler().Compile(cmd.Context(), files...)
			if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
				return err
			}

			var rep report.Report
			for _, res := range results {
				diagnose(&rep, res)
			}
			if len(rep) > 0 {
				fmt.Fprint(a.stderr, rep.Render(a.cfg.style(a.stderr)))
			}
			if rep.Errors() > 0 {
				return errFailed
			}
			fmt.Fprintf(a.stdout, "checked %d file(s), no errors\n", len(files))
			return nil
		},
	}
}

func (a *app) newASTCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("invalid format %q: must be text or yaml", format)
			}
			res, err := a.compileOne(cmd, args[0])
			if err != nil {
				return err
			}
			if res.AST == nil {
				a.render(res)
				return errFailed
			}

			if format == "yaml" {
				data, err := printer.YAML(res.AST)
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			}
			_, err = fmt.Fprint(a.stdout, printer.Tree(res.AST))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func (a *app) newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.compileOne(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, printer.Tokens(res.Tokens))
			if res.AST == nil && len(res.Errors) > 0 {
				a.render(res)
				return errFailed
			}
			return nil
		},
	}
}

// compileOne compiles a single file, treating errors in the program as
// part of the result rather than as a failure.
func (a *app) compileOne(cmd *cobra.Command, path string) (*pl0compile.Result, error) {
	results, err := a.compiler().Compile(cmd.Context(), path)
	if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
		return nil, err
	}
	return results[0], nil
}

// render writes the diagnostics of res to stderr.
func (a *app) render(res *pl0compile.Result) {
	var rep report.Report
	diagnose(&rep, res)
	if len(rep) > 0 {
		fmt.Fprint(a.stderr, rep.Render(a.cfg.style(a.stderr)))
	}
}

// expand replaces glob patterns in args with the files they match. Plain
// paths are kept as they are, so that missing files are reported by the
// compiler. Duplicates are dropped.
func expand(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		slices.Sort(matches)
		files = append(files, matches...)
	}

	seen := make(map[string]struct{}, len(files))
	return slices.DeleteFunc(files, func(f string) bool {
		if _, ok := seen[f]; ok {
			return true
		}
		seen[f] = struct{}{}
		return false
	}), nil
}
