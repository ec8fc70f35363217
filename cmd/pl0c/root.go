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
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bufbuild/pl0compile"
	"github.com/bufbuild/pl0compile/reporter"
)

// errFailed is returned by commands that already reported why they failed.
var errFailed = errors.New("failed")

// app is the state shared by all commands.
type app struct {
	stdout, stderr io.Writer

	cfgFile string
	cfg     config
	log     *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "pl0c",
		Short: "PL/0 compiler front end",
		Long: `pl0c checks PL/0 programs for lexical, syntax and semantic errors.

Settings may be given in a TOML or YAML config file. Flags override the
config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	flags.String("color", "", "color diagnostics: auto, always or never")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("recover", false, "keep parsing after a syntax error to find more errors")
	flags.Bool("warn-unused", false, "warn about names that are never used")
	flags.IntP("parallelism", "j", 0, "number of files to compile at once (0 means number of CPUs)")

	root.AddCommand(
		a.newCompileCmd(),
		a.newCheckCmd(),
		a.newASTCmd(),
		a.newTokensCmd(),
	)
	return root
}

// setup loads the config file and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("recover") {
		cfg.Recover, _ = flags.GetBool("recover")
	}
	if flags.Changed("warn-unused") {
		cfg.WarnUnused, _ = flags.GetBool("warn-unused")
	}
	if flags.Changed("parallelism") {
		cfg.Parallelism, _ = flags.GetInt("parallelism")
	}
	if flags.Lookup("emit") != nil && flags.Changed("emit") {
		cfg.Emit, _ = flags.GetStringSlice("emit")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	level, _ := cfg.level()
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured", "config", a.cfgFile, "recover", cfg.Recover, "parallelism", cfg.Parallelism)
	return nil
}

func (a *app) compiler() *pl0compile.Compiler {
	return &pl0compile.Compiler{
		Resolver:       &pl0compile.SourceResolver{},
		MaxParallelism: a.cfg.Parallelism,
		// Collect every error so that all of them can be shown.
		Reporter:   reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }, nil),
		Recover:    a.cfg.Recover,
		WarnUnused: a.cfg.WarnUnused,
		Logger:     a.log,
	}
}
