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

package pl0compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pl0compile/parser"
	"github.com/bufbuild/pl0compile/reporter"
	"github.com/bufbuild/pl0compile/source"
)

var testSources = map[string]string{
	"good.pl0":     "const a = 5; var b; begin b := a + 1 end.",
	"semantic.pl0": "var x; begin x := y end.",
	"lex.pl0":      "var x; x := 1 $ 2.",
	"recover.pl0":  "var x; begin x := ; x := 1 x end.",
	"unused.pl0":   "var x, y; x := x.",
}

// collector is a reporter that accepts every error.
type collector struct {
	mu       sync.Mutex
	errs     []string
	warnings []string
}

func (c *collector) Error(err reporter.ErrorWithPos) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err.Error())
	return nil
}

func (c *collector) Warning(err reporter.ErrorWithPos) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, err.Error())
}

func messages(errs []reporter.ErrorWithPos) []string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return msgs
}

func TestCompile(t *testing.T) {
	t.Parallel()

	rep := new(collector)
	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
		Reporter: rep,
	}
	results, err := comp.Compile(t.Context(), "good.pl0", "semantic.pl0", "lex.pl0")
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, results, 3)

	good := results[0]
	assert.Equal(t, "good.pl0", good.Path)
	assert.False(t, good.Failed())
	assert.NotNil(t, good.AST)
	assert.Len(t, good.Tokens, 17)
	assert.Equal(t, []string{
		"Analyzing program...",
		"Declaring constant: a = 5",
		"Declaring variable: b at level 1 (slot 0)",
		"Leaving scope at level 1: a, b",
	}, good.Info)

	semantic := results[1]
	assert.True(t, semantic.Failed())
	assert.NotNil(t, semantic.AST)
	assert.Equal(t, []string{"semantic.pl0:1:19: undeclared identifier: y"}, messages(semantic.Errors))

	lex := results[2]
	assert.NotEmpty(t, lex.Tokens)
	assert.Nil(t, lex.AST)
	assert.Empty(t, lex.Info)
	assert.Equal(t, []string{"lex.pl0:1:15: lexical error: unexpected character '$'"}, messages(lex.Errors))

	assert.ElementsMatch(t, []string{
		"semantic.pl0:1:19: undeclared identifier: y",
		"lex.pl0:1:15: lexical error: unexpected character '$'",
	}, rep.errs)
}

func TestCompileFailFast(t *testing.T) {
	t.Parallel()

	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
	}
	results, err := comp.Compile(t.Context(), "semantic.pl0")
	require.Error(t, err)
	var ewp reporter.ErrorWithPos
	require.ErrorAs(t, err, &ewp)
	assert.Equal(t, 19, ewp.GetPosition().Col)
	// Results are still available.
	require.Len(t, results, 1)
	assert.True(t, results[0].Failed())

	results, err = comp.Compile(t.Context(), "good.pl0")
	require.NoError(t, err)
	assert.False(t, results[0].Failed())
}

func TestCompileRecover(t *testing.T) {
	t.Parallel()

	for _, recovery := range []bool{false, true} {
		t.Run(fmt.Sprint("recover=", recovery), func(t *testing.T) {
			t.Parallel()
			comp := Compiler{
				Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
				Reporter: new(collector),
				Recover:  recovery,
			}
			results, err := comp.Compile(t.Context(), "recover.pl0")
			require.ErrorIs(t, err, reporter.ErrInvalidSource)

			want := []string{`recover.pl0:1:19: expected expression, found ";"`}
			if recovery {
				want = append(want, `recover.pl0:1:28: expected ';' between statements, found identifier "x"`)
			}
			assert.Equal(t, want, messages(results[0].Errors))
			assert.Nil(t, results[0].AST)
			assert.Empty(t, results[0].Info)
		})
	}
}

func TestCompileWarnings(t *testing.T) {
	t.Parallel()

	rep := new(collector)
	comp := Compiler{
		Resolver:   &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
		Reporter:   rep,
		WarnUnused: true,
	}
	results, err := comp.Compile(t.Context(), "unused.pl0")
	require.NoError(t, err)
	assert.Equal(t, []string{"unused.pl0:1:8: variable declared and not used: y"}, rep.warnings)
	assert.Equal(t, rep.warnings, messages(results[0].Warnings))
	assert.False(t, results[0].Failed())
}

func TestCompileAST(t *testing.T) {
	t.Parallel()

	prog, err := parser.New(parser.NewLexer(source.NewFile("tree.pl0", "var x; x := 2 ^ 10."))).Parse()
	require.NoError(t, err)

	comp := Compiler{
		Resolver: ResolverFunc(func(path string) (SearchResult, error) {
			return SearchResult{AST: prog}, nil
		}),
	}
	results, err := comp.Compile(t.Context(), "tree.pl0")
	require.NoError(t, err)
	assert.Same(t, prog, results[0].AST)
	assert.Nil(t, results[0].File)
	assert.Nil(t, results[0].Tokens)
	assert.NotEmpty(t, results[0].Info)

	_, err = comp.Compile(t.Context(), "other.pl0")
	assert.ErrorContains(t, err, `search result for "other.pl0" returned AST for "tree.pl0"`)
}

func TestCompileResolveError(t *testing.T) {
	t.Parallel()

	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
	}
	results, err := comp.Compile(t.Context(), "good.pl0", "missing.pl0")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, results)
}

func TestCompileCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
	}
	_, err := comp.Compile(ctx, "good.pl0")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompileDeduplicates(t *testing.T) {
	t.Parallel()

	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
	}
	results, err := comp.Compile(t.Context(), "good.pl0", "good.pl0")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Same(t, results[0], results[1])
}

func TestCompileParallel(t *testing.T) {
	t.Parallel()

	srcs := map[string]string{}
	var names []string
	for i := range 32 {
		name := fmt.Sprintf("f%02d.pl0", i)
		names = append(names, name)
		if i%4 == 0 {
			srcs[name] = fmt.Sprintf("var x; x := y%d.", i)
		} else {
			srcs[name] = fmt.Sprintf("const k = %d; var x; x := k * 2.", i)
		}
	}

	rep := new(collector)
	comp := Compiler{
		Resolver:       &SourceResolver{Accessor: SourceAccessorFromMap(srcs)},
		Reporter:       rep,
		MaxParallelism: 3,
	}
	results, err := comp.Compile(t.Context(), names...)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	require.Len(t, results, len(names))
	for i, res := range results {
		assert.Equal(t, names[i], res.Path)
		assert.Equal(t, i%4 == 0, res.Failed(), res.Path)
	}
	assert.Len(t, rep.errs, 8)
}

func TestCompileLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	comp := Compiler{
		Resolver: &SourceResolver{Accessor: SourceAccessorFromMap(testSources)},
		Logger:   slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	_, err := comp.Compile(t.Context(), "good.pl0")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=lexed file=good.pl0 tokens=17")
	assert.Contains(t, out, "msg=parsed file=good.pl0 errors=0")
	assert.Contains(t, out, `msg="Declaring constant: a = 5" file=good.pl0`)
}

func TestCompileNothing(t *testing.T) {
	t.Parallel()

	results, err := (&Compiler{}).Compile(t.Context())
	assert.NoError(t, err)
	assert.Nil(t, results)
	assert.False(t, errors.Is(err, reporter.ErrInvalidSource))
}
