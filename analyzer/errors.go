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

package analyzer

import (
	"errors"
	"fmt"

	"github.com/bufbuild/pl0compile/source"
)

// ErrDivisionByZero is reported when the divisor of a division folds to
// zero.
var ErrDivisionByZero = errors.New("division by zero")

// DuplicateError is reported when a scope declares the same name twice.
type DuplicateError struct {
	Kind SymbolKind
	Name string
	// Where the name was first declared in the same scope.
	Previous source.Pos
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate %s declaration: %s", e.Kind, e.Name)
}

// UnusedError is reported as a warning for a name that is declared but
// never referenced.
type UnusedError struct {
	Kind SymbolKind
	Name string
}

func (e *UnusedError) Error() string {
	return fmt.Sprintf("%s declared and not used: %s", e.Kind, e.Name)
}
