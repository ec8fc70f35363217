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


package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

func TestIPow(t *testing.T) {
	t.Parallel()

	t.Run("int8", func(t *testing.T) {
		t.Parallel()
		checkIPow(t, []int8{-128, -3, -1, 0, 1, 2, 7, 127}, 9)
	})
	t.Run("uint16", func(t *testing.T) {
		t.Parallel()
		checkIPow(t, []uint16{0, 1, 2, 3, 255, 65535}, 20)
	})
	t.Run("int64", func(t *testing.T) {
		t.Parallel()
		checkIPow(t, []int64{-10, -2, 0, 2, 3, 1 << 40}, 70)
	})
}

// checkIPow compares ipow against repeated multiplication, which wraps the
// same way, for every base and every exponent up to maxExp.
func checkIPow[T constraints.Integer](t *testing.T, bases []T, maxExp T) {
	t.Helper()
	for _, base := range bases {
		want := T(1)
		for exp := T(0); exp <= maxExp; exp++ {
			assert.Equal(t, want, ipow(base, exp), "%d**%d", base, exp)
			want *= base
		}
	}
}
