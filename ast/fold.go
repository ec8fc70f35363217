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

import "golang.org/x/exp/constraints"

// foldBinary combines two folded operands. Arithmetic wraps on overflow.
func foldBinary(op BinaryOp, l, r int64) (int64, bool) {
	switch op {
	case OpAdd:
		return l + r, true
	case OpSub:
		return l - r, true
	case OpMul:
		return l * r, true
	case OpDiv:
		if r == 0 {
			return 0, false
		}
		// Go defines math.MinInt64 / -1 as math.MinInt64; it does not trap.
		return l / r, true
	case OpPow:
		if r < 0 {
			return 0, false
		}
		return ipow(l, r), true
	case OpEq:
		return b2i(l == r), true
	case OpNeq:
		return b2i(l != r), true
	case OpLt:
		return b2i(l < r), true
	case OpLte:
		return b2i(l <= r), true
	case OpGt:
		return b2i(l > r), true
	case OpGte:
		return b2i(l >= r), true
	default:
		return 0, false
	}
}

func foldUnary(op UnaryOp, v int64) (int64, bool) {
	switch op {
	case OpNegate:
		return -v, true
	case OpLogicalNot:
		return b2i(v == 0), true
	case OpOdd:
		return b2i(v%2 != 0), true
	default:
		return 0, false
	}
}

// ipow computes base**exp by square-and-multiply. Under wraparound this
// produces the same result as multiplying base by itself exp times.
func ipow[T constraints.Integer](base, exp T) T {
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
