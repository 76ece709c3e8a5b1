// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vqsort

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// less and ge are the scalar comparison primitives used by the prologue,
// small-array, and fallback paths. hwy.Float16's underlying uint16 storage
// means its native `<` operator compares raw bit patterns, not IEEE-754
// order, so it is promoted to float32 first, the same pattern hwy's own
// unexported lessHelper/greaterHelper use; every other Numeric
// instantiation already has correct native ordering.
func less[T Numeric](a, b T) bool {
	if af, bf, ok := asFloat16(a, b); ok {
		return af < bf
	}
	return a < b
}

func ge[T Numeric](a, b T) bool { return !less(a, b) }

func minT[T Numeric](a, b T) T {
	if less(a, b) {
		return a
	}
	return b
}

func maxT[T Numeric](a, b T) T {
	if less(a, b) {
		return b
	}
	return a
}

// asFloat16 reports whether a and b are hwy.Float16, returning their
// promoted float32 values if so.
func asFloat16[T Numeric](a, b T) (af, bf float32, ok bool) {
	av, ok := any(a).(hwy.Float16)
	if !ok {
		return 0, 0, false
	}
	return av.Float32(), any(b).(hwy.Float16).Float32(), true
}

// typeMin and typeMax return the identity elements for maxT/minT reductions:
// the value such that minT(typeMax[T](), x) == x and maxT(typeMin[T](), x) == x
// for every representable x. For floats these are the infinities, not the
// largest/smallest finite values.
func typeMax[T Numeric]() T {
	var z T
	switch any(z).(type) {
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	case hwy.Float16:
		return any(hwy.Float16Inf).(T)
	}
	return z
}

func typeMin[T Numeric]() T {
	var z T
	switch any(z).(type) {
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	case uint16:
		return any(uint16(0)).(T)
	case uint32:
		return any(uint32(0)).(T)
	case uint64:
		return any(uint64(0)).(T)
	case float32:
		return any(float32(math.Inf(-1))).(T)
	case float64:
		return any(math.Inf(-1)).(T)
	case hwy.Float16:
		return any(hwy.Float16NegInf).(T)
	}
	return z
}

// isFloat reports whether T is one of the floating-point Numeric
// instantiations. The NAN module (nan.go) uses this to decide whether the
// sort/select paths need to park and restore NaNs at all.
func isFloat[T Numeric]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64, hwy.Float16:
		return true
	default:
		return false
	}
}
