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

// A quicksort driver that compares NaNs with < or >= can fail to terminate
// or silently misplace values, since NaN has no place in a total order.
// This file displaces NaNs to a sentinel before sorting so the rest of the
// pipeline only ever sees a total order, then restores them afterward.

// isNaNScalar reports whether x is NaN. hwy.Float16's underlying uint16
// storage makes the classic `x != x` NaN test always false for it (it
// compares bit patterns, and a NaN's bit pattern trivially equals itself),
// so it is routed through its own IsNaN method instead, the same promotion
// hwy.IsNaN itself uses internally for Float16/BFloat16. Takes x as any so
// it can be called from functions generic over either Numeric or
// hwy.Floats without a type-parameter constraint mismatch between the two.
func isNaNScalar(x any) bool {
	switch v := x.(type) {
	case float32:
		return v != v
	case float64:
		return v != v
	case hwy.Float16:
		return v.IsNaN()
	}
	return false
}

// HasNaN reports whether data contains any NaN, scanning a vector at a
// time and returning as soon as one is found. Non-floating-point Numeric
// instantiations always report false.
func HasNaN[T Numeric](data []T) bool {
	if !isFloat[T]() {
		return false
	}
	switch d := any(data).(type) {
	case []float32:
		return hasNaNFloats(d)
	case []float64:
		return hasNaNFloats(d)
	case []hwy.Float16:
		return hasNaNFloats(d)
	}
	return false
}

func hasNaNFloats[T hwy.Floats](data []T) bool {
	lanes := hwy.MaxLanes[T]()
	if lanes < 1 {
		lanes = 1
	}
	i := 0
	for ; i+lanes <= len(data); i += lanes {
		v := hwy.Load(data[i:])
		if hwy.CountTrue(hwy.IsNaN(v)) > 0 {
			return true
		}
	}
	for ; i < len(data); i++ {
		if isNaNScalar(data[i]) {
			return true
		}
	}
	return false
}

// replaceNaNWithInf scans data and overwrites every NaN with +Inf, so the
// sort path never has to compare a NaN. It returns the number of NaNs
// replaced; the driver uses this count to know how many +Inf sentinels at
// the tail of the now-sorted slice need to be turned back into NaN.
func replaceNaNWithInf[T Numeric](data []T) int {
	if !isFloat[T]() {
		return 0
	}
	switch d := any(data).(type) {
	case []float32:
		return replaceNaNWithInfFloats(d)
	case []float64:
		return replaceNaNWithInfFloats(d)
	case []hwy.Float16:
		return replaceNaNWithInfFloats(d)
	}
	return 0
}

func replaceNaNWithInfFloats[T hwy.Floats](data []T) int {
	lanes := hwy.MaxLanes[T]()
	if lanes < 1 {
		lanes = 1
	}
	posInfF32 := float32(math.Inf(1))
	posInf := hwy.Const[T](posInfF32)
	count := 0
	i := 0
	for ; i+lanes <= len(data); i += lanes {
		v := hwy.Load(data[i:])
		mask := hwy.IsNaN(v)
		count += hwy.CountTrue(mask)
		hwy.Store(hwy.IfThenElse(mask, posInf, v), data[i:])
	}
	for ; i < len(data); i++ {
		if isNaNScalar(data[i]) {
			data[i] = hwy.ConstValue[T](posInfF32)
			count++
		}
	}
	return count
}

// restoreNaNTail turns the last count elements of a now-sorted slice back
// into NaN. Parking every NaN at +Inf before sorting and restoring them
// here relies on ascending sort placing +Inf (and hence the parked NaNs)
// at the very end of the slice.
func restoreNaNTail[T Numeric](data []T, count int) {
	if count <= 0 || !isFloat[T]() {
		return
	}
	n := len(data)
	switch d := any(data).(type) {
	case []float32:
		for i := n - count; i < n; i++ {
			d[i] = float32(math.NaN())
		}
	case []float64:
		for i := n - count; i < n; i++ {
			d[i] = math.NaN()
		}
	case []hwy.Float16:
		for i := n - count; i < n; i++ {
			d[i] = hwy.Float16NaN
		}
	}
}

// moveNaNsToEnd compacts every NaN in data to the tail using a two-finger
// scalar swap, for the selection path: Select/PartialSort must not let a
// NaN participate in the ordering at all, since NaN has no rank, but
// unlike the sort path there is no single "restore" step afterward, so
// NaNs are just pushed out of the way once, up front.
func moveNaNsToEnd[T Numeric](data []T) int {
	if !isFloat[T]() {
		return 0
	}
	lo, hi := 0, len(data)
	for lo < hi {
		if isNaNScalar(data[lo]) {
			hi--
			data[lo], data[hi] = data[hi], data[lo]
		} else {
			lo++
		}
	}
	return len(data) - hi
}
