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

// Package network implements the L1 small-array sorter: the collaborator
// the driver falls back to once a range is too small for partitioning to
// pay for itself. It is intentionally isolated from the vqsort package so
// it can be reasoned about (and replaced) independently, per the external
// contract the core spec describes for the small-array sorter.
package network

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// maxValue returns the identity element for a max-padding sort: a value
// that is >= every representable value of T, so padding a short vector out
// to a full lane width with it never disturbs the sort order of the real
// elements.
func maxValue[T hwy.Lanes]() T {
	var z T
	switch any(z).(type) {
	case int8:
		return any(int8(127)).(T)
	case int16:
		return any(int16(32767)).(T)
	case int32:
		return any(int32(2147483647)).(T)
	case int64:
		return any(int64(9223372036854775807)).(T)
	case uint8:
		return any(uint8(255)).(T)
	case uint16:
		return any(uint16(65535)).(T)
	case uint32:
		return any(uint32(4294967295)).(T)
	case uint64:
		return any(uint64(18446744073709551615)).(T)
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	case hwy.Float16:
		return any(hwy.Float16Inf).(T)
	}
	return z
}

// less promotes hwy.Float16 to float32 before comparing, the same pattern
// hwy's own unexported lessHelper uses, since Float16's underlying uint16
// storage makes its native `<` compare raw bit patterns rather than
// IEEE-754 order. Every other hwy.Lanes instantiation already orders
// correctly with the native operator.
func less[T hwy.Lanes](a, b T) bool {
	if av, ok := any(a).(hwy.Float16); ok {
		return av.Float32() < any(b).(hwy.Float16).Float32()
	}
	return a < b
}

// insertionSort is a plain insertion sort, used both standalone for ranges
// below the network threshold and as the per-vector sort step inside
// sortSingleVector/sortTwoVectors.
func insertionSort[T hwy.Lanes](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// bitonicMerge performs an in-place bitonic merge, assuming data already
// holds a bitonic sequence (ascending then descending).
func bitonicMerge[T hwy.Lanes](data []T) {
	n := len(data)
	for k := n / 2; k > 0; k /= 2 {
		for i := 0; i < n; i++ {
			j := i ^ k
			if j > i && less(data[j], data[i]) {
				data[i], data[j] = data[j], data[i]
			}
		}
	}
}

func sortSingleVector[T hwy.Lanes](data []T) {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	buf := make([]T, lanes)
	copy(buf, data)
	pad := maxValue[T]()
	for i := n; i < lanes; i++ {
		buf[i] = pad
	}
	insertionSort(buf)
	copy(data, buf[:n])
}

func sortTwoVectors[T hwy.Lanes](data []T) {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	pad := maxValue[T]()

	buf1 := make([]T, lanes)
	buf2 := make([]T, lanes)
	copy(buf1, data)
	if n > lanes {
		copy(buf2, data[lanes:])
	}
	for i := n; i < lanes; i++ {
		buf1[i] = pad
	}
	remaining := n - lanes
	if remaining < 0 {
		remaining = 0
	}
	for i := remaining; i < lanes; i++ {
		buf2[i] = pad
	}

	insertionSort(buf1)
	insertionSort(buf2)

	merged := make([]T, lanes*2)
	copy(merged[:lanes], buf1)
	for i := 0; i < lanes; i++ {
		merged[lanes+i] = buf2[lanes-1-i]
	}
	bitonicMerge(merged)
	copy(data, merged[:n])
}

// SortSmall sorts data in place. It is the L1 contract the driver uses once
// a range falls below its network-sort threshold: insertion sort for tiny
// ranges, an insertion sort over one padded vector for a range that fits
// in one vector, a two-vector bitonic merge for a range that fits in two, and
// insertion sort again beyond that (the driver is not expected to call
// SortSmall above roughly 4 lanes, but it stays correct at any size).
func SortSmall[T hwy.Lanes](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	lanes := hwy.MaxLanes[T]()
	switch {
	case n <= 4:
		insertionSort(data)
	case n <= lanes:
		sortSingleVector(data)
	case n <= 2*lanes:
		sortTwoVectors(data)
	default:
		insertionSort(data)
	}
}

// IsSorted reports whether data is sorted in non-decreasing order.
func IsSorted[T hwy.Lanes](data []T) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
