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
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/vqsort/internal/network"
)

// pivotMedianOf3 picks the median of the first, middle, and last elements.
// It is the fallback used by pivotSampled when the range is too short to
// sample a useful number of candidates.
func pivotMedianOf3[T Numeric](data []T) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}

	a, b, c := data[0], data[n/2], data[n-1]
	if less(b, a) {
		a, b = b, a
	}
	if less(c, b) {
		b = c
		if less(b, a) {
			b = a
		}
	}
	return b
}

// pivotSampled picks a pivot by sampling hwy.MaxLanes[T]() candidates at
// regular strides across the range, sorting them with the small-array
// sorter, and returning the middle candidate. Sampling a full vector's
// worth of candidates (rather than the fixed three of pivotMedianOf3)
// scales the pivot estimate with the vector width actually in
// use, so wider SIMD builds get proportionally better pivots.
func pivotSampled[T Numeric](data []T) T {
	n := len(data)
	lanes := hwy.MaxLanes[T]()
	if lanes < pivotMinSampleLanes || n <= lanes {
		return pivotMedianOf3(data)
	}

	samples := make([]T, lanes)
	stride := n / lanes
	for i := 0; i < lanes; i++ {
		// Sample starting one stride in, not at data[0]; clamp the last
		// sample since lanes*stride can land exactly on n when stride
		// divides n evenly.
		idx := (i + 1) * stride
		if idx >= n {
			idx = n - 1
		}
		samples[i] = data[idx]
	}

	network.SortSmall(samples)
	return samples[lanes/2]
}
