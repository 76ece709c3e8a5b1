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

import "github.com/ajroetker/go-highway/hwy"

// sortInsertionThreshold bounds the range length below which insertion sort
// beats a network sort's fixed overhead, mirroring hwy/contrib/sort's
// insertion-sort cutoff.
const sortInsertionThreshold = 24

// pivotMinSampleLanes is the smallest lane width for which sampling+sorting
// a full vector of candidates is worth its own overhead; below it, pivot
// selection falls back to the scalar median-of-three.
const pivotMinSampleLanes = 4

// networkThreshold returns the range length, in elements, below which the
// driver bottoms out to the small-array network sorter instead of
// recursing. It scales with the lane width of T so the network sorter
// always has multiple full vectors of headroom to work with, the same
// shape of reasoning hwy/contrib/sort's sortNetworkThreshold/
// sortInsertionThreshold constants encode for a fixed lane width.
func networkThreshold[T Numeric]() int {
	lanes := hwy.MaxLanes[T]()
	if lanes < 1 {
		lanes = 1
	}
	t := lanes * 4
	if t < sortInsertionThreshold {
		t = sortInsertionThreshold
	}
	return t
}

// depthBound returns the introspection depth budget for a range of n
// elements: 2*floor(log2(n)), matching hwy/contrib/sort's VQSort maxDepth
// computation. Once a recursive call exhausts this budget it falls back to
// heapsort, guaranteeing O(n log n) even on adversarial pivot sequences.
func depthBound(n int) int {
	bits := 0
	for tmp := n; tmp > 1; tmp >>= 1 {
		bits++
	}
	return 2 * bits
}
