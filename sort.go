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

// Sort sorts data in place in ascending order using a vectorized
// introspective quicksort: sampled-pivot partitioning for most of the
// recursion, a small-array sorting network near the leaves, and a
// heapsort fallback if the recursion depth budget is exhausted.
//
// If T is a floating-point type, every NaN in data is moved to the end of
// the slice (in no particular order among themselves); the rest of data
// is sorted as if the NaNs were never there.
func Sort[T Numeric](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	nanCount := replaceNaNWithInf(data)
	sortRange(data, depthBound(n))
	restoreNaNTail(data, nanCount)
}

// IsSorted reports whether data is already sorted in non-decreasing order.
// NaNs are not given special treatment here: adjacent elements are compared
// with <, and by IEEE-754 rules every comparison involving a NaN is false,
// so a NaN never makes a slice report unsorted, wherever it sits, and the
// elements on either side of it are not compared with each other.
func IsSorted[T Numeric](data []T) bool {
	return isSortedAscending(data)
}
