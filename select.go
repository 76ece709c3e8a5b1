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

// Select rearranges data[:n] in place so the element that would occupy
// index k in sorted order is at data[k], every element before it is <=
// it, and every element after it is >= it (a partial order, not a full
// sort). n lets a caller operate on a logical prefix of a larger buffer
// without reslicing.
//
// If T is floating-point and hasNaN is true, every NaN in data[:n] is
// pushed to the end of data[:n] first and excluded from the ordering
// computation entirely, since NaN has no rank to select by. Pass
// hasNaN=false (or call HasNaN first to decide) when the caller already
// knows data[:n] has no NaNs, to skip the scan.
func Select[T Numeric](data []T, k, n int, hasNaN bool) {
	if n > len(data) {
		n = len(data)
	}
	if k < 0 || k >= n {
		return
	}

	window := data[:n]
	nanCount := 0
	if hasNaN {
		nanCount = moveNaNsToEnd(window)
	}
	rankable := window[:n-nanCount]
	if k >= len(rankable) {
		// k fell in the NaN tail; there is nothing left to rank it against.
		return
	}

	selectRange(rankable, k, depthBound(len(rankable)))
}

// PartialSort rearranges data[:n] in place so that data[:k] holds the k
// smallest elements of data[:n] in ascending order, and data[k:n] holds
// the rest in no particular order (but every one of them >= every element
// of data[:k]).
//
// NaN handling mirrors Select: set hasNaN when data[:n] may contain NaNs,
// which are excluded from the ordering and left at the tail of data[:n].
func PartialSort[T Numeric](data []T, k, n int, hasNaN bool) {
	if n > len(data) {
		n = len(data)
	}
	if k <= 0 || k > n {
		if k > n {
			k = n
		} else {
			return
		}
	}

	window := data[:n]
	nanCount := 0
	if hasNaN {
		nanCount = moveNaNsToEnd(window)
	}
	rankable := window[:n-nanCount]
	if k > len(rankable) {
		k = len(rankable)
	}
	if k == 0 {
		return
	}

	if k < len(rankable) {
		selectRange(rankable, k-1, depthBound(len(rankable)))
	}
	sortRange(rankable[:k], depthBound(k))
}
