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

// sortRange is the recursive introspective driver shared by Sort and the
// internals of Select/PartialSort, in the shape of hwy/contrib/sort's
// sortImpl. It bottoms out to the network sorter for small ranges and to
// heapsort once depthLimit is exhausted. It skips the right side when the
// partition reports pivot == biggest (every element there equals the
// pivot), and stops entirely when smallest == biggest.
func sortRange[T Numeric](data []T, depthLimit int) {
	n := len(data)
	if n <= 1 {
		return
	}

	if n <= networkThreshold[T]() {
		network.SortSmall(data)
		return
	}

	if depthLimit == 0 {
		heapSort(data)
		return
	}

	pivot := pivotSampled(data)
	boundary, smallest, biggest := partition(data, pivot)

	if smallest == biggest {
		// Every element in this range is equal; already sorted.
		return
	}

	if boundary > 0 {
		sortRange(data[:boundary], depthLimit-1)
	}
	if boundary < n && less(pivot, biggest) {
		sortRange(data[boundary:], depthLimit-1)
	}
}

// selectRange places the element that belongs at index k (within data) at
// that position, with every element before it <= it and every element
// after it >= it, in the shape of hwy/contrib/sort's nthElementImpl.
func selectRange[T Numeric](data []T, k, depthLimit int) {
	n := len(data)
	if n <= 1 {
		return
	}

	if depthLimit == 0 || n <= networkThreshold[T]() {
		sortRange(data, depthBound(n))
		return
	}

	pivot := pivotSampled(data)
	boundary, smallest, biggest := partition(data, pivot)

	if smallest == biggest {
		return
	}

	if k < boundary {
		selectRange(data[:boundary], k, depthLimit-1)
	} else if k >= boundary {
		selectRange(data[boundary:], k-boundary, depthLimit-1)
	}
}

// heapSort provides the O(n log n) worst-case guarantee the driver falls
// back to once its recursion depth budget is exhausted, matching
// hwy/contrib/sort's sortHeap/siftDown.
func heapSort[T Numeric](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i)
	}
}

func siftDown[T Numeric](data []T, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && less(data[largest], data[left]) {
			largest = left
		}
		if right < n && less(data[largest], data[right]) {
			largest = right
		}
		if largest == i {
			break
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// isSortedAscending reports whether data is already in non-decreasing
// order, scanning with hwy where the slice is long enough to make it
// worthwhile.
func isSortedAscending[T Numeric](data []T) bool {
	n := len(data)
	if n < 2 {
		return true
	}
	lanes := hwy.MaxLanes[T]()
	if lanes < 2 || n <= lanes {
		for i := 1; i < n; i++ {
			if less(data[i], data[i-1]) {
				return false
			}
		}
		return true
	}
	i := 0
	for ; i+lanes <= n; i += lanes {
		if i > 0 && less(data[i], data[i-1]) {
			return false
		}
		v := hwy.Load(data[i:])
		lane := v.Data()
		for j := 1; j < len(lane); j++ {
			if less(lane[j], lane[j-1]) {
				return false
			}
		}
	}
	for ; i < n; i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
