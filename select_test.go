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
	"math/rand"
	"slices"
	"testing"
)

func TestSelectMatchesSortedReference(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	for _, n := range []int{1, 2, 9, 33, 257, 1000} {
		ref := make([]int32, n)
		for i := range ref {
			ref[i] = r.Int31n(10000)
		}
		sortedRef := append([]int32(nil), ref...)
		slices.Sort(sortedRef)

		for _, k := range []int{0, n / 2, n - 1} {
			data := append([]int32(nil), ref...)
			Select(data, k, n, false)
			if data[k] != sortedRef[k] {
				t.Fatalf("n=%d k=%d: got %d want %d", n, k, data[k], sortedRef[k])
			}
			for i := 0; i < k; i++ {
				if data[i] > data[k] {
					t.Fatalf("n=%d k=%d: left element %d > pivot %d", n, k, data[i], data[k])
				}
			}
			for i := k + 1; i < n; i++ {
				if data[i] < data[k] {
					t.Fatalf("n=%d k=%d: right element %d < pivot %d", n, k, data[i], data[k])
				}
			}
		}
	}
}

func TestSelectWithNaN(t *testing.T) {
	data := []float64{5, math.NaN(), 1, 3, math.NaN(), 2, 4}
	n := len(data)
	Select(data, 2, n, true)
	// The two NaNs were pushed to the tail of data[:n] before ranking, so
	// the rankable prefix has length 5 and index 2 of it is the true
	// median of {5,1,3,2,4} = 3.
	if data[2] != 3 {
		t.Fatalf("got %v, want data[2]=3 in %v", data[2], data)
	}
}

func TestPartialSortPrefixSortedAndBounded(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for _, n := range []int{1, 5, 33, 257, 1000} {
		ref := make([]int32, n)
		for i := range ref {
			ref[i] = r.Int31n(10000)
		}
		sortedRef := append([]int32(nil), ref...)
		slices.Sort(sortedRef)

		for _, k := range []int{1, n / 2, n} {
			if k == 0 {
				continue
			}
			data := append([]int32(nil), ref...)
			PartialSort(data, k, n, false)
			for i := 0; i < k; i++ {
				if data[i] != sortedRef[i] {
					t.Fatalf("n=%d k=%d: prefix mismatch at %d: got %d want %d", n, k, i, data[i], sortedRef[i])
				}
			}
			for i := k; i < n; i++ {
				if data[i] < sortedRef[k-1] {
					t.Fatalf("n=%d k=%d: tail element %d < prefix max %d", n, k, data[i], sortedRef[k-1])
				}
			}
		}
	}
}

func TestPartialSortKEqualsN(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	data := make([]int32, 50)
	for i := range data {
		data[i] = r.Int31n(1000)
	}
	before := append([]int32(nil), data...)
	PartialSort(data, len(data), len(data), false)
	if !isSorted(data) {
		t.Fatalf("not sorted: %v", data)
	}
	if !sameMultiset(data, before) {
		t.Fatal("multiset changed")
	}
}
