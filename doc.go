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

// Package vqsort is a vectorized introspective quicksort for in-place
// sorting, partial sorting, and selection over slices of primitive
// numeric types.
//
// It follows the same design as Google Highway's VQSort: a hybrid
// quicksort that partitions with a mask-compress-store SIMD kernel,
// bottoms out to a sorting network for small ranges, and falls back to
// heapsort once the recursion depth budget is exhausted. Vector
// operations are provided by github.com/ajroetker/go-highway/hwy, which
// dispatches to AVX2/AVX-512/NEON when built with GOEXPERIMENT=simd and
// otherwise runs a portable scalar fallback.
//
// # Supported types
//
// Sort, Select, and PartialSort are generic over int16, int32, int64,
// uint16, uint32, uint64, float32, float64, and the half-precision
// hwy.Float16.
//
// # Example
//
//	data := []int32{5, 3, 1, 4, 2}
//	vqsort.Sort(data)
//
//	// Put the 3rd smallest element (0-based index 2) in place.
//	vqsort.Select(data, 2, len(data), false)
//
//	// Sort only the 3 smallest elements into data[0:3].
//	vqsort.PartialSort(data, 3, len(data), false)
package vqsort
