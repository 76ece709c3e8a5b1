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

// Numeric is the element-type constraint accepted by Sort, Select, and
// PartialSort: the 16/32/64-bit signed and unsigned integer types, 32/64-bit
// float, and the half-precision hwy.Float16.
//
// hwy.Lanes additionally admits int8/uint8 and hwy.BFloat16. Embedding
// hwy.Lanes here narrows Numeric to the intersection of the two type sets,
// so every Numeric instantiation is also a valid hwy.Lanes instantiation and
// can be passed straight through to hwy's vector operations. BFloat16 is
// left out: every comparison site in this package funnels scalar ordering
// through less/ge/typeMin/typeMax (cmp.go), which would need a BFloat16 case
// alongside the Float16 one to support it, and nothing in this package's
// surface currently exercises BFloat16 to justify adding it speculatively.
type Numeric interface {
	hwy.Lanes
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | hwy.Float16
}
