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

// geMask builds the ">= pivot" mask for v. hwy's own GreaterEqual compares
// lanes with the native `>=` operator, which for hwy.Float16 compares raw
// uint16 bit patterns rather than IEEE-754 order; building the mask here
// from ge (cmp.go), which already promotes Float16 to float32, keeps
// partition's ordering correct for every Numeric instantiation while still
// using hwy.MaskFromBits, the same exported primitive hwy's own mask
// construction goes through.
func geMask[T Numeric](v hwy.Vec[T], pivot T) hwy.Mask[T] {
	data := v.Data()
	var bits uint64
	for i, x := range data {
		if i >= 64 {
			break
		}
		if ge(x, pivot) {
			bits |= 1 << uint(i)
		}
	}
	return hwy.MaskFromBits[T](bits)
}

// reduceMin and reduceMax mirror hwy.ReduceMin/hwy.ReduceMax, but compare
// through less (cmp.go) instead of the native `<`/`>` operators hwy.Reduce*
// use directly, for the same Float16 reason as geMask.
func reduceMin[T Numeric](v hwy.Vec[T]) T {
	data := v.Data()
	m := data[0]
	for _, x := range data[1:] {
		m = minT(m, x)
	}
	return m
}

func reduceMax[T Numeric](v hwy.Vec[T]) T {
	data := v.Data()
	m := data[0]
	for _, x := range data[1:] {
		m = maxT(m, x)
	}
	return m
}
