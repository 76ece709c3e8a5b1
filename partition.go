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

// partition reorders data in place so that every element < pivot comes
// before every element >= pivot, and returns the boundary index (the
// count of elements < pivot). It also reports the smallest and largest
// elements seen, which lets the caller prune a recursive call when the
// pivot turns out to equal the range's extremum.
//
// The algorithm runs in two phases:
//
//  1. A scalar two-pointer prologue (classic Hoare swap) consumes just
//     enough elements from the left so the remaining range length is a
//     multiple of hwy.MaxLanes[T](). This also serves as the whole-range
//     partitioner when the range is shorter than one vector.
//  2. A vectorized main loop that first holds back the leftmost vector
//     (and the rightmost one, when the range spans at least two) to open
//     free slots, then each iteration loads one full vector from whichever
//     side (left-unread or right-unread) has less spare write capacity,
//     and finally flushes the held-back vectors the same way. It splits each vector into a "< pivot" and a ">= pivot" run via
//     two independent hwy.Compress calls, and writes each run to its
//     destination. The capacity comparison is what keeps every store
//     confined to already-read territory; picking the wrong side can
//     make the later ">= pivot" store land on data the loop hasn't read
//     yet, so it is re-evaluated on every vector rather than batched.
//
// The mask and reduction here go through geMask/reduceMin/reduceMax
// (vecops.go) rather than hwy.GreaterEqual/hwy.ReduceMin/hwy.ReduceMax
// directly, since those compare lanes with the native operators and get
// hwy.Float16's ordering wrong.
func partition[T Numeric](data []T, pivot T) (boundary int, smallest, biggest T) {
	n := len(data)
	sm, big := typeMax[T](), typeMin[T]()
	if n == 0 {
		return 0, sm, big
	}

	lo, hi := 0, n
	for (hi-lo)%hwyLanes[T]() != 0 {
		x := data[lo]
		sm, big = minT(sm, x), maxT(big, x)
		if ge(x, pivot) {
			hi--
			data[lo], data[hi] = data[hi], data[lo]
		} else {
			lo++
		}
	}

	lanes := hwyLanes[T]()
	if hi == lo {
		return lo, sm, big
	}

	writeL := lo
	rdL, rdR := lo, hi
	// unpartitioned counts the unread elements plus the held-back vectors.
	held := []hwy.Vec[T]{hwy.Load(data[rdL:])}
	rdL += lanes
	if rdR-rdL >= lanes {
		rdR -= lanes
		held = append(held, hwy.Load(data[rdR:]))
	}
	unpartitioned := hi - lo

	smVec := hwy.Set(typeMax[T]())
	bigVec := hwy.Set(typeMin[T]())

	for unpartitioned > 0 {
		var v hwy.Vec[T]
		capRight := (writeL + unpartitioned) - rdR
		capLeft := rdL - writeL
		if rdL == rdR {
			v, held = held[0], held[1:]
		} else if capRight < capLeft {
			rdR -= lanes
			v = hwy.Load(data[rdR:])
		} else {
			v = hwy.Load(data[rdL:])
			rdL += lanes
		}

		smVec = hwy.Min(smVec, v)
		bigVec = hwy.Max(bigVec, v)

		maskGE := geMask(v, pivot)
		maskLT := hwy.MaskNot(maskGE)

		ltCompressed, numLess := hwy.Compress(v, maskLT)
		geCompressed, numGE := hwy.Compress(v, maskGE)

		destGE := writeL + unpartitioned - numGE
		copy(data[writeL:], ltCompressed.Data()[:numLess])
		copy(data[destGE:], geCompressed.Data()[:numGE])

		writeL += numLess
		unpartitioned -= lanes
	}

	sm = minT(sm, reduceMin(smVec))
	big = maxT(big, reduceMax(bigVec))
	return writeL, sm, big
}

// hwyLanes is a thin wrapper over hwy.MaxLanes[T] that never returns 0,
// so range-length-modulo-lanes arithmetic in the prologue above is always
// well defined.
func hwyLanes[T Numeric]() int {
	lanes := hwy.MaxLanes[T]()
	if lanes < 1 {
		return 1
	}
	return lanes
}
