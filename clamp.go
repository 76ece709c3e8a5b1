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

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi]. It is a small convenience exported
// alongside Sort/Select/PartialSort for callers that need to bound an
// index or count derived from user input (cmd/vqsortbench's flag parsing
// uses it this way) before handing it to Select/PartialSort, which only
// validate k and n against len(data) and not against each other's
// intended relationship.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
