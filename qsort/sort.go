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

package qsort

// Sort sorts s in place in ascending order.
func Sort[T Integer](s []T) {
	quicksort(s, 0, len(s)-1)
}

// SortRange sorts s[lo..hi] (inclusive) in place. A range with lo >= hi is
// already sorted. Bounds outside s panic with a *RangeError.
func SortRange[T Integer](s []T, lo, hi int) {
	if lo >= hi {
		return
	}
	if err := checkRange(len(s), lo, hi); err != nil {
		panic(err)
	}
	quicksort(s, lo, hi)
}

// quicksort recurses into the shorter side of each split and loops on the
// longer one, which keeps the stack depth logarithmic.
func quicksort[T Integer](s []T, lo, hi int) {
	for lo < hi {
		p := Partition(s, lo, hi)
		if p-lo < hi-p {
			quicksort(s, lo, p)
			lo = p + 1
		} else {
			quicksort(s, p+1, hi)
			hi = p
		}
	}
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T Integer](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
