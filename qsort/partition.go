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

// Partition rearranges s[lo..hi] (inclusive) around the value found at the
// midpoint index and returns the split index p such that:
//   - s[lo..p] <= pivot
//   - s[p+1..hi] >= pivot
//   - lo <= p < hi whenever lo < hi
//
// The pivot value is read before any element moves. lo <= hi must hold and
// both must index s; Partition does not check.
func Partition[T Integer](s []T, lo, hi int) int {
	pivot := s[lo+(hi-lo)/2]

	i, j := lo, hi
	for i <= j {
		for s[i] < pivot {
			i++
		}
		for s[j] > pivot {
			j--
		}
		if i <= j {
			s[i], s[j] = s[j], s[i]
			i++
			j--
		}
	}
	return i - 1
}
