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

import (
	"math/rand"
	"slices"
	"testing"
)

// checkPartition verifies the split bounds and the <=/>= halves around pivot.
func checkPartition(t *testing.T, s []int, lo, hi, p, pivot int) {
	t.Helper()
	if p < lo || p >= hi {
		t.Fatalf("Partition(%d, %d) = %d, want lo <= p < hi", lo, hi, p)
	}
	for i := lo; i <= p; i++ {
		if s[i] > pivot {
			t.Fatalf("s[%d] = %d > pivot %d left of split %d: %v", i, s[i], pivot, p, s)
		}
	}
	for i := p + 1; i <= hi; i++ {
		if s[i] < pivot {
			t.Fatalf("s[%d] = %d < pivot %d right of split %d: %v", i, s[i], pivot, p, s)
		}
	}
}

// nextTuple advances digits as a base-k counter and reports false on wrap.
func nextTuple(digits []int, k int) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < k {
			return true
		}
		digits[i] = 0
	}
	return false
}

// TestPartitionExhaustive partitions every sequence of length 2..7 over the
// values {0, 1, 2}, covering all-equal and heavy-duplicate ranges.
func TestPartitionExhaustive(t *testing.T) {
	for n := 2; n <= 7; n++ {
		digits := make([]int, n)
		for {
			s := slices.Clone(digits)
			pivot := s[(n-1)/2]
			p := Partition(s, 0, n-1)
			checkPartition(t, s, 0, n-1, p, pivot)

			if !nextTuple(digits, 3) {
				break
			}
		}
	}
}

// TestPartitionSubrange checks that only s[lo..hi] is touched.
func TestPartitionSubrange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 500 {
		n := 2 + rng.Intn(64)
		s := make([]int, n)
		for i := range s {
			s[i] = rng.Intn(16)
		}
		lo := rng.Intn(n - 1)
		hi := lo + 1 + rng.Intn(n-lo-1)
		orig := slices.Clone(s)
		pivot := s[(lo+hi)/2]

		p := Partition(s, lo, hi)
		checkPartition(t, s, lo, hi, p, pivot)

		if !slices.Equal(s[:lo], orig[:lo]) || !slices.Equal(s[hi+1:], orig[hi+1:]) {
			t.Fatalf("Partition(%d, %d) modified elements outside the range", lo, hi)
		}
		got, want := slices.Clone(s[lo:hi+1]), slices.Clone(orig[lo:hi+1])
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatalf("Partition(%d, %d) is not a permutation of the range", lo, hi)
		}
	}
}

// TestPartitionAllEqual exercises the progress guarantee on large flat input.
func TestPartitionAllEqual(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 100, 1001} {
		s := make([]int, n)
		for i := range s {
			s[i] = 7
		}
		p := Partition(s, 0, n-1)
		checkPartition(t, s, 0, n-1, p, 7)
	}
}

func TestPartitionPivotIsMidpointValue(t *testing.T) {
	// Midpoint of [0, 4] is index 2 (value 9), not a median of the ends.
	s := []int{1, 5, 9, 2, 8}
	p := Partition(s, 0, 4)
	checkPartition(t, s, 0, 4, p, 9)
}

func BenchmarkPartition(b *testing.B) {
	ref := make([]int64, 100000)
	for i := range ref {
		ref[i] = rand.Int63()
	}
	data := make([]int64, len(ref))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Partition(data, 0, len(data)-1)
	}
}
