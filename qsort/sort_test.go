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
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	var empty []int32
	Sort(empty)
	if len(empty) != 0 {
		t.Errorf("Sort(empty) should not modify empty slice")
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	data := []int32{5}
	Sort(data)
	if data[0] != 5 {
		t.Errorf("Sort([5]) = %v, want [5]", data)
	}
}

func TestSortThree(t *testing.T) {
	data := []int{3, 1, 2}
	Sort(data)
	if diff := cmp.Diff([]int{1, 2, 3}, data); diff != "" {
		t.Errorf("Sort([3 1 2]) mismatch (-want +got):\n%s", diff)
	}
}

// TestSortAllSame tests sorting with all identical elements
func TestSortAllSame(t *testing.T) {
	data := []int{2, 2, 2, 2}
	Sort(data)
	if diff := cmp.Diff([]int{2, 2, 2, 2}, data); diff != "" {
		t.Errorf("Sort(allSame) mismatch (-want +got):\n%s", diff)
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	data := []int64{8, 7, 6, 5, 4, 3, 2, 1}
	Sort(data)
	if !IsSorted(data) {
		t.Errorf("Sort(reverse) produced unsorted result: %v", data)
	}
}

// TestSortDuplicates tests sorting with duplicate elements
func TestSortDuplicates(t *testing.T) {
	data := []int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	Sort(data)
	if !IsSorted(data) {
		t.Errorf("Sort(duplicates) produced unsorted result: %v", data)
	}
}

func TestSortExtremes(t *testing.T) {
	data := []int8{127, -128, 0, -1, 127, -128, 1}
	Sort(data)
	want := []int8{-128, -128, -1, 0, 1, 127, 127}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Sort(extremes) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortUnsigned(t *testing.T) {
	data := []uint16{65535, 0, 1, 65535, 2}
	Sort(data)
	if diff := cmp.Diff([]uint16{0, 1, 2, 65535, 65535}, data); diff != "" {
		t.Errorf("Sort(uint16) mismatch (-want +got):\n%s", diff)
	}
}

// TestSortRandom compares against slices.Sort for a range of sizes and
// value spreads (narrow spreads force many duplicates).
func TestSortRandom(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256, 1000, 4096}
	for _, spread := range []int64{2, 16, 1 << 40} {
		for _, n := range sizes {
			data := make([]int64, n)
			for i := range data {
				data[i] = rand.Int63n(spread) - spread/2
			}
			want := slices.Clone(data)
			slices.Sort(want)

			Sort(data)
			if !slices.Equal(data, want) {
				t.Errorf("Sort(random int64, n=%d, spread=%d) differs from slices.Sort", n, spread)
			}
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	data := make([]int32, 2000)
	for i := range data {
		data[i] = rand.Int31n(500)
	}
	Sort(data)
	once := slices.Clone(data)
	Sort(data)
	if diff := cmp.Diff(once, data); diff != "" {
		t.Errorf("sorting sorted input changed it (-first +second):\n%s", diff)
	}
}

// TestSortOrganPipe feeds the ascending-then-descending shape that hurts
// midpoint pivots.
func TestSortOrganPipe(t *testing.T) {
	n := 10000
	data := make([]int, n)
	for i := range n / 2 {
		data[i] = i
		data[n-1-i] = i
	}
	Sort(data)
	if !IsSorted(data) {
		t.Error("Sort(organ pipe) produced unsorted result")
	}
}

func TestSortRange(t *testing.T) {
	data := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	SortRange(data, 2, 6)
	want := []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("SortRange(2, 6) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortRangeTrivial(t *testing.T) {
	data := []int{3, 2, 1}
	SortRange(data, 1, 1)
	SortRange(data, 2, 0)
	SortRange(data, 5, 5) // lo >= hi is never checked against len
	if diff := cmp.Diff([]int{3, 2, 1}, data); diff != "" {
		t.Errorf("trivial ranges modified data (-want +got):\n%s", diff)
	}
}

func TestSortRangeOutOfBounds(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		var re *RangeError
		if !ok || !errors.As(err, &re) {
			t.Fatalf("recovered %v, want *RangeError", r)
		}
		if re.Lo != 0 || re.Hi != 3 || re.Len != 3 {
			t.Errorf("RangeError = %+v", re)
		}
	}()
	SortRange([]int{3, 2, 1}, 0, 3)
	t.Error("SortRange past the end should panic")
}

func TestIsSorted(t *testing.T) {
	if !IsSorted([]int{}) || !IsSorted([]int{1}) || !IsSorted([]int{1, 1, 2}) {
		t.Error("IsSorted() = false for sorted input")
	}
	if IsSorted([]int{1, 3, 2}) {
		t.Error("IsSorted([1 3 2]) = true")
	}
}
