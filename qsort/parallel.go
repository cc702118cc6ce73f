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
	"fmt"

	"github.com/simonis/Sorting/workerpool"
)

// SortParallel sorts s in place, forking sub-ranges longer than threshold
// onto pool. It blocks until the whole slice is sorted.
//
// A fault in any forked task (a panic, or a pool closed mid-run) is returned
// once every task of the sort has finished; s is left in an unspecified
// order in that case.
func SortParallel[T Integer](s []T, pool *workerpool.Pool, threshold int) error {
	return SortRangeParallel(s, 0, len(s)-1, pool, threshold)
}

// SortRangeParallel is SortParallel restricted to s[lo..hi] (inclusive).
// Bounds outside s are reported as a *RangeError before any work starts.
func SortRangeParallel[T Integer](s []T, lo, hi int, pool *workerpool.Pool, threshold int) error {
	if pool == nil {
		return ErrNilPool
	}
	if lo >= hi {
		return nil
	}
	if err := checkRange(len(s), lo, hi); err != nil {
		return err
	}
	threshold = max(threshold, 0)

	sub := s[lo : hi+1 : hi+1]
	return runRoot(pool, lo, hi, func() error {
		return sortTask(sub, pool, threshold)
	})
}

// runRoot forks the root task of a sort of [lo, hi] and joins it, tagging
// any fault with the range.
func runRoot(pool *workerpool.Pool, lo, hi int, root func() error) error {
	g := pool.Group()
	g.Go(root)
	if err := g.Wait(); err != nil {
		return fmt.Errorf("qsort: parallel sort of [%d, %d]: %w", lo, hi, err)
	}
	return nil
}

// sortTask sorts the sub-slice it owns. Children receive the two halves as
// capacity-limited sub-slices, so no task can reach its sibling's elements.
func sortTask[T Integer](s []T, pool *workerpool.Pool, threshold int) error {
	hi := len(s) - 1
	if hi <= threshold {
		quicksort(s, 0, hi)
		return nil
	}

	p := Partition(s, 0, hi)
	left, right := s[:p+1:p+1], s[p+1:]

	g := pool.Group()
	g.Go(func() error { return sortTask(left, pool, threshold) })
	g.Go(func() error { return sortTask(right, pool, threshold) })
	return g.Wait()
}
