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

// Package bench is the timing harness around qsort: it generates random
// arrays, warms the sorts up against a reference, and measures the average
// time per array for a series of sizes.
package bench

import (
	"math/rand"

	"github.com/simonis/Sorting/qsort"
	"github.com/simonis/Sorting/workerpool"
)

// SortFunc sorts s in place.
type SortFunc func(s []int32) error

// Serial wraps qsort.Sort.
func Serial() SortFunc {
	return func(s []int32) error {
		qsort.Sort(s)
		return nil
	}
}

// Parallel wraps qsort.SortParallel on pool.
func Parallel(pool *workerpool.Pool, threshold int) SortFunc {
	return func(s []int32) error {
		return qsort.SortParallel(s, pool, threshold)
	}
}

// Setup sizes the generated arrays: Iterations sizes of BaseSize*(i+1)
// elements, Samples arrays each.
type Setup struct {
	BaseSize   int
	Iterations int
	Samples    int
	Seed       int64
}

// Generate fills Iterations x Samples random arrays. Each array is seeded
// from Seed and its position, so the data does not depend on how the pool
// splits the work.
func Generate(pool *workerpool.Pool, s Setup) [][][]int32 {
	arrays := make([][][]int32, s.Iterations)
	for i := range arrays {
		arrays[i] = make([][]int32, s.Samples)
		for j := range arrays[i] {
			arrays[i][j] = make([]int32, s.BaseSize*(i+1))
		}
	}

	fill := func(start, end int) {
		for k := start; k < end; k++ {
			i, j := k/s.Samples, k%s.Samples
			fillRandom(arrays[i][j], s.Seed+int64(k))
		}
	}
	if pool == nil {
		fill(0, s.Iterations*s.Samples)
	} else {
		pool.ParallelFor(s.Iterations*s.Samples, fill)
	}
	return arrays
}

func fillRandom(dst []int32, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range dst {
		dst[i] = int32(rng.Uint32())
	}
}
