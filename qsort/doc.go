// Package qsort sorts slices of fixed-width integers in place with a
// Hoare-partition quicksort, either serially or forked across a
// workerpool.Pool.
//
// # Algorithm
//
// Every range is partitioned around the value at its midpoint index,
// captured before any swap. Two cursors close in from both ends, swapping
// out-of-place pairs until they cross; the element left of the crossing
// point is the split index. The split always satisfies lo <= split < hi, so
// even ranges of identical values shrink on every level.
//
// # Parallel sorting
//
// SortParallel partitions ranges longer than a threshold and forks both
// halves as tasks on a pool, joining them before returning. Each task owns a
// disjoint sub-slice of the caller's storage; no locking is involved. Ranges
// at or below the threshold are sorted inline with the serial algorithm.
//
// # Example Usage
//
//	pool := workerpool.New(runtime.NumCPU())
//	defer pool.Close()
//
//	data := []int32{5, 3, 9, 1}
//	if err := qsort.SortParallel(data, pool, qsort.DefaultThreshold); err != nil {
//	    return err
//	}
//
// The order of equal elements is unspecified.
package qsort
