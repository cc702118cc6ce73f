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

package bench

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/simonis/Sorting/internal/logx"
)

// Warmup repeatedly sorts a fresh random array of size elements with both
// sorts and checks each result against slices.Sort. It returns the first
// mismatch as an error.
func Warmup(ctx context.Context, log logx.Logger, rounds, size int, seed int64, first, second SortFunc) error {
	rng := rand.New(rand.NewSource(seed))
	progress := rate.NewLimiter(rate.Every(time.Second), 1)

	ra := make([]int32, size)
	ref := make([]int32, size)
	other := make([]int32, size)
	start := time.Now()

	for round := range rounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range ra {
			ra[i] = int32(rng.Uint32())
		}
		copy(ref, ra)
		copy(other, ra)
		slices.Sort(ref)

		if err := first(ra); err != nil {
			return fmt.Errorf("warmup round %d: %w", round, err)
		}
		if !slices.Equal(ra, ref) {
			return fmt.Errorf("warmup round %d: first sort disagrees with reference", round)
		}
		if err := second(other); err != nil {
			return fmt.Errorf("warmup round %d: %w", round, err)
		}
		if !slices.Equal(other, ref) {
			return fmt.Errorf("warmup round %d: second sort disagrees with reference", round)
		}

		log.Trace("warmup.round", logx.Int("round", round))
		if progress.Allow() && round > 0 {
			log.Info("warmup.progress", logx.Int("round", round), logx.Int("rounds", rounds))
		}
	}

	log.Info("warmup.finished", logx.Int("rounds", rounds), logx.Int("size", size), logx.Duration("took", time.Since(start)))
	return nil
}
