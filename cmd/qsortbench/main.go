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

// Command qsortbench checks and times the qsort package.
//
// Usage:
//
//	qsortbench                                  # serial timings
//	qsortbench --parallel -p 8 -t 512           # parallel, 8 workers, threshold 512
//	PARALLEL=true THRESHOLD=64 qsortbench       # same knobs from the environment
//	qsortbench --config bench.yaml --results runs.db
//	qsortbench check                            # self-test only
//	qsortbench history --results runs.db        # list recorded runs
//
// Every run starts with a self-test over fixed small inputs and a warm-up
// that checks each sort against slices.Sort. Timings are printed to stdout as
// "<size> <avg ms>" lines under a column head, ready for plotting; logs go to
// stderr.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
