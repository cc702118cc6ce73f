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
	"time"

	"github.com/samber/lo"

	"github.com/simonis/Sorting/internal/logx"
)

// Row is the measurement for one array size.
type Row struct {
	Size    int
	Samples int
	Total   time.Duration
}

// Avg is the mean time to sort one array of Size elements.
func (r Row) Avg() time.Duration {
	if r.Samples == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Samples)
}

// Measure sorts every array with sortFn, timing each size as a batch. The
// arrays are sorted in place.
func Measure(ctx context.Context, log logx.Logger, arrays [][][]int32, sortFn SortFunc) ([]Row, error) {
	rows := make([]Row, 0, len(arrays))
	for _, samples := range arrays {
		if len(samples) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rows, err
		}

		start := time.Now()
		for _, a := range samples {
			if err := sortFn(a); err != nil {
				return rows, fmt.Errorf("measure size %d: %w", len(a), err)
			}
		}
		row := Row{Size: len(samples[0]), Samples: len(samples), Total: time.Since(start)}
		rows = append(rows, row)
		log.Debug("measure.row", logx.Int("size", row.Size), logx.Duration("avg", row.Avg()))
	}
	return rows, nil
}

// Summary aggregates a measurement.
type Summary struct {
	Sizes    int
	Elements int
	Total    time.Duration
	Slowest  Row
}

// Summarize folds rows into a Summary.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	return Summary{
		Sizes:    len(rows),
		Elements: lo.SumBy(rows, func(r Row) int { return r.Size * r.Samples }),
		Total:    lo.SumBy(rows, func(r Row) time.Duration { return r.Total }),
		Slowest:  lo.MaxBy(rows, func(a, b Row) bool { return a.Avg() > b.Avg() }),
	}
}
