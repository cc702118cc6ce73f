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
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// ColumnHead labels the output column for plotting: "Serial" or the quoted
// thread count.
func ColumnHead(parallel bool, workers int) string {
	if !parallel {
		return "Serial"
	}
	return fmt.Sprintf("%q", fmt.Sprintf("%d Threads", workers))
}

// WriteRows prints one "<size> <avg ms>" line per row. Sizes use German
// digit grouping ("16.384") and averages are truncated to whole
// milliseconds.
func WriteRows(w io.Writer, head string, rows []Row) error {
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %d\n", humanize.FormatInteger("#.###,", r.Size), r.Avg().Milliseconds()); err != nil {
			return err
		}
	}
	return nil
}
