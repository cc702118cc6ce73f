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

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/simonis/Sorting/internal/bench"
	"github.com/simonis/Sorting/internal/results"
)

func newHistoryCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded with --results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Results.Path == "" {
				return errors.New("history: no results database configured (use --results or RESULTS_DB)")
			}

			st, err := results.Open(cmd.Context(), cfg.Results.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tMODE\tWORKERS\tTHRESHOLD\tSIZES\tSLOWEST\tTOOK")
			for _, r := range runs {
				sum := bench.Summarize(r.Rows)
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
					r.ID,
					humanize.Time(r.Started),
					r.Mode(),
					r.Workers,
					r.Threshold,
					sum.Sizes,
					humanize.FormatInteger("#.###,", sum.Slowest.Size),
					r.Took.Round(time.Millisecond),
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of runs to list")
	return cmd
}
