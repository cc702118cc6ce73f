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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonis/Sorting/internal/logx"
	"github.com/simonis/Sorting/internal/selftest"
	"github.com/simonis/Sorting/workerpool"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the self-test over the fixed inputs with both schedulers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			log := newLogger(cfg, cmd.ErrOrStderr()).With(logx.String("cmd", "check"))

			pool := workerpool.New(cfg.Workers())
			defer pool.Close()

			rep, err := selftest.Runner{Pool: pool, Threshold: cfg.Threshold, Debug: cfg.Debug, Log: log}.RunBuiltin()
			if err != nil {
				log.Error("selftest.failed", logx.Err(err))
				return err
			}
			log.Info("selftest.finished", logx.Int("cases", rep.Cases), logx.Int("sorts", rep.Sorts))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# Test finished: %d cases, %d sorts\n", rep.Cases, rep.Sorts)
			return err
		},
	}
}
