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

package config

import "github.com/spf13/pflag"

// Flags binds command-line overrides for Config. Only flags the user
// actually set are applied, so they layer over file and environment values.
type Flags struct {
	fs  *pflag.FlagSet
	cfg Config
}

// BindFlags registers the harness flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()

	fs.BoolVar(&f.cfg.Parallel, "parallel", def.Parallel, "sort with the parallel scheduler")
	fs.IntVarP(&f.cfg.Parallelism, "parallelism", "p", def.Parallelism, "worker pool size (0 = hardware threads)")
	fs.IntVarP(&f.cfg.Threshold, "threshold", "t", def.Threshold, "range length at or below which forking stops")
	fs.IntVar(&f.cfg.BaseSize, "base-size", def.BaseSize, "smallest array size")
	fs.IntVar(&f.cfg.Iterations, "iterations", def.Iterations, "number of array sizes (base-size multiples)")
	fs.IntVar(&f.cfg.Samples, "samples", def.Samples, "arrays sorted per size")
	fs.IntVar(&f.cfg.Warmup.Rounds, "warmup", def.Warmup.Rounds, "warm-up rounds (0 disables)")
	fs.IntVar(&f.cfg.Warmup.Size, "warmup-size", def.Warmup.Size, "array size used during warm-up")
	fs.Int64Var(&f.cfg.Seed, "seed", def.Seed, "random seed (0 = time based)")
	fs.BoolVar(&f.cfg.Debug, "debug", def.Debug, "log every self-test case")
	fs.StringVar(&f.cfg.Log.Level, "log-level", def.Log.Level, "trace, debug, info, warn or error")
	fs.BoolVar(&f.cfg.Log.Console, "log-console", def.Log.Console, "human readable logs instead of JSON")
	fs.StringVar(&f.cfg.Results.Path, "results", def.Results.Path, "SQLite file recording each run")
	return f
}

// Apply copies every flag the user set onto cfg.
func (f *Flags) Apply(cfg *Config) {
	set := func(name string, apply func()) {
		if f.fs.Changed(name) {
			apply()
		}
	}
	set("parallel", func() { cfg.Parallel = f.cfg.Parallel })
	set("parallelism", func() { cfg.Parallelism = f.cfg.Parallelism })
	set("threshold", func() { cfg.Threshold = f.cfg.Threshold })
	set("base-size", func() { cfg.BaseSize = f.cfg.BaseSize })
	set("iterations", func() { cfg.Iterations = f.cfg.Iterations })
	set("samples", func() { cfg.Samples = f.cfg.Samples })
	set("warmup", func() { cfg.Warmup.Rounds = f.cfg.Warmup.Rounds })
	set("warmup-size", func() { cfg.Warmup.Size = f.cfg.Warmup.Size })
	set("seed", func() { cfg.Seed = f.cfg.Seed })
	set("debug", func() { cfg.Debug = f.cfg.Debug })
	set("log-level", func() { cfg.Log.Level = f.cfg.Log.Level })
	set("log-console", func() { cfg.Log.Console = f.cfg.Log.Console })
	set("results", func() { cfg.Results.Path = f.cfg.Results.Path })
}

// Load assembles the effective configuration: defaults, then the optional
// file, then the environment, then flags.
func Load(path string, flags *Flags) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if flags != nil {
		flags.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
