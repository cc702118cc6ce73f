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

// Package config holds the benchmark harness settings. Values are layered:
// built-in defaults, then an optional config file (YAML, TOML or JSON), then
// environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/simonis/Sorting/internal/sysinfo"
	"github.com/simonis/Sorting/qsort"
)

// Config is the full harness configuration.
type Config struct {
	// Parallel selects qsort.SortParallel over qsort.Sort for measurement.
	Parallel bool `json:"parallel" yaml:"parallel" toml:"parallel"`
	// Parallelism is the worker pool size; 0 means one per hardware thread.
	Parallelism int `json:"parallelism" yaml:"parallelism" toml:"parallelism"`
	// Threshold is the range length at or below which forking stops.
	Threshold int `json:"threshold" yaml:"threshold" toml:"threshold"`

	// Array sizes run from BaseSize to Iterations*BaseSize; Samples arrays
	// are sorted per size.
	BaseSize   int `json:"base_size" yaml:"base_size" toml:"base_size"`
	Iterations int `json:"iterations" yaml:"iterations" toml:"iterations"`
	Samples    int `json:"samples" yaml:"samples" toml:"samples"`

	Warmup WarmupConfig `json:"warmup" yaml:"warmup" toml:"warmup"`

	// Seed feeds the array generators; 0 picks a time-based seed.
	Seed  int64 `json:"seed" yaml:"seed" toml:"seed"`
	Debug bool  `json:"debug" yaml:"debug" toml:"debug"`

	Log     LogConfig     `json:"log" yaml:"log" toml:"log"`
	Results ResultsConfig `json:"results" yaml:"results" toml:"results"`
}

type WarmupConfig struct {
	Rounds int `json:"rounds" yaml:"rounds" toml:"rounds"`
	Size   int `json:"size" yaml:"size" toml:"size"`
}

type LogConfig struct {
	Level   string `json:"level" yaml:"level" toml:"level"`
	Console bool   `json:"console" yaml:"console" toml:"console"`
}

// ResultsConfig points at the SQLite history file. Empty disables history.
type ResultsConfig struct {
	Path string `json:"path" yaml:"path" toml:"path"`
}

// Default returns the settings the harness runs with when nothing is
// configured.
func Default() Config {
	return Config{
		Parallelism: sysinfo.HardwareThreads(),
		Threshold:   qsort.DefaultThreshold,
		BaseSize:    1024,
		Iterations:  16,
		Samples:     16,
		Warmup: WarmupConfig{
			Rounds: 10000,
			Size:   10000,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Workers resolves Parallelism to a concrete pool size.
func (c Config) Workers() int {
	if c.Parallelism <= 0 {
		return sysinfo.HardwareThreads()
	}
	return c.Parallelism
}

// Validate rejects settings the harness cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("parallelism must be >= 0, got %d", c.Parallelism))
	}
	if c.Threshold < 0 {
		errs = append(errs, fmt.Errorf("threshold must be >= 0, got %d", c.Threshold))
	}
	if c.BaseSize <= 0 {
		errs = append(errs, fmt.Errorf("base_size must be > 0, got %d", c.BaseSize))
	}
	if c.Iterations <= 0 {
		errs = append(errs, fmt.Errorf("iterations must be > 0, got %d", c.Iterations))
	}
	if c.Samples <= 0 {
		errs = append(errs, fmt.Errorf("samples must be > 0, got %d", c.Samples))
	}
	if c.Warmup.Rounds < 0 {
		errs = append(errs, fmt.Errorf("warmup.rounds must be >= 0, got %d", c.Warmup.Rounds))
	}
	if c.Warmup.Rounds > 0 && c.Warmup.Size <= 0 {
		errs = append(errs, fmt.Errorf("warmup.size must be > 0, got %d", c.Warmup.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
