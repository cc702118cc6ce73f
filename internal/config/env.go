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

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvParallel    = "PARALLEL"
	EnvParallelism = "PARALLELISM"
	EnvThreshold   = "THRESHOLD"
	EnvBaseSize    = "BASE_SIZE"
	EnvIterations  = "ITERATIONS"
	EnvSamples     = "SAMPLES"
	EnvWarmup      = "WARMUP"
	EnvSeed        = "SEED"
	EnvDebug       = "DEBUG"
	EnvLogLevel    = "LOG_LEVEL"
	EnvResults     = "RESULTS_DB"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with any variables set in the process environment.
func ApplyEnv(cfg *Config) error {
	return ApplyLookup(cfg, os.LookupEnv)
}

// ApplyLookup overrides cfg with the variables lookup reports as set.
func ApplyLookup(cfg *Config, lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvParallel, &cfg.Parallel},
		{EnvDebug, &cfg.Debug},
	}
	for _, b := range bools {
		if v, ok := get(b.key); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: invalid bool %q", b.key, v)
			}
			*b.dst = parsed
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvParallelism, &cfg.Parallelism},
		{EnvThreshold, &cfg.Threshold},
		{EnvBaseSize, &cfg.BaseSize},
		{EnvIterations, &cfg.Iterations},
		{EnvSamples, &cfg.Samples},
		{EnvWarmup, &cfg.Warmup.Rounds},
	}
	for _, n := range ints {
		if v, ok := get(n.key); ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q", n.key, v)
			}
			*n.dst = parsed
		}
	}

	if v, ok := get(EnvSeed); ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvSeed, v)
		}
		cfg.Seed = parsed
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := get(EnvResults); ok {
		cfg.Results.Path = v
	}
	return nil
}
