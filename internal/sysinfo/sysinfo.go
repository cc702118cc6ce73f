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

// Package sysinfo reports the hardware the benchmark runs on: the number of
// execution units used as the default pool size, and the CPU features worth
// recording next to timing results.
package sysinfo

import (
	"runtime"
	"strconv"
	"strings"
)

// Info describes the host.
type Info struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	Features   []string
}

// Detect samples the current host.
func Detect() Info {
	return Info{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   cpuFeatures(),
	}
}

// HardwareThreads returns the number of execution units available to the
// process, which is the default parallelism for sorting pools.
func HardwareThreads() int {
	return runtime.GOMAXPROCS(0)
}

// String renders a one-line summary such as "linux/amd64 8 cpus [avx2 bmi2]".
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.GOOS)
	b.WriteString("/")
	b.WriteString(i.GOARCH)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(i.NumCPU))
	b.WriteString(" cpus [")
	b.WriteString(strings.Join(i.Features, " "))
	b.WriteString("]")
	return b.String()
}
