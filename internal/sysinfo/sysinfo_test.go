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

package sysinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	info := Detect()
	assert.Equal(t, runtime.GOOS, info.GOOS)
	assert.Equal(t, runtime.GOARCH, info.GOARCH)
	assert.Positive(t, info.NumCPU)
	assert.Positive(t, HardwareThreads())
	assert.True(t, strings.HasPrefix(info.String(), runtime.GOOS+"/"+runtime.GOARCH+" "))
}

func TestString(t *testing.T) {
	info := Info{GOOS: "linux", GOARCH: "amd64", NumCPU: 16, Features: []string{"avx2", "bmi2"}}
	assert.Equal(t, "linux/amd64 16 cpus [avx2 bmi2]", info.String())
}
