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

// Package selftest checks both sort schedulers against a fixed set of small
// inputs before any timing is trusted.
package selftest

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/simonis/Sorting/internal/logx"
	"github.com/simonis/Sorting/qsort"
	"github.com/simonis/Sorting/workerpool"
)

//go:embed cases.txtar
var casesArchive []byte

// Case is one fixed input.
type Case struct {
	Name  string
	Input []int32
}

// Cases returns the built-in inputs.
func Cases() ([]Case, error) {
	return Parse(casesArchive)
}

// Parse reads cases from a txtar archive: each file is a group, each
// non-blank line a space-separated input named <group>/<line number>.
func Parse(data []byte) ([]Case, error) {
	ar := txtar.Parse(data)
	var cases []Case
	for _, f := range ar.Files {
		for i, line := range strings.Split(string(f.Data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			name := f.Name + "/" + strconv.Itoa(i+1)
			var in []int32
			for _, field := range strings.Fields(line) {
				v, err := strconv.ParseInt(field, 10, 32)
				if err != nil {
					return nil, fmt.Errorf("selftest: case %s: %w", name, err)
				}
				in = append(in, int32(v))
			}
			cases = append(cases, Case{Name: name, Input: in})
		}
	}
	return cases, nil
}

// MismatchError reports a case a scheduler sorted wrongly.
type MismatchError struct {
	Case  string
	Mode  string
	Input []int32
	Got   []int32
	Want  []int32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("selftest: %s sort of %s %v gave %v, want %v", e.Mode, e.Case, e.Input, e.Got, e.Want)
}

// Runner sorts every case serially and, when Pool is set, in parallel.
type Runner struct {
	Pool      *workerpool.Pool
	Threshold int
	Debug     bool
	Log       logx.Logger
}

// Report summarises a successful run.
type Report struct {
	Cases int
	Sorts int
}

// Run checks cs, stopping at the first failure.
func (r Runner) Run(cs []Case) (Report, error) {
	var rep Report
	for _, c := range cs {
		want := slices.Clone(c.Input)
		slices.Sort(want)

		got := slices.Clone(c.Input)
		qsort.Sort(got)
		if r.Debug && r.Log.Enabled(logx.LevelDebug) {
			r.Log.Debug("selftest.case", logx.String("case", c.Name), logx.Any("in", c.Input), logx.Any("out", got))
		}
		if !slices.Equal(got, want) {
			return rep, &MismatchError{Case: c.Name, Mode: "serial", Input: c.Input, Got: got, Want: want}
		}
		rep.Sorts++

		if r.Pool != nil {
			got = slices.Clone(c.Input)
			if err := qsort.SortParallel(got, r.Pool, r.Threshold); err != nil {
				return rep, fmt.Errorf("selftest: parallel sort of %s: %w", c.Name, err)
			}
			if !slices.Equal(got, want) {
				return rep, &MismatchError{Case: c.Name, Mode: "parallel", Input: c.Input, Got: got, Want: want}
			}
			rep.Sorts++
		}
		rep.Cases++
	}
	return rep, nil
}

// RunBuiltin runs the embedded cases.
func (r Runner) RunBuiltin() (Report, error) {
	cs, err := Cases()
	if err != nil {
		return Report{}, err
	}
	return r.Run(cs)
}
