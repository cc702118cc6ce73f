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

package qsort

import (
	"errors"
	"fmt"
)

// ErrNilPool is returned by the parallel sorts when no pool is supplied.
var ErrNilPool = errors.New("qsort: nil worker pool")

// RangeError reports sort bounds that do not fit the slice.
type RangeError struct {
	Lo, Hi int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("qsort: range [%d, %d] out of bounds for length %d", e.Lo, e.Hi, e.Len)
}

func checkRange(n, lo, hi int) error {
	if lo < 0 || hi >= n {
		return &RangeError{Lo: lo, Hi: hi, Len: n}
	}
	return nil
}
