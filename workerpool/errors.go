// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
)

// ErrClosed is reported by Group.Wait when a task was forked on a pool that
// had already been closed.
var ErrClosed = errors.New("workerpool: pool closed")

// PanicError carries a panic recovered from a pool task back to the
// goroutine that joins it.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: task panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, such as a
// runtime bounds fault.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
