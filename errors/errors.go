/*
 * MIT License
 *
 * Copyright (c) 2022-2026 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNonTransferablePayload is returned when a message that cannot be copied
	// across a scheduler boundary (closures, channels, pointers...) is sent to a
	// process owned by another scheduler.
	ErrNonTransferablePayload = errors.New("payload cannot cross a scheduler boundary")

	// ErrStartupFailure is returned when the node cannot build its scheduler pool.
	// No node is usable after such failure.
	ErrStartupFailure = errors.New("node startup failed")

	// ErrProcessFault marks an unhandled failure that happened during a process turn.
	ErrProcessFault = errors.New("process fault")

	// ErrNodeStopped is returned when the node has been stopped
	ErrNodeStopped = errors.New("node is stopped")

	// ErrInvalidConfig is returned when the node configuration is not valid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStopTimeout is returned when the schedulers do not return before the
	// stop deadline. This happens when a turn never completes.
	ErrStopTimeout = errors.New("schedulers did not stop in time")
)

// NewErrNonTransferablePayload formats an ErrNonTransferablePayload with the target and the payload type
func NewErrNonTransferablePayload(target fmt.Stringer, message any) error {
	return fmt.Errorf("(to=%s, type=%T) %w", target, message, ErrNonTransferablePayload)
}

// NewErrStartupFailure wraps a base error with ErrStartupFailure
func NewErrStartupFailure(err error) error {
	return errors.Join(ErrStartupFailure, err)
}

// NewErrProcessFault wraps a base error with ErrProcessFault
func NewErrProcessFault(err error) error {
	return errors.Join(ErrProcessFault, err)
}

// NewErrInvalidConfig wraps the validation violations with ErrInvalidConfig
func NewErrInvalidConfig(err error) error {
	return errors.Join(ErrInvalidConfig, err)
}

// PanicError defines the panic error
// wrapping the underlying error
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError
func NewPanicError(err error) *PanicError {
	return &PanicError{err}
}

// Error implements the standard error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.err)
}

func (e *PanicError) Unwrap() error {
	return e.err
}
