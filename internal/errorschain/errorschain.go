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

// Package errorschain runs a sequence of fallible steps and collects their
// errors. It is used by the teardown paths where every step must be tried.
package errorschain

import "go.uber.org/multierr"

// Chain collects errors in insertion order
type Chain struct {
	returnFirst bool
	errs        []error
}

// ChainOption configures a Chain at creation time.
type ChainOption func(*Chain)

// ReturnFirst makes the chain stop at the first error.
// Steps added after it are not run.
func ReturnFirst() ChainOption {
	return func(c *Chain) { c.returnFirst = true }
}

// ReturnAll makes the chain run every step and combine their errors
func ReturnAll() ChainOption {
	return func(c *Chain) { c.returnFirst = false }
}

// New creates a Chain
func New(opts ...ChainOption) *Chain {
	chain := &Chain{errs: make([]error, 0)}
	for _, opt := range opts {
		opt(chain)
	}
	return chain
}

// AddError records err. Nil errors are ignored.
func (c *Chain) AddError(err error) *Chain {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// AddStep runs step and records its error, unless the chain
// returns the first error and already holds one
func (c *Chain) AddStep(step func() error) *Chain {
	if c.halted() {
		return c
	}
	return c.AddError(step())
}

// AddStepIf is AddStep guarded by cond
func (c *Chain) AddStepIf(cond bool, step func() error) *Chain {
	if !cond {
		return c
	}
	return c.AddStep(step)
}

// Error returns the first recorded error or all of them combined,
// depending on the chain mode. It returns nil when no step failed.
func (c *Chain) Error() error {
	if len(c.errs) == 0 {
		return nil
	}
	if c.returnFirst {
		return c.errs[0]
	}
	return multierr.Combine(c.errs...)
}

func (c *Chain) halted() bool {
	return c.returnFirst && len(c.errs) > 0
}
