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

// Package validation checks configuration fields and reports the
// violations of a whole configuration in one error.
package validation

import "go.uber.org/multierr"

// Rule is a single check on a configuration value
type Rule interface {
	Validate() error
}

// RuleFunc adapts a function into a Rule
type RuleFunc func() error

var _ Rule = RuleFunc(nil)

// Validate calls f()
func (f RuleFunc) Validate() error {
	return f()
}

// Chain runs rules in insertion order
type Chain struct {
	failFast bool
	rules    []Rule
}

// ChainOption configures a Chain at creation time.
type ChainOption func(*Chain)

// FailFast stops at the first violation
func FailFast() ChainOption {
	return func(c *Chain) { c.failFast = true }
}

// AllErrors reports every violation. This is the default.
func AllErrors() ChainOption {
	return func(c *Chain) { c.failFast = false }
}

// New creates an empty Chain
func New(opts ...ChainOption) *Chain {
	chain := &Chain{rules: make([]Rule, 0)}
	for _, opt := range opts {
		opt(chain)
	}
	return chain
}

// Add appends rules to the chain
func (c *Chain) Add(rules ...Rule) *Chain {
	c.rules = append(c.rules, rules...)
	return c
}

// Assert appends a rule failing with message when cond is false
func (c *Chain) Assert(cond bool, message string) *Chain {
	return c.Add(Assert(cond, message))
}

// Validate runs the rules. It returns nil when none is violated.
// The chain can be validated several times.
func (c *Chain) Validate() error {
	var violations error
	for _, rule := range c.rules {
		violation := rule.Validate()
		if violation == nil {
			continue
		}
		if c.failFast {
			return violation
		}
		violations = multierr.Append(violations, violation)
	}
	return violations
}
