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

package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// Assert returns a rule failing with message when cond is false
func Assert(cond bool, message string) Rule {
	return RuleFunc(func() error {
		if !cond {
			return errors.New(message)
		}
		return nil
	})
}

// Match returns a rule checking that the field value matches pattern
func Match(field string, pattern *regexp.Regexp, value string) Rule {
	return RuleFunc(func() error {
		if !pattern.MatchString(value) {
			return fmt.Errorf("the [%s] value %q does not match %s", field, value, pattern)
		}
		return nil
	})
}

// AtLeast returns a rule checking that the field value is not below lowest
func AtLeast(field string, lowest, value int) Rule {
	return RuleFunc(func() error {
		if value < lowest {
			return fmt.Errorf("the [%s] value %d is below %d", field, value, lowest)
		}
		return nil
	})
}

// OneOf returns a rule checking that the field value is accepted by parse
func OneOf[T any](field, value string, parse func(string) (T, error)) Rule {
	return RuleFunc(func() error {
		if _, err := parse(value); err != nil {
			return fmt.Errorf("the [%s] value %q is not supported: %w", field, value, err)
		}
		return nil
	})
}
