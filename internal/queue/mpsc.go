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

package queue

import (
	"sync/atomic"
)

type node[T any] struct {
	value T
	next  atomic.Pointer[node[T]]
}

// Mpsc is an unbounded, lock-free Multi-Producer-Single-Consumer FIFO queue.
//
// Push may be called from any number of goroutines. Pop, Peek and IsEmpty must
// only be called from the single consumer goroutine. Values pushed by one
// producer are popped in the order that producer pushed them.
//
// reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type Mpsc[T any] struct {
	head   atomic.Pointer[node[T]]
	_      [56]byte
	tail   atomic.Pointer[node[T]]
	_      [56]byte
	length atomic.Int64
}

// NewMpsc creates an instance of Mpsc
func NewMpsc[T any]() *Mpsc[T] {
	stub := new(node[T])
	q := new(Mpsc[T])
	q.head.Store(stub)
	q.tail.Store(stub)
	return q
}

// Push appends the given value at the tail of the queue.
func (q *Mpsc[T]) Push(value T) {
	n := &node[T]{value: value}
	prev := q.tail.Swap(n)
	// the length is bumped before linking so that a consumer observing the
	// node never sees a negative length
	q.length.Add(1)
	prev.next.Store(n)
}

// Pop removes the value at the head of the queue.
// Returns false when the queue is empty.
func (q *Mpsc[T]) Pop() (T, bool) {
	var zero T
	head := q.head.Load()
	next := head.next.Load()
	if next == nil {
		return zero, false
	}

	q.head.Store(next)
	value := next.value
	next.value = zero
	q.length.Add(-1)
	return value, true
}

// Len returns the number of values in the queue. The value is a snapshot
// under concurrent producers.
func (q *Mpsc[T]) Len() int64 {
	return q.length.Load()
}

// IsEmpty returns true when the queue has no value ready to be popped
func (q *Mpsc[T]) IsEmpty() bool {
	return q.head.Load().next.Load() == nil
}
