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

package actor

import (
	"go.uber.org/atomic"

	"github.com/tochemey/gonode/internal/queue"
)

// mailbox is the unbounded FIFO inbox of a process.
// Any goroutine can enqueue; only the owning scheduler dequeues.
type mailbox struct {
	queue    *queue.Mpsc[any]
	disposed *atomic.Bool
}

func newMailbox() *mailbox {
	return &mailbox{
		queue:    queue.NewMpsc[any](),
		disposed: atomic.NewBool(false),
	}
}

// enqueue appends message at the tail of the mailbox.
// It returns false when the mailbox has been disposed.
func (m *mailbox) enqueue(message any) bool {
	if m.disposed.Load() {
		return false
	}
	m.queue.Push(message)
	return true
}

// dequeue takes the message at the head of the mailbox
func (m *mailbox) dequeue() (any, bool) {
	return m.queue.Pop()
}

func (m *mailbox) len() int64 {
	return m.queue.Len()
}

func (m *mailbox) isEmpty() bool {
	return m.queue.IsEmpty()
}

// dispose refuses further messages and releases the buffered ones.
// It must be called by the consumer.
func (m *mailbox) dispose() {
	m.disposed.Store(true)
	for {
		if _, ok := m.queue.Pop(); !ok {
			return
		}
	}
}
