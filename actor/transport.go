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

import "github.com/tochemey/gonode/internal/queue"

type envelopeKind int

const (
	// deliverEnvelope carries a message copied across a scheduler boundary
	deliverEnvelope envelopeKind = iota
	// admitEnvelope hands a freshly spawned process to its scheduler
	admitEnvelope
	// exitEnvelope requests the exit of a process
	exitEnvelope
)

type envelope struct {
	kind    envelopeKind
	to      Pid
	message any
	process *process
}

// transport is the inbound channel of a scheduler.
//
// Envelopes are kept in FIFO order. Any goroutine may post; only the owning
// scheduler loop takes them. The wake channel holds at most one pending
// signal so posting never blocks.
type transport struct {
	queue *queue.Mpsc[*envelope]
	wake  chan struct{}
}

func newTransport() *transport {
	return &transport{
		queue: queue.NewMpsc[*envelope](),
		wake:  make(chan struct{}, 1),
	}
}

// post appends the envelope and wakes the scheduler up
func (t *transport) post(e *envelope) {
	t.queue.Push(e)
	t.notify()
}

// notify wakes the scheduler up when it is idle
func (t *transport) notify() {
	select {
	case t.wake <- struct{}{}:
	default:
	}
}

func (t *transport) next() (*envelope, bool) {
	return t.queue.Pop()
}

func (t *transport) pending() int64 {
	return t.queue.Len()
}

func (t *transport) signal() <-chan struct{} {
	return t.wake
}
