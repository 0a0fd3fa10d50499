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

// Tracer observes every message sent on a node.
//
// Trace is called exactly once per send, on the sending goroutine, before
// the message is delivered. The returned value is the message actually
// delivered, so a tracer can rewrite payloads; returning message unchanged
// is the common case.
//
// Trace runs concurrently on every scheduler and must be safe for concurrent
// use. Reference payloads (pointers, maps, slices) are shared with the
// receiver when sender and receiver live on the same scheduler: a tracer
// that keeps them must not read them after Trace returns.
//
// A tracer that panics is removed from the node and the message is
// delivered untouched.
type Tracer interface {
	Trace(to Pid, message any) any
}

// TracerFunc adapts a function into a Tracer
type TracerFunc func(to Pid, message any) any

// enforce compilation error
var _ Tracer = TracerFunc(nil)

// Trace calls f(to, message)
func (f TracerFunc) Trace(to Pid, message any) any {
	return f(to, message)
}

// tracerSlot boxes the installed tracer so that it can be swapped and
// compared atomically as a whole
type tracerSlot struct {
	tracer Tracer
}
