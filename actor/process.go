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
)

// Entry is the behavior of a process.
//
// The scheduler calls it once per turn: the first turn right after spawn,
// then whenever the mailbox holds messages. The entry consumes messages with
// Context.Receive and returns; it must not block since the whole scheduler
// waits for it. Returning an error or panicking is a fault: the process
// exits immediately and its mailbox is discarded.
type Entry func(ctx *Context, arg any) error

// process is the scheduler-side record of a spawned process.
// Every field but the mailbox and the status is owned by the scheduler loop.
type process struct {
	pid     Pid
	entry   Entry
	arg     any
	mailbox *mailbox
	status  *atomic.Int32
	context *Context
	started bool
	turns   uint64
}

func newProcess(pid Pid, entry Entry, arg any, owner *scheduler) *process {
	p := &process{
		pid:     pid,
		entry:   entry,
		arg:     arg,
		mailbox: newMailbox(),
		status:  atomic.NewInt32(int32(Running)),
	}
	p.context = &Context{
		node:      owner.node,
		scheduler: owner,
		process:   p,
	}
	return p
}

func (p *process) getStatus() Status {
	return Status(p.status.Load())
}

func (p *process) setStatus(status Status) {
	p.status.Store(int32(status))
}

// runnable reports whether the process is due a turn
func (p *process) runnable() bool {
	if p.getStatus() != Running {
		return false
	}
	return !p.started || !p.mailbox.isEmpty()
}
