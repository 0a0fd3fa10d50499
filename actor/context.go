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

import "github.com/tochemey/gonode/log"

// Context is handed to an Entry for the duration of a turn.
//
// Sends, spawns and exits issued through the Context originate from the
// process' scheduler, which decides whether a message is enqueued directly
// or copied across a boundary. A Context must not be used outside the turn
// nor shared with other goroutines.
type Context struct {
	node      *Node
	scheduler *scheduler
	process   *process
}

// Self returns the Pid of the running process
func (c *Context) Self() Pid {
	return c.process.pid
}

// Node returns the node hosting the process
func (c *Context) Node() *Node {
	return c.node
}

// Arg returns the argument given at spawn
func (c *Context) Arg() any {
	return c.process.arg
}

// Receive takes the next message of the mailbox.
// It returns false when the mailbox is empty.
func (c *Context) Receive() (any, bool) {
	return c.process.mailbox.dequeue()
}

// Pending returns the number of messages waiting in the mailbox
func (c *Context) Pending() int {
	return int(c.process.mailbox.len())
}

// Send delivers message to the given process.
//
// Sending a LocalOnly payload to a process on another scheduler fails
// with ErrNonTransferablePayload. Sending to an exited or unknown Pid
// is a silent no-op.
func (c *Context) Send(to Pid, message any) error {
	return c.node.send(c.scheduler.id, to, message)
}

// To returns a Pipe sending to the given process from this turn
func (c *Context) To(to Pid) *Pipe {
	return newPipe(to, c.Send)
}

// Spawn starts a new process. See Node.Spawn.
func (c *Context) Spawn(entry Entry, arg any) Pid {
	return c.node.Spawn(entry, arg)
}

// Exit marks the given process for exit.
//
// A process of the same scheduler is marked immediately: when it is the
// caller itself, the exit takes effect once the current turn returns.
func (c *Context) Exit(pid Pid) {
	if pid.scheduler == c.scheduler.id {
		c.scheduler.exitLocal(pid)
		return
	}
	c.node.Exit(pid)
}

// Register binds name to pid. See Node.Register.
func (c *Context) Register(name string, pid Pid) Pid {
	return c.node.Register(name, pid)
}

// WhereIs looks a name up. See Node.WhereIs.
func (c *Context) WhereIs(name string) (Pid, bool) {
	return c.node.WhereIs(name)
}

// Logger returns the logger of the process' scheduler
func (c *Context) Logger() log.Logger {
	return c.scheduler.logger
}
