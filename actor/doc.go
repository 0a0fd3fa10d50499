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

// Package actor implements an in-process actor runtime.
//
// A Node owns a fixed pool of schedulers, one per CPU by default. Each
// scheduler runs on its own goroutine locked to an OS thread and executes
// the processes assigned to it one turn at a time, in round-robin order.
// Processes never share memory: they talk by sending messages to each
// other's mailbox through their Pid.
//
// Messages sent between processes of the same scheduler are enqueued
// directly and may be of any type. Messages crossing a scheduler boundary
// are copied on the way and must be Transferable (see Classify): sending
// a closure, a channel or a pointer to a process of another scheduler
// fails with ErrNonTransferablePayload. Messages from one sender to one
// receiver are always delivered in send order.
//
// Scheduling is cooperative inside a scheduler: an Entry that never returns
// starves every process of its scheduler. Turns should be short.
//
//	node, err := actor.NewNode()
//	if err != nil {
//		return err
//	}
//	defer node.Stop(ctx)
//
//	pid := node.Spawn(func(ctx *actor.Context, _ any) error {
//		for {
//			msg, ok := ctx.Receive()
//			if !ok {
//				return nil
//			}
//			ctx.Logger().Infof("received %v", msg)
//		}
//	}, nil)
//	_ = node.Send(pid, "hello")
package actor
