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

// Pipe chains sends to one process:
//
//	err := node.To(pid).Send(m1).Send(m2).Send(m3).Err()
//
// Messages are sent in order. The first failure stops the chain and is
// reported by Err; the following sends are skipped.
type Pipe struct {
	to   Pid
	send func(to Pid, message any) error
	err  error
}

func newPipe(to Pid, send func(Pid, any) error) *Pipe {
	return &Pipe{to: to, send: send}
}

// Send sends message to the pipe target unless a previous send failed
func (p *Pipe) Send(message any) *Pipe {
	if p.err == nil {
		p.err = p.send(p.to, message)
	}
	return p
}

// Err returns the first send failure
func (p *Pipe) Err() error {
	return p.err
}
