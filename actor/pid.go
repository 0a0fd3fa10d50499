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

import "strconv"

// NoPid is the zero Pid. It never addresses a process.
var NoPid = Pid{}

// Pid identifies a process on a node.
//
// A Pid is a plain comparable value: it can be copied, compared with ==,
// used as a map key and sent across schedulers. It remains a valid value
// after the process it names has exited; messages sent to it are dropped.
type Pid struct {
	scheduler int
	sequence  uint64
}

func newPid(scheduler int, sequence uint64) Pid {
	return Pid{scheduler: scheduler, sequence: sequence}
}

// SchedulerID returns the id of the scheduler owning the process
func (p Pid) SchedulerID() int {
	return p.scheduler
}

// Sequence returns the node-wide spawn sequence of the process
func (p Pid) Sequence() uint64 {
	return p.sequence
}

// IsZero reports whether the Pid is NoPid
func (p Pid) IsZero() bool {
	return p.sequence == 0
}

// Equals is a convenient method to compare two Pids
func (p Pid) Equals(to Pid) bool {
	return p == to
}

// String returns the Pid in the <scheduler.sequence> form
func (p Pid) String() string {
	buf := make([]byte, 0, 24)
	buf = append(buf, '<')
	buf = strconv.AppendInt(buf, int64(p.scheduler), 10)
	buf = append(buf, '.')
	buf = strconv.AppendUint(buf, p.sequence, 10)
	buf = append(buf, '>')
	return string(buf)
}
