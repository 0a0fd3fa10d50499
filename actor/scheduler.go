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
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/atomic"

	gerrors "github.com/tochemey/gonode/errors"
	"github.com/tochemey/gonode/internal/xsync"
	"github.com/tochemey/gonode/log"
)

// primaryScheduler is the scheduler the host goroutines are attached to
const primaryScheduler = 0

// scheduler runs the processes assigned to it, one turn at a time, on a
// single goroutine locked to its OS thread.
//
// The processes map and the load counter are shared with the node. The
// run queue, the cursor and the marked list belong to the loop.
type scheduler struct {
	id        int
	node      *Node
	logger    log.Logger
	transport *transport
	processes *xsync.Map[uint64, *process]
	load      *atomic.Int64

	runQueue []*process
	cursor   int
	marked   []*process
}

func newScheduler(id int, node *Node) *scheduler {
	return &scheduler{
		id:        id,
		node:      node,
		logger:    node.logger.With("scheduler", id),
		transport: newTransport(),
		processes: xsync.NewMap[uint64, *process](),
		load:      atomic.NewInt64(0),
		runQueue:  make([]*process, 0),
		marked:    make([]*process, 0),
	}
}

// assign hands a spawned process to the scheduler.
// It can be called from any goroutine.
func (s *scheduler) assign(p *process) {
	s.processes.Set(p.pid.sequence, p)
	s.transport.post(&envelope{kind: admitEnvelope, process: p})
}

// lookup returns the process addressed by pid when it is still alive
func (s *scheduler) lookup(pid Pid) (*process, bool) {
	return s.processes.Get(pid.sequence)
}

// deliverLocal enqueues message straight into the target mailbox.
// It returns false when the target is gone.
func (s *scheduler) deliverLocal(to Pid, message any) bool {
	p, ok := s.lookup(to)
	if !ok || !p.mailbox.enqueue(message) {
		return false
	}
	s.transport.notify()
	return true
}

// deliverRemote posts a copied message on the transport
func (s *scheduler) deliverRemote(to Pid, message any) {
	s.transport.post(&envelope{kind: deliverEnvelope, to: to, message: message})
}

// requestExit posts an exit request on the transport
func (s *scheduler) requestExit(pid Pid) {
	s.transport.post(&envelope{kind: exitEnvelope, to: pid})
}

// exitLocal marks a process of this scheduler for exit.
// It must be called from the loop goroutine.
func (s *scheduler) exitLocal(pid Pid) {
	if p, ok := s.lookup(pid); ok {
		s.mark(p)
	}
}

// run is the scheduler loop. It returns when ctx is canceled.
func (s *scheduler) run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer s.shutdown()

	s.logger.Debug("scheduler started")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.drain()
		if p := s.next(); p != nil {
			s.turn(p)
			runtime.Gosched()
			continue
		}

		select {
		case <-ctx.Done():
			return
		case <-s.transport.signal():
		}
	}
}

// drain applies the envelopes posted so far.
// Envelopes posted while draining wait for the next iteration.
func (s *scheduler) drain() {
	for n := s.transport.pending(); n > 0; n-- {
		e, ok := s.transport.next()
		if !ok {
			break
		}

		switch e.kind {
		case admitEnvelope:
			s.admit(e.process)
		case deliverEnvelope:
			p, ok := s.lookup(e.to)
			if !ok || !p.mailbox.enqueue(e.message) {
				s.node.deadletter(e.to, e.message)
			}
		case exitEnvelope:
			s.exitLocal(e.to)
		}
	}
	s.sweep()
}

// admit adds a process to the run queue unless it already exited
func (s *scheduler) admit(p *process) {
	if p.getStatus() == Exited {
		return
	}
	s.runQueue = append(s.runQueue, p)
}

// next returns the next runnable process in round-robin order
func (s *scheduler) next() *process {
	size := len(s.runQueue)
	for i := range size {
		index := (s.cursor + i) % size
		if p := s.runQueue[index]; p.runnable() {
			s.cursor = (index + 1) % size
			return p
		}
	}
	return nil
}

// turn runs one call of the process entry
func (s *scheduler) turn(p *process) {
	err := s.execute(p)
	p.started = true
	p.turns++

	if err != nil {
		s.node.faults.Inc()
		s.logger.Errorf("process %s faulted: %v", p.pid, err)
		s.finalize(p, err)
	}
	s.sweep()
}

// execute calls the entry and turns any panic into a ProcessFault
func (s *scheduler) execute(p *process) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = gerrors.NewErrProcessFault(toPanicError(r))
		}
	}()

	if e := p.entry(p.context, p.arg); e != nil {
		return gerrors.NewErrProcessFault(e)
	}
	return nil
}

// mark flags a Running process as Exiting. The flag is applied by sweep.
func (s *scheduler) mark(p *process) {
	if p.getStatus() != Running {
		return
	}
	p.setStatus(Exiting)
	s.marked = append(s.marked, p)
}

// sweep turns the marked processes into Exited ones.
// It is only called between turns.
func (s *scheduler) sweep() {
	if len(s.marked) == 0 {
		return
	}
	for i, p := range s.marked {
		s.finalize(p, nil)
		s.marked[i] = nil
	}
	s.marked = s.marked[:0]
}

// finalize makes the process Exited and releases it
func (s *scheduler) finalize(p *process, reason error) {
	if p.getStatus() == Exited {
		return
	}

	s.remove(p)
	s.load.Dec()
	s.node.exited(p.pid, reason)
	s.processes.Delete(p.pid.sequence)
	p.setStatus(Exited)
	p.mailbox.dispose()
}

// remove drops the process from the run queue and keeps the cursor in place
func (s *scheduler) remove(p *process) {
	for index, candidate := range s.runQueue {
		if candidate != p {
			continue
		}

		last := len(s.runQueue) - 1
		copy(s.runQueue[index:], s.runQueue[index+1:])
		s.runQueue[last] = nil
		s.runQueue = s.runQueue[:last]
		if index < s.cursor {
			s.cursor--
		}
		if s.cursor >= len(s.runQueue) {
			s.cursor = 0
		}
		return
	}
}

// shutdown releases every process when the loop stops. No event is published.
func (s *scheduler) shutdown() {
	for _, p := range s.processes.Values() {
		p.setStatus(Exited)
		p.mailbox.dispose()
	}
	s.processes.Reset()
	s.load.Store(0)

	for {
		if _, ok := s.transport.next(); !ok {
			break
		}
	}

	s.runQueue = nil
	s.marked = nil
	s.logger.Debug("scheduler stopped")
}

// toPanicError enriches a recovered value with the location of the panic
func toPanicError(r any) error {
	if err, ok := r.(error); ok {
		var pe *gerrors.PanicError
		if errors.As(err, &pe) {
			return pe
		}

		pc, fn, line, _ := runtime.Caller(3)
		return gerrors.NewPanicError(fmt.Errorf("%w at %s[%s:%d]", err, runtime.FuncForPC(pc).Name(), fn, line))
	}

	pc, fn, line, _ := runtime.Caller(3)
	return gerrors.NewPanicError(fmt.Errorf("%#v at %s[%s:%d]", r, runtime.FuncForPC(pc).Name(), fn, line))
}
