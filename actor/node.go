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
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/gonode/config"
	gerrors "github.com/tochemey/gonode/errors"
	"github.com/tochemey/gonode/eventstream"
	"github.com/tochemey/gonode/internal/errorschain"
	"github.com/tochemey/gonode/internal/metric"
	"github.com/tochemey/gonode/internal/registry"
	"github.com/tochemey/gonode/log"
)

// Node hosts the schedulers, the name registry and the message tracer.
//
// A Node is created with NewNode and is safe for concurrent use. The host
// goroutines calling Node methods are attached to the primary scheduler:
// a message they send to a process of another scheduler must be
// transferable (see Classify).
type Node struct {
	id     string
	name   string
	logger log.Logger

	schedulersCount int
	schedulers      []*scheduler
	// balanceMu serializes the placement of spawned processes
	balanceMu sync.Mutex

	registry *registry.Registry[Pid]
	tracer   *atomic.Pointer[tracerSlot]
	sequence *atomic.Uint64
	events   *eventstream.EventsStream

	deadletters *atomic.Int64
	faults      *atomic.Int64
	messages    *atomic.Int64

	meterProvider      otelmetric.MeterProvider
	metricEnabled      bool
	metricRegistration otelmetric.Registration

	stopped *atomic.Bool
	cancel  context.CancelFunc
	group   *errgroup.Group
}

// NewNode creates a node and starts its schedulers.
// It returns an error wrapping ErrStartupFailure when the pool cannot be built.
func NewNode(opts ...Option) (*Node, error) {
	node := &Node{
		id:          uuid.NewString(),
		name:        config.DefaultName,
		logger:      log.DefaultLogger,
		registry:    registry.New[Pid](),
		tracer:      atomic.NewPointer[tracerSlot](nil),
		sequence:    atomic.NewUint64(0),
		events:      eventstream.New(),
		deadletters: atomic.NewInt64(0),
		faults:      atomic.NewInt64(0),
		messages:    atomic.NewInt64(0),
		stopped:     atomic.NewBool(false),
	}

	for _, opt := range opts {
		opt.Apply(node)
	}

	if node.schedulersCount < 0 {
		return nil, gerrors.NewErrStartupFailure(fmt.Errorf("invalid schedulers count: %d", node.schedulersCount))
	}

	if node.schedulersCount == 0 {
		node.schedulersCount = runtime.NumCPU()
	}

	node.logger = node.logger.With("node", node.name)
	node.schedulers = make([]*scheduler, node.schedulersCount)
	for id := range node.schedulers {
		node.schedulers[id] = newScheduler(id, node)
	}

	if node.metricEnabled {
		if err := node.registerMetrics(); err != nil {
			return nil, gerrors.NewErrStartupFailure(err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	group, ctx := errgroup.WithContext(ctx)
	for _, s := range node.schedulers {
		group.Go(func() error {
			s.run(ctx)
			return nil
		})
	}

	node.cancel = cancel
	node.group = group
	node.logger.Infof("node %s started with %d schedulers", node.name, node.schedulersCount)
	return node, nil
}

// ID returns the node unique identifier
func (n *Node) ID() string {
	return n.id
}

// Name returns the node name
func (n *Node) Name() string {
	return n.name
}

// Logger returns the node logger
func (n *Node) Logger() log.Logger {
	return n.logger
}

// Schedulers returns the number of schedulers
func (n *Node) Schedulers() int {
	return len(n.schedulers)
}

// Spawn starts a process running entry with arg on the least loaded
// scheduler and returns its Pid.
//
// The process gets its first turn as soon as its scheduler admits it.
// Spawn returns NoPid when entry is nil or the node is stopped.
func (n *Node) Spawn(entry Entry, arg any) Pid {
	if entry == nil {
		n.logger.Error("cannot spawn a process without entry")
		return NoPid
	}

	if n.stopped.Load() {
		n.logger.Warnf("cannot spawn a process: %v", gerrors.ErrNodeStopped)
		return NoPid
	}

	n.balanceMu.Lock()
	target := n.leastLoaded()
	target.load.Inc()
	pid := newPid(target.id, n.sequence.Inc())
	n.balanceMu.Unlock()

	target.assign(newProcess(pid, entry, arg, target))
	return pid
}

// Exit marks the given process for exit.
//
// The exit takes effect after the turn in progress, if any. Messages
// already queued are discarded with the mailbox. Exiting an unknown or
// exited process does nothing.
func (n *Node) Exit(pid Pid) {
	if s, ok := n.owner(pid); ok {
		s.requestExit(pid)
	}
}

// Register binds name to pid and returns the Pid bound to name.
// The first registration of a name wins: later ones return the first Pid.
// Bindings are never removed, even when the process exits.
func (n *Node) Register(name string, pid Pid) Pid {
	return n.registry.Register(name, pid)
}

// WhereIs returns the Pid registered under name
func (n *Node) WhereIs(name string) (Pid, bool) {
	return n.registry.Lookup(name)
}

// Send delivers message to the given process from the primary scheduler.
//
// It fails with ErrNonTransferablePayload when message is LocalOnly and the
// target lives on a worker scheduler. Sending to an exited or unknown Pid
// returns nil: the message is dropped and counted as a deadletter.
func (n *Node) Send(to Pid, message any) error {
	return n.send(primaryScheduler, to, message)
}

// To returns a Pipe sending to pid from the primary scheduler
func (n *Node) To(pid Pid) *Pipe {
	return newPipe(pid, n.Send)
}

// Trace installs the tracer invoked on every send.
// A nil tracer removes the installed one.
func (n *Node) Trace(tracer Tracer) {
	if tracer == nil {
		n.tracer.Store(nil)
		return
	}
	n.tracer.Store(&tracerSlot{tracer: tracer})
}

// Status returns the status of the given process.
// Unknown Pids are reported Exited.
func (n *Node) Status(pid Pid) Status {
	s, ok := n.owner(pid)
	if !ok {
		return Exited
	}
	p, ok := s.lookup(pid)
	if !ok {
		return Exited
	}
	return p.getStatus()
}

// RunQueueLengths returns the number of live processes of every scheduler,
// indexed by scheduler id
func (n *Node) RunQueueLengths() []int {
	lengths := make([]int, len(n.schedulers))
	for i, s := range n.schedulers {
		lengths[i] = int(s.load.Load())
	}
	return lengths
}

// ProcessCount returns the number of live processes
func (n *Node) ProcessCount() int {
	var count int
	for _, s := range n.schedulers {
		count += s.processes.Len()
	}
	return count
}

// Deadletters returns the number of messages dropped so far
func (n *Node) Deadletters() int64 {
	return n.deadletters.Load()
}

// Subscribe creates a subscriber to the node events.
// Call Unsubscribe when done.
func (n *Node) Subscribe() eventstream.Subscriber {
	sub := n.events.AddSubscriber()
	n.events.Subscribe(sub, EventsTopic)
	return sub
}

// Unsubscribe removes a subscriber created by Subscribe
func (n *Node) Unsubscribe(sub eventstream.Subscriber) {
	n.events.RemoveSubscriber(sub)
}

// Stop stops the schedulers and releases every process.
//
// Stop waits for the turns in progress. When ctx is done before they all
// return the error wraps ErrStopTimeout. Calling Stop twice is a no-op.
func (n *Node) Stop(ctx context.Context) error {
	if !n.stopped.CompareAndSwap(false, true) {
		return nil
	}

	n.logger.Infof("stopping node %s...", n.name)
	n.cancel()

	done := make(chan error, 1)
	go func() {
		done <- n.group.Wait()
	}()

	var waitErr error
	select {
	case waitErr = <-done:
	case <-ctx.Done():
		waitErr = errors.Join(gerrors.ErrStopTimeout, ctx.Err())
	}

	return errorschain.New(errorschain.ReturnAll()).
		AddError(waitErr).
		AddStepIf(n.metricRegistration != nil, func() error {
			return n.metricRegistration.Unregister()
		}).
		AddStep(func() error {
			n.events.Close()
			n.logger.Infof("node %s stopped", n.name)
			return nil
		}).
		AddStep(n.logger.Flush).
		Error()
}

// send traces message and routes it from the origin scheduler
func (n *Node) send(origin int, to Pid, message any) error {
	message = n.trace(to, message)

	target, ok := n.owner(to)
	if !ok || n.stopped.Load() {
		n.deadletter(to, message)
		return nil
	}

	if target.id == origin {
		if !target.deliverLocal(to, message) {
			n.deadletter(to, message)
			return nil
		}
		n.messages.Inc()
		return nil
	}

	copied, ok := transfer(message)
	if !ok {
		return gerrors.NewErrNonTransferablePayload(to, message)
	}

	target.deliverRemote(to, copied)
	n.messages.Inc()
	return nil
}

// trace runs the installed tracer, if any
func (n *Node) trace(to Pid, message any) any {
	slot := n.tracer.Load()
	if slot == nil {
		return message
	}
	return n.invokeTracer(slot, to, message)
}

func (n *Node) invokeTracer(slot *tracerSlot, to Pid, message any) (traced any) {
	defer func() {
		if r := recover(); r != nil {
			n.tracer.CompareAndSwap(slot, nil)
			n.logger.Warnf("tracer panicked on a message to %s and has been removed: %v", to, r)
			traced = message
		}
	}()
	return slot.tracer.Trace(to, message)
}

// owner returns the scheduler addressed by pid
func (n *Node) owner(pid Pid) (*scheduler, bool) {
	if pid.IsZero() || pid.scheduler < 0 || pid.scheduler >= len(n.schedulers) {
		return nil, false
	}
	return n.schedulers[pid.scheduler], true
}

// leastLoaded returns the scheduler with the fewest live processes.
// Ties go to the lowest id. Callers hold balanceMu.
func (n *Node) leastLoaded() *scheduler {
	target := n.schedulers[0]
	lowest := target.load.Load()
	for _, s := range n.schedulers[1:] {
		if load := s.load.Load(); load < lowest {
			target, lowest = s, load
		}
	}
	return target
}

// deadletter records a dropped message
func (n *Node) deadletter(to Pid, message any) {
	n.deadletters.Inc()
	n.logger.Debugf("message of type %T to %s dropped", message, to)
	n.events.Publish(EventsTopic, &Deadletter{
		To:      to,
		Message: message,
		At:      time.Now().UTC(),
	})
}

// exited publishes the exit of a process
func (n *Node) exited(pid Pid, reason error) {
	n.events.Publish(EventsTopic, &ProcessExited{
		Pid:    pid,
		Reason: reason,
		At:     time.Now().UTC(),
	})
}

// registerMetrics registers the node observable instruments
func (n *Node) registerMetrics() error {
	meter := metric.NewProvider(n.meterProvider).Meter()
	instruments, err := metric.NewNodeMetric(meter)
	if err != nil {
		return err
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer otelmetric.Observer) error {
		observer.ObserveInt64(instruments.SpawnedCount(), int64(n.sequence.Load()))
		observer.ObserveInt64(instruments.ProcessesCount(), int64(n.ProcessCount()))
		observer.ObserveInt64(instruments.DeadlettersCount(), n.deadletters.Load())
		observer.ObserveInt64(instruments.FaultsCount(), n.faults.Load())
		observer.ObserveInt64(instruments.MessagesCount(), n.messages.Load())
		for _, s := range n.schedulers {
			observer.ObserveInt64(instruments.RunQueueLength(), s.load.Load(),
				otelmetric.WithAttributes(attribute.Int("scheduler.id", s.id)))
		}
		return nil
	}, instruments.Instruments()...)
	if err != nil {
		return fmt.Errorf("failed to register metrics callback: %w", err)
	}

	n.metricRegistration = registration
	return nil
}
