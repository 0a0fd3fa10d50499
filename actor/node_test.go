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
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/atomic"

	"github.com/tochemey/gonode/config"
	gerrors "github.com/tochemey/gonode/errors"
	"github.com/tochemey/gonode/log"
)

func TestNewNode(t *testing.T) {
	t.Run("With default options", func(t *testing.T) {
		node := newTestNode(t)
		assert.NotEmpty(t, node.ID())
		assert.Equal(t, config.DefaultName, node.Name())
		assert.Positive(t, node.Schedulers())
		assert.Len(t, node.RunQueueLengths(), node.Schedulers())
		assert.NotNil(t, node.Logger())
	})
	t.Run("With options", func(t *testing.T) {
		node := newTestNode(t, WithName("orders"), WithSchedulers(3))
		assert.Equal(t, "orders", node.Name())
		assert.Equal(t, 3, node.Schedulers())
	})
	t.Run("With negative schedulers count", func(t *testing.T) {
		node, err := NewNode(WithLogger(log.DiscardLogger), WithSchedulers(-1))
		require.Error(t, err)
		assert.ErrorIs(t, err, gerrors.ErrStartupFailure)
		assert.Nil(t, node)
	})
	t.Run("With config", func(t *testing.T) {
		cfg, err := config.Parse([]byte("name: billing\nschedulers: 2\nlogLevel: error\n"))
		require.NoError(t, err)

		node := newTestNode(t, WithConfig(cfg), WithLogger(log.DiscardLogger))
		assert.Equal(t, "billing", node.Name())
		assert.Equal(t, 2, node.Schedulers())
	})
	t.Run("With meter provider", func(t *testing.T) {
		node := newTestNode(t, WithMeterProvider(noop.NewMeterProvider()))
		pid := node.Spawn(idle, nil)
		assert.False(t, pid.IsZero())
	})
	t.Run("With failing meter provider", func(t *testing.T) {
		node, err := NewNode(WithLogger(log.DiscardLogger), WithMeterProvider(failingMeterProvider{}))
		require.Error(t, err)
		assert.ErrorIs(t, err, gerrors.ErrStartupFailure)
		assert.Nil(t, node)
	})
}

func TestSpawn(t *testing.T) {
	t.Run("With distinct pids under concurrency", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(4))
		const spawners, perSpawner = 8, 100

		pids := make(chan Pid, spawners*perSpawner)
		var wg sync.WaitGroup
		for range spawners {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perSpawner {
					pids <- node.Spawn(idle, nil)
				}
			}()
		}
		wg.Wait()
		close(pids)

		seen := make(map[Pid]struct{}, spawners*perSpawner)
		for pid := range pids {
			require.False(t, pid.IsZero())
			_, duplicate := seen[pid]
			require.False(t, duplicate, "pid %s returned twice", pid)
			seen[pid] = struct{}{}
		}
		assert.Len(t, seen, spawners*perSpawner)
		assert.Equal(t, spawners*perSpawner, node.ProcessCount())
	})
	t.Run("With first turn right after spawn", func(t *testing.T) {
		node := newTestNode(t)
		started := make(chan any, 1)
		pid := node.Spawn(func(ctx *Context, _ any) error {
			started <- ctx.Arg()
			return nil
		}, "payload")
		assert.Equal(t, "payload", await(t, started))
		assert.Equal(t, Running, node.Status(pid))
	})
	t.Run("With nil entry", func(t *testing.T) {
		node := newTestNode(t)
		assert.Equal(t, NoPid, node.Spawn(nil, nil))
	})
	t.Run("With stopped node", func(t *testing.T) {
		node, err := NewNode(WithLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, node.Stop(context.Background()))
		assert.Equal(t, NoPid, node.Spawn(idle, nil))
		// stopping twice is fine
		assert.NoError(t, node.Stop(context.Background()))
	})
	t.Run("From a running process", func(t *testing.T) {
		node := newTestNode(t)
		children := make(chan Pid, 1)
		node.Spawn(func(ctx *Context, _ any) error {
			children <- ctx.Spawn(idle, nil)
			return nil
		}, nil)
		child := await(t, children)
		assert.False(t, child.IsZero())
		assert.Eventually(t, func() bool { return node.Status(child) == Running }, waitFor, tick)
	})
}

func TestLoadBalancing(t *testing.T) {
	t.Run("With ties going to the lowest id", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(3))
		for expected := range 6 {
			pid := node.Spawn(idle, nil)
			assert.Equal(t, expected%3, pid.SchedulerID())
		}
	})
	t.Run("With run queue lengths within one", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(4))
		for range 10 {
			node.Spawn(idle, nil)
		}

		lengths := node.RunQueueLengths()
		assert.LessOrEqual(t, slices.Max(lengths)-slices.Min(lengths), 1)

		var total int
		for _, length := range lengths {
			total += length
		}
		assert.Equal(t, 10, total)
	})
	t.Run("With exited processes freeing their slot", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		first := node.Spawn(idle, nil)
		second := node.Spawn(idle, nil)
		require.Equal(t, 0, first.SchedulerID())
		require.Equal(t, 1, second.SchedulerID())

		node.Exit(first)
		require.Eventually(t, func() bool { return node.Status(first) == Exited }, waitFor, tick)
		assert.Equal(t, []int{0, 1}, node.RunQueueLengths())

		third := node.Spawn(idle, nil)
		assert.Equal(t, 0, third.SchedulerID())
	})
}

func TestSend(t *testing.T) {
	t.Run("With per sender FIFO order on both paths", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		local, remote := newRecorder(), newRecorder()
		localPid := node.Spawn(local.entry, nil)
		remotePid := node.Spawn(remote.entry, nil)
		require.Equal(t, 0, localPid.SchedulerID())
		require.Equal(t, 1, remotePid.SchedulerID())

		const count = 1000
		sender := node.Spawn(func(ctx *Context, _ any) error {
			for i := range count {
				if err := ctx.Send(localPid, i); err != nil {
					return err
				}
				if err := ctx.Send(remotePid, i); err != nil {
					return err
				}
			}
			ctx.Exit(ctx.Self())
			return nil
		}, nil)
		require.Equal(t, 0, sender.SchedulerID())

		require.Eventually(t, func() bool {
			return local.len() == count && remote.len() == count
		}, waitFor, tick)

		expected := make([]any, count)
		for i := range count {
			expected[i] = i
		}
		assert.Equal(t, expected, local.snapshot())
		assert.Equal(t, expected, remote.snapshot())
	})
	t.Run("With FIFO order from the host", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		receivers := []*recorder{newRecorder(), newRecorder()}
		pids := []Pid{node.Spawn(receivers[0].entry, nil), node.Spawn(receivers[1].entry, nil)}

		const count = 500
		for i := range count {
			for _, pid := range pids {
				require.NoError(t, node.Send(pid, i))
			}
		}

		require.Eventually(t, func() bool {
			return receivers[0].len() == count && receivers[1].len() == count
		}, waitFor, tick)
		for _, receiver := range receivers {
			messages := receiver.snapshot()
			for i, message := range messages {
				require.Equal(t, i, message)
			}
		}
	})
	t.Run("With send to self then exit", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(1))
		type observation struct {
			err     error
			pending int
			status  Status
		}

		observations := make(chan observation, 1)
		turns := atomic.NewInt32(0)
		pid := node.Spawn(func(ctx *Context, _ any) error {
			if turns.Inc() > 1 {
				return nil
			}
			err := ctx.Send(ctx.Self(), "last words")
			pending := ctx.Pending()
			ctx.Exit(ctx.Self())
			observations <- observation{err: err, pending: pending, status: ctx.Node().Status(ctx.Self())}
			return nil
		}, nil)

		observed := await(t, observations)
		require.NoError(t, observed.err)
		assert.Equal(t, 1, observed.pending)
		assert.Equal(t, Exiting, observed.status)

		require.Eventually(t, func() bool { return node.Status(pid) == Exited }, waitFor, tick)
		assert.EqualValues(t, 1, turns.Load())
		assert.Zero(t, node.ProcessCount())
	})
	t.Run("With local only payload", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		primary := newRecorder()
		primaryPid := node.Spawn(primary.entry, nil)
		workerPid := node.Spawn(idle, nil)
		require.Equal(t, 0, primaryPid.SchedulerID())
		require.Equal(t, 1, workerPid.SchedulerID())

		closure := func() int { return 42 }
		err := node.Send(workerPid, closure)
		require.Error(t, err)
		assert.ErrorIs(t, err, gerrors.ErrNonTransferablePayload)

		require.NoError(t, node.Send(primaryPid, closure))
		require.Eventually(t, func() bool { return primary.len() == 1 }, waitFor, tick)
		received, ok := primary.snapshot()[0].(func() int)
		require.True(t, ok)
		assert.Equal(t, 42, received())

		// the check does not depend on the target being alive
		node.Exit(workerPid)
		require.Eventually(t, func() bool { return node.Status(workerPid) == Exited }, waitFor, tick)
		assert.ErrorIs(t, node.Send(workerPid, make(chan int)), gerrors.ErrNonTransferablePayload)
	})
	t.Run("With local only payload from a worker", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		primaryPid := node.Spawn(idle, nil)
		errs := make(chan error, 1)
		node.Spawn(func(ctx *Context, _ any) error {
			errs <- ctx.Send(primaryPid, make(chan int))
			return nil
		}, nil)
		assert.ErrorIs(t, await(t, errs), gerrors.ErrNonTransferablePayload)
	})
	t.Run("With copies across schedulers", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		node.Spawn(idle, nil)
		remote := newRecorder()
		remotePid := node.Spawn(remote.entry, nil)
		require.Equal(t, 1, remotePid.SchedulerID())

		payload := []byte("original")
		require.NoError(t, node.Send(remotePid, payload))
		payload[0] = 'X'

		require.Eventually(t, func() bool { return remote.len() == 1 }, waitFor, tick)
		assert.Equal(t, []byte("original"), remote.snapshot()[0])
	})
	t.Run("With exited target", func(t *testing.T) {
		node := newTestNode(t)
		sub := node.Subscribe()
		defer node.Unsubscribe(sub)

		pid := node.Spawn(idle, nil)
		node.Exit(pid)
		require.Eventually(t, func() bool { return node.Status(pid) == Exited }, waitFor, tick)

		require.NoError(t, node.Send(pid, "too late"))
		require.NoError(t, node.Send(NoPid, "nobody"))
		assert.EqualValues(t, 2, node.Deadletters())

		var deadletters []*Deadletter
		for _, event := range collectEvents(sub) {
			if deadletter, ok := event.(*Deadletter); ok {
				deadletters = append(deadletters, deadletter)
			}
		}
		require.Len(t, deadletters, 2)
		assert.Equal(t, pid, deadletters[0].To)
		assert.Equal(t, "too late", deadletters[0].Message)
		assert.Equal(t, NoPid, deadletters[1].To)
	})
	t.Run("With pipe", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		node.Spawn(idle, nil)
		remote := newRecorder()
		remotePid := node.Spawn(remote.entry, nil)

		require.NoError(t, node.To(remotePid).Send(1).Send(2).Send(3).Err())

		err := node.To(remotePid).Send(4).Send(func() {}).Send(5).Err()
		assert.ErrorIs(t, err, gerrors.ErrNonTransferablePayload)

		require.Eventually(t, func() bool { return remote.len() == 4 }, waitFor, tick)
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, []any{1, 2, 3, 4}, remote.snapshot())
	})
	t.Run("With pipe from a running process", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(1))
		receiver := newRecorder()
		receiverPid := node.Spawn(receiver.entry, nil)
		node.Spawn(func(ctx *Context, _ any) error {
			return ctx.To(receiverPid).Send("a").Send("b").Err()
		}, nil)
		require.Eventually(t, func() bool { return receiver.len() == 2 }, waitFor, tick)
		assert.Equal(t, []any{"a", "b"}, receiver.snapshot())
	})
}

func TestExit(t *testing.T) {
	t.Run("With host exit", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		sub := node.Subscribe()
		defer node.Unsubscribe(sub)

		pids := []Pid{node.Spawn(idle, nil), node.Spawn(idle, nil)}
		for _, pid := range pids {
			node.Exit(pid)
		}
		require.Eventually(t, func() bool {
			return node.Status(pids[0]) == Exited && node.Status(pids[1]) == Exited
		}, waitFor, tick)

		exited := make(map[Pid]error)
		for _, event := range collectEvents(sub) {
			if e, ok := event.(*ProcessExited); ok {
				exited[e.Pid] = e.Reason
			}
		}
		require.Len(t, exited, 2)
		for _, pid := range pids {
			assert.NoError(t, exited[pid])
		}
	})
	t.Run("With unknown pid", func(t *testing.T) {
		node := newTestNode(t)
		assert.NotPanics(t, func() {
			node.Exit(NoPid)
			node.Exit(newPid(1000, 1))
		})
		assert.Equal(t, Exited, node.Status(newPid(0, 99)))
	})
	t.Run("With another process of the same scheduler", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(1))
		victimTurns := atomic.NewInt32(0)
		victim := node.Spawn(func(*Context, any) error {
			victimTurns.Inc()
			return nil
		}, nil)

		statuses := make(chan Status, 1)
		node.Spawn(func(ctx *Context, _ any) error {
			ctx.Exit(victim)
			statuses <- ctx.Node().Status(victim)
			return nil
		}, nil)

		assert.Equal(t, Exiting, await(t, statuses))
		require.Eventually(t, func() bool { return node.Status(victim) == Exited }, waitFor, tick)

		require.NoError(t, node.Send(victim, "ignored"))
		assert.EqualValues(t, 1, victimTurns.Load())
	})
	t.Run("With a process of another scheduler", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		node.Spawn(idle, nil)
		victim := node.Spawn(idle, nil)
		require.Equal(t, 1, victim.SchedulerID())

		node.Spawn(func(ctx *Context, _ any) error {
			ctx.Exit(victim)
			return nil
		}, nil)
		require.Eventually(t, func() bool { return node.Status(victim) == Exited }, waitFor, tick)
	})
}

func TestFault(t *testing.T) {
	t.Run("With isolation across schedulers", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		sub := node.Subscribe()
		defer node.Unsubscribe(sub)

		handled := atomic.NewInt64(0)
		healthy := node.Spawn(func(ctx *Context, _ any) error {
			for {
				if _, ok := ctx.Receive(); !ok {
					return nil
				}
				handled.Inc()
			}
		}, nil)
		faulty := node.Spawn(func(*Context, any) error {
			panic("boom")
		}, nil)
		require.Equal(t, 1, faulty.SchedulerID())

		require.Eventually(t, func() bool { return node.Status(faulty) == Exited }, waitFor, tick)
		for i := range 10 {
			require.NoError(t, node.Send(healthy, i))
		}
		require.Eventually(t, func() bool { return handled.Load() == 10 }, waitFor, tick)
		assert.Equal(t, Running, node.Status(healthy))

		var reason error
		for _, event := range collectEvents(sub) {
			if e, ok := event.(*ProcessExited); ok && e.Pid == faulty {
				reason = e.Reason
			}
		}
		require.Error(t, reason)
		assert.ErrorIs(t, reason, gerrors.ErrProcessFault)
		var panicErr *gerrors.PanicError
		assert.ErrorAs(t, reason, &panicErr)
	})
	t.Run("With scheduler surviving a fault", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(1))
		faulty := node.Spawn(func(*Context, any) error {
			panic(errors.New("boom"))
		}, nil)
		require.Eventually(t, func() bool { return node.Status(faulty) == Exited }, waitFor, tick)

		started := make(chan struct{}, 1)
		node.Spawn(func(*Context, any) error {
			started <- struct{}{}
			return nil
		}, nil)
		await(t, started)
	})
	t.Run("With returned error", func(t *testing.T) {
		node := newTestNode(t)
		sub := node.Subscribe()
		defer node.Unsubscribe(sub)

		cause := errors.New("invalid state")
		pid := node.Spawn(func(*Context, any) error { return cause }, nil)
		require.Eventually(t, func() bool { return node.Status(pid) == Exited }, waitFor, tick)

		var reason error
		for _, event := range collectEvents(sub) {
			if e, ok := event.(*ProcessExited); ok && e.Pid == pid {
				reason = e.Reason
			}
		}
		assert.ErrorIs(t, reason, gerrors.ErrProcessFault)
		assert.ErrorIs(t, reason, cause)
	})
}

func TestRegistry(t *testing.T) {
	node := newTestNode(t)
	first := node.Spawn(idle, nil)
	second := node.Spawn(idle, nil)

	assert.Equal(t, first, node.Register("accounts", first))
	assert.Equal(t, first, node.Register("accounts", second))

	pid, ok := node.WhereIs("accounts")
	require.True(t, ok)
	assert.Equal(t, first, pid)

	_, ok = node.WhereIs("missing")
	assert.False(t, ok)

	// bindings outlive the process
	node.Exit(first)
	require.Eventually(t, func() bool { return node.Status(first) == Exited }, waitFor, tick)
	pid, ok = node.WhereIs("accounts")
	require.True(t, ok)
	assert.Equal(t, first, pid)

	found := make(chan Pid, 1)
	node.Spawn(func(ctx *Context, _ any) error {
		ctx.Register("ledger", ctx.Self())
		pid, _ := ctx.WhereIs("ledger")
		found <- pid
		return nil
	}, nil)
	assert.False(t, await(t, found).IsZero())
}

func TestTrace(t *testing.T) {
	t.Run("With tracer invoked once before delivery", func(t *testing.T) {
		node := newTestNode(t, WithSchedulers(2))
		var traced sync.Map
		node.Trace(TracerFunc(func(_ Pid, message any) any {
			counter, _ := traced.LoadOrStore(message, atomic.NewInt32(0))
			counter.(*atomic.Int32).Inc()
			return message
		}))

		violations := atomic.NewInt32(0)
		received := atomic.NewInt32(0)
		entry := func(ctx *Context, _ any) error {
			for {
				message, ok := ctx.Receive()
				if !ok {
					return nil
				}
				counter, ok := traced.Load(message)
				if !ok || counter.(*atomic.Int32).Load() != 1 {
					violations.Inc()
				}
				received.Inc()
			}
		}

		first := node.Spawn(entry, nil)
		second := node.Spawn(entry, nil)
		const count = 500
		for i := range count {
			require.NoError(t, node.Send(first, i))
			require.NoError(t, node.Send(second, count+i))
		}

		require.Eventually(t, func() bool { return received.Load() == 2*count }, waitFor, tick)
		assert.Zero(t, violations.Load())
		traced.Range(func(_, counter any) bool {
			assert.EqualValues(t, 1, counter.(*atomic.Int32).Load())
			return true
		})
	})
	t.Run("With tracer invoked for dead targets", func(t *testing.T) {
		node := newTestNode(t)
		calls := atomic.NewInt32(0)
		node.Trace(TracerFunc(func(_ Pid, message any) any {
			calls.Inc()
			return message
		}))
		require.NoError(t, node.Send(NoPid, "lost"))
		assert.EqualValues(t, 1, calls.Load())
	})
	t.Run("With rewriting tracer", func(t *testing.T) {
		node := newTestNode(t, WithTracer(TracerFunc(func(_ Pid, message any) any {
			if text, ok := message.(string); ok {
				return strings.ToUpper(text)
			}
			return message
		})))
		receiver := newRecorder()
		pid := node.Spawn(receiver.entry, nil)
		require.NoError(t, node.Send(pid, "hello"))
		require.Eventually(t, func() bool { return receiver.len() == 1 }, waitFor, tick)
		assert.Equal(t, "HELLO", receiver.snapshot()[0])
	})
	t.Run("With panicking tracer", func(t *testing.T) {
		node := newTestNode(t)
		calls := atomic.NewInt32(0)
		node.Trace(TracerFunc(func(Pid, any) any {
			calls.Inc()
			panic("tracer failure")
		}))

		receiver := newRecorder()
		pid := node.Spawn(receiver.entry, nil)
		require.NoError(t, node.Send(pid, "first"))
		require.NoError(t, node.Send(pid, "second"))

		require.Eventually(t, func() bool { return receiver.len() == 2 }, waitFor, tick)
		assert.Equal(t, []any{"first", "second"}, receiver.snapshot())
		assert.EqualValues(t, 1, calls.Load())
	})
	t.Run("With tracer removed", func(t *testing.T) {
		node := newTestNode(t)
		calls := atomic.NewInt32(0)
		node.Trace(TracerFunc(func(_ Pid, message any) any {
			calls.Inc()
			return message
		}))
		pid := node.Spawn(idle, nil)
		require.NoError(t, node.Send(pid, 1))
		node.Trace(nil)
		require.NoError(t, node.Send(pid, 2))
		assert.EqualValues(t, 1, calls.Load())
	})
}

func TestStop(t *testing.T) {
	t.Run("With processes released", func(t *testing.T) {
		node, err := NewNode(WithLogger(log.DiscardLogger), WithSchedulers(2))
		require.NoError(t, err)
		pids := []Pid{node.Spawn(idle, nil), node.Spawn(idle, nil)}

		require.NoError(t, node.Stop(context.Background()))
		for _, pid := range pids {
			assert.Equal(t, Exited, node.Status(pid))
		}
		assert.Zero(t, node.ProcessCount())
		assert.NoError(t, node.Send(pids[0], "after stop"))
	})
	t.Run("With a turn that never returns", func(t *testing.T) {
		node, err := NewNode(WithLogger(log.DiscardLogger), WithSchedulers(1))
		require.NoError(t, err)

		release := make(chan struct{})
		started := make(chan struct{}, 1)
		node.Spawn(func(*Context, any) error {
			started <- struct{}{}
			<-release
			return nil
		}, nil)
		await(t, started)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		err = node.Stop(ctx)
		close(release)
		require.Error(t, err)
		assert.ErrorIs(t, err, gerrors.ErrStopTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

type failingMeterProvider struct {
	noop.MeterProvider
}

func (failingMeterProvider) Meter(string, ...otelmetric.MeterOption) otelmetric.Meter {
	return failingMeter{}
}

type failingMeter struct {
	noop.Meter
}

func (failingMeter) Int64ObservableCounter(string, ...otelmetric.Int64ObservableCounterOption) (otelmetric.Int64ObservableCounter, error) {
	return nil, errors.New("instrument failure")
}
