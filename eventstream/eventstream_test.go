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

package eventstream

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStream(t *testing.T) {
	t.Run("With Subscription", func(t *testing.T) {
		broker := New()
		cons := broker.AddSubscriber()
		require.NotNil(t, cons)
		require.True(t, cons.Active())

		broker.Subscribe(cons, "t1")
		broker.Subscribe(cons, "t2")
		assert.EqualValues(t, 1, broker.SubscribersCount("t1"))
		assert.EqualValues(t, 1, broker.SubscribersCount("t2"))
		assert.ElementsMatch(t, []string{"t1", "t2"}, cons.Topics())

		broker.RemoveSubscriber(cons)
		assert.Zero(t, broker.SubscribersCount("t1"))
		assert.Zero(t, broker.SubscribersCount("t2"))
		assert.False(t, cons.Active())

		broker.Subscribe(cons, "t3")
		assert.Zero(t, broker.SubscribersCount("t3"))
		broker.Close()
	})
	t.Run("With Unsubscription", func(t *testing.T) {
		broker := New()
		cons := broker.AddSubscriber()
		broker.Subscribe(cons, "t1")
		broker.Subscribe(cons, "t2")

		broker.Unsubscribe(cons, "t1")
		assert.Zero(t, broker.SubscribersCount("t1"))
		assert.EqualValues(t, 1, broker.SubscribersCount("t2"))
		assert.Equal(t, []string{"t2"}, cons.Topics())
		broker.Close()
	})
	t.Run("With Publication", func(t *testing.T) {
		broker := New()
		cons := broker.AddSubscriber()
		other := broker.AddSubscriber()
		broker.Subscribe(cons, "t1")
		broker.Subscribe(other, "t2")

		broker.Publish("t1", "hi")
		broker.Publish("t1", "there")
		broker.Publish("t3", "nobody")

		var payloads []any
		for msg := range cons.Iterator() {
			assert.Equal(t, "t1", msg.Topic())
			payloads = append(payloads, msg.Payload())
		}
		assert.Equal(t, []any{"hi", "there"}, payloads)
		assert.Empty(t, other.Iterator())
		broker.Close()
	})
	t.Run("With concurrent publishers", func(t *testing.T) {
		broker := New()
		cons := broker.AddSubscriber()
		broker.Subscribe(cons, "events")

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					broker.Publish("events", i*100+j)
				}
			}(i)
		}
		wg.Wait()

		count := 0
		for range cons.Iterator() {
			count++
		}
		assert.Equal(t, 1000, count)
		broker.Close()
	})
	t.Run("With Close", func(t *testing.T) {
		broker := New()
		cons := broker.AddSubscriber()
		broker.Subscribe(cons, "t1")
		broker.Close()

		assert.False(t, cons.Active())
		assert.Zero(t, broker.SubscribersCount("t1"))
		broker.Publish("t1", "dropped")
		assert.Empty(t, cons.Iterator())
	})
}
