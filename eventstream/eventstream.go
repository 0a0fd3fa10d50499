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

import "sync"

// Stream is a topic based, in-memory event broker.
type Stream interface {
	// AddSubscriber creates a new subscriber
	AddSubscriber() Subscriber
	// RemoveSubscriber unsubscribes the subscriber from all its topics and shuts it down
	RemoveSubscriber(sub Subscriber)
	// SubscribersCount returns the number of subscribers of a topic
	SubscribersCount(topic string) int
	// Subscribe subscribes a subscriber to a topic
	Subscribe(sub Subscriber, topic string)
	// Unsubscribe removes a subscriber from a topic
	Unsubscribe(sub Subscriber, topic string)
	// Publish publishes a message to a topic
	Publish(topic string, payload any)
	// Close shuts every subscriber down and clears the topics
	Close()
}

// EventsStream is the default Stream implementation
type EventsStream struct {
	mu          sync.RWMutex
	subscribers map[string]Subscriber
	topics      map[string]map[string]Subscriber
}

var _ Stream = (*EventsStream)(nil)

// New creates an instance of EventsStream
func New() *EventsStream {
	return &EventsStream{
		subscribers: make(map[string]Subscriber),
		topics:      make(map[string]map[string]Subscriber),
	}
}

func (b *EventsStream) AddSubscriber() Subscriber {
	sub := newSubscriber()
	b.mu.Lock()
	b.subscribers[sub.ID()] = sub
	b.mu.Unlock()
	return sub
}

func (b *EventsStream) RemoveSubscriber(sub Subscriber) {
	for _, topic := range sub.Topics() {
		b.Unsubscribe(sub, topic)
	}

	b.mu.Lock()
	delete(b.subscribers, sub.ID())
	b.mu.Unlock()
	sub.Shutdown()
}

func (b *EventsStream) SubscribersCount(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

func (b *EventsStream) Subscribe(sub Subscriber, topic string) {
	if !sub.Active() {
		return
	}

	sub.subscribe(topic)
	b.mu.Lock()
	subs, ok := b.topics[topic]
	if !ok {
		subs = make(map[string]Subscriber)
		b.topics[topic] = subs
	}
	subs[sub.ID()] = sub
	b.mu.Unlock()
}

func (b *EventsStream) Unsubscribe(sub Subscriber, topic string) {
	sub.unsubscribe(topic)
	b.mu.Lock()
	if subs, ok := b.topics[topic]; ok {
		delete(subs, sub.ID())
		if len(subs) == 0 {
			delete(b.topics, topic)
		}
	}
	b.mu.Unlock()
}

func (b *EventsStream) Publish(topic string, payload any) {
	b.mu.RLock()
	subs := b.topics[topic]
	if len(subs) == 0 {
		b.mu.RUnlock()
		return
	}
	snapshot := make([]Subscriber, 0, len(subs))
	for _, sub := range subs {
		snapshot = append(snapshot, sub)
	}
	b.mu.RUnlock()

	message := NewMessage(topic, payload)
	for _, sub := range snapshot {
		if sub.Active() {
			sub.signal(message)
		}
	}
}

func (b *EventsStream) Close() {
	b.mu.Lock()
	for _, sub := range b.subscribers {
		sub.Shutdown()
	}
	b.subscribers = make(map[string]Subscriber)
	b.topics = make(map[string]map[string]Subscriber)
	b.mu.Unlock()
}
