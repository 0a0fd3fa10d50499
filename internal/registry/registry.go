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

package registry

import (
	"runtime"
	"sync"

	"github.com/zeebo/xxh3"
)

const maxShards = 64

type shard[V any] struct {
	sync.RWMutex
	claims map[string][]V
}

// Registry maps names to values. The first registration of a name is the
// authoritative one: later registrations under the same name are recorded
// but never returned by Lookup. Entries are never removed.
//
// Names are spread over shards with xxh3 so that lookups of different names
// rarely contend on the same lock.
type Registry[V any] struct {
	shards []*shard[V]
}

// New creates an instance of Registry
func New[V any]() *Registry[V] {
	numShards := calculateNumShards()
	shards := make([]*shard[V], numShards)
	for i := range shards {
		shards[i] = &shard[V]{claims: make(map[string][]V)}
	}
	return &Registry[V]{shards: shards}
}

// Register records value under name and returns the value that is
// authoritative for name, which is value itself only when the name was unused.
func (r *Registry[V]) Register(name string, value V) V {
	s := r.shard(name)
	s.Lock()
	defer s.Unlock()
	claims := s.claims[name]
	s.claims[name] = append(claims, value)
	if len(claims) > 0 {
		return claims[0]
	}
	return value
}

// Lookup returns the authoritative value for the exact name.
func (r *Registry[V]) Lookup(name string) (V, bool) {
	s := r.shard(name)
	s.RLock()
	defer s.RUnlock()
	claims, ok := s.claims[name]
	if !ok {
		var zero V
		return zero, false
	}
	return claims[0], true
}

// Claims returns every value registered under name in registration order.
func (r *Registry[V]) Claims(name string) []V {
	s := r.shard(name)
	s.RLock()
	defer s.RUnlock()
	claims := s.claims[name]
	out := make([]V, len(claims))
	copy(out, claims)
	return out
}

// Len returns the number of registered names
func (r *Registry[V]) Len() int {
	total := 0
	for _, s := range r.shards {
		s.RLock()
		total += len(s.claims)
		s.RUnlock()
	}
	return total
}

func (r *Registry[V]) shard(name string) *shard[V] {
	return r.shards[xxh3.HashString(name)%uint64(len(r.shards))]
}

func calculateNumShards() int {
	n := runtime.NumCPU() * 4
	if n > maxShards {
		return maxShards
	}
	return n
}
