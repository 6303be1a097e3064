// Copyright 2026 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"sync"
	"time"

	"github.com/ccoveille/go-safecast"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/dadrus/tidycache/internal/x/errorchain"
)

// DefaultTTL is used by Insert unless WithDefaultTTL sets a positive value.
const DefaultTTL = 60 * time.Second

type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]*Entry[V]
	stats   Stats

	defaultTTL time.Duration
	clock      clockwork.Clock
	expired    ExpiryPredicate[V]
	logger     zerolog.Logger
}

// New creates an empty cache. Without options entries live for DefaultTTL.
// A non-positive WithDefaultTTL value does not make entries expire
// immediately. It is ignored and DefaultTTL stays in effect. Use
// InsertWithTTL with a non-positive ttl for entries, which should be expired
// right away.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	cch := &Cache[K, V]{
		entries:    make(map[K]*Entry[V]),
		defaultTTL: DefaultTTL,
		clock:      clockwork.NewRealClock(),
		expired:    IsExpiredAt[V],
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cch)
	}

	return cch
}

// DefaultTTL returns the time to live used by Insert. It is always positive.
func (c *Cache[K, V]) DefaultTTL() time.Duration { return c.defaultTTL }

// Insert adds value under key using the default time to live.
func (c *Cache[K, V]) Insert(key K, value V) error {
	return c.InsertWithTTL(key, value, c.defaultTTL)
}

// InsertWithTTL adds value under key, which expires after the given ttl. An
// expired entry stored under the same key is replaced. A still valid one
// results in ErrKeyAlreadyExists and is left untouched. A non-positive ttl
// yields an entry, which is expired right away. Keys not equal to themselves
// (e.g. NaN) are rejected with ErrInvalidKey.
func (c *Cache[K, V]) InsertWithTTL(key K, value V, ttl time.Duration) error {
	if isAbsent(key) {
		return errorchain.NewWithMessage(ErrInvalidKey, "can't add value under an absent key")
	}

	if isUnmatchable(key) {
		return errorchain.NewWithMessagef(ErrInvalidKey,
			"can't add value under the key '%v', which is not equal to itself", key)
	}

	if isAbsent(value) {
		return errorchain.NewWithMessage(ErrInvalidValue, "can't add an absent value")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if entry, ok := c.entries[key]; ok && !c.expired(now, entry) {
		c.stats.Conflicts++

		c.logger.Debug().Interface("_key", key).Msg("Rejecting insert of an already cached key")

		return errorchain.NewWithMessagef(ErrKeyAlreadyExists,
			"there already is a value stored under the key '%v'", key)
	}

	c.entries[key] = newEntry(value, now, ttl)
	c.stats.Inserts++

	return nil
}

// Retrieve returns the value stored under key. The boolean is false if
// there is no such value, or it is expired. In the latter case the entry is
// removed. The returned value is the stored one, not a copy. An absent key or
// one not equal to itself results in ErrInvalidArgument.
func (c *Cache[K, V]) Retrieve(key K) (V, bool, error) {
	var zero V

	if isAbsent(key) {
		return zero, false, errorchain.NewWithMessage(ErrInvalidArgument, "key is absent")
	}

	if isUnmatchable(key) {
		return zero, false, errorchain.NewWithMessagef(ErrInvalidArgument,
			"key '%v' is not equal to itself", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++

		return zero, false, nil
	}

	if c.expired(c.clock.Now(), entry) {
		delete(c.entries, key)

		c.stats.Misses++
		c.stats.Evictions++

		c.logger.Debug().Interface("_key", key).Msg("Evicted expired cache entry")

		return zero, false, nil
	}

	c.stats.Hits++

	return entry.Value, true, nil
}

// Lookup works like Retrieve, but reports the result as an option.
func (c *Cache[K, V]) Lookup(key K) (mo.Option[V], error) {
	value, ok, err := c.Retrieve(key)
	if err != nil || !ok {
		return mo.None[V](), err
	}

	return mo.Some(value), nil
}

// Purge removes all expired entries.
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	removed := 0

	for key, entry := range c.entries {
		if c.expired(now, entry) {
			delete(c.entries, key)

			removed++
		}
	}

	c.stats.Purged += safecast.MustConvert[uint64](removed)

	c.logger.Debug().Int("_removed", removed).Int("_remaining", len(c.entries)).
		Msg("Purged expired cache entries")
}

// Count returns the number of valid entries. Expired entries are not
// counted, even if they are not removed yet.
func (c *Cache[K, V]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.clock.Now()
	count := 0

	for _, entry := range c.entries {
		if !c.expired(now, entry) {
			count++
		}
	}

	return count
}

// IsExpired applies the configured ExpiryPredicate to entry using the
// current time.
func (c *Cache[K, V]) IsExpired(entry *Entry[V]) (bool, error) {
	if entry == nil {
		return false, errorchain.NewWithMessage(ErrInvalidArgument, "entry is absent")
	}

	return c.expired(c.clock.Now(), entry), nil
}

func (c *Cache[K, V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.stats
}
