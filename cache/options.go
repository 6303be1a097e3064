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
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type Option[K comparable, V any] func(c *Cache[K, V])

// WithDefaultTTL sets the time to live used by Insert. Non-positive values
// are ignored, so DefaultTTL stays in effect instead of every entry expiring
// on insertion.
func WithDefaultTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *Cache[K, V]) {
		if ttl > 0 {
			c.defaultTTL = ttl
		}
	}
}

func WithClock[K comparable, V any](clock clockwork.Clock) Option[K, V] {
	return func(c *Cache[K, V]) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithExpiryPredicate replaces IsExpiredAt. Insert, Retrieve, Count and
// Purge all consult the same predicate.
func WithExpiryPredicate[K comparable, V any](predicate ExpiryPredicate[V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		if predicate != nil {
			c.expired = predicate
		}
	}
}

func WithLogger[K comparable, V any](logger zerolog.Logger) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.logger = logger
	}
}
