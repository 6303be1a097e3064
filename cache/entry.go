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

import "time"

// Entry is a value held by the cache together with the point in time it
// expires at.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// ExpiryPredicate decides whether the given entry is expired at the given
// point in time.
type ExpiryPredicate[V any] func(now time.Time, entry *Entry[V]) bool

// IsExpiredAt is the default ExpiryPredicate. The boundary is inclusive, so
// an entry is expired at its ExpiresAt time already.
func IsExpiredAt[V any](now time.Time, entry *Entry[V]) bool {
	return !now.Before(entry.ExpiresAt)
}

func newEntry[V any](value V, now time.Time, ttl time.Duration) *Entry[V] {
	return &Entry[V]{Value: value, ExpiresAt: now.Add(ttl)}
}
