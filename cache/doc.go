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

// Package cache provides an in-process key-value cache, which invalidates
// its entries after a fixed time to live.
//
// Expired entries are not reclaimed in the background. An expired entry is
// removed either when Retrieve observes it, or when Purge is called. Count
// never reports expired entries, whether they are still held or not.
//
// Neither keys nor values may be absent. A value is absent if it is an
// untyped nil, or a nil pointer, map, slice, channel, function or
// interface. Zero values of other types are regular values.
package cache
