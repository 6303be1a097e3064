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

// Stats holds the operation counters of a cache since its creation.
type Stats struct {
	Inserts   uint64 `json:"inserts"   yaml:"inserts"`
	Conflicts uint64 `json:"conflicts" yaml:"conflicts"`
	Hits      uint64 `json:"hits"      yaml:"hits"`
	Misses    uint64 `json:"misses"    yaml:"misses"`
	Evictions uint64 `json:"evictions" yaml:"evictions"`
	Purged    uint64 `json:"purged"    yaml:"purged"`
}
