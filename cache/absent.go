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

import "reflect"

func isAbsent(val any) bool {
	if val == nil {
		return true
	}

	rv := reflect.ValueOf(val)

	// nolint: exhaustive
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// isUnmatchable reports keys which never compare equal to themselves, like
// NaN. A map can neither find nor delete an entry stored under such a key.
func isUnmatchable[K comparable](key K) bool {
	return key != key // nolint: gocritic, staticcheck
}
