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

package config

import (
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.NoLevel) {
		return val, nil
	}

	// nolint: forcetypeassert
	level, err := zerolog.ParseLevel(strings.ToLower(val.(string)))
	if err != nil {
		return nil, errorchain.NewWithMessagef(tidycache.ErrConfiguration,
			"unsupported log level '%s'", val).CausedBy(err)
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(LogTextFormat) {
		return val, nil
	}

	// nolint: forcetypeassert
	switch strings.ToLower(val.(string)) {
	case "gelf":
		return LogGelfFormat, nil
	case "text", "":
		return LogTextFormat, nil
	default:
		return nil, errorchain.NewWithMessagef(tidycache.ErrConfiguration,
			"unsupported log format '%s'", val)
	}
}
