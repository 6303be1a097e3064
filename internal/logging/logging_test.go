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

package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/dadrus/tidycache/internal/config"
)

func TestNewTextLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(config.LoggingConfig{Format: config.LogTextFormat, Level: zerolog.InfoLevel}, buf)

	// WHEN
	logger.Info().Msg("Hello tidycache")
	logger.Debug().Msg("Filtered out")

	// THEN
	out := buf.String()
	assert.NotContains(t, out, "{")
	assert.NotContains(t, out, "short_message")
	assert.Contains(t, out, "Hello tidycache")
	assert.NotContains(t, out, "Filtered out")
}

func TestNewGelfLogger(t *testing.T) {
	// GIVEN
	buf := &bytes.Buffer{}
	logger := newLogger(config.LoggingConfig{Format: config.LogGelfFormat, Level: zerolog.DebugLevel}, buf)

	// WHEN
	logger.Info().Msg("Hello tidycache")

	// THEN
	out := buf.String()
	assert.Contains(t, out, `"_level_name":"INFO"`)
	assert.Contains(t, out, `"version":"1.1"`)
	assert.Contains(t, out, `"host"`)
	assert.Contains(t, out, `"timestamp"`)
	assert.Contains(t, out, `"level":6`)
	assert.Contains(t, out, `"short_message":"Hello tidycache"`)
}

func TestConvertLogLevelToSyslogLevel(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		level    zerolog.Level
		expected SyslogLevel
	}{
		{level: zerolog.TraceLevel, expected: Debugging},
		{level: zerolog.DebugLevel, expected: Debugging},
		{level: zerolog.InfoLevel, expected: Informational},
		{level: zerolog.WarnLevel, expected: Warning},
		{level: zerolog.ErrorLevel, expected: Error},
		{level: zerolog.FatalLevel, expected: Critical},
		{level: zerolog.PanicLevel, expected: Alert},
		{level: zerolog.NoLevel, expected: Emergency},
	} {
		t.Run("case="+tc.level.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, toSyslogLevel(tc.level))
		})
	}
}
