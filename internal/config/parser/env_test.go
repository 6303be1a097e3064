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

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKeyToPath(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		key  string
		path string
	}{
		"single level":            {key: "FOO", path: "foo"},
		"nested":                  {key: "LOG_LEVEL", path: "log.level"},
		"underscore in key":       {key: "CACHE_DEFAULT__TTL", path: "cache.default_ttl"},
		"multiple underscores":    {key: "A__B__C_D", path: "a_b_c.d"},
		"lower case is preserved": {key: "cache_name", path: "cache.name"},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.path, envKeyToPath(tc.key))
		})
	}
}

func TestKoanfFromEnv(t *testing.T) {
	// GIVEN
	t.Setenv("FOO_CACHE_DEFAULT__TTL", "5m")
	t.Setenv("FOO_LOG_LEVEL", "debug")
	t.Setenv("BAR_LOG_LEVEL", "error")

	// WHEN
	konf, err := koanfFromEnv("FOO_")

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "5m", konf.String("cache.default_ttl"))
	assert.Equal(t, "debug", konf.String("log.level"))
}

func TestKoanfFromEnvWithoutPrefix(t *testing.T) {
	// GIVEN
	t.Setenv("LOG_LEVEL", "debug")

	// WHEN
	konf, err := koanfFromEnv("")

	// THEN
	require.NoError(t, err)
	assert.Empty(t, konf.Keys())
}

func TestMergeMaps(t *testing.T) {
	t.Parallel()

	// GIVEN
	dest := map[string]any{
		"log":   map[string]any{"level": "info", "format": "text"},
		"cache": map[string]any{"name": "default"},
	}
	src := map[string]any{
		"log":   map[string]any{"level": "debug"},
		"cache": "replaced",
		"new":   1,
	}

	// WHEN
	mergeMaps(dest, src)

	// THEN
	assert.Equal(t, map[string]any{
		"log":   map[string]any{"level": "debug", "format": "text"},
		"cache": "replaced",
		"new":   1,
	}, dest)
}
