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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dadrus/tidycache/cmd/flags"
)

func TestNewValidateCmd(t *testing.T) {
	t.Parallel()

	// WHEN
	cmd := newValidateCmd()

	// THEN
	assert.Equal(t, "validate", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	configFlag := cmd.PersistentFlags().Lookup(flags.Config)
	assert.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	envPrefixFlag := cmd.PersistentFlags().Lookup(flags.EnvironmentConfigPrefix)
	assert.NotNil(t, envPrefixFlag)
	assert.Equal(t, "TIDYCACHE_", envPrefixFlag.DefValue)

	commands := cmd.Commands()
	assert.Len(t, commands, 2)
	assert.Contains(t, commands[0].Use, "config")
	assert.Contains(t, commands[1].Use, "scenario")
}

func TestNewReplayCmd(t *testing.T) {
	t.Parallel()

	// WHEN
	cmd := newReplayCmd()

	// THEN
	assert.Contains(t, cmd.Use, "replay")
	assert.NotNil(t, cmd.PersistentFlags().Lookup(flags.Config))
	assert.NotNil(t, cmd.PersistentFlags().Lookup(flags.EnvironmentConfigPrefix))

	outputFlag := cmd.Flags().Lookup(flags.Output)
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "text", outputFlag.DefValue)

	metricsFlag := cmd.Flags().Lookup(flags.Metrics)
	assert.NotNil(t, metricsFlag)
	assert.Equal(t, "false", metricsFlag.DefValue)
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, len(RootCmd.Commands()))
	for _, cmd := range RootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "replay")
}
