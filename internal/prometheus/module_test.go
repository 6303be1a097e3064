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

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule(t *testing.T) {
	t.Parallel()

	// GIVEN
	var (
		reg      prometheus.Registerer
		gatherer prometheus.Gatherer
	)

	app := fxtest.New(t, Module, fx.Populate(&reg, &gatherer))

	// WHEN
	app.RequireStart()
	defer app.RequireStop()

	// THEN
	require.NotNil(t, reg)
	require.NotNil(t, gatherer)

	families, err := gatherer.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestFilterByPrefix(t *testing.T) {
	t.Parallel()

	// GIVEN
	reg, gatherer := newRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "tidycache_test_total", Help: "test"})
	counter.Inc()
	reg.MustRegister(counter)

	// WHEN
	families, err := FilterByPrefix(gatherer, "tidycache_").Gather()

	// THEN
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "tidycache_test_total", families[0].GetName())
	assert.InDelta(t, 1.0, families[0].GetMetric()[0].GetCounter().GetValue(), 0.0001)
}
