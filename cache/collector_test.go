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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	count int
	stats Stats
}

func (s staticSource) Count() int   { return s.count }
func (s staticSource) Stats() Stats { return s.stats }

func TestCollector(t *testing.T) {
	t.Parallel()

	// GIVEN
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("sessions", staticSource{
		count: 3,
		stats: Stats{Inserts: 4, Conflicts: 1, Hits: 5, Misses: 2, Evictions: 1, Purged: 6},
	}))

	// WHEN
	result, err := reg.Gather()

	// THEN
	require.NoError(t, err)
	require.Len(t, result, 2)

	entries := result[0]
	assert.Equal(t, "tidycache_entries", entries.GetName())
	assert.Equal(t, "Number of valid entries held by the cache", entries.GetHelp())
	assert.Equal(t, io_prometheus_client.MetricType_GAUGE, entries.GetType())
	require.Len(t, entries.GetMetric(), 1)
	assert.InDelta(t, 3.0, entries.GetMetric()[0].GetGauge().GetValue(), 0.0001)

	labels := entries.GetMetric()[0].GetLabel()
	require.Len(t, labels, 1)
	assert.Equal(t, "cache", labels[0].GetName())
	assert.Equal(t, "sessions", labels[0].GetValue())

	operations := result[1]
	assert.Equal(t, "tidycache_operations_total", operations.GetName())
	assert.Equal(t, io_prometheus_client.MetricType_COUNTER, operations.GetType())

	values := map[string]float64{}

	for _, metric := range operations.GetMetric() {
		require.Len(t, metric.GetLabel(), 2)
		assert.Equal(t, "sessions", metric.GetLabel()[0].GetValue())
		assert.Equal(t, "operation", metric.GetLabel()[1].GetName())

		values[metric.GetLabel()[1].GetValue()] = metric.GetCounter().GetValue()
	}

	assert.Equal(t, map[string]float64{
		"insert":   4,
		"conflict": 1,
		"hit":      5,
		"miss":     2,
		"eviction": 1,
		"purge":    6,
	}, values)
}

func TestCollectorReflectsCacheState(t *testing.T) {
	t.Parallel()

	// GIVEN
	cch := New[string, string](WithDefaultTTL[string, string](time.Hour))
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector("default", cch))

	require.NoError(t, cch.Insert("foo", "bar"))
	require.NoError(t, cch.Insert("bar", "baz"))

	// WHEN
	result, err := reg.Gather()

	// THEN
	require.NoError(t, err)
	require.NotEmpty(t, result)
	assert.Equal(t, "tidycache_entries", result[0].GetName())
	assert.InDelta(t, 2.0, result[0].GetMetric()[0].GetGauge().GetValue(), 0.0001)
}
