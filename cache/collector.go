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

import "github.com/prometheus/client_golang/prometheus"

type StatsSource interface {
	Count() int
	Stats() Stats
}

type collector struct {
	name       string
	src        StatsSource
	entries    *prometheus.Desc
	operations *prometheus.Desc
}

// NewCollector exposes the number of valid entries and the operation
// counters of src. name is used as value of the "cache" label.
func NewCollector(name string, src StatsSource) prometheus.Collector {
	return &collector{
		name: name,
		src:  src,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName("tidycache", "", "entries"),
			"Number of valid entries held by the cache",
			[]string{"cache"}, nil,
		),
		operations: prometheus.NewDesc(
			prometheus.BuildFQName("tidycache", "", "operations_total"),
			"Number of cache operations by outcome",
			[]string{"cache", "operation"}, nil,
		),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.operations
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.src.Count()), c.name)

	for _, op := range []struct {
		name  string
		value uint64
	}{
		{name: "insert", value: stats.Inserts},
		{name: "conflict", value: stats.Conflicts},
		{name: "hit", value: stats.Hits},
		{name: "miss", value: stats.Misses},
		{name: "eviction", value: stats.Evictions},
		{name: "purge", value: stats.Purged},
	} {
		ch <- prometheus.MustNewConstMetric(c.operations, prometheus.CounterValue, float64(op.value), c.name, op.name)
	}
}
