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

package store

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/tidycache/cache"
	"github.com/dadrus/tidycache/internal/config"
)

// Cache is the cache type managed by this module. Scenario files carry
// arbitrary scalar keys and values, hence no narrower types.
type Cache = cache.Cache[any, any]

// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(newCache),
	fx.Invoke(
		registerCollector,
		registerPurgeOnStop,
	),
)

type cacheArgs struct {
	fx.In

	Config config.CacheConfig
	Logger zerolog.Logger
	Clock  clockwork.Clock `optional:"true"`
}

func newCache(args cacheArgs) *Cache {
	args.Logger.Info().
		Str("_name", args.Config.Name).
		Dur("_default_ttl", args.Config.DefaultTTL).
		Msg("Instantiating cache")

	return cache.New[any, any](
		cache.WithDefaultTTL[any, any](args.Config.DefaultTTL),
		cache.WithClock[any, any](args.Clock),
		cache.WithLogger[any, any](args.Logger),
	)
}

func registerCollector(reg prometheus.Registerer, conf config.CacheConfig, cch *Cache) error {
	return reg.Register(cache.NewCollector(conf.Name, cch))
}

func registerPurgeOnStop(lifecycle fx.Lifecycle, logger zerolog.Logger, cch *Cache) {
	lifecycle.Append(
		fx.Hook{
			OnStop: func(_ context.Context) error {
				cch.Purge()

				stats := cch.Stats()

				logger.Info().
					Int("_entries", cch.Count()).
					Uint64("_inserts", stats.Inserts).
					Uint64("_hits", stats.Hits).
					Uint64("_misses", stats.Misses).
					Msg("Cache tear down")

				return nil
			},
		},
	)
}
