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

package infrafx

import (
	"go.uber.org/fx"

	"github.com/dadrus/tidycache/internal/config"
	"github.com/dadrus/tidycache/internal/logging"
	"github.com/dadrus/tidycache/internal/prometheus"
)

// Module bundles configuration, logging and the metrics registry. It
// expects config.ConfigurationPath and config.EnvVarPrefix to be supplied.
// nolint: gochecknoglobals
var Module = fx.Options(
	config.Module,
	logging.Module,
	prometheus.Module,
)
