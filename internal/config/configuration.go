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
	"github.com/dadrus/tidycache/internal/config/parser"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/validation"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

type (
	ConfigurationPath string
	EnvVarPrefix      string
)

type Configuration struct {
	Log   LoggingConfig `koanf:"log"`
	Cache CacheConfig   `koanf:"cache"`
}

func NewConfiguration(envPrefix EnvVarPrefix, configFile ConfigurationPath) (*Configuration, error) {
	result := defaultConfig()

	err := parser.New(
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfigSchema),
	).Load(&result)
	if err != nil {
		return nil, err
	}

	if err = validation.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"invalid configuration").CausedBy(err)
	}

	return &result, nil
}
