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
	"bytes"
	"os"

	"github.com/knadh/koanf/maps"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
	"github.com/dadrus/tidycache/schema"
)

const configSchemaURL = "config.schema.json"

// ValidateConfigSchema checks the yaml file referenced by configPath
// against the configuration JSON schema.
func ValidateConfigSchema(configPath string) error {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return errorchain.NewWithMessagef(tidycache.ErrConfiguration,
			"failed to read config file %s", configPath).CausedBy(err)
	}

	var conf map[string]any

	if err = yaml.Unmarshal(raw, &conf); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"failed to parse config").CausedBy(err)
	}

	if conf == nil {
		// empty file, nothing to validate
		return nil
	}

	compiled, err := compileSchema()
	if err != nil {
		return errorchain.NewWithMessage(tidycache.ErrInternal,
			"failed to compile JSON schema").CausedBy(err)
	}

	maps.IntfaceKeysToStrings(conf)

	if err = compiled.Validate(conf); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"config does not match schema").CausedBy(err)
	}

	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.ConfigSchema))
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(configSchemaURL, doc); err != nil {
		return nil, err
	}

	return compiler.Compile(configSchemaURL)
}
