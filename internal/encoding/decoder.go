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

package encoding

import (
	"bytes"
	"errors"
	"io"

	"github.com/drone/envsubst/v2"
	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

// Decoder reads yaml (and thus json) documents into structs. The document
// is decoded into a generic map first and then mapped onto the target
// using mapstructure, which allows custom decode hooks.
type Decoder struct {
	decoderOpts
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	decoder := &Decoder{
		decoderOpts: decoderOpts{
			validator:   noopValidator{},
			tagName:     "yaml",
			decodeHooks: mapstructure.ComposeDecodeHookFunc(),
		},
	}

	for _, opt := range opts {
		opt(&decoder.decoderOpts)
	}

	return decoder
}

func (d *Decoder) Decode(out any, reader io.Reader) error {
	if d.substituteEnvVars {
		raw, err := io.ReadAll(reader)
		if err != nil {
			return errorchain.NewWithMessage(tidycache.ErrInternal,
				"reading object failed").CausedBy(err)
		}

		content, err := envsubst.EvalEnv(string(raw))
		if err != nil {
			return errorchain.NewWithMessage(tidycache.ErrConfiguration,
				"substitution of environment variables failed").CausedBy(err)
		}

		reader = bytes.NewReader([]byte(content))
	}

	var raw map[string]any

	if err := yaml.NewDecoder(reader).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return errorchain.NewWithMessage(tidycache.ErrConfiguration,
				"empty document").CausedBy(err)
		}

		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"parsing of object failed").CausedBy(err)
	}

	return d.DecodeMap(out, raw)
}

func (d *Decoder) DecodeMap(out any, in map[string]any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: d.errorOnUnused,
		TagName:     d.tagName,
		DecodeHook:  d.decodeHooks,
	})
	if err != nil {
		return errorchain.NewWithMessage(tidycache.ErrInternal,
			"failed creating object decoder").CausedBy(err)
	}

	if err = dec.Decode(in); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"decoding of object failed").CausedBy(err)
	}

	if err = d.validator.ValidateStruct(out); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"object validation failed").CausedBy(err)
	}

	return nil
}
