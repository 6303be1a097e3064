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

package scenario

import (
	"io"
	"math"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/dadrus/tidycache/internal/encoding"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/validation"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

type Operation string

const (
	OpInsert   Operation = "insert"
	OpRetrieve Operation = "retrieve"
	OpCount    Operation = "count"
	OpPurge    Operation = "purge"
	OpAdvance  Operation = "advance"
)

// Step is a single cache operation. Key and Value may be left out (or set
// to null) to pass an absent key or value to the cache. For a retrieve step
// an omitted Expect means the key is expected to be absent, for a count
// step it disables the check.
type Step struct {
	Op          Operation      `yaml:"op"           validate:"required,oneof=insert retrieve count purge advance"`
	Key         any            `yaml:"key"          validate:"omitempty,scalar"`
	Value       any            `yaml:"value"`
	TTL         *time.Duration `yaml:"ttl"`
	Duration    time.Duration  `yaml:"duration"     validate:"required_if=Op advance,gte=0"`
	Expect      any            `yaml:"expect"`
	ExpectError string         `yaml:"expect_error" validate:"omitempty,oneof=invalid_key invalid_value invalid_argument key_already_exists"` //nolint:lll
}

type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps" validate:"required,gt=0,dive"`
}

// nolint: gochecknoglobals
var stepValidator = func() *validation.Validator {
	v, err := validation.NewValidator(
		validation.WithTagValidator("scalar", "{0} must be a string, number (other than NaN) or boolean", isScalar),
	)
	if err != nil {
		panic(err)
	}

	return v
}()

func (s *Scenario) Validate() error {
	if err := stepValidator.ValidateStruct(s); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrConfiguration,
			"invalid scenario").CausedBy(err)
	}

	return nil
}

// Decode reads a yaml scenario document from r. Environment variables
// referenced in the document are substituted.
func Decode(r io.Reader) (*Scenario, error) {
	var sc Scenario

	dec := encoding.NewDecoder(
		encoding.WithEnvVarsSubstitution(true),
		encoding.WithErrorOnUnused(true),
		encoding.WithValidator(stepValidator),
		encoding.WithDecodeHooks(mapstructure.StringToTimeDurationHookFunc()),
	)

	if err := dec.Decode(&sc, r); err != nil {
		return nil, err
	}

	return &sc, nil
}

func isScalar(fl validator.FieldLevel) bool {
	// nolint: exhaustive
	switch fl.Field().Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(fl.Field().Float())
	default:
		return false
	}
}
