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

package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// nolint: gochecknoglobals
var defaultValidator = func() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}

	return v
}()

type Validator struct {
	v *validator.Validate
	t ut.Translator
}

func NewValidator(opts ...Option) (*Validator, error) {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	translate, _ := uni.GetTranslator("en")
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := entranslations.RegisterDefaultTranslations(validate, translate); err != nil {
		return nil, err
	}

	if err := registerTranslations(validate, translate); err != nil {
		return nil, err
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fieldName(fld.Tag)
		if len(name) == 0 {
			name = fld.Name
		}

		return "'" + name + "'"
	})

	for _, opt := range opts {
		if err := opt(validate, translate); err != nil {
			return nil, err
		}
	}

	return &Validator{v: validate, t: translate}, nil
}

func (v *Validator) ValidateStruct(s any) error { return wrapError(v.v.Struct(s), v.t) }

func ValidateStruct(s any) error { return defaultValidator.ValidateStruct(s) }

func DefaultValidator() *Validator { return defaultValidator }

func fieldName(tag reflect.StructTag) string {
	for _, tagName := range []string{"koanf", "mapstructure", "yaml", "json"} {
		if val := tag.Get(tagName); len(val) != 0 {
			return strings.SplitN(val, ",", 2)[0] // nolint: mnd
		}
	}

	return ""
}
