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
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

type Option func(v *validator.Validate, t ut.Translator) error

// WithTagValidator registers a custom validation under tag together with
// the message template used to report its failures. The template may refer
// to the field name with {0} and to the tag parameter with {1}.
func WithTagValidator(tag, messageTemplate string, fn validator.Func) Option {
	return func(v *validator.Validate, t ut.Translator) error {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}

		return v.RegisterTranslation(tag, t,
			func(ut ut.Translator) error { return ut.Add(tag, messageTemplate, true) },
			func(ut ut.Translator, fe validator.FieldError) string {
				msg, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
				if err != nil {
					return fe.Error()
				}

				return msg
			})
	}
}
