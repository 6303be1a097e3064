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
	"strconv"
	"strings"
	"time"

	"github.com/ccoveille/go-safecast"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// registerTranslations replaces the default translations of the comparison
// tags by ones which render time.Duration parameters as durations.
func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	for _, entry := range []struct {
		tag      string
		duration string
	}{
		{tag: "gt", duration: "{0} must be greater than {1}"},
		{tag: "gte", duration: "{0} must be {1} or greater"},
		{tag: "lt", duration: "{0} must be less than {1}"},
		{tag: "lte", duration: "{0} must be {1} or less"},
	} {
		tag := entry.tag
		template := entry.duration

		if err := validate.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error { return ut.Add(tag+"-duration", template, false) },
			comparisonTranslation(tag),
		); err != nil {
			return err
		}
	}

	return nil
}

func comparisonTranslation(tag string) validator.TranslationFunc {
	return func(ut ut.Translator, fe validator.FieldError) string {
		var (
			translation string
			err         error
		)

		kind := fe.Kind()
		if kind == reflect.Ptr {
			kind = fe.Type().Elem().Kind()
		}

		// nolint: exhaustive
		switch {
		case fe.Type() == reflect.TypeOf(time.Duration(0)):
			translation, err = ut.T(tag+"-duration", fe.Field(), fe.Param())
		case fe.Type() == reflect.TypeOf(time.Time{}):
			translation, err = ut.T(tag+"-datetime", fe.Field())
		case kind == reflect.String:
			translation, err = countedTranslation(ut, fe, tag+"-string", tag+"-string-character")
		case kind == reflect.Slice || kind == reflect.Map || kind == reflect.Array:
			translation, err = countedTranslation(ut, fe, tag+"-items", tag+"-items-item")
		default:
			var (
				f64    float64
				digits uint64
			)

			f64, digits, err = parseParam(fe.Param())
			if err == nil {
				translation, err = ut.T(tag+"-number", fe.Field(), ut.FmtNumber(f64, digits))
			}
		}

		if err != nil {
			return fe.Error()
		}

		return translation
	}
}

func countedTranslation(ut ut.Translator, fe validator.FieldError, key, pluralKey string) (string, error) {
	f64, digits, err := parseParam(fe.Param())
	if err != nil {
		return "", err
	}

	count, err := ut.C(pluralKey, f64, digits, ut.FmtNumber(f64, digits))
	if err != nil {
		return "", err
	}

	return ut.T(key, fe.Field(), count)
}

func parseParam(param string) (float64, uint64, error) {
	var digits uint64

	if idx := strings.Index(param, "."); idx != -1 {
		digits = safecast.MustConvert[uint64](len(param[idx+1:]))
	}

	f64, err := strconv.ParseFloat(param, 64)

	return f64, digits, err
}
