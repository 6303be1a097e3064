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
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/validation"
)

type testObject struct {
	Name    string        `yaml:"name"    validate:"required"`
	Timeout time.Duration `yaml:"timeout"`
	Tags    []string      `yaml:"tags"`
}

func TestDecoderDecode(t *testing.T) {
	t.Setenv("TEST_NAME", "from env")

	for _, tc := range []struct {
		uc     string
		doc    string
		opts   []DecoderOption
		assert func(t *testing.T, err error, obj *testObject)
	}{
		{
			uc:   "plain yaml",
			doc:  "name: foo\ntags: [a, b]\n",
			opts: []DecoderOption{WithValidator(validation.DefaultValidator())},
			assert: func(t *testing.T, err error, obj *testObject) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "foo", obj.Name)
				assert.Equal(t, []string{"a", "b"}, obj.Tags)
			},
		},
		{
			uc:   "json document",
			doc:  `{"name": "bar"}`,
			opts: []DecoderOption{WithValidator(validation.DefaultValidator())},
			assert: func(t *testing.T, err error, obj *testObject) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "bar", obj.Name)
			},
		},
		{
			uc:  "env substitution enabled",
			doc: "name: ${TEST_NAME}",
			opts: []DecoderOption{
				WithEnvVarsSubstitution(true),
				WithValidator(validation.DefaultValidator()),
			},
			assert: func(t *testing.T, err error, obj *testObject) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "from env", obj.Name)
			},
		},
		{
			uc:  "env substitution disabled",
			doc: "name: ${TEST_NAME}",
			assert: func(t *testing.T, err error, obj *testObject) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "${TEST_NAME}", obj.Name)
			},
		},
		{
			uc:   "decode hooks are applied",
			doc:  "name: foo\ntimeout: 5s\n",
			opts: []DecoderOption{WithDecodeHooks(mapstructure.StringToTimeDurationHookFunc())},
			assert: func(t *testing.T, err error, obj *testObject) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, 5*time.Second, obj.Timeout)
			},
		},
		{
			uc:   "unused keys are rejected",
			doc:  "name: foo\nbar: baz\n",
			opts: []DecoderOption{WithErrorOnUnused(true)},
			assert: func(t *testing.T, err error, _ *testObject) {
				t.Helper()

				require.ErrorIs(t, err, tidycache.ErrConfiguration)
				assert.Contains(t, err.Error(), "decoding of object failed")
			},
		},
		{
			uc:   "validation fails",
			doc:  "tags: [a]",
			opts: []DecoderOption{WithValidator(validation.DefaultValidator())},
			assert: func(t *testing.T, err error, _ *testObject) {
				t.Helper()

				require.ErrorIs(t, err, tidycache.ErrConfiguration)
				assert.Contains(t, err.Error(), "'name' is a required field")
			},
		},
		{
			uc:  "malformed document",
			doc: "name: [foo",
			assert: func(t *testing.T, err error, _ *testObject) {
				t.Helper()

				require.ErrorIs(t, err, tidycache.ErrConfiguration)
				assert.Contains(t, err.Error(), "parsing of object failed")
			},
		},
		{
			uc:  "empty document",
			doc: "",
			assert: func(t *testing.T, err error, _ *testObject) {
				t.Helper()

				require.ErrorIs(t, err, tidycache.ErrConfiguration)
				assert.Contains(t, err.Error(), "empty document")
			},
		},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			// GIVEN
			var obj testObject

			dec := NewDecoder(tc.opts...)

			// WHEN
			err := dec.Decode(&obj, strings.NewReader(tc.doc))

			// THEN
			tc.assert(t, err, &obj)
		})
	}
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) { return 0, errors.New("read failed") }

func TestDecoderDecodeWithFailingReader(t *testing.T) {
	t.Parallel()

	// GIVEN
	var obj testObject

	dec := NewDecoder(WithEnvVarsSubstitution(true))

	// WHEN
	err := dec.Decode(&obj, failingReader{})

	// THEN
	require.ErrorIs(t, err, tidycache.ErrInternal)
}

func TestDecoderOptions(t *testing.T) {
	t.Parallel()

	// GIVEN
	var opts decoderOpts

	// WHEN
	for _, apply := range []DecoderOption{
		WithValidator(nil),
		WithTagName("json"),
		WithErrorOnUnused(true),
		WithEnvVarsSubstitution(true),
		WithDecodeHooks(),
	} {
		apply(&opts)
	}

	// THEN
	assert.Nil(t, opts.validator)
	assert.Nil(t, opts.decodeHooks)
	assert.Equal(t, "json", opts.tagName)
	assert.True(t, opts.errorOnUnused)
	assert.True(t, opts.substituteEnvVars)
}
