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
	"github.com/dadrus/tidycache/cache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

type StepResult struct {
	Index  int                    `json:"index"            yaml:"index"`
	Op     Operation              `json:"op"               yaml:"op"`
	Key    any                    `json:"key,omitempty"    yaml:"key,omitempty"`
	Result any                    `json:"result,omitempty" yaml:"result,omitempty"`
	Error  *errorchain.ErrorChain `json:"error,omitempty"  yaml:"error,omitempty"`
	Passed bool                   `json:"passed"           yaml:"passed"`
	Reason string                 `json:"reason,omitempty" yaml:"reason,omitempty"`
}

type Report struct {
	ID     string       `json:"id"             yaml:"id"`
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Passed bool         `json:"passed"         yaml:"passed"`
	Count  int          `json:"count"          yaml:"count"`
	Stats  cache.Stats  `json:"stats"          yaml:"stats"`
	Steps  []StepResult `json:"steps"          yaml:"steps"`
}

func (r *Report) Failed() []StepResult {
	var failed []StepResult

	for _, step := range r.Steps {
		if !step.Passed {
			failed = append(failed, step)
		}
	}

	return failed
}
