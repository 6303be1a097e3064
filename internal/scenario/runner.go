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
	"errors"
	"fmt"
	"math"

	"github.com/ccoveille/go-safecast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/dadrus/tidycache/cache"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

// Runner executes scenarios against a cache. Time only passes by the
// advance steps, as the cache is expected to use the runner's fake clock.
type Runner struct {
	cch    *cache.Cache[any, any]
	clock  *clockwork.FakeClock
	logger zerolog.Logger
}

func NewRunner(cch *cache.Cache[any, any], clock *clockwork.FakeClock, logger zerolog.Logger) *Runner {
	return &Runner{cch: cch, clock: clock, logger: logger}
}

func (r *Runner) Run(sc *Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:     uuid.NewString(),
		Name:   sc.Name,
		Passed: true,
		Steps:  make([]StepResult, 0, len(sc.Steps)),
	}

	logger := r.logger.With().Str("_run_id", report.ID).Logger()
	logger.Debug().Str("_name", sc.Name).Int("_steps", len(sc.Steps)).Msg("Running scenario")

	for idx, step := range sc.Steps {
		res, err := r.execute(step)
		if err != nil {
			return nil, errorchain.NewWithMessagef(tidycache.ErrInternal,
				"step %d (%s) failed", idx, step.Op).CausedBy(err)
		}

		res.Index = idx
		res.Op = step.Op
		res.Key = step.Key

		logger.Debug().
			Int("_step", idx).
			Str("_op", string(step.Op)).
			Bool("_passed", res.Passed).
			Msg("Scenario step executed")

		report.Passed = report.Passed && res.Passed
		report.Steps = append(report.Steps, res)
	}

	report.Count = r.cch.Count()
	report.Stats = r.cch.Stats()

	return report, nil
}

func (r *Runner) execute(step Step) (StepResult, error) {
	switch step.Op {
	case OpInsert:
		var err error

		if step.TTL != nil {
			err = r.cch.InsertWithTTL(step.Key, step.Value, *step.TTL)
		} else {
			err = r.cch.Insert(step.Key, step.Value)
		}

		return checkError(StepResult{}, step, err)
	case OpRetrieve:
		opt, err := r.cch.Lookup(step.Key)
		if err != nil {
			return checkError(StepResult{}, step, err)
		}

		value, found := opt.Get()
		res := StepResult{Result: value}

		return checkValue(res, step, found)
	case OpCount:
		count := r.cch.Count()
		res := StepResult{Result: count, Passed: true}

		if expected, ok := expectedCount(step.Expect); step.Expect != nil && (!ok || expected != count) {
			res.Passed = false
			res.Reason = fmt.Sprintf("expected count %v, got %d", step.Expect, count)
		}

		return checkError(res, step, nil)
	case OpPurge:
		r.cch.Purge()

		return checkError(StepResult{Passed: true}, step, nil)
	case OpAdvance:
		r.clock.Advance(step.Duration)

		return checkError(StepResult{Result: r.clock.Now(), Passed: true}, step, nil)
	default:
		return StepResult{}, errorchain.NewWithMessagef(tidycache.ErrArgument,
			"unsupported operation '%s'", step.Op)
	}
}

func checkValue(res StepResult, step Step, found bool) (StepResult, error) {
	res, err := checkError(res, step, nil)
	if err != nil || !res.Passed {
		return res, err
	}

	switch {
	case step.Expect == nil && found:
		res.Passed = false
		res.Reason = fmt.Sprintf("expected no value, got %v", res.Result)
	case step.Expect != nil && !found:
		res.Passed = false
		res.Reason = fmt.Sprintf("expected %v, got no value", step.Expect)
	case step.Expect != nil && !cmp.Equal(step.Expect, res.Result):
		res.Passed = false
		res.Reason = "unexpected value: " + cmp.Diff(step.Expect, res.Result)
	}

	return res, nil
}

// checkError matches err against the expected error of step. Errors not
// raised by the cache are returned as is.
func checkError(res StepResult, step Step, err error) (StepResult, error) {
	if err == nil {
		if len(step.ExpectError) != 0 {
			res.Passed = false
			res.Reason = fmt.Sprintf("expected error '%s'", step.ExpectError)
		} else if len(res.Reason) == 0 {
			res.Passed = true
		}

		return res, nil
	}

	var chain *errorchain.ErrorChain
	if !errors.As(err, &chain) || !isCacheError(err) {
		return res, err
	}

	res.Error = chain

	if chain.Code() == step.ExpectError {
		res.Passed = true
	} else {
		res.Passed = false
		res.Reason = fmt.Sprintf("unexpected error '%s'", chain.Code())
	}

	return res, nil
}

func isCacheError(err error) bool {
	return errors.Is(err, cache.ErrInvalidKey) ||
		errors.Is(err, cache.ErrInvalidValue) ||
		errors.Is(err, cache.ErrInvalidArgument) ||
		errors.Is(err, cache.ErrKeyAlreadyExists)
}

// expectedCount converts a count expectation to int. Whole floating point
// numbers, like the 1.0 yaml decodes to float64, are accepted.
func expectedCount(expect any) (int, bool) {
	var (
		count int
		err   error
	)

	switch n := expect.(type) {
	case int:
		return n, true
	case int64:
		count, err = safecast.ToInt(n)
	case uint64:
		count, err = safecast.ToInt(n)
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}

		count, err = safecast.ToInt(n)
	default:
		return 0, false
	}

	return count, err == nil
}
