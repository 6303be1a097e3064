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

package replay

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/tidycache/internal/scenario"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

type reportEncoder func(out io.Writer, report *scenario.Report) error

func newReportEncoder(format string) (reportEncoder, error) {
	switch format {
	case "text":
		return encodeText, nil
	case "json":
		return encodeJSON, nil
	case "yaml":
		return encodeYAML, nil
	default:
		return nil, errorchain.NewWithMessagef(tidycache.ErrArgument,
			"unsupported output format '%s'", format)
	}
}

func encodeJSON(out io.Writer, report *scenario.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func encodeYAML(out io.Writer, report *scenario.Report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2) // nolint: mnd

	if err := enc.Encode(report); err != nil {
		return err
	}

	return enc.Close()
}

func encodeText(out io.Writer, report *scenario.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) // nolint: mnd

	if len(report.Name) != 0 {
		fmt.Fprintf(tw, "Scenario: %s\n", report.Name)
	}

	for _, step := range report.Steps {
		outcome := "PASS"
		if !step.Passed {
			outcome = "FAIL"
		}

		details := make([]string, 0, 2) // nolint: mnd
		if step.Error != nil {
			details = append(details, "error="+step.Error.Code())
		}

		if len(step.Reason) != 0 {
			details = append(details, step.Reason)
		}

		key := ""
		if step.Key != nil {
			key = fmt.Sprintf("%v", step.Key)
		}

		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\t%s\n", step.Index, step.Op, key, outcome, strings.Join(details, "; "))
	}

	result := "PASSED"
	if !report.Passed {
		result = "FAILED"
	}

	fmt.Fprintf(tw, "Result: %s (%d steps, %d valid entries)\n", result, len(report.Steps), report.Count)
	fmt.Fprintf(tw, "Stats: inserts=%d conflicts=%d hits=%d misses=%d evictions=%d purged=%d\n",
		report.Stats.Inserts, report.Stats.Conflicts, report.Stats.Hits,
		report.Stats.Misses, report.Stats.Evictions, report.Stats.Purged)

	return tw.Flush()
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return errorchain.NewWithMessage(tidycache.ErrInternal, "failed to gather metrics").CausedBy(err)
	}

	enc := expfmt.NewEncoder(out, expfmt.NewFormat(expfmt.TypeTextPlain))

	for _, family := range families {
		if err = enc.Encode(family); err != nil {
			return errorchain.NewWithMessage(tidycache.ErrInternal, "failed to write metrics").CausedBy(err)
		}
	}

	return nil
}
