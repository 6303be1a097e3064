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
	"bytes"
	"context"
	"errors"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/fx"

	"github.com/dadrus/tidycache/cmd/flags"
	"github.com/dadrus/tidycache/internal"
	"github.com/dadrus/tidycache/internal/config"
	"github.com/dadrus/tidycache/internal/logging"
	tcprometheus "github.com/dadrus/tidycache/internal/prometheus"
	"github.com/dadrus/tidycache/internal/scenario"
	"github.com/dadrus/tidycache/internal/store"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

var ErrScenarioFailed = errors.New("scenario failed")

// NewReplayCommand represents the "replay" command.
func NewReplayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay [path to scenario]",
		Short: "Replays a scenario against a cache driven by a fake clock",
		Args:  cobra.ExactArgs(1),
		Example: "tidycache replay -c myconfig.yaml myscenario.yaml\n" +
			"tidycache replay -o json --metrics myscenario.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			if err := replay(cmd, args[0]); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().StringP(flags.Output, "o", "text", "Report format. One of text, json or yaml")
	cmd.Flags().Bool(flags.Metrics, false, "Print the cache metrics in Prometheus text format after the report")

	return cmd
}

func replay(cmd *cobra.Command, scenarioPath string) error {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	format, _ := cmd.Flags().GetString(flags.Output)
	withMetrics, _ := cmd.Flags().GetBool(flags.Metrics)

	enc, err := newReportEncoder(format)
	if err != nil {
		return err
	}

	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	var (
		cch      *store.Cache
		logger   zerolog.Logger
		gatherer prometheus.Gatherer
	)

	clock := clockwork.NewFakeClock()

	app := fx.New(
		fx.Supply(
			config.ConfigurationPath(configPath),
			config.EnvVarPrefix(envPrefix),
		),
		fx.Provide(func() clockwork.Clock { return clock }),
		fx.WithLogger(logging.NewEventLogger),
		internal.Module,
		fx.Populate(&cch, &logger, &gatherer),
	)
	if err = app.Err(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err = app.Start(ctx); err != nil {
		return err
	}

	logger.Info().
		Str("_cli", commandLine(cmd)).
		Str("_scenario", scenarioPath).
		Msg("Replaying scenario")

	report, err := scenario.NewRunner(cch, clock, logger).Run(sc)

	// metrics are gathered after stop to include the final purge
	if stopErr := app.Stop(ctx); stopErr != nil {
		logger.Warn().Err(stopErr).Msg("Failed to stop application")
	}

	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if err = enc(out, report); err != nil {
		return errorchain.NewWithMessage(tidycache.ErrInternal, "failed to write report").CausedBy(err)
	}

	if withMetrics {
		if err = writeMetrics(out, tcprometheus.FilterByPrefix(gatherer, "tidycache_")); err != nil {
			return err
		}
	}

	if !report.Passed {
		return errorchain.NewWithMessagef(ErrScenarioFailed,
			"%d of %d steps did not meet their expectations", len(report.Failed()), len(report.Steps))
	}

	return nil
}

func commandLine(cmd *cobra.Command) string {
	cli := bytes.NewBufferString(cmd.CommandPath())

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		cli.WriteString(" --")
		cli.WriteString(flag.Name)

		if flag.Value.Type() != "bool" {
			cli.WriteString(" ")
			cli.WriteString(flag.Value.String())
		}
	})

	return cli.String()
}

func loadScenario(path string) (*scenario.Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorchain.NewWithMessagef(tidycache.ErrArgument,
			"failed to open scenario file %s", path).CausedBy(err)
	}

	defer file.Close()

	return scenario.Decode(file)
}
