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

package validate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/tidycache/internal/scenario"
	"github.com/dadrus/tidycache/internal/tidycache"
	"github.com/dadrus/tidycache/internal/x/errorchain"
)

// NewValidateScenarioCommand represents the "validate scenario" command.
func NewValidateScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "scenario [path to scenario]",
		Short:   "Validates a scenario file",
		Args:    cobra.ExactArgs(1),
		Example: "tidycache validate scenario myscenario.yaml",
		Run: func(cmd *cobra.Command, args []string) {
			count, err := validateScenario(args[0])
			if err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)

				return
			}

			cmd.Printf("Scenario is valid (%d steps)\n", count)
		},
	}
}

func validateScenario(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, errorchain.NewWithMessagef(tidycache.ErrArgument,
			"failed to open scenario file %s", path).CausedBy(err)
	}

	defer file.Close()

	sc, err := scenario.Decode(file)
	if err != nil {
		return 0, err
	}

	return len(sc.Steps), nil
}
