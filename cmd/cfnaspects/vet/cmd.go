// Copyright 2026 Google LLC
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

package vet

import (
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/flags"
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/parse"
	"github.com/spf13/cobra"
)

// localFlags holds the vet command flags
var localFlags = NewFlags()

func init() {
	localFlags.AddFlags(Cmd)
}

// Cmd is the Cobra object representing the vet command.
var Cmd = &cobra.Command{
	Use:   "vet",
	Short: "Reports the changes aspects would make, without writing them.",
	Long: `Reports the changes aspects would make, without writing them.

Prints every changed construct and a JSON merge patch per stack. Exits with a
non-zero status if any aspect reports an error.`,
	Example: `  cfnaspects vet
  cfnaspects vet --config aspects.yaml --diff`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		params := ExecParams{
			Options: parse.Options{
				AssemblyDir: flags.AssemblyDir,
				Templates:   flags.Templates,
				StackName:   flags.StackName,
				ConfigPath:  flags.ConfigPath,
				Stacks:      flags.Stacks,
				Region:      flags.Region,
				Account:     flags.Account,
				Condition:   flags.Condition,
			},
			Diff: localFlags.Diff,
		}
		return ExecuteVet(cmd.OutOrStdout(), params)
	},
}
