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

package apply

import (
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/flags"
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/parse"
	"github.com/spf13/cobra"
)

// localFlags holds the apply command flags
var localFlags = NewFlags()

func init() {
	localFlags.AddFlags(Cmd)
}

// Cmd is the Cobra object representing the apply command.
var Cmd = &cobra.Command{
	Use:   "apply",
	Short: "Applies aspects to synthesized CloudFormation templates.",
	Long: `Applies aspects to synthesized CloudFormation templates.

Reads the stacks of a cloud assembly, or standalone template files, rebuilds
each stack's construct tree from the aws:cdk:path metadata and runs the
configured aspects over it. Patched templates are written back in place unless
--output is set. Nothing is written if any aspect reports an error.`,
	Example: `  cfnaspects apply
  cfnaspects apply --assembly cdk.out --config aspects.yaml --stacks QCStack
  cfnaspects apply --template QCStack.template.json --region us-east-1 --output patched`,
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
			OutputFormat: flags.OutputFormat,
			OutPath:      localFlags.OutPath,
			MetricsFile:  localFlags.MetricsFile,
		}
		return ExecuteApply(cmd.OutOrStdout(), params)
	},
}
