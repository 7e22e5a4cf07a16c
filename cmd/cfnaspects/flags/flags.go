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

package flags

import (
	"github.com/spf13/cobra"
)

const (
	// assemblyFlag is the flag name for AssemblyDir below.
	assemblyFlag = "assembly"

	// templateFlag is the flag name for Templates below.
	templateFlag = "template"

	// stackNameFlag is the flag name for StackName below.
	stackNameFlag = "stack-name"

	// configFlag is the flag name for ConfigPath below.
	configFlag = "config"

	// stacksFlag is the flag name for Stacks below.
	stacksFlag = "stacks"

	// DefaultAssemblyDir is the directory the CDK synthesizes into.
	DefaultAssemblyDir = "cdk.out"
)

var (
	// AssemblyDir is the cloud assembly directory to read stacks from.
	AssemblyDir string

	// Templates are standalone template files to read instead of an assembly.
	Templates []string

	// StackName names the stack of a single --template file.
	StackName string

	// ConfigPath is the path of the aspects configuration file.
	ConfigPath string

	// Stacks restricts processing to the named stacks.
	Stacks []string

	// Region is the region of stacks with an unknown environment.
	Region string

	// Account is the account of stacks with an unknown environment.
	Account string

	// Condition is a condition to add to the event rule resources.
	Condition string

	// OutputFormat is the format templates are written in.
	OutputFormat string
)

// AddInputs adds the --assembly, --template and --stack-name flags.
func AddInputs(cmd *cobra.Command) {
	cmd.Flags().StringVar(&AssemblyDir, assemblyFlag, DefaultAssemblyDir,
		`Cloud assembly directory to read stacks from. Ignored when --template is set.`)
	cmd.Flags().StringArrayVar(&Templates, templateFlag, nil,
		`Template file to process instead of a cloud assembly. May be repeated.`)
	cmd.Flags().StringVar(&StackName, stackNameFlag, "",
		`Stack name of a single --template file. Defaults to the file name without its extensions.`)
}

// AddConfig adds the --config flag.
func AddConfig(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ConfigPath, configFlag, "",
		`Aspects configuration file. Without one, the default aspects run on every stack.`)
}

// AddStacks adds the --stacks flag.
func AddStacks(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&Stacks, stacksFlag, nil,
		`Accepts a comma-separated list of stack names or artifact IDs to process. Defaults to all stacks.`)
}

// AddEnvironment adds the --region and --account flags.
func AddEnvironment(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Region, "region", "",
		`Region of stacks synthesized without one. Configured stack regions take precedence.`)
	cmd.Flags().StringVar(&Account, "account", "",
		`Account of stacks synthesized without one. Configured stack accounts take precedence.`)
}

// AddCondition adds the --condition flag.
func AddCondition(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Condition, "condition", "",
		`If set, attach this template condition to the event rule resources. The condition must be defined in the template.`)
}

// AddOutputFormat adds the --format flag.
func AddOutputFormat(cmd *cobra.Command) {
	cmd.Flags().StringVar(&OutputFormat, "format", "",
		`Output format. Accepts 'yaml' and 'json'. Defaults to the format of each input template.`)
}
