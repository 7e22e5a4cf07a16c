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
	"github.com/spf13/cobra"
)

// Flags holds all the flags specific to the apply command
type Flags struct {
	// OutPath is the directory to write templates to. Empty overwrites the
	// input templates.
	OutPath string
	// MetricsFile is a node_exporter textfile to write metrics to.
	MetricsFile string
}

// NewFlags creates a new instance of Flags with default values
func NewFlags() *Flags {
	return &Flags{}
}

// AddFlags adds all apply-specific flags to the command
func (af *Flags) AddFlags(cmd *cobra.Command) {
	flags.AddInputs(cmd)
	flags.AddConfig(cmd)
	flags.AddStacks(cmd)
	flags.AddEnvironment(cmd)
	flags.AddCondition(cmd)
	flags.AddOutputFormat(cmd)

	cmd.Flags().StringVar(&af.OutPath, "output", af.OutPath,
		`Directory to write the patched templates to. Defaults to overwriting the input templates, which only rewrites changed ones.`)
	cmd.Flags().StringVar(&af.MetricsFile, "metrics-file", af.MetricsFile,
		`If set, write aspect metrics to this file in the node_exporter textfile format.`)
}
