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
	"github.com/spf13/cobra"
)

// Flags holds all the flags specific to the vet command
type Flags struct {
	// Diff prints a YAML diff of each changed resource.
	Diff bool
}

// NewFlags creates a new instance of Flags with default values
func NewFlags() *Flags {
	return &Flags{}
}

// AddFlags adds all vet-specific flags to the command
func (vf *Flags) AddFlags(cmd *cobra.Command) {
	flags.AddInputs(cmd)
	flags.AddConfig(cmd)
	flags.AddStacks(cmd)
	flags.AddEnvironment(cmd)
	flags.AddCondition(cmd)

	cmd.Flags().BoolVar(&vf.Diff, "diff", vf.Diff,
		`If enabled, print a YAML diff of every changed resource`)
}
