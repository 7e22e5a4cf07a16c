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

package version

import (
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/util"
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/version"
	"github.com/spf13/cobra"
)

// Cmd is the Cobra object representing the cfnaspects version command.
var Cmd = &cobra.Command{
	Use:     "version",
	Short:   "Prints the version of this CLI",
	Example: `  cfnaspects version`,
	Args:    cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		util.MustFprintf(cmd.OutOrStdout(), "%s %s\n", metadata.CLIName, version.VERSION)
	},
}
