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

package aspects

import (
	"io"

	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/util"
	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/spf13/cobra"
)

// Cmd is the Cobra object representing the aspects command.
var Cmd = &cobra.Command{
	Use:     "aspects",
	Short:   "Lists the built-in aspects",
	Long:    `Lists the built-in aspects with their default priority. Aspects marked as default run when no configuration file is given.`,
	Example: `  cfnaspects aspects`,
	Args:    cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		List(cmd.OutOrStdout())
	},
}

// List prints the registered aspects in registration order.
func List(out io.Writer) {
	w := util.NewWriter(out)
	util.MustFprintf(w, "NAME\tPRIORITY\tDEFAULT\tDESCRIPTION\n")
	for _, r := range aspect.Registered() {
		util.MustFprintf(w, "%s\t%d\t%t\t%s\n", r.Name, r.Priority, r.Default, r.Description)
	}
	if err := w.Flush(); err != nil {
		panic(err)
	}
}
