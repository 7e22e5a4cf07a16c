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

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspectserrors/examples"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/spf13/cobra"
)

var idFlag string

var rootCmd = &cobra.Command{
	Use:   "cfnaspectserrors",
	Short: "List all error codes and example errors",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, _ []string) {
		e := examples.Generate()
		out := cmd.OutOrStdout()

		if idFlag == "" {
			printErrorCodes(out)
		}
		idFlag = strings.TrimPrefix(idFlag, "CFA")
		printErrors(out, idFlag, e)
		if missingErrors(out, e) {
			os.Exit(1)
		}
	},
}

// missingErrors reports codes with no examples, and gaps in the 1XXX range.
func missingErrors(out io.Writer, e examples.AllExamples) bool {
	// Error IDs begin at 1001.
	previous := 1000
	missing := false
	for _, id := range status.CodeRegistry() {
		idInt, err := strconv.Atoi(id)
		if err != nil {
			fmt.Fprintf(out, "Non-numeric error ID: %s\n", id)
			continue
		}
		if idInt-previous > 1 && idInt < 2000 {
			fmt.Fprintf(out, "CFA%d must be either explicitly marked obsolete, or its package is not imported\n", previous+1)
			missing = true
		} else if !e[id].Deprecated && len(e[id].Examples) == 0 {
			fmt.Fprintf(out, "Missing example(s) in cmd/cfnaspectserrors/examples/examples.go for code: %s\n", id)
			missing = true
		}
		previous = idInt
	}
	return missing
}

func init() {
	rootCmd.Flags().StringVar(&idFlag, "id", "", "if set, only print errors for the passed ID")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func sortedErrors(e examples.AllExamples) []status.Error {
	var allErrs []status.Error
	for _, errs := range e {
		if errs.Deprecated {
			continue
		}
		allErrs = append(allErrs, errs.Examples...)
	}
	sort.Slice(allErrs, func(i, j int) bool {
		return allErrs[i].Error() < allErrs[j].Error()
	})
	return allErrs
}

func printErrorCodes(out io.Writer) {
	fmt.Fprintln(out, "=== USED ERROR CODES ===")
	for _, code := range status.CodeRegistry() {
		fmt.Fprintln(out, code)
	}
	fmt.Fprintln(out)
}

func printErrors(out io.Writer, id string, e examples.AllExamples) {
	printedHeader := false
	for _, err := range sortedErrors(e) {
		if id == "" || err.Code() == id {
			if !printedHeader {
				fmt.Fprintln(out, "=== SAMPLE ERRORS ===")
				fmt.Fprintln(out)
				printedHeader = true
			}
			fmt.Fprintln(out, err.Error())
			fmt.Fprintln(out)
		}
	}
}
