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
	"io"

	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/parse"
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/util"
	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/patch"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/molecular-unfolding/cfnaspects/pkg/util/log"
)

// ExecParams contains all parameters needed to execute the vet command
type ExecParams struct {
	parse.Options
	Diff bool
}

// ExecuteVet prints the changes the aspects make to each stack. It returns
// the aspects' errors, if any.
func ExecuteVet(out io.Writer, params ExecParams) error {
	results, errs := parse.Run(params.Options)
	for _, r := range results {
		errs = status.Append(errs, report(out, r, params.Diff))
	}
	if errs != nil {
		return errs
	}
	return nil
}

func report(out io.Writer, r parse.Result, diff bool) status.Error {
	util.MustFprintf(out, "%s\n", util.Separator)
	util.MustFprintf(out, "%s: %d change(s)\n", r.StackName, len(r.Report.Changes))
	for _, c := range r.Report.Changes {
		util.MustFprintf(out, "%s%s%s\n", util.Indent, util.Bullet, c)
		if diff {
			if err := printDiff(out, r, c); err != nil {
				return err
			}
		}
	}
	if !r.Report.Changed() {
		return nil
	}
	p, err := patch.Create(r.Original, r.Template)
	if err != nil {
		return status.InternalWrap(err)
	}
	if p == nil {
		return nil
	}
	indented, err := patch.Indent(p)
	if err != nil {
		return status.InternalWrap(err)
	}
	util.MustFprintf(out, "merge patch:\n%s\n", indented)
	return nil
}

func printDiff(out io.Writer, r parse.Result, c aspect.Change) status.Error {
	if c.LogicalID == "" {
		return nil
	}
	before, after := r.Original.Resource(c.LogicalID), r.Template.Resource(c.LogicalID)
	if before == nil || after == nil {
		return nil
	}
	oldValue, err := before.Value()
	if err != nil {
		return status.InternalWrap(err)
	}
	newValue, err := after.Value()
	if err != nil {
		return status.InternalWrap(err)
	}
	if d := log.AsYAMLDiff(oldValue, newValue).String(); d != "" {
		util.MustFprintf(out, "%s\n", d)
	}
	return nil
}
