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
	"io"
	"path/filepath"
	"strings"

	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/parse"
	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/util"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// ExecParams contains all parameters needed to execute the apply command
type ExecParams struct {
	parse.Options
	OutputFormat string
	OutPath      string
	MetricsFile  string
}

// ExecuteApply applies the aspects and writes the patched templates. A
// summary of the changes is printed to out.
func ExecuteApply(out io.Writer, params ExecParams) error {
	format, err := cfn.ParseFormat(params.OutputFormat)
	if err != nil {
		return err
	}

	results, errs := parse.Run(params.Options)
	if errs == nil {
		for _, r := range results {
			errs = status.Append(errs, write(out, r, params.OutPath, format))
		}
	}
	if err := util.WriteMetrics(params.MetricsFile); err != nil {
		errs = status.Append(errs, status.PathWrapError(err, params.MetricsFile))
	}
	if errs != nil {
		return errs
	}
	return nil
}

func write(out io.Writer, r parse.Result, outDir string, format cfn.Format) status.Error {
	if outDir == "" && !r.Report.Changed() {
		klog.V(1).Infof("Stack %s is unchanged", r.StackName)
		util.MustFprintf(out, "%s: unchanged\n", r.StackName)
		return nil
	}
	data, err := r.Template.Encode(format)
	if err != nil {
		return status.InternalWrap(err)
	}
	path := outputPath(r.Path, r.Template.Format(), outDir, format)
	if err := util.WriteFile(path, data); err != nil {
		return status.PathWrapError(err, path)
	}
	util.MustFprintf(out, "%s: %d change(s) written to %s\n", r.StackName, len(r.Report.Changes), path)
	for _, c := range r.Report.Changes {
		util.MustFprintf(out, "%s%s%s\n", util.Indent, util.Bullet, c)
	}
	return nil
}

// outputPath returns where to write the template read from path. The file
// keeps its name unless it is converted to another format.
func outputPath(path string, inFormat cfn.Format, outDir string, format cfn.Format) string {
	dir := filepath.Dir(path)
	if outDir != "" {
		dir = outDir
	}
	base := filepath.Base(path)
	if format != "" && format != inFormat {
		base = strings.TrimSuffix(base, filepath.Ext(base)) + "." + string(format)
	}
	return filepath.Join(dir, base)
}
