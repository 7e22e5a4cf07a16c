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

// Package parse loads the stacks named on the command line and applies the
// configured aspects to them. ONLY FOR USE IN THE CLI.
package parse

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/assembly"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/config"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// templateSuffixes are stripped from template file names to derive a stack
// name, longest first.
var templateSuffixes = []string{".template.json", ".template.yaml", ".template.yml", ".json", ".yaml", ".yml"}

// Options select the stacks to process and how to process them.
type Options struct {
	AssemblyDir string
	Templates   []string
	StackName   string
	ConfigPath  string
	Stacks      []string
	Region      string
	Account     string
	Condition   string
}

// Input is a stack read from disk.
type Input struct {
	// ID is the construct id of the stack: the first segment of its
	// resources' construct paths.
	ID string
	// StackName is the name the stack deploys as.
	StackName string
	// Path is the template file.
	Path        string
	Template    *cfn.Template
	Environment construct.Environment
}

// Result is an input after its aspects ran.
type Result struct {
	Input
	// Original is the template as read.
	Original *cfn.Template
	Stack    *construct.Stack
	Report   *aspect.Report
}

// Run reads the selected stacks and applies their aspects. Errors in one
// stack do not stop the others; the results of every stack which could be
// read are returned along with all errors.
func Run(opts Options) ([]Result, status.MultiError) {
	cfg := &config.Config{}
	if opts.ConfigPath != "" {
		var err status.Error
		cfg, err = config.Read(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	extra, err := conditionAttachment(opts.Condition)
	if err != nil {
		return nil, err
	}
	inputs, errs := ReadInputs(opts, cfg)
	var results []Result
	for _, in := range inputs {
		r, rErrs := process(in, cfg, extra)
		errs = status.Append(errs, rErrs)
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, errs
}

func process(in Input, cfg *config.Config, extra []aspect.Attachment) (*Result, status.MultiError) {
	attachments, err := cfg.Attachments(in.ID, in.StackName)
	if err != nil {
		return nil, config.InvalidConfigError(fmt.Errorf("stack %s: %w", in.StackName, err), "")
	}
	attachments = append(attachments, extra...)

	original := in.Template.Copy()
	stack, errs := construct.Build(in.ID, in.Template, in.Environment)
	report, applyErrs := aspect.Apply(stack, attachments...)
	errs = status.Append(errs, applyErrs)
	klog.V(1).Infof("Stack %s: %d visits, %d changes", in.StackName, report.Visits, len(report.Changes))
	return &Result{Input: in, Original: original, Stack: stack, Report: report}, errs
}

// conditionAttachment returns the add-condition aspect for the --condition
// flag, if set.
func conditionAttachment(condition string) ([]aspect.Attachment, status.Error) {
	if condition == "" {
		return nil, nil
	}
	id, err := config.ConditionID(condition)
	if err != nil {
		return nil, config.InvalidConfigError(err, "")
	}
	r, _ := aspect.Lookup(aspect.AddConditionName)
	a, err := r.New(aspect.Params{Condition: id})
	if err != nil {
		return nil, config.InvalidConfigError(err, "")
	}
	return []aspect.Attachment{{Aspect: a, Priority: r.Priority}}, nil
}

// ReadInputs reads the templates named by opts, from the cloud assembly
// unless template files are given. Environments are resolved from the
// assembly, then the configuration file, then the --region and --account
// flags for whatever is still unknown. cfg may be nil.
func ReadInputs(opts Options, cfg *config.Config) ([]Input, status.MultiError) {
	var inputs []Input
	var errs status.MultiError
	if len(opts.Templates) > 0 {
		inputs, errs = readTemplates(opts)
	} else {
		inputs, errs = readAssembly(opts)
	}
	for i := range inputs {
		env := inputs[i].Environment
		if cfg != nil {
			env = cfg.Environment(inputs[i].ID, inputs[i].StackName, env)
		}
		if env.Region == "" {
			env.Region = opts.Region
		}
		if env.Account == "" {
			env.Account = opts.Account
		}
		inputs[i].Environment = env
	}
	return inputs, errs
}

func readAssembly(opts Options) ([]Input, status.MultiError) {
	a, err := assembly.Read(opts.AssemblyDir)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("Read cloud assembly %s version %s with %d stacks", a.Dir, a.Version, len(a.Stacks))
	stacks, sErr := a.Select(opts.Stacks...)
	if sErr != nil {
		return nil, assembly.UnsupportedAssemblyError(sErr, filepath.Join(a.Dir, assembly.ManifestFile))
	}
	var inputs []Input
	var errs status.MultiError
	for _, s := range stacks {
		tmpl, err := cfn.ReadFile(s.TemplateFile)
		if err != nil {
			errs = status.Append(errs, err)
			continue
		}
		inputs = append(inputs, Input{
			ID:          s.ID,
			StackName:   s.StackName,
			Path:        s.TemplateFile,
			Template:    tmpl,
			Environment: s.Environment,
		})
	}
	return inputs, errs
}

func readTemplates(opts Options) ([]Input, status.MultiError) {
	if opts.StackName != "" && len(opts.Templates) > 1 {
		return nil, config.InvalidConfigError(
			fmt.Errorf("--stack-name requires a single --template, got %d", len(opts.Templates)), "")
	}
	var inputs []Input
	var errs status.MultiError
	for _, path := range opts.Templates {
		name := opts.StackName
		if name == "" {
			name = StackNameFromFile(path)
		}
		if !selected(opts.Stacks, name) {
			continue
		}
		tmpl, err := cfn.ReadFile(path)
		if err != nil {
			errs = status.Append(errs, err)
			continue
		}
		inputs = append(inputs, Input{ID: name, StackName: name, Path: path, Template: tmpl})
	}
	return inputs, errs
}

// StackNameFromFile derives a stack name from a template file name, so
// "cdk.out/QCStack.template.json" yields "QCStack".
func StackNameFromFile(path string) string {
	base := filepath.Base(path)
	for _, suffix := range templateSuffixes {
		if trimmed, found := strings.CutSuffix(base, suffix); found && trimmed != "" {
			return trimmed
		}
	}
	return base
}

func selected(stacks []string, name string) bool {
	if len(stacks) == 0 {
		return true
	}
	for _, s := range stacks {
		if s == name {
			return true
		}
	}
	return false
}
