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

// Package config reads the cfnaspects configuration file, which selects the
// aspects to apply, their parameters and per-stack environments.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ettle/strcase"
	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"go.uber.org/multierr"
	"sigs.k8s.io/yaml"
)

// Config is the configuration file.
type Config struct {
	// Stacks override the environment of stacks by name.
	// +optional
	Stacks []StackConfig `json:"stacks,omitempty"`

	// Aspects are applied to every selected stack in order. When empty, the
	// default aspects are applied.
	// +optional
	Aspects []AspectConfig `json:"aspects,omitempty"`
}

// StackConfig sets the deployment environment of a stack.
type StackConfig struct {
	// Name is the stack's artifact ID or stack name.
	Name string `json:"name"`

	// Region overrides the region from the assembly.
	// +optional
	Region string `json:"region,omitempty"`

	// Account overrides the account from the assembly.
	// +optional
	Account string `json:"account,omitempty"`
}

// AspectConfig attaches a registered aspect.
type AspectConfig struct {
	// Name is the registry name of the aspect, e.g. "add-condition".
	Name string `json:"name"`

	// Scope is the construct path the aspect is attached to. It may omit the
	// stack name. Defaults to the whole stack.
	// +optional
	Scope string `json:"scope,omitempty"`

	// Priority overrides the registered priority of the aspect.
	// +optional
	Priority int `json:"priority,omitempty"`

	// Stacks limits the aspect to the named stacks. Defaults to all.
	// +optional
	Stacks []string `json:"stacks,omitempty"`

	// Suppressions are additional cfn_nag suppressions.
	// +optional
	Suppressions []SuppressionConfig `json:"suppressions,omitempty"`

	// Condition is the condition logical ID. Names with separators, such as
	// "deploy-event-rule", are converted to PascalCase.
	// +optional
	Condition string `json:"condition,omitempty"`

	// ConditionDefinition is the intrinsic defining Condition when the
	// template does not.
	// +optional
	ConditionDefinition interface{} `json:"conditionDefinition,omitempty"`

	// PathSuffix selects the constructs the aspect edits.
	// +optional
	PathSuffix string `json:"pathSuffix,omitempty"`

	// PolicyName is an AWS managed policy name.
	// +optional
	PolicyName string `json:"policyName,omitempty"`

	// LogGroupName is a CloudWatch Logs log group name.
	// +optional
	LogGroupName string `json:"logGroupName,omitempty"`
}

// SuppressionConfig suppresses cfn_nag rules on matching constructs.
type SuppressionConfig struct {
	// +optional
	PathSuffixes []string `json:"pathSuffixes,omitempty"`
	// +optional
	PathContains []string `json:"pathContains,omitempty"`
	Rules        []aspect.Rule `json:"rules"`
}

var logicalIDPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Read parses and validates the configuration file at path.
func Read(path string) (*Config, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, status.PathWrapError(err, path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, InvalidConfigError(err, path)
	}
	return c, nil
}

// Parse parses and validates configuration data. Unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	var err error
	for i, s := range c.Stacks {
		if s.Name == "" {
			err = multierr.Append(err, fmt.Errorf("stacks[%d]: name is required", i))
		}
	}
	for i, a := range c.Aspects {
		r, found := aspect.Lookup(a.Name)
		if !found {
			err = multierr.Append(err, fmt.Errorf("aspects[%d]: unknown aspect %q", i, a.Name))
			continue
		}
		if a.Priority < 0 {
			err = multierr.Append(err, fmt.Errorf("aspects[%d]: priority must not be negative", i))
		}
		p, perr := a.params()
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("aspects[%d] (%s): %w", i, a.Name, perr))
			continue
		}
		if _, nerr := r.New(p); nerr != nil {
			err = multierr.Append(err, fmt.Errorf("aspects[%d] (%s): %w", i, a.Name, nerr))
		}
	}
	return err
}

// Environment returns base with the configured overrides for the stack
// applied. Stacks match by either of their names.
func (c *Config) Environment(id, stackName string, base construct.Environment) construct.Environment {
	for _, s := range c.Stacks {
		if s.Name != id && s.Name != stackName {
			continue
		}
		if s.Region != "" {
			base.Region = s.Region
		}
		if s.Account != "" {
			base.Account = s.Account
		}
	}
	return base
}

// Attachments returns the aspects to apply to the stack, constructed with
// their configured parameters. Without configured aspects it returns the
// registry defaults.
func (c *Config) Attachments(id, stackName string) ([]aspect.Attachment, error) {
	if len(c.Aspects) == 0 {
		return aspect.Defaults(), nil
	}
	var result []aspect.Attachment
	for _, a := range c.Aspects {
		if !a.appliesTo(id, stackName) {
			continue
		}
		r, found := aspect.Lookup(a.Name)
		if !found {
			return nil, fmt.Errorf("unknown aspect %q", a.Name)
		}
		p, err := a.params()
		if err != nil {
			return nil, err
		}
		v, err := r.New(p)
		if err != nil {
			return nil, fmt.Errorf("aspect %s: %w", a.Name, err)
		}
		priority := r.Priority
		if a.Priority != 0 {
			priority = aspect.Priority(a.Priority)
		}
		result = append(result, aspect.Attachment{Aspect: v, Scope: a.Scope, Priority: priority})
	}
	return result, nil
}

func (a AspectConfig) appliesTo(id, stackName string) bool {
	if len(a.Stacks) == 0 {
		return true
	}
	for _, s := range a.Stacks {
		if s == id || s == stackName {
			return true
		}
	}
	return false
}

// params converts the configuration into aspect parameters.
func (a AspectConfig) params() (aspect.Params, error) {
	p := aspect.Params{
		PathSuffix:   a.PathSuffix,
		PolicyName:   a.PolicyName,
		LogGroupName: a.LogGroupName,
	}
	if a.Condition != "" {
		id, err := ConditionID(a.Condition)
		if err != nil {
			return p, err
		}
		p.Condition = id
	}
	if a.ConditionDefinition != nil {
		def, err := cfn.FromValue(a.ConditionDefinition)
		if err != nil {
			return p, fmt.Errorf("conditionDefinition: %w", err)
		}
		p.ConditionDefinition = def
	}
	for _, s := range a.Suppressions {
		p.Suppressions = append(p.Suppressions, aspect.Suppression{
			Paths: aspect.PathMatcher{Suffixes: s.PathSuffixes, Contains: s.PathContains},
			Rules: s.Rules,
		})
	}
	return p, nil
}

// ConditionID returns the CloudFormation logical ID for a condition name.
// Alphanumeric names are kept as they are; others are converted to
// PascalCase, so "deploy-event-rule" becomes "DeployEventRule".
func ConditionID(name string) (string, error) {
	id := name
	if !logicalIDPattern.MatchString(id) {
		id = strcase.ToPascal(name)
	}
	if !logicalIDPattern.MatchString(id) {
		return "", fmt.Errorf("condition %q is not a valid logical ID", name)
	}
	return id, nil
}
