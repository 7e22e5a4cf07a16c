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

// Package assembly reads the stacks of a synthesized CDK cloud assembly.
package assembly

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
	kyaml "sigs.k8s.io/kustomize/kyaml/yaml"
	"sigs.k8s.io/yaml"
)

const (
	// ManifestFile is the name of the manifest at the root of an assembly.
	ManifestFile = "manifest.json"

	// StackArtifactType is the artifact type of a CloudFormation stack.
	StackArtifactType = "aws:cloudformation:stack"

	unknownAccount = "unknown-account"
	unknownRegion  = "unknown-region"
	envScheme      = "aws://"
)

// supportedVersions are the manifest schema versions this package reads.
// Version 2 moved stack templates into separate files.
var supportedVersions = mustConstraint(">= 2.0.0")

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}

// manifest is the subset of manifest.json this package reads.
type manifest struct {
	Version   string              `json:"version"`
	Artifacts map[string]artifact `json:"artifacts"`
}

type artifact struct {
	Type        string             `json:"type"`
	Environment string             `json:"environment,omitempty"`
	DisplayName string             `json:"displayName,omitempty"`
	Properties  artifactProperties `json:"properties,omitempty"`
}

type artifactProperties struct {
	TemplateFile string `json:"templateFile,omitempty"`
	StackName    string `json:"stackName,omitempty"`
}

// Stack is a CloudFormation stack artifact of an assembly.
type Stack struct {
	// ID is the artifact ID. It is the construct id of the stack and the
	// first segment of its resources' construct paths.
	ID string
	// StackName is the name the stack deploys as.
	StackName string
	// TemplateFile is the absolute path of the stack's template.
	TemplateFile string
	// Environment is the target of the stack, with unknown parts empty.
	Environment construct.Environment
}

// Assembly is a parsed cloud assembly directory.
type Assembly struct {
	Dir     string
	Version *semver.Version
	// Stacks in manifest order.
	Stacks []Stack
}

// Read parses the manifest of the cloud assembly in dir.
func Read(dir string) (*Assembly, status.Error) {
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, status.PathWrapError(err, path)
	}
	a, err := Parse(dir, data)
	if err != nil {
		return nil, UnsupportedAssemblyError(err, path)
	}
	return a, nil
}

// Parse parses the manifest data of the assembly in dir.
func Parse(dir string, data []byte) (*Assembly, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Version == "" {
		return nil, fmt.Errorf("manifest has no version")
	}
	v, err := semver.NewVersion(m.Version)
	if err != nil {
		return nil, fmt.Errorf("manifest version %q: %w", m.Version, err)
	}
	if !supportedVersions.Check(v) {
		return nil, fmt.Errorf("manifest version %s is not supported, want %s", v, supportedVersions)
	}

	ids, err := artifactOrder(data)
	if err != nil {
		return nil, err
	}
	a := &Assembly{Dir: dir, Version: v}
	for _, id := range ids {
		art := m.Artifacts[id]
		if art.Type != StackArtifactType {
			klog.V(4).Infof("Skipping artifact %s of type %s", id, art.Type)
			continue
		}
		if art.Properties.TemplateFile == "" {
			return nil, fmt.Errorf("stack %s has no templateFile", id)
		}
		env, err := ParseEnvironment(art.Environment)
		if err != nil {
			return nil, fmt.Errorf("stack %s: %w", id, err)
		}
		s := Stack{
			ID:           id,
			StackName:    art.Properties.StackName,
			TemplateFile: filepath.Join(dir, art.Properties.TemplateFile),
			Environment:  env,
		}
		if s.StackName == "" {
			s.StackName = id
		}
		a.Stacks = append(a.Stacks, s)
	}
	return a, nil
}

// artifactOrder returns the artifact IDs in document order, which Go maps
// do not keep.
func artifactOrder(data []byte) ([]string, error) {
	root, err := kyaml.Parse(string(data))
	if err != nil {
		return nil, err
	}
	artifacts := root.Field("artifacts")
	if artifacts == nil || artifacts.Value.IsNilOrEmpty() {
		return nil, nil
	}
	return artifacts.Value.Fields()
}

// ParseEnvironment parses an environment of the form
// aws://<account>/<region>. unknown-account and unknown-region yield empty
// fields, as does an empty string.
func ParseEnvironment(env string) (construct.Environment, error) {
	if env == "" {
		return construct.Environment{}, nil
	}
	rest, found := strings.CutPrefix(env, envScheme)
	if !found {
		return construct.Environment{}, fmt.Errorf("environment %q does not start with %s", env, envScheme)
	}
	account, region, found := strings.Cut(rest, "/")
	if !found || account == "" || region == "" {
		return construct.Environment{}, fmt.Errorf("environment %q is not of the form %s<account>/<region>", env, envScheme)
	}
	result := construct.Environment{Account: account, Region: region}
	if account == unknownAccount {
		result.Account = ""
	}
	if region == unknownRegion {
		result.Region = ""
	}
	return result, nil
}

// Select returns the stacks whose ID or stack name is in names, in
// assembly order. Empty names selects every stack. Names matching no stack
// are an error.
func (a *Assembly) Select(names ...string) ([]Stack, error) {
	if len(names) == 0 {
		return a.Stacks, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = false
	}
	var result []Stack
	for _, s := range a.Stacks {
		_, byID := wanted[s.ID]
		_, byName := wanted[s.StackName]
		if !byID && !byName {
			continue
		}
		wanted[s.ID], wanted[s.StackName] = true, true
		result = append(result, s)
	}
	var missing []string
	for _, n := range names {
		if !wanted[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no stack named %s in assembly %s", strings.Join(missing, ", "), a.Dir)
	}
	return result, nil
}
