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

package construct

import (
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Environment is the account and region a stack deploys to. Empty fields
// are unknown until deploy time.
type Environment struct {
	Account string
	Region  string
}

// Stack is a template together with the construct tree rebuilt from it.
type Stack struct {
	name        string
	environment Environment
	template    *cfn.Template
	root        *Node
	byPath      map[string]*Node
}

// Name returns the stack name, which is also the id of the root node.
func (s *Stack) Name() string {
	return s.name
}

// Environment returns the stack's deployment environment.
func (s *Stack) Environment() Environment {
	return s.environment
}

// Template returns the underlying template.
func (s *Stack) Template() *cfn.Template {
	return s.template
}

// Root returns the root node of the construct tree.
func (s *Stack) Root() *Node {
	return s.root
}

// Node returns the node at the given full path, or nil.
func (s *Stack) Node(path string) *Node {
	return s.byPath[path]
}

// Region returns the stack region as a literal, or a reference to the
// AWS::Region pseudo parameter when the region is unknown.
func (s *Stack) Region() *yaml.RNode {
	if s.environment.Region == "" {
		return cfn.Ref(cfn.PseudoRegion)
	}
	return cfn.String(s.environment.Region)
}

// Account returns the stack account as a literal, or a reference to the
// AWS::AccountId pseudo parameter when the account is unknown.
func (s *Stack) Account() *yaml.RNode {
	if s.environment.Account == "" {
		return cfn.Ref(cfn.PseudoAccountID)
	}
	return cfn.String(s.environment.Account)
}

// Partition returns the partition derived from a known region, or a
// reference to the AWS::Partition pseudo parameter.
func (s *Stack) Partition() *yaml.RNode {
	if p := partitionForRegion(s.environment.Region); p != "" {
		return cfn.String(p)
	}
	return cfn.Ref(cfn.PseudoPartition)
}

func partitionForRegion(region string) string {
	switch {
	case region == "":
		return ""
	case strings.HasPrefix(region, "cn-"):
		return "aws-cn"
	case strings.HasPrefix(region, "us-gov-"):
		return "aws-us-gov"
	case strings.HasPrefix(region, "us-iso-"):
		return "aws-iso"
	case strings.HasPrefix(region, "us-isob-"):
		return "aws-iso-b"
	}
	return "aws"
}
