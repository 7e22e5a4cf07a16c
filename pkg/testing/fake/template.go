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

package fake

import (
	"testing"

	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Subnet returns an AWS::EC2::Subnet at path.
func Subnet(path string, opts ...ResourceMutator) Resource {
	return NewResource(cfn.EC2SubnetType, path, opts...)
}

// Role returns an AWS::IAM::Role at path.
func Role(path string, opts ...ResourceMutator) Resource {
	opts = append([]ResourceMutator{Property("AssumeRolePolicyDocument", map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []interface{}{map[string]interface{}{
			"Action":    "sts:AssumeRole",
			"Effect":    "Allow",
			"Principal": map[string]interface{}{"Service": "ec2.amazonaws.com"},
		}},
	})}, opts...)
	return NewResource(cfn.IAMRoleType, path, opts...)
}

// Policy returns an AWS::IAM::Policy named name at path.
func Policy(path, name string, opts ...ResourceMutator) Resource {
	opts = append([]ResourceMutator{Property("PolicyName", name)}, opts...)
	return NewResource(cfn.IAMPolicyType, path, opts...)
}

// Key returns an AWS::KMS::Key at path.
func Key(path string, opts ...ResourceMutator) Resource {
	return NewResource(cfn.KMSKeyType, path, opts...)
}

// Function returns an AWS::Lambda::Function at path.
func Function(path string, opts ...ResourceMutator) Resource {
	return NewResource(cfn.LambdaFunctionType, path, opts...)
}

// Template returns a template holding resources in order.
func Template(t *testing.T, resources ...Resource) *cfn.Template {
	t.Helper()
	tmpl, err := cfn.Parse([]byte(TemplateYAML(t, resources...)))
	if err != nil {
		t.Fatalf("parsing fake template: %v", err)
	}
	return tmpl
}

// TemplateYAML returns the YAML text of a template holding resources in
// order.
func TemplateYAML(t *testing.T, resources ...Resource) string {
	t.Helper()
	section := &yaml.Node{Kind: yaml.MappingNode, Tag: yaml.NodeTagMap}
	for _, r := range resources {
		body := map[string]interface{}{"Type": r.Type}
		if len(r.Properties) > 0 {
			body["Properties"] = r.Properties
		}
		if len(r.Metadata) > 0 {
			body["Metadata"] = r.Metadata
		}
		if r.Condition != "" {
			body["Condition"] = r.Condition
		}
		n, err := cfn.FromValue(body)
		if err != nil {
			t.Fatalf("encoding fake resource %s: %v", r.LogicalID, err)
		}
		section.Content = append(section.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: yaml.NodeTagString, Value: r.LogicalID},
			n.YNode())
	}
	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  yaml.NodeTagMap,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: yaml.NodeTagString, Value: "Resources"},
			section,
		},
	}
	s, err := yaml.NewRNode(root).String()
	if err != nil {
		t.Fatalf("encoding fake template: %v", err)
	}
	return s
}

// Stack returns the stack name holding resources.
func Stack(t *testing.T, name string, env construct.Environment, resources ...Resource) *construct.Stack {
	t.Helper()
	s, errs := construct.Build(name, Template(t, resources...), env)
	if errs != nil {
		t.Fatalf("building fake stack: %v", errs)
	}
	return s
}
