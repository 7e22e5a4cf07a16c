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
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

const template = `{
 "Resources": {
  "VPCB9E5F0B4": {
   "Type": "AWS::EC2::VPC",
   "Metadata": {"aws:cdk:path": "QCStack/VPC/Resource"}
  },
  "VPCPublicSubnet1SubnetB4246D30": {
   "Type": "AWS::EC2::Subnet",
   "Metadata": {"aws:cdk:path": "QCStack/VPC/PublicSubnet1/Subnet"}
  },
  "BatchEcsInstanceRoleD1A1B2C3": {
   "Type": "AWS::IAM::Role",
   "Metadata": {"aws:cdk:path": "QCStack/Batch/Ecs-Instance-Role/Resource"}
  },
  "Unpathed": {
   "Type": "AWS::SNS::Topic"
  },
  "Nested": {
   "Type": "AWS::SNS::Topic",
   "Metadata": {"aws:cdk:path": "OtherStack/Nested/Topic/Resource"}
  }
 }
}`

func mustBuild(t *testing.T, data string) *Stack {
	t.Helper()
	tmpl, err := cfn.Parse([]byte(data))
	require.NoError(t, err)
	s, errs := Build("QCStack", tmpl, Environment{})
	require.Nil(t, errs)
	return s
}

func TestBuild(t *testing.T) {
	s := mustBuild(t, template)

	var paths []string
	for _, n := range Nodes(s.Root()) {
		paths = append(paths, n.Path())
	}
	want := []string{
		"QCStack",
		"QCStack/VPC",
		"QCStack/VPC/Resource",
		"QCStack/VPC/PublicSubnet1",
		"QCStack/VPC/PublicSubnet1/Subnet",
		"QCStack/Batch",
		"QCStack/Batch/Ecs-Instance-Role",
		"QCStack/Batch/Ecs-Instance-Role/Resource",
		"QCStack/Unpathed",
		"QCStack/Nested",
		"QCStack/Nested/Topic",
		"QCStack/Nested/Topic/Resource",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Build() paths diff (-want +got):\n%s", diff)
	}

	role := s.Node("QCStack/Batch/Ecs-Instance-Role")
	require.NotNil(t, role)
	assert.Nil(t, role.Resource())
	assert.Equal(t, "", role.LogicalID())
	require.NotNil(t, role.DefaultChild())
	assert.True(t, role.DefaultChild().IsResourceOfType(cfn.IAMRoleType))
	assert.Equal(t, "BatchEcsInstanceRoleD1A1B2C3", role.DefaultChild().LogicalID())
	assert.Same(t, s, role.Stack())
	assert.Equal(t, "Ecs-Instance-Role", role.ID())
	assert.Same(t, s.Node("QCStack/Batch"), role.Parent())

	subnet := s.Node("QCStack/VPC/PublicSubnet1/Subnet")
	require.NotNil(t, subnet)
	assert.Equal(t, cfn.EC2SubnetType, subnet.ResourceType())
	assert.Nil(t, s.Node("QCStack/VPC/PublicSubnet1").DefaultChild())

	assert.Equal(t, "Unpathed", s.Node("QCStack/Unpathed").LogicalID())
	assert.True(t, s.Root().IsAncestorOf(subnet))
	assert.True(t, subnet.IsAncestorOf(subnet))
	assert.False(t, subnet.IsAncestorOf(s.Root()))
}

func TestBuildDuplicatePath(t *testing.T) {
	tmpl, err := cfn.Parse([]byte(`{"Resources": {
  "A": {"Type": "AWS::SNS::Topic", "Metadata": {"aws:cdk:path": "QCStack/Topic/Resource"}},
  "B": {"Type": "AWS::SNS::Topic", "Metadata": {"aws:cdk:path": "QCStack/Topic/Resource"}}
}}`))
	require.NoError(t, err)

	s, errs := Build("QCStack", tmpl, Environment{})
	require.NotNil(t, errs)
	assert.True(t, status.HasCode(errs, DuplicatePathErrorCode))
	// The first claimant keeps the node.
	assert.Equal(t, "A", s.Node("QCStack/Topic/Resource").LogicalID())
}

func TestWalkSkipsSubtree(t *testing.T) {
	s := mustBuild(t, template)
	var ids []string
	Walk(s.Root(), func(n *Node) bool {
		ids = append(ids, n.ID())
		return n.ID() != "VPC"
	})
	want := []string{"QCStack", "VPC", "Batch", "Ecs-Instance-Role", "Resource", "Unpathed", "Nested", "Topic", "Resource"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Walk() diff (-want +got):\n%s", diff)
	}
}

func TestEnvironmentValues(t *testing.T) {
	testCases := []struct {
		name          string
		env           Environment
		wantRegion    string
		wantAccount   string
		wantPartition string
	}{
		{
			name:          "unknown environment",
			env:           Environment{},
			wantRegion:    `{"Ref":"AWS::Region"}`,
			wantAccount:   `{"Ref":"AWS::AccountId"}`,
			wantPartition: `{"Ref":"AWS::Partition"}`,
		},
		{
			name:          "commercial region",
			env:           Environment{Account: "123456789012", Region: "us-east-1"},
			wantRegion:    `"us-east-1"`,
			wantAccount:   `"123456789012"`,
			wantPartition: `"aws"`,
		},
		{
			name:          "china region",
			env:           Environment{Region: "cn-northwest-1"},
			wantRegion:    `"cn-northwest-1"`,
			wantAccount:   `{"Ref":"AWS::AccountId"}`,
			wantPartition: `"aws-cn"`,
		},
		{
			name:          "govcloud region",
			env:           Environment{Region: "us-gov-west-1"},
			wantRegion:    `"us-gov-west-1"`,
			wantAccount:   `{"Ref":"AWS::AccountId"}`,
			wantPartition: `"aws-us-gov"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := cfn.Parse([]byte(`{"Resources": {}}`))
			require.NoError(t, err)
			s, errs := Build("QCStack", tmpl, tc.env)
			require.Nil(t, errs)
			assert.Equal(t, tc.wantRegion, toJSON(t, s.Region()))
			assert.Equal(t, tc.wantAccount, toJSON(t, s.Account()))
			assert.Equal(t, tc.wantPartition, toJSON(t, s.Partition()))
		})
	}
}

func toJSON(t *testing.T, n *yaml.RNode) string {
	t.Helper()
	v, err := cfn.ToValue(n)
	require.NoError(t, err)
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
