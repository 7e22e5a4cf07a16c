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

package cfn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

func parseSubnet(t *testing.T) *Resource {
	t.Helper()
	tmpl, err := Parse([]byte(jsonTemplate))
	require.NoError(t, err)
	return tmpl.Resource("VPCPublicSubnet1SubnetB4246D30")
}

func TestAddPropertyOverride(t *testing.T) {
	r := parseSubnet(t)

	require.NoError(t, r.AddPropertyOverride("MapPublicIpOnLaunch", Bool(false)))
	assert.True(t, IsFalse(r.Property("MapPublicIpOnLaunch")))
	assert.Equal(t, uint64(1), r.Generation())

	// Setting the same value again is not a change.
	require.NoError(t, r.AddPropertyOverride("MapPublicIpOnLaunch", Bool(false)))
	assert.Equal(t, uint64(1), r.Generation())

	require.NoError(t, r.AddPropertyOverride(`Tags.aws\.cdk.Value`, String("x")))
	assert.Equal(t, `{"aws.cdk":{"Value":"x"}}`, toJSON(t, r.Property("Tags")))
	assert.Equal(t, uint64(2), r.Generation())

	require.Error(t, r.AddPropertyOverride("", String("x")))
}

func TestAddMetadata(t *testing.T) {
	r := parseSubnet(t)
	v, err := FromValue(map[string]interface{}{
		"rules_to_suppress": []interface{}{
			map[string]interface{}{"id": "W5", "reason": "cidr open to world on egress"},
		},
	})
	require.NoError(t, err)

	require.NoError(t, r.AddMetadata("cfn_nag", v))
	assert.Equal(t, `{"rules_to_suppress":[{"id":"W5","reason":"cidr open to world on egress"}]}`,
		toJSON(t, r.Metadata("cfn_nag")))
	// The construct path entry is preserved.
	assert.Equal(t, "QCStack/VPC/PublicSubnet1/Subnet", r.CDKPath())

	// A second call replaces the entry.
	require.NoError(t, r.AddMetadata("cfn_nag", String("replaced")))
	assert.Equal(t, `"replaced"`, toJSON(t, r.Metadata("cfn_nag")))
}

func TestEditIgnoresStyle(t *testing.T) {
	tmpl, err := Parse([]byte(`{
 "Resources": {
  "Rule": {
   "Type": "AWS::Events::Rule",
   "Properties": {"State": "ENABLED"},
   "Metadata": {
    "aws:cdk:path": "QCStack/EventRule/Resource",
    "cfn_nag": {"rules_to_suppress": [{"id": "W58", "reason": "lambda logs"}]}
   }
  }
 }
}`))
	require.NoError(t, err)
	r := tmpl.Resource("Rule")
	v, err := FromValue(map[string]interface{}{
		"rules_to_suppress": []interface{}{
			map[string]interface{}{"reason": "lambda logs", "id": "W58"},
		},
	})
	require.NoError(t, err)

	testCases := []struct {
		name string
		edit func() error
		want uint64
	}{
		{
			name: "plain scalar over quoted scalar",
			edit: func() error { return r.AddPropertyOverride("State", String("ENABLED")) },
		},
		{
			name: "block mapping over flow mapping",
			edit: func() error { return r.AddMetadata("cfn_nag", v) },
		},
		{
			name: "different value",
			edit: func() error { return r.AddPropertyOverride("State", String("DISABLED")) },
			want: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.edit())
			assert.Equal(t, tc.want, r.Generation())
		})
	}
}

func TestSetCondition(t *testing.T) {
	r := parseSubnet(t)
	assert.Equal(t, "", r.Condition())
	require.NoError(t, r.SetCondition("DeployEventRule"))
	assert.Equal(t, "DeployEventRule", r.Condition())
	assert.Equal(t, uint64(1), r.Generation())
}

func TestEditError(t *testing.T) {
	r := parseSubnet(t)
	err := r.Edit(func(*yaml.RNode) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, uint64(0), r.Generation())
}

func TestSplitPropertyPath(t *testing.T) {
	testCases := map[string][]string{
		"":                      nil,
		"MapPublicIpOnLaunch":   {"MapPublicIpOnLaunch"},
		"A.B.C":                 {"A", "B", "C"},
		`Tags.aws\.cdk.Value`:   {"Tags", "aws.cdk", "Value"},
		`Trailing\`:             {`Trailing\`},
		"Policy.Statement.Sid.": {"Policy", "Statement", "Sid", ""},
	}
	for in, want := range testCases {
		if diff := cmp.Diff(want, splitPropertyPath(in)); diff != "" {
			t.Errorf("splitPropertyPath(%q): %s", in, diff)
		}
	}
}

func TestIsFalseAndEqual(t *testing.T) {
	assert.True(t, IsFalse(Bool(false)))
	assert.True(t, IsFalse(String("false")))
	assert.False(t, IsFalse(Bool(true)))
	assert.False(t, IsFalse(Ref("X")))
	assert.False(t, IsFalse(nil))

	assert.True(t, Equal(Ref("X"), Ref("X")))
	assert.False(t, Equal(Ref("X"), Ref("Y")))
	assert.True(t, Equal(Join("", String("a"), Ref("B")), Join("", String("a"), Ref("B"))))
}

func TestValue(t *testing.T) {
	r := parseSubnet(t)
	v, err := r.Value()
	require.NoError(t, err)
	want := map[string]interface{}{
		"Type": "AWS::EC2::Subnet",
		"Properties": map[string]interface{}{
			"CidrBlock":           "10.0.0.0/18",
			"MapPublicIpOnLaunch": true,
		},
		"Metadata": map[string]interface{}{
			"aws:cdk:path": "QCStack/VPC/PublicSubnet1/Subnet",
		},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Error(diff)
	}
}
