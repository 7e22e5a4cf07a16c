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

package aspect

import (
	"testing"

	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/testing/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisablePublicIPOnLaunch(t *testing.T) {
	const path = "QCStack/VPC/PublicSubnet1/Subnet"
	testCases := []struct {
		name        string
		resource    fake.Resource
		wantChanged bool
		wantValue   string
	}{
		{
			name:        "enabled",
			resource:    fake.Subnet(path, fake.Property("MapPublicIpOnLaunch", true)),
			wantChanged: true,
			wantValue:   "false",
		},
		{
			name:        "enabled by string",
			resource:    fake.Subnet(path, fake.Property("MapPublicIpOnLaunch", "true")),
			wantChanged: true,
			wantValue:   "false",
		},
		{
			name: "enabled by intrinsic",
			resource: fake.Subnet(path, fake.Property("MapPublicIpOnLaunch", map[string]interface{}{
				"Fn::If": []interface{}{"IsPublic", true, false},
			})),
			wantChanged: true,
			wantValue:   "false",
		},
		{
			name:      "already disabled",
			resource:  fake.Subnet(path, fake.Property("MapPublicIpOnLaunch", false)),
			wantValue: "false",
		},
		{
			name:     "unset",
			resource: fake.Subnet(path, fake.Property("CidrBlock", "10.0.0.0/18")),
		},
		{
			name:     "null",
			resource: fake.Subnet(path, fake.Property("MapPublicIpOnLaunch", nil)),
		},
		{
			name:     "not a subnet",
			resource: fake.NewResource("AWS::EC2::Instance", path, fake.Property("MapPublicIpOnLaunch", true)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := fake.Stack(t, stackName, noEnv, tc.resource)
			report, errs := applyTwice(t, s, DisablePublicIPOnLaunch())
			require.Nil(t, errs)
			assert.Equal(t, tc.wantChanged, report.Changed())

			r := s.Node(path).Resource()
			if tc.wantValue == "" {
				if tc.resource.Type == cfn.EC2SubnetType {
					v, _ := cfn.Literal(r.Property("MapPublicIpOnLaunch"))
					assert.NotEqual(t, "false", v)
				}
				return
			}
			v, ok := cfn.Literal(r.Property("MapPublicIpOnLaunch"))
			assert.True(t, ok)
			assert.Equal(t, tc.wantValue, v)
		})
	}
}
