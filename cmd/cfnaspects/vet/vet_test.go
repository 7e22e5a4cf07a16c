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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/molecular-unfolding/cfnaspects/cmd/cfnaspects/parse"
	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/molecular-unfolding/cfnaspects/pkg/testing/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAssembly(t *testing.T) string {
	t.Helper()
	return fake.WriteAssembly(t, fake.AssemblyStack{
		ID: "QCStack",
		Resources: []fake.Resource{
			fake.Subnet("QCStack/VPC/PublicSubnet1/Subnet",
				fake.LogicalID("VPCPublicSubnet1Subnet"),
				fake.Property("MapPublicIpOnLaunch", true)),
			fake.Function("QCStack/EventBridgeRole/DefaultPolicy/Resource"),
		},
	})
}

func TestExecuteVet(t *testing.T) {
	testCases := []struct {
		name        string
		diff        bool
		wantOut     []string
		wantMissing []string
	}{
		{
			name: "changes and merge patch",
			wantOut: []string{
				"QCStack: 1 change(s)",
				"  - disable-public-ip-on-launch: QCStack/VPC/PublicSubnet1/Subnet (AWS::EC2::Subnet VPCPublicSubnet1Subnet)",
				"merge patch:",
				`"MapPublicIpOnLaunch": false`,
			},
			wantMissing: []string{"-  MapPublicIpOnLaunch: true"},
		},
		{
			name: "with resource diff",
			diff: true,
			wantOut: []string{
				"-  MapPublicIpOnLaunch: true",
				"+  MapPublicIpOnLaunch: false",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeAssembly(t)
			path := filepath.Join(dir, "QCStack.template.json")
			before, err := os.ReadFile(path)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, ExecuteVet(&out, ExecParams{Options: parse.Options{AssemblyDir: dir}, Diff: tc.diff}))
			for _, want := range tc.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, missing := range tc.wantMissing {
				assert.NotContains(t, out.String(), missing)
			}

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(before), string(after), "vet must not write templates")
		})
	}
}

func TestExecuteVetErrors(t *testing.T) {
	dir := writeAssembly(t)

	var out bytes.Buffer
	err := ExecuteVet(&out, ExecParams{Options: parse.Options{AssemblyDir: dir, Condition: "DeployEventRule"}})
	require.Error(t, err)
	errs, ok := err.(status.MultiError)
	require.True(t, ok)
	assert.True(t, status.HasCode(errs, aspect.UndefinedConditionErrorCode))
	// The changes of the other aspects are still reported.
	assert.Contains(t, out.String(), "QCStack: 1 change(s)")
}

func TestExecuteVetNoChanges(t *testing.T) {
	dir := fake.WriteAssembly(t, fake.AssemblyStack{
		ID:        "QCStack",
		Resources: []fake.Resource{fake.Subnet("QCStack/VPC/PrivateSubnet1/Subnet")},
	})

	var out bytes.Buffer
	require.NoError(t, ExecuteVet(&out, ExecParams{Options: parse.Options{AssemblyDir: dir}}))
	assert.Contains(t, out.String(), "QCStack: 0 change(s)")
	assert.NotContains(t, out.String(), "merge patch")
}
