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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `
stacks:
  - name: QCStack
    region: us-east-1
    account: "123456789012"
aspects:
  - name: cfn-nag-suppressions
    suppressions:
      - pathSuffixes: ["/MyFunc/Resource"]
        rules: [{id: W58, reason: "logs permission granted elsewhere"}]
  - name: add-condition
    condition: deploy-event-rule
    conditionDefinition: {"Fn::Equals": [{"Ref": "DeployEventRule"}, "yes"]}
  - name: grant-kms-logs
    pathSuffix: /SNSKey/Resource
    logGroupName: /aws/vendedlogs/states/*
    scope: QCStack/Batch
    priority: 200
    stacks: [BatchStack]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(exampleConfig))
	require.NoError(t, err)
	assert.Len(t, c.Stacks, 1)
	assert.Len(t, c.Aspects, 3)

	assert.Equal(t, construct.Environment{Account: "123456789012", Region: "us-east-1"},
		c.Environment("QCStack", "QCStack", construct.Environment{}))
	assert.Equal(t, construct.Environment{Region: "eu-west-1"},
		c.Environment("Other", "Other", construct.Environment{Region: "eu-west-1"}))

	attachments, err := c.Attachments("QCStack", "QCStack")
	require.NoError(t, err)
	var names []string
	for _, a := range attachments {
		names = append(names, a.Aspect.Name())
	}
	if diff := cmp.Diff([]string{aspect.CfnNagSuppressionsName, aspect.AddConditionName}, names); diff != "" {
		t.Errorf("Attachments() diff (-want +got):\n%s", diff)
	}
	assert.Equal(t, aspect.Readonly, attachments[0].Priority)

	batch, err := c.Attachments("BatchStack", "qc-batch")
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, aspect.GrantKMSLogsName, batch[2].Aspect.Name())
	assert.Equal(t, aspect.Mutating, batch[2].Priority)
	assert.Equal(t, "QCStack/Batch", batch[2].Scope)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name:    "unknown field",
			config:  "aspects:\n  - name: add-condition\n    conditon: X\n",
			wantErr: "conditon",
		},
		{
			name:    "unknown aspect",
			config:  "aspects:\n  - name: no-such-aspect\n",
			wantErr: `unknown aspect "no-such-aspect"`,
		},
		{
			name:    "missing parameter",
			config:  "aspects:\n  - name: grant-kms-logs\n",
			wantErr: "pathSuffix is required",
		},
		{
			name:    "missing condition",
			config:  "aspects:\n  - name: add-condition\n",
			wantErr: "condition is required",
		},
		{
			name:    "suppression without rules",
			config:  "aspects:\n  - name: cfn-nag-suppressions\n    suppressions:\n      - pathSuffixes: [/Subnet]\n",
			wantErr: "suppression 0 has no rules",
		},
		{
			name:    "invalid condition",
			config:  "aspects:\n  - name: add-condition\n    condition: \"!!\"\n",
			wantErr: "not a valid logical ID",
		},
		{
			name:    "stack without name",
			config:  "stacks:\n  - region: us-east-1\n",
			wantErr: "name is required",
		},
		{
			name:    "negative priority",
			config:  "aspects:\n  - name: regional-policy-name\n    priority: -1\n",
			wantErr: "priority must not be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefaultAttachments(t *testing.T) {
	c, err := Parse([]byte("stacks: []\n"))
	require.NoError(t, err)
	attachments, err := c.Attachments("QCStack", "QCStack")
	require.NoError(t, err)
	assert.Len(t, attachments, len(aspect.Defaults()))
}

func TestConditionID(t *testing.T) {
	testCases := map[string]string{
		"DeployEventRule":   "DeployEventRule",
		"QCStackEnabled":    "QCStackEnabled",
		"deploy-event-rule": "DeployEventRule",
		"deploy_event_rule": "DeployEventRule",
		"deploy event rule": "DeployEventRule",
	}
	for in, want := range testCases {
		got, err := ConditionID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ConditionID("")
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "cfnaspects.yaml")
	require.NoError(t, os.WriteFile(good, []byte(exampleConfig), 0644))
	_, serr := Read(good)
	require.Nil(t, serr)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("aspects: 3\n"), 0644))
	_, serr = Read(bad)
	require.NotNil(t, serr)
	assert.Equal(t, InvalidConfigErrorCode, serr.Code())

	_, serr = Read(filepath.Join(dir, "missing.yaml"))
	require.NotNil(t, serr)
	assert.Equal(t, status.PathErrorCode, serr.Code())
}
