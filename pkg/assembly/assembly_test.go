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

package assembly

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestJSON = `{
  "version": "36.0.0",
  "artifacts": {
    "QCStack.assets": {
      "type": "cdk:asset-manifest",
      "properties": {"file": "QCStack.assets.json"}
    },
    "QCStack": {
      "type": "aws:cloudformation:stack",
      "environment": "aws://unknown-account/unknown-region",
      "properties": {"templateFile": "QCStack.template.json"},
      "displayName": "QCStack"
    },
    "BatchStack": {
      "type": "aws:cloudformation:stack",
      "environment": "aws://123456789012/cn-northwest-1",
      "properties": {"templateFile": "BatchStack.template.json", "stackName": "qc-batch"}
    },
    "Tree": {
      "type": "cdk:tree",
      "properties": {"file": "tree.json"}
    }
  }
}`

func TestParse(t *testing.T) {
	a, err := Parse("/tmp/cdk.out", []byte(manifestJSON))
	require.NoError(t, err)
	assert.Equal(t, "36.0.0", a.Version.String())

	want := []Stack{
		{
			ID:           "QCStack",
			StackName:    "QCStack",
			TemplateFile: filepath.Join("/tmp/cdk.out", "QCStack.template.json"),
		},
		{
			ID:           "BatchStack",
			StackName:    "qc-batch",
			TemplateFile: filepath.Join("/tmp/cdk.out", "BatchStack.template.json"),
			Environment:  construct.Environment{Account: "123456789012", Region: "cn-northwest-1"},
		},
	}
	if diff := cmp.Diff(want, a.Stacks); diff != "" {
		t.Errorf("Parse() stacks diff (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "no version",
			manifest: `{"artifacts": {}}`,
			wantErr:  "no version",
		},
		{
			name:     "invalid version",
			manifest: `{"version": "latest"}`,
			wantErr:  `manifest version "latest"`,
		},
		{
			name:     "old schema",
			manifest: `{"version": "1.10.0"}`,
			wantErr:  "not supported",
		},
		{
			name:     "stack without template",
			manifest: `{"version": "21.0.0", "artifacts": {"S": {"type": "aws:cloudformation:stack"}}}`,
			wantErr:  "has no templateFile",
		},
		{
			name:     "bad environment",
			manifest: `{"version": "21.0.0", "artifacts": {"S": {"type": "aws:cloudformation:stack", "environment": "gcp://x/y", "properties": {"templateFile": "S.json"}}}}`,
			wantErr:  "does not start with aws://",
		},
		{
			name:     "not json",
			manifest: `[`,
			wantErr:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("dir", []byte(tc.manifest))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	testCases := []struct {
		env     string
		want    construct.Environment
		wantErr bool
	}{
		{env: ""},
		{env: "aws://unknown-account/unknown-region"},
		{env: "aws://123456789012/us-east-1", want: construct.Environment{Account: "123456789012", Region: "us-east-1"}},
		{env: "aws://unknown-account/eu-west-1", want: construct.Environment{Region: "eu-west-1"}},
		{env: "aws://123456789012", wantErr: true},
		{env: "aws:///us-east-1", wantErr: true},
		{env: "123456789012/us-east-1", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			got, err := ParseEnvironment(tc.env)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelect(t *testing.T) {
	a, err := Parse("cdk.out", []byte(manifestJSON))
	require.NoError(t, err)

	all, err := a.Select()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Stacks keep assembly order and match by ID or stack name.
	got, err := a.Select("qc-batch", "QCStack")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "QCStack", got[0].ID)
	assert.Equal(t, "BatchStack", got[1].ID)

	_, err = a.Select("QCStack", "Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifestJSON), 0644))
	a, serr := Read(dir)
	require.Nil(t, serr)
	assert.Len(t, a.Stacks, 2)

	bad := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bad, ManifestFile), []byte(`{"version": "0.36.0"}`), 0644))
	_, serr = Read(bad)
	require.NotNil(t, serr)
	assert.Equal(t, UnsupportedAssemblyErrorCode, serr.Code())

	_, serr = Read(filepath.Join(dir, "missing"))
	require.NotNil(t, serr)
	assert.Equal(t, status.PathErrorCode, serr.Code())
}
