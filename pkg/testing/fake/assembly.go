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
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/molecular-unfolding/cfnaspects/pkg/assembly"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
)

// AssemblyVersion is the manifest version written by WriteAssembly.
const AssemblyVersion = "36.0.0"

// AssemblyStack is a stack artifact written by WriteAssembly.
type AssemblyStack struct {
	ID string
	// StackName defaults to ID.
	StackName string
	// Environment is of the form aws://<account>/<region>. Defaults to an
	// unknown account and region.
	Environment string
	Resources   []Resource
}

// TemplateJSON returns the JSON text of a template holding resources in
// order, as the CDK synthesizes it.
func TemplateJSON(t *testing.T, resources ...Resource) string {
	t.Helper()
	b, err := Template(t, resources...).Encode(cfn.FormatJSON)
	if err != nil {
		t.Fatalf("encoding fake template: %v", err)
	}
	return string(b)
}

// WriteAssembly writes a cloud assembly holding stacks in order to a new
// temporary directory and returns the directory.
func WriteAssembly(t *testing.T, stacks ...AssemblyStack) string {
	t.Helper()
	dir := t.TempDir()
	var artifacts []string
	for _, s := range stacks {
		file := s.ID + ".template.json"
		writeFile(t, filepath.Join(dir, file), TemplateJSON(t, s.Resources...))

		env := s.Environment
		if env == "" {
			env = "aws://unknown-account/unknown-region"
		}
		props := map[string]string{"templateFile": file}
		if s.StackName != "" {
			props["stackName"] = s.StackName
		}
		artifacts = append(artifacts, quote(t, s.ID)+": "+marshal(t, map[string]interface{}{
			"type":        assembly.StackArtifactType,
			"environment": env,
			"properties":  props,
		}))
	}
	// Artifacts are written by hand since maps lose their order.
	manifest := `{"version": ` + quote(t, AssemblyVersion) + `, "artifacts": {` + strings.Join(artifacts, ", ") + `}}`
	writeFile(t, filepath.Join(dir, assembly.ManifestFile), manifest)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func quote(t *testing.T, s string) string {
	t.Helper()
	return marshal(t, s)
}

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("encoding %v: %v", v, err)
	}
	return string(b)
}
