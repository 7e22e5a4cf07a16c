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

// Package patch reports the changes aspects made to a template as a JSON
// merge patch (RFC 7386).
package patch

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
)

// Create returns the merge patch turning original into patched, or nil if
// the templates hold the same data.
func Create(original, patched *cfn.Template) ([]byte, error) {
	a, err := original.JSON()
	if err != nil {
		return nil, err
	}
	b, err := patched.JSON()
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, err
	}
	if isEmpty(p) {
		return nil, nil
	}
	return p, nil
}

// Apply applies the merge patch p to the template JSON doc.
func Apply(doc, p []byte) ([]byte, error) {
	return jsonpatch.MergePatch(doc, p)
}

// Indent returns p indented for display.
func Indent(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, p, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isEmpty(p []byte) bool {
	return len(bytes.TrimSpace(p)) == 0 || string(bytes.TrimSpace(p)) == "{}"
}
