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

// Package fake builds templates and stacks for tests.
package fake

import (
	"regexp"
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
)

// Resource is a resource of a fake template.
type Resource struct {
	LogicalID  string
	Type       string
	Path       string
	Properties map[string]interface{}
	Metadata   map[string]interface{}
	Condition  string
}

// ResourceMutator modifies a Resource under construction.
type ResourceMutator func(r *Resource)

// LogicalID overrides the logical ID derived from the construct path.
func LogicalID(id string) ResourceMutator {
	return func(r *Resource) {
		r.LogicalID = id
	}
}

// Property sets a top-level property.
func Property(name string, value interface{}) ResourceMutator {
	return func(r *Resource) {
		if r.Properties == nil {
			r.Properties = map[string]interface{}{}
		}
		r.Properties[name] = value
	}
}

// Metadata sets a metadata entry.
func Metadata(key string, value interface{}) ResourceMutator {
	return func(r *Resource) {
		r.Metadata[key] = value
	}
}

// Unpathed removes the construct path metadata.
func Unpathed() ResourceMutator {
	return func(r *Resource) {
		delete(r.Metadata, metadata.CDKPathKey)
	}
}

// Condition sets the resource condition.
func Condition(name string) ResourceMutator {
	return func(r *Resource) {
		r.Condition = name
	}
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)

// NewResource returns a resource of the given type at the construct path.
// Its logical ID mimics the CDK's: the path below the stack without
// punctuation, followed by a hash.
func NewResource(resourceType, path string, opts ...ResourceMutator) Resource {
	r := Resource{
		LogicalID: logicalID(path),
		Type:      resourceType,
		Path:      path,
		Metadata:  map[string]interface{}{metadata.CDKPathKey: path},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func logicalID(path string) string {
	parts := strings.Split(path, metadata.PathSeparator)
	if len(parts) > 1 {
		parts = parts[1:]
	}
	// Default children do not contribute to the CDK's logical IDs.
	if last := parts[len(parts)-1]; len(parts) > 1 && (last == "Resource" || last == "Default") {
		parts = parts[:len(parts)-1]
	}
	readable := nonAlphanumeric.ReplaceAllString(strings.Join(parts, ""), "")
	hash := strings.ToUpper(metadata.StatementID("", path))
	return readable + hash
}
