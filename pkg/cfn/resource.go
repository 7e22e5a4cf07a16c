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
	"fmt"
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Resource is a single entry of a template's Resources section.
//
// All mutations go through Edit, which increments Generation only when the
// resource actually changed. Callers use Generation to detect changes without
// diffing templates.
type Resource struct {
	logicalID  string
	node       *yaml.RNode
	generation uint64
}

// LogicalID returns the key of the resource in the Resources section.
func (r *Resource) LogicalID() string {
	return r.logicalID
}

// Type returns the CloudFormation resource type, e.g. "AWS::EC2::Subnet".
func (r *Resource) Type() string {
	n := r.node.Field(attrType)
	if n == nil {
		return ""
	}
	v, _ := Literal(n.Value)
	return v
}

// Value returns the resource as plain Go values, for display.
func (r *Resource) Value() (interface{}, error) {
	return ToValue(r.node)
}

// Generation returns a counter incremented on every effective mutation.
func (r *Resource) Generation() uint64 {
	return r.generation
}

// CDKPath returns the construct path recorded by the CDK in the resource
// metadata, or the empty string.
func (r *Resource) CDKPath() string {
	v, _ := Literal(r.Metadata(metadata.CDKPathKey))
	return v
}

// Property returns the value of a top-level property, or nil.
func (r *Resource) Property(name string) *yaml.RNode {
	return r.lookup(attrProperties, name)
}

// Metadata returns the value of a resource metadata entry, or nil.
func (r *Resource) Metadata(key string) *yaml.RNode {
	return r.lookup(attrMetadata, key)
}

// Condition returns the name of the condition the resource is created under.
func (r *Resource) Condition() string {
	n := r.node.Field(attrCondition)
	if n == nil {
		return ""
	}
	v, _ := Literal(n.Value)
	return v
}

func (r *Resource) lookup(section, key string) *yaml.RNode {
	n, err := r.node.Pipe(yaml.Lookup(section, key))
	if err != nil || n.IsNil() {
		return nil
	}
	return n
}

// Edit runs fn against the resource's mapping node. Generation is incremented
// if fn changed the data the node holds; a rewrite that only differs in
// scalar style or key order is not a change.
func (r *Resource) Edit(fn func(node *yaml.RNode) error) error {
	before := r.node.Copy()
	if err := fn(r.node); err != nil {
		return err
	}
	if !Equal(before, r.node) {
		r.generation++
	}
	return nil
}

// AddPropertyOverride sets the property at a dot-separated path, creating
// intermediate mappings as needed. A literal dot in a property name is
// escaped as `\.`.
func (r *Resource) AddPropertyOverride(path string, value *yaml.RNode) error {
	parts := splitPropertyPath(path)
	if len(parts) == 0 {
		return fmt.Errorf("empty property override path for resource %s", r.logicalID)
	}
	return r.Edit(func(node *yaml.RNode) error {
		lookup := append([]string{attrProperties}, parts[:len(parts)-1]...)
		parent, err := node.Pipe(yaml.LookupCreate(yaml.MappingNode, lookup...))
		if err != nil {
			return fmt.Errorf("resource %s: %w", r.logicalID, err)
		}
		return parent.PipeE(yaml.SetField(parts[len(parts)-1], value))
	})
}

// AddMetadata sets a resource metadata entry, replacing any existing value.
func (r *Resource) AddMetadata(key string, value *yaml.RNode) error {
	return r.Edit(func(node *yaml.RNode) error {
		md, err := node.Pipe(yaml.LookupCreate(yaml.MappingNode, attrMetadata))
		if err != nil {
			return fmt.Errorf("resource %s: %w", r.logicalID, err)
		}
		return md.PipeE(yaml.SetField(key, value))
	})
}

// SetCondition makes the resource conditional on the named condition.
func (r *Resource) SetCondition(name string) error {
	return r.Edit(func(node *yaml.RNode) error {
		return node.PipeE(yaml.SetField(attrCondition, String(name)))
	})
}

// ConstructPath implements status.Resource.
func (r *Resource) ConstructPath() string {
	return r.CDKPath()
}

// ResourceType implements status.Resource.
func (r *Resource) ResourceType() string {
	return r.Type()
}

// splitPropertyPath splits on dots not preceded by a backslash.
func splitPropertyPath(path string) []string {
	if path == "" {
		return nil
	}
	var parts []string
	var sb strings.Builder
	for i := 0; i < len(path); i++ {
		switch {
		case path[i] == '\\' && i+1 < len(path) && path[i+1] == '.':
			sb.WriteByte('.')
			i++
		case path[i] == '.':
			parts = append(parts, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(path[i])
		}
	}
	return append(parts, sb.String())
}
