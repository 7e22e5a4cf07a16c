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
	"errors"
	"fmt"
	"os"

	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Template is a parsed CloudFormation template.
type Template struct {
	root      *yaml.RNode
	format    Format
	resources []*Resource
	byID      map[string]*Resource

	// generation counts edits outside Resources, such as new conditions.
	generation uint64
}

// ReadFile reads and parses the template at path.
func ReadFile(path string) (*Template, status.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, status.PathWrapError(err, path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, TemplateParseError(err, path)
	}
	return t, nil
}

// Parse parses a JSON or YAML CloudFormation template. Short-form intrinsic
// tags are expanded to long form.
func Parse(data []byte) (*Template, error) {
	root, err := yaml.Parse(string(data))
	if err != nil {
		return nil, err
	}
	if root.IsNil() || root.YNode().Kind != yaml.MappingNode {
		return nil, errors.New("template must be a mapping")
	}
	ExpandShortForm(root.YNode())

	t := &Template{
		root:   root,
		format: DetectFormat(data),
		byID:   make(map[string]*Resource),
	}

	resources := root.Field(sectionResources)
	if resources == nil || resources.Value.IsNilOrEmpty() {
		klog.Warning("template declares no Resources")
		return t, nil
	}
	if resources.Value.YNode().Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s must be a mapping", sectionResources)
	}
	content := resources.Value.YNode().Content
	for i := 0; i+1 < len(content); i += 2 {
		id, value := content[i].Value, content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("resource %s must be a mapping", id)
		}
		r := &Resource{logicalID: id, node: yaml.NewRNode(value)}
		if r.Type() == "" {
			return nil, fmt.Errorf("resource %s has no %s", id, attrType)
		}
		if _, dup := t.byID[id]; dup {
			return nil, fmt.Errorf("duplicate resource logical ID %s", id)
		}
		t.resources = append(t.resources, r)
		t.byID[id] = r
	}
	return t, nil
}

// Format returns the format the template was parsed from.
func (t *Template) Format() Format {
	return t.format
}

// Resources returns the resources in document order.
func (t *Template) Resources() []*Resource {
	return t.resources
}

// Resource returns the resource with the given logical ID, or nil.
func (t *Template) Resource(logicalID string) *Resource {
	return t.byID[logicalID]
}

// Generation returns the number of edits made to the template. It changes
// whenever a resource changes or a condition is defined.
func (t *Template) Generation() uint64 {
	g := t.generation
	for _, r := range t.resources {
		g += r.generation
	}
	return g
}

// HasCondition reports whether the Conditions section defines name.
func (t *Template) HasCondition(name string) bool {
	n, err := t.root.Pipe(yaml.Lookup(sectionConditions, name))
	return err == nil && !n.IsNil()
}

// Conditions returns the names of the defined conditions in document order.
func (t *Template) Conditions() []string {
	conditions := t.root.Field(sectionConditions)
	if conditions == nil || conditions.Value.IsNilOrEmpty() {
		return nil
	}
	names, err := conditions.Value.Fields()
	if err != nil {
		return nil
	}
	return names
}

// SetCondition defines the named condition. An existing definition is left
// untouched.
func (t *Template) SetCondition(name string, definition *yaml.RNode) error {
	if t.HasCondition(name) {
		return nil
	}
	if definition.IsNil() {
		return fmt.Errorf("condition %s has no definition", name)
	}
	conditions, err := t.root.Pipe(yaml.LookupCreate(yaml.MappingNode, sectionConditions))
	if err != nil {
		return err
	}
	if err := conditions.PipeE(yaml.SetField(name, definition)); err != nil {
		return err
	}
	t.generation++
	return nil
}

// Copy returns a deep copy of the template.
func (t *Template) Copy() *Template {
	c, err := Parse([]byte(t.root.MustString()))
	if err != nil {
		// The template parsed once already, so its serialization parses too.
		panic(fmt.Sprintf("re-parsing template: %v", err))
	}
	c.format = t.format
	return c
}
