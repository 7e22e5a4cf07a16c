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
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// AddConditionName is the registry name of AddCondition.
const AddConditionName = "add-condition"

// eventRuleResources matches the resources backing the optional EventBridge
// rule: its custom resource provider and the policies granting access to it.
var eventRuleResources = PathMatcher{
	Suffixes: []string{
		"/CreateEventRuleFunc/ServiceRole/DefaultPolicy/Resource",
		"/EventBridgeRole/DefaultPolicy/Resource",
	},
	Contains: []string{
		"/EventRuleCustomResourceProvider/framework-onEvent/",
	},
}

type addCondition struct {
	condition  string
	definition *yaml.RNode
}

// AddCondition returns an aspect which makes the EventBridge rule resources
// conditional on the named condition.
//
// If the template does not define the condition, definition is added to its
// Conditions section. A nil definition for an undefined condition is an
// error on every matching resource, and nothing is changed.
func AddCondition(condition string, definition *yaml.RNode) Aspect {
	return &addCondition{condition: condition, definition: definition}
}

// Name implements Aspect.
func (a *addCondition) Name() string {
	return AddConditionName
}

// Visit implements Aspect.
func (a *addCondition) Visit(n *construct.Node) status.Error {
	r := n.Resource()
	if r == nil || !eventRuleResources.Matches(n) {
		return nil
	}

	tmpl := n.Stack().Template()
	if !tmpl.HasCondition(a.condition) {
		if a.definition.IsNil() {
			return UndefinedConditionError(a.condition, n)
		}
		klog.V(2).Infof("Defining condition %s in stack %s", a.condition, n.Stack().Name())
		if err := tmpl.SetCondition(a.condition, a.definition.Copy()); err != nil {
			return status.InternalWrap(err)
		}
	}

	if err := r.SetCondition(a.condition); err != nil {
		return MalformedResourceError(err, a.Name(), n)
	}
	return nil
}
