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
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// RegionalPolicyNameName is the registry name of RegionalPolicyName.
const RegionalPolicyNameName = "regional-policy-name"

const policyName = "PolicyName"

// quickSightPolicies matches the inline policy of the QuickSight service role.
var quickSightPolicies = EndsWith("QuickSightServiceRole/Policy/Resource")

type regionalPolicyName struct{}

// RegionalPolicyName returns an aspect which appends "-<region>" to the name
// of the QuickSight service role policy, so the same stack can be deployed to
// several regions of one account.
//
// Names which already end with the suffix are left alone.
func RegionalPolicyName() Aspect {
	return regionalPolicyName{}
}

// Name implements Aspect.
func (regionalPolicyName) Name() string {
	return RegionalPolicyNameName
}

// Visit implements Aspect.
func (a regionalPolicyName) Visit(n *construct.Node) status.Error {
	if !n.IsResourceOfType(cfn.IAMPolicyType) || !quickSightPolicies.Matches(n) {
		return nil
	}
	r := n.Resource()
	name := r.Property(policyName)
	if name == nil {
		return MalformedResourceError(errMissingProperty(policyName), a.Name(), n)
	}
	suffix := cfn.Concat(cfn.String("-"), n.Stack().Region())
	if cfn.HasSuffix(name, suffix) {
		return nil
	}
	klog.V(4).Infof("Adding region to policy name of %s", n.Path())
	if err := r.AddPropertyOverride(policyName, cfn.Concat(name, suffix)); err != nil {
		return MalformedResourceError(err, a.Name(), n)
	}
	return nil
}
