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
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// DisablePublicIPOnLaunchName is the registry name of DisablePublicIPOnLaunch.
const DisablePublicIPOnLaunchName = "disable-public-ip-on-launch"

const mapPublicIPOnLaunch = "MapPublicIpOnLaunch"

type disablePublicIPOnLaunch struct{}

// DisablePublicIPOnLaunch returns an aspect which stops subnets from
// assigning public IP addresses to instances launched into them.
//
// Subnets which leave MapPublicIpOnLaunch unset, null or literally false are
// not changed.
func DisablePublicIPOnLaunch() Aspect {
	return disablePublicIPOnLaunch{}
}

// Name implements Aspect.
func (disablePublicIPOnLaunch) Name() string {
	return DisablePublicIPOnLaunchName
}

// Visit implements Aspect.
func (a disablePublicIPOnLaunch) Visit(n *construct.Node) status.Error {
	if !n.IsResourceOfType(cfn.EC2SubnetType) {
		return nil
	}
	r := n.Resource()
	v := r.Property(mapPublicIPOnLaunch)
	if v == nil || cfn.IsFalse(v) || isEmptyLiteral(v) {
		return nil
	}
	klog.V(4).Infof("Disabling %s on subnet %s", mapPublicIPOnLaunch, n.Path())
	if err := r.AddPropertyOverride(mapPublicIPOnLaunch, cfn.Bool(false)); err != nil {
		return MalformedResourceError(err, a.Name(), n)
	}
	return nil
}

// isEmptyLiteral reports whether v is null or the empty string.
func isEmptyLiteral(v *yaml.RNode) bool {
	s, ok := cfn.Literal(v)
	return ok && (s == "" || v.YNode().ShortTag() == yaml.NodeTagNull)
}
