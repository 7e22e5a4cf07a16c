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
	"fmt"

	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

const (
	// AttachManagedPolicyName is the registry name of AttachManagedPolicy.
	AttachManagedPolicyName = "attach-managed-policy"

	// SSMManagedInstanceCore is the AWS managed policy which lets Systems
	// Manager manage an instance.
	SSMManagedInstanceCore = "AmazonSSMManagedInstanceCore"

	// EcsInstanceRoleSuffix is the path suffix of the batch compute
	// environment's instance role.
	EcsInstanceRoleSuffix = "/Ecs-Instance-Role"

	managedPolicyArns = "ManagedPolicyArns"
)

type attachManagedPolicy struct {
	policyName string
	roles      PathMatcher
}

// AttachManagedPolicy returns an aspect which adds the AWS managed policy
// policyName to roles whose construct path ends with roleSuffix.
//
// It matches role constructs rather than the synthesized AWS::IAM::Role: the
// node itself has no resource and its default child is the role. ARNs
// already in ManagedPolicyArns are not added twice.
func AttachManagedPolicy(policyName, roleSuffix string) Aspect {
	return &attachManagedPolicy{policyName: policyName, roles: EndsWith(roleSuffix)}
}

// Name implements Aspect.
func (a *attachManagedPolicy) Name() string {
	return AttachManagedPolicyName
}

// Visit implements Aspect.
func (a *attachManagedPolicy) Visit(n *construct.Node) status.Error {
	if n.Resource() != nil || !a.roles.Matches(n) {
		return nil
	}
	role := n.DefaultChild()
	if role == nil || !role.IsResourceOfType(cfn.IAMRoleType) {
		return nil
	}

	arn := a.policyArn(n.Stack().Partition())
	// CDK renders managed policy ARNs with a partition reference whether or
	// not the region is known.
	equivalents := []*yaml.RNode{arn, a.policyArn(cfn.Ref(cfn.PseudoPartition))}

	err := role.Resource().Edit(func(node *yaml.RNode) error {
		list, err := node.Pipe(yaml.LookupCreate(yaml.SequenceNode, "Properties", managedPolicyArns))
		if err != nil {
			return err
		}
		if list.YNode().Kind != yaml.SequenceNode {
			return fmt.Errorf("%s is not a list", managedPolicyArns)
		}
		for _, item := range list.YNode().Content {
			existing := yaml.NewRNode(item)
			for _, e := range equivalents {
				if cfn.Equal(existing, e) {
					return nil
				}
			}
		}
		klog.V(4).Infof("Attaching %s to role %s", a.policyName, n.Path())
		list.YNode().Content = append(list.YNode().Content, arn.YNode())
		return nil
	})
	if err != nil {
		return MalformedResourceError(err, a.Name(), role)
	}
	return nil
}

// policyArn returns arn:<partition>:iam::aws:policy/<name>.
func (a *attachManagedPolicy) policyArn(partition *yaml.RNode) *yaml.RNode {
	return cfn.Concat(
		cfn.String("arn:"),
		partition,
		cfn.String(":iam::aws:policy/"+a.policyName),
	)
}
