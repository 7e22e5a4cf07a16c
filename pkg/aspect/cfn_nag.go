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
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
)

// CfnNagSuppressionsName is the registry name of CfnNagSuppressions.
const CfnNagSuppressionsName = "cfn-nag-suppressions"

// Rule is a cfn_nag rule to suppress on a resource.
type Rule struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// Suppression suppresses Rules on resources whose path matches Paths.
type Suppression struct {
	Paths PathMatcher
	Rules []Rule
}

const (
	reasonGeneratedLambda = "the lambda is auto generated by CDK"
	reasonLogGroupPolicy  = "the policy about log group is generated by CDK"
	reasonGeneratedByCDK  = "generated by CDK"
)

// independentSuppressions are checked on every node regardless of the chain.
var independentSuppressions = []Suppression{
	{
		Paths: EndsWith(
			"/Custom::S3AutoDeleteObjectsCustomResourceProvider/Handler",
			"/EventRuleCustomResourceProvider/framework-onEvent/Resource",
		),
		Rules: []Rule{
			{ID: "W58", Reason: reasonGeneratedLambda},
			{ID: "W89", Reason: reasonGeneratedLambda},
		},
	},
}

// chainedSuppressions are checked in order. Only the first match applies.
var chainedSuppressions = []Suppression{
	{
		Paths: EndsWith("/CreateEventRuleFunc/Resource"),
		Rules: []Rule{{ID: "W89", Reason: "Lambda is used as custom resource"}},
	},
	{
		Paths: EndsWith(
			"/AggResultLambda/Resource",
			"/TaskParametersLambda/Resource",
			"/DeviceAvailableCheckLambda/Resource",
			"/WaitForTokenLambda/Resource",
			"/BraketTaskEventHandler/ParseBraketResultLambda/Resource",
		),
		Rules: []Rule{{ID: "W58", Reason: "the lambda already have the cloudwatch permission"}},
	},
	{
		Paths: EndsWith(
			"/ccBatchJobRole/DefaultPolicy/Resource",
			"/qcBatchJobRole/DefaultPolicy/Resource",
			"/createModelBatchJobRole/DefaultPolicy/Resource",
			"/batchExecutionRole/DefaultPolicy/Resource",
			"/TaskParametersLambdaRole/DefaultPolicy/Resource",
			"/DeviceAvailableCheckLambdaRole/DefaultPolicy/Resource",
			"/ParseBraketResultLambdaRole/DefaultPolicy/Resource",
			"/AggResultLambdaRole/DefaultPolicy/Resource",
			"/WaitForTokenLambdaRole/DefaultPolicy/Resource",
			"/Notebook/NotebookRole/DefaultPolicy/Resource",
			"/BucketNotificationsHandler050a0587b7544547bf325f094a3db834/Role/DefaultPolicy/Resource",
			"/CreateEventRuleFuncRole/DefaultPolicy/Resource",
		),
		Rules: []Rule{{ID: "W12", Reason: "some permissions are not resource-level permissions"}},
	},
	{
		Paths: EndsWith(
			"/CCStateMachine/Role/DefaultPolicy/Resource",
			"/QCStateMachine/Role/DefaultPolicy/Resource",
		),
		Rules: []Rule{{ID: "W12", Reason: reasonLogGroupPolicy}},
	},
	{
		Paths: EndsWith(
			"/BatchEvaluationStateMachine/Role/DefaultPolicy/Resource",
			"/RunCCAndQCStateMachine/Role/DefaultPolicy/Resource",
			"/QCDeviceStateMachine/Role/DefaultPolicy/Resource",
		),
		Rules: []Rule{
			{ID: "W12", Reason: reasonLogGroupPolicy},
			{ID: "W76", Reason: "The policy is generated automatically by CDK"},
		},
	},
	{
		Paths: EndsWith("/AccessLogS3Bucket/Resource"),
		Rules: []Rule{{ID: "W35", Reason: "this is access log bucket"}},
	},
	{
		Paths: EndsWith("/batchSg/Resource", "/lambdaSg/Resource"),
		Rules: []Rule{{ID: "W5", Reason: "cidr open to world on egress"}},
	},
	{
		Paths: EndsWith(
			"/VPC/EcrDockerEndpoint/SecurityGroup/Resource",
			"/VPC/AthenaEndpoint/SecurityGroup/Resource",
			"/VPC/BraketEndpoint/SecurityGroup/Resource",
		),
		Rules: []Rule{
			{ID: "W5", Reason: reasonGeneratedByCDK},
			{ID: "W40", Reason: reasonGeneratedByCDK},
		},
	},
	{
		Paths: EndsWith("/SNSKey/Resource"),
		Rules: []Rule{{ID: "F76", Reason: "Key for SNS, add constraint in conditions"}},
	},
}

type cfnNagSuppressions struct {
	independent []Suppression
	chain       []Suppression
}

// CfnNagSuppressions returns an aspect which records cfn_nag rule
// suppressions in the metadata of well-known generated resources. extra
// suppressions are checked after the built-in ones.
//
// The cfn_nag metadata entry of a matching resource is replaced, not merged.
func CfnNagSuppressions(extra ...Suppression) Aspect {
	chain := make([]Suppression, 0, len(chainedSuppressions)+len(extra))
	chain = append(chain, chainedSuppressions...)
	chain = append(chain, extra...)
	return &cfnNagSuppressions{
		independent: independentSuppressions,
		chain:       chain,
	}
}

// Name implements Aspect.
func (a *cfnNagSuppressions) Name() string {
	return CfnNagSuppressionsName
}

// Visit implements Aspect.
func (a *cfnNagSuppressions) Visit(n *construct.Node) status.Error {
	for _, s := range a.independent {
		if s.Paths.Matches(n) {
			if err := a.suppress(n, s.Rules); err != nil {
				return err
			}
		}
	}
	for _, s := range a.chain {
		if s.Paths.Matches(n) {
			return a.suppress(n, s.Rules)
		}
	}
	return nil
}

func (a *cfnNagSuppressions) suppress(n *construct.Node, rules []Rule) status.Error {
	r := n.Resource()
	if r == nil {
		klog.V(4).Infof("Not suppressing cfn_nag rules on %s: construct has no resource", n.Path())
		return nil
	}
	v, err := cfn.FromValue(cfnNagMetadata(rules))
	if err != nil {
		return status.InternalWrap(err)
	}
	if err := r.AddMetadata(metadata.CfnNagKey, v); err != nil {
		return MalformedResourceError(err, a.Name(), n)
	}
	return nil
}

func cfnNagMetadata(rules []Rule) map[string]interface{} {
	list := make([]interface{}, len(rules))
	for i, rule := range rules {
		list[i] = map[string]interface{}{
			"id":     rule.ID,
			"reason": rule.Reason,
		}
	}
	return map[string]interface{}{
		metadata.CfnNagRulesToSuppressKey: list,
	}
}
