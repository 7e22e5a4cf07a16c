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
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// Params configure an aspect constructed from the registry. Each aspect
// reads only the fields it documents.
type Params struct {
	// Suppressions are extra cfn_nag suppressions (cfn-nag-suppressions).
	Suppressions []Suppression
	// Condition is the condition logical ID (add-condition).
	Condition string
	// ConditionDefinition defines Condition when the template does not
	// (add-condition).
	ConditionDefinition *yaml.RNode
	// PathSuffix selects the constructs to edit (attach-managed-policy,
	// grant-kms-logs).
	PathSuffix string
	// PolicyName is the AWS managed policy to attach (attach-managed-policy).
	PolicyName string
	// LogGroupName is the log group allowed to use the key (grant-kms-logs).
	LogGroupName string
}

// Registration describes a built-in aspect.
type Registration struct {
	Name        string
	Description string
	// Priority is the attachment priority used unless configured otherwise.
	Priority Priority
	// Default is true for aspects which run when no aspects are configured.
	// They must be constructible from empty Params.
	Default bool
	// New constructs the aspect.
	New func(p Params) (Aspect, error)
}

var registry = orderedmap.NewOrderedMap[string, Registration]()

func register(r Registration) {
	if registry.Has(r.Name) {
		panic(fmt.Sprintf("aspect %q registered twice", r.Name))
	}
	registry.Set(r.Name, r)
}

// Lookup returns the registration of the named aspect.
func Lookup(name string) (Registration, bool) {
	return registry.Get(name)
}

// Registered returns all built-in aspects in registration order.
func Registered() []Registration {
	var result []Registration
	for el := registry.Front(); el != nil; el = el.Next() {
		result = append(result, el.Value)
	}
	return result
}

// Defaults returns attachments of the default aspects to the whole stack.
func Defaults() []Attachment {
	var result []Attachment
	for _, r := range Registered() {
		if !r.Default {
			continue
		}
		a, err := r.New(Params{})
		if err != nil {
			// Default aspects take no required parameters.
			panic(fmt.Sprintf("constructing default aspect %s: %v", r.Name, err))
		}
		result = append(result, Attachment{Aspect: a, Priority: r.Priority})
	}
	return result
}

func init() {
	register(Registration{
		Name:        DisablePublicIPOnLaunchName,
		Description: "Set MapPublicIpOnLaunch to false on subnets which enable it",
		Priority:    Mutating,
		Default:     true,
		New: func(Params) (Aspect, error) {
			return DisablePublicIPOnLaunch(), nil
		},
	})
	register(Registration{
		Name:        CfnNagSuppressionsName,
		Description: "Add cfn_nag rule suppressions to generated resources",
		Priority:    Readonly,
		Default:     true,
		New: func(p Params) (Aspect, error) {
			for i, s := range p.Suppressions {
				if len(s.Paths.Suffixes) == 0 && len(s.Paths.Contains) == 0 {
					return nil, fmt.Errorf("suppression %d matches no paths", i)
				}
				if len(s.Rules) == 0 {
					return nil, fmt.Errorf("suppression %d has no rules", i)
				}
			}
			return CfnNagSuppressions(p.Suppressions...), nil
		},
	})
	register(Registration{
		Name:        AddConditionName,
		Description: "Make the EventBridge rule resources conditional",
		Priority:    Mutating,
		New: func(p Params) (Aspect, error) {
			if p.Condition == "" {
				return nil, errors.New("condition is required")
			}
			return AddCondition(p.Condition, p.ConditionDefinition), nil
		},
	})
	register(Registration{
		Name:        AttachManagedPolicyName,
		Description: "Attach an AWS managed policy to matching roles",
		Priority:    Mutating,
		Default:     true,
		New: func(p Params) (Aspect, error) {
			policy, suffix := p.PolicyName, p.PathSuffix
			if policy == "" {
				policy = SSMManagedInstanceCore
			}
			if suffix == "" {
				suffix = EcsInstanceRoleSuffix
			}
			return AttachManagedPolicy(policy, suffix), nil
		},
	})
	register(Registration{
		Name:        RegionalPolicyNameName,
		Description: "Append the region to the QuickSight service role policy name",
		Priority:    Mutating,
		Default:     true,
		New: func(Params) (Aspect, error) {
			return RegionalPolicyName(), nil
		},
	})
	register(Registration{
		Name:        GrantKMSLogsName,
		Description: "Allow CloudWatch Logs to use matching KMS keys",
		Priority:    Mutating,
		New: func(p Params) (Aspect, error) {
			if p.PathSuffix == "" {
				return nil, errors.New("pathSuffix is required")
			}
			return GrantKMSLogs(p.PathSuffix, p.LogGroupName), nil
		},
	})
}
