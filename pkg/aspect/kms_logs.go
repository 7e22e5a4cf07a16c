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
	"github.com/molecular-unfolding/cfnaspects/pkg/metadata"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
	"k8s.io/klog/v2"
	"sigs.k8s.io/kustomize/kyaml/yaml"
)

// GrantKMSLogsName is the registry name of GrantKMSLogs.
const GrantKMSLogsName = "grant-kms-logs"

const (
	logsServicePrincipal = "logs.amazonaws.com"
	logsEncryptionArnKey = "kms:EncryptionContext:aws:logs:arn"
	logsStatementPrefix  = "AllowCloudWatchLogs"
	policyVersion        = "2012-10-17"
	anyLogGroup          = "*"
)

var logsKeyActions = []interface{}{
	"kms:Encrypt*",
	"kms:ReEncrypt*",
	"kms:Decrypt*",
	"kms:GenerateDataKey*",
	"kms:Describe*",
}

// GrantKeyLogsAccess adds a statement to the key policy of the AWS::KMS::Key
// key allowing CloudWatch Logs to use the key for the log group
// logGroupName of stack. An empty logGroupName grants access for every log
// group of the stack's account and region.
//
// The statement Sid is derived from the log group name; a key which already
// has it is not changed.
func GrantKeyLogsAccess(stack *construct.Stack, key *cfn.Resource, logGroupName string) error {
	if key.Type() != cfn.KMSKeyType {
		return fmt.Errorf("resource %s has type %s, want %s", key.LogicalID(), key.Type(), cfn.KMSKeyType)
	}
	if logGroupName == "" {
		logGroupName = anyLogGroup
	}
	sid := metadata.StatementID(logsStatementPrefix, logGroupName)

	return key.Edit(func(node *yaml.RNode) error {
		policy, err := node.Pipe(yaml.LookupCreate(yaml.MappingNode, "Properties", "KeyPolicy"))
		if err != nil {
			return err
		}
		if policy.YNode().Kind != yaml.MappingNode {
			return fmt.Errorf("KeyPolicy is not a mapping")
		}
		if policy.Field("Version") == nil {
			if err := policy.PipeE(yaml.SetField("Version", cfn.String(policyVersion))); err != nil {
				return err
			}
		}
		statements, err := policy.Pipe(yaml.LookupCreate(yaml.SequenceNode, "Statement"))
		if err != nil {
			return err
		}
		if statements.YNode().Kind != yaml.SequenceNode {
			return fmt.Errorf("KeyPolicy.Statement is not a list")
		}
		for _, s := range statements.YNode().Content {
			f := yaml.NewRNode(s).Field("Sid")
			if f == nil {
				continue
			}
			if existing, _ := cfn.Literal(f.Value); existing == sid {
				return nil
			}
		}

		statement, err := logsStatement(stack, sid, logGroupName)
		if err != nil {
			return err
		}
		statements.YNode().Content = append(statements.YNode().Content, statement.YNode())
		return nil
	})
}

// logsStatement builds the key policy statement for the log group name.
func logsStatement(stack *construct.Stack, sid, logGroupName string) (*yaml.RNode, error) {
	statement, err := cfn.FromValue(map[string]interface{}{
		"Sid":       sid,
		"Effect":    "Allow",
		"Principal": map[string]interface{}{"Service": logsServicePrincipal},
		"Action":    logsKeyActions,
		"Resource":  "*",
	})
	if err != nil {
		return nil, err
	}
	arn := cfn.Concat(
		cfn.String("arn:"), stack.Partition(),
		cfn.String(":logs:"), stack.Region(),
		cfn.String(":"), stack.Account(),
		cfn.String(":log-group:"+logGroupName),
	)
	err = statement.PipeE(
		yaml.LookupCreate(yaml.MappingNode, "Condition", "ArnLike"),
		yaml.SetField(logsEncryptionArnKey, arn))
	if err != nil {
		return nil, err
	}
	return statement, nil
}

type grantKMSLogs struct {
	keys         PathMatcher
	logGroupName string
}

// GrantKMSLogs returns an aspect which calls GrantKeyLogsAccess on every
// AWS::KMS::Key whose construct path ends with keySuffix.
func GrantKMSLogs(keySuffix, logGroupName string) Aspect {
	return &grantKMSLogs{keys: EndsWith(keySuffix), logGroupName: logGroupName}
}

// Name implements Aspect.
func (a *grantKMSLogs) Name() string {
	return GrantKMSLogsName
}

// Visit implements Aspect.
func (a *grantKMSLogs) Visit(n *construct.Node) status.Error {
	if !n.IsResourceOfType(cfn.KMSKeyType) || !a.keys.Matches(n) {
		return nil
	}
	klog.V(4).Infof("Granting CloudWatch Logs access to key %s", n.Path())
	if err := GrantKeyLogsAccess(n.Stack(), n.Resource(), a.logGroupName); err != nil {
		return MalformedResourceError(err, a.Name(), n)
	}
	return nil
}
