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

// Package metadata holds the well-known keys of CloudFormation resource
// Metadata entries read or written by cfnaspects.
package metadata

const (
	// CDKPathKey is the resource metadata key the CDK sets on every
	// synthesized resource. Its value is the slash-separated construct path,
	// e.g. "QCStack/VPC/PublicSubnet1/Subnet".
	CDKPathKey = "aws:cdk:path"

	// CfnNagKey is the resource metadata key read by the cfn_nag scanner.
	CfnNagKey = "cfn_nag"

	// CfnNagRulesToSuppressKey holds the list of suppressed rules under
	// CfnNagKey. Each entry has an "id" and a "reason".
	CfnNagRulesToSuppressKey = "rules_to_suppress"

	// CDKMetadataType is the type of the resource the CDK adds to record
	// library versions. It has no construct semantics.
	CDKMetadataType = "AWS::CDK::Metadata"
)

// PathSeparator separates construct ids in a construct path.
const PathSeparator = "/"

// DefaultChildIDs are the construct ids the CDK uses for the default child of
// a higher-level construct, in lookup order.
var DefaultChildIDs = []string{"Resource", "Default"}

// MetricsNamespace is the prometheus namespace of all cfnaspects metrics.
const MetricsNamespace = "cfnaspects"

// CLIName is the name of the command line tool.
const CLIName = "cfnaspects"
