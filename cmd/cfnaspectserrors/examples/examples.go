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

package examples

import (
	"errors"

	"github.com/molecular-unfolding/cfnaspects/pkg/aspect"
	"github.com/molecular-unfolding/cfnaspects/pkg/assembly"
	"github.com/molecular-unfolding/cfnaspects/pkg/cfn"
	"github.com/molecular-unfolding/cfnaspects/pkg/config"
	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// ExamplesOrDeprecated contains either a list of example errors, or that the
// id is deprecated.
type ExamplesOrDeprecated struct {
	Examples   []status.Error
	Deprecated bool
}

// AllExamples is a map from error codes to either example errors, or a mark that
// the code is deprecated.
type AllExamples map[string]ExamplesOrDeprecated

const exampleTemplate = `{
 "Resources": {
  "VPCPublicSubnet1SubnetB4246D30": {
   "Type": "AWS::EC2::Subnet",
   "Metadata": {"aws:cdk:path": "QCStack/VPC/PublicSubnet1/Subnet"}
  },
  "QuickSightServiceRolePolicy1A2B3C4D": {
   "Type": "AWS::IAM::Policy",
   "Metadata": {"aws:cdk:path": "QCStack/QuickSightServiceRole/Policy/Resource"}
  }
 }
}`

// Generate generates example errors for documentation.
// CFA1XXX means the templates or the configuration need fixing.
// CFA2XXX means something went wrong reading or writing files.
// CFA9XXX means we made a mistake programming, and users should file a bug.
func Generate() AllExamples {
	result := make(AllExamples)

	tmpl, err := cfn.Parse([]byte(exampleTemplate))
	if err != nil {
		panic(err)
	}
	subnet, policy := tmpl.Resources()[0], tmpl.Resources()[1]

	// 1001
	result.add(cfn.TemplateParseError(errors.New("template must be a mapping"), "cdk.out/QCStack.template.json"))

	// 1002
	result.add(construct.DuplicatePathError("QCStack/VPC/PublicSubnet1/Subnet", subnet, subnet))

	// 1003
	result.add(aspect.UndefinedConditionError("DeployEventRule", subnet))

	// 1004
	result.add(config.InvalidConfigError(errors.New(`aspects[0]: unknown aspect "no-such-aspect"`), "aspects.yaml"))

	// 1005
	result.add(assembly.UnsupportedAssemblyError(errors.New("manifest version 1.0.0 is not supported, want >= 2.0.0"), "cdk.out/manifest.json"))

	// 1006
	result.add(aspect.MalformedResourceError(errors.New("missing property PolicyName"), aspect.RegionalPolicyNameName, policy))

	// 2001
	result.add(status.PathWrapError(errors.New("no such file or directory"), "cdk.out/QCStack.template.json"))

	// 2010
	result.add(status.ResourceWrap(errors.New("unexpected value"), "cannot edit resource", subnet))

	// 9998
	result.add(status.InternalError("unexpected nil template"))

	// 9999
	result.add(status.UndocumentedError("unclassified failure"))

	return result
}

// Add adds the given error to the collection examples of errors.
func (e *ExamplesOrDeprecated) Add(error status.Error) {
	e.Examples = append(e.Examples, error)
}

func (e AllExamples) add(err status.Error) {
	// Ensures example error can be displayed.
	_ = err.Error()
	code := err.Code()
	examples := e[code]
	examples.Add(err)
	e[code] = examples
}
