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

package status

// ResourceErrorCode is the error code for a generic ResourceError.
const ResourceErrorCode = "2010"

// Resource is the identity of a template resource an error refers to.
type Resource interface {
	// ConstructPath is the slash-separated construct path, e.g.
	// "MyStack/VPC/PublicSubnet1/Subnet".
	ConstructPath() string
	// LogicalID is the key of the resource in the template's Resources
	// section. Empty for constructs which synthesize no resource.
	LogicalID() string
	// ResourceType is the CloudFormation type, e.g. "AWS::EC2::Subnet".
	ResourceType() string
}

// ResourceError defines a status error related to one or more template
// resources.
type ResourceError interface {
	Error
	Resources() []Resource
}

// resourceError builds errors about one or more resources.
var resourceError = NewErrorBuilder(ResourceErrorCode)

// ResourceWrap returns a ResourceError wrapping the given error and Resources.
func ResourceWrap(err error, msg string, resources ...Resource) Error {
	if err == nil {
		return nil
	}
	return resourceError.Sprint(msg).Wrap(err).BuildWithResources(resources...)
}
