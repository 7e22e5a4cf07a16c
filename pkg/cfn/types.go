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

package cfn

// CloudFormation resource types the built-in aspects recognise.
const (
	EC2SubnetType            = "AWS::EC2::Subnet"
	EC2SecurityGroupType     = "AWS::EC2::SecurityGroup"
	IAMRoleType              = "AWS::IAM::Role"
	IAMPolicyType            = "AWS::IAM::Policy"
	KMSKeyType               = "AWS::KMS::Key"
	LambdaFunctionType       = "AWS::Lambda::Function"
	S3BucketType             = "AWS::S3::Bucket"
	SNSTopicType             = "AWS::SNS::Topic"
	StepFunctionsMachineType = "AWS::StepFunctions::StateMachine"
)

// Top-level template sections.
const (
	sectionResources  = "Resources"
	sectionConditions = "Conditions"
)

// Resource attribute keys.
const (
	attrType       = "Type"
	attrProperties = "Properties"
	attrMetadata   = "Metadata"
	attrCondition  = "Condition"
)
