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

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// TemplateParseErrorCode is the error code for templates which cannot be
// parsed or do not have the shape of a CloudFormation template.
const TemplateParseErrorCode = "1001"

var templateParseError = status.NewErrorBuilder(TemplateParseErrorCode)

// TemplateParseError reports that the template at path could not be parsed.
func TemplateParseError(err error, path string) status.Error {
	return templateParseError.Sprint("unable to parse CloudFormation template").
		Wrap(err).BuildWithPaths(path)
}
