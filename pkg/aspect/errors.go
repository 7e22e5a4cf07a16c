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

	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// UndefinedConditionErrorCode is the error code for a condition which is
// neither defined in the template nor given a definition.
const UndefinedConditionErrorCode = "1003"

var undefinedConditionError = status.NewErrorBuilder(UndefinedConditionErrorCode)

// UndefinedConditionError reports that resources cannot be made conditional
// on a condition the template does not define.
func UndefinedConditionError(condition string, resources ...status.Resource) status.Error {
	return undefinedConditionError.
		Sprintf("condition %q is not defined in the template and no definition was configured", condition).
		BuildWithResources(resources...)
}

// MalformedResourceErrorCode is the error code for resources whose shape
// prevents an aspect from editing them.
const MalformedResourceErrorCode = "1006"

var malformedResourceError = status.NewErrorBuilder(MalformedResourceErrorCode)

// MalformedResourceError reports that an aspect could not edit a resource.
func MalformedResourceError(err error, aspect string, resources ...status.Resource) status.Error {
	return malformedResourceError.
		Sprintf("aspect %s could not edit resource", aspect).
		Wrap(err).
		BuildWithResources(resources...)
}

func errMissingProperty(name string) error {
	return fmt.Errorf("property %s is not set", name)
}
