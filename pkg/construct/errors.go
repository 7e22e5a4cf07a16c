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

package construct

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// DuplicatePathErrorCode is the error code for two resources which claim
// the same construct path.
const DuplicatePathErrorCode = "1002"

var duplicatePathError = status.NewErrorBuilder(DuplicatePathErrorCode)

// DuplicatePathError reports resources which share a construct path.
func DuplicatePathError(path string, resources ...status.Resource) status.Error {
	return duplicatePathError.
		Sprintf("construct path %q is claimed by more than one resource", path).
		BuildWithResources(resources...)
}
