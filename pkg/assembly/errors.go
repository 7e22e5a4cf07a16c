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

package assembly

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// UnsupportedAssemblyErrorCode is the error code for cloud assemblies whose
// manifest cannot be read.
const UnsupportedAssemblyErrorCode = "1005"

var unsupportedAssemblyError = status.NewErrorBuilder(UnsupportedAssemblyErrorCode)

// UnsupportedAssemblyError reports a manifest which is malformed or has an
// unsupported schema version.
func UnsupportedAssemblyError(err error, path string) status.Error {
	return unsupportedAssemblyError.Sprint("unsupported cloud assembly").
		Wrap(err).BuildWithPaths(path)
}
