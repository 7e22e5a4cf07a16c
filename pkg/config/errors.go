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

package config

import (
	"github.com/molecular-unfolding/cfnaspects/pkg/status"
)

// InvalidConfigErrorCode is the error code for configuration files which
// cannot be parsed or fail validation.
const InvalidConfigErrorCode = "1004"

var invalidConfigError = status.NewErrorBuilder(InvalidConfigErrorCode)

// InvalidConfigError reports an invalid configuration file. An empty path
// reports invalid command line options.
func InvalidConfigError(err error, path string) status.Error {
	b := invalidConfigError.Sprint("invalid configuration").Wrap(err)
	if path == "" {
		return b.Build()
	}
	return b.BuildWithPaths(path)
}
