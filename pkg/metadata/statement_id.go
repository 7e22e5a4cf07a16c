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

package metadata

import (
	"fmt"
	"hash/fnv"
)

// StatementID returns a policy statement Sid made of prefix followed by the
// hex fnv hash of key, e.g. "AllowCloudWatchLogs1c9e6a4f". Sids may only
// contain alphanumeric characters, so prefix must too.
func StatementID(prefix, key string) string {
	// fnv32a has slightly better avalanche characteristics than fnv32
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(key))
	// Pad so every Sid with the same prefix has the same length.
	return fmt.Sprintf("%s%08x", prefix, hasher.Sum32())
}
