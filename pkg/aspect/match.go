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
	"strings"

	"github.com/molecular-unfolding/cfnaspects/pkg/construct"
)

// PathMatcher selects construct nodes by their path.
type PathMatcher struct {
	// Suffixes match paths ending with any of them.
	Suffixes []string
	// Contains match paths containing any of them.
	Contains []string
}

// Matches reports whether the path of n satisfies any suffix or substring.
func (m PathMatcher) Matches(n *construct.Node) bool {
	return m.MatchesPath(n.Path())
}

// MatchesPath reports whether path satisfies any suffix or substring.
func (m PathMatcher) MatchesPath(path string) bool {
	for _, s := range m.Suffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	for _, s := range m.Contains {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// EndsWith returns a matcher for paths ending with any of suffixes.
func EndsWith(suffixes ...string) PathMatcher {
	return PathMatcher{Suffixes: suffixes}
}
