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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementID(t *testing.T) {
	testcases := []struct {
		name   string
		prefix string
		key    string
	}{
		{
			name:   "wildcard log group",
			prefix: "AllowCloudWatchLogs",
			key:    "*",
		},
		{
			name:   "named log group",
			prefix: "AllowCloudWatchLogs",
			key:    "/aws/vendedlogs/states/QCStateMachine",
		},
		{
			name:   "empty key",
			prefix: "Sid",
			key:    "",
		},
	}

	valid := regexp.MustCompile(`^[A-Za-z0-9]+$`)
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := StatementID(tc.prefix, tc.key)
			assert.Len(t, got, len(tc.prefix)+8)
			assert.Regexp(t, valid, got)
			assert.Equal(t, got, StatementID(tc.prefix, tc.key))
		})
	}

	assert.NotEqual(t, StatementID("A", "x"), StatementID("A", "y"))
}
