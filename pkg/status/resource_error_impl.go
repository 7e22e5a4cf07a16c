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

import (
	"fmt"
	"sort"
	"strings"
)

type resourceErrorImpl struct {
	underlying Error
	resources  []Resource
}

var _ ResourceError = resourceErrorImpl{}

// Error implements error.
func (r resourceErrorImpl) Error() string {
	return format(r)
}

// Is implements Error.
func (r resourceErrorImpl) Is(target error) bool {
	return r.underlying.Is(target)
}

// Code implements Error.
func (r resourceErrorImpl) Code() string {
	return r.underlying.Code()
}

// Body implements Error.
func (r resourceErrorImpl) Body() string {
	return joinNonEmpty("\n\n", r.underlying.Body(), formatResources(r.resources...))
}

// Errors implements MultiError.
func (r resourceErrorImpl) Errors() []Error {
	return []Error{r}
}

// Resources implements ResourceError.
func (r resourceErrorImpl) Resources() []Resource {
	return r.resources
}

// Unwrap implements Error.
func (r resourceErrorImpl) Unwrap() error {
	return r.underlying.Unwrap()
}

// formatResources returns a formatted string containing all Resources in the ResourceError.
func formatResources(resources ...Resource) string {
	resStrs := make([]string, len(resources))
	for i, res := range resources {
		resStrs[i] = PrintResource(res)
	}
	// Sort to ensure deterministic resource printing order.
	sort.Strings(resStrs)
	return strings.Join(resStrs, "\n\n")
}

// PrintResource returns a human-readable output for the Resource.
func PrintResource(r Resource) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("path: %s\n", r.ConstructPath()))
	if r.LogicalID() != "" {
		sb.WriteString(fmt.Sprintf("logicalId: %s\n", r.LogicalID()))
	}
	sb.WriteString(fmt.Sprintf("type:%s", typeName(r.ResourceType())))
	return sb.String()
}

// typeName returns the empty string if t is the empty string, otherwise prepends a space.
func typeName(t string) string {
	if t == "" {
		return ""
	}
	return " " + t
}
