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
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Error is a coded cfnaspects error. Each code is "CFA" followed by four
// digits and stays stable across releases, so scripts wrapping the CLI can
// tell failures apart.
//
// - 1XXX, a template, assembly or configuration needs fixing.
// - 2XXX, reading or writing files failed.
// - 9998, InternalError.
// - 9999, UndocumentedError.
type Error interface {
	MultiError
	// Code is the four digit identifier of the error.
	Code() string
	// Body is the error text without the code prefix.
	Body() string
	// Is reports whether target is a status Error with the same code.
	Is(target error) bool
	// Unwrap returns the wrapped cause, if any.
	Unwrap() error
}

// PathError is an Error about one or more files.
type PathError interface {
	Error
	RelativePaths() []string
}

// codes holds every code claimed by NewErrorBuilder.
var codes = make(map[string]struct{})

// register claims code for a builder.
func register(code string) {
	if _, taken := codes[code]; taken {
		reportMisuse(fmt.Sprintf("error code CFA%s is registered twice; CFA%s is free", code, nextFreeCode(code)))
	}
	codes[code] = struct{}{}
}

func nextFreeCode(code string) string {
	c, err := strconv.Atoi(code)
	if err != nil {
		return "????"
	}
	for {
		c++
		if _, taken := codes[strconv.Itoa(c)]; !taken {
			return strconv.Itoa(c)
		}
	}
}

// CodeRegistry returns the registered error codes in ascending order.
func CodeRegistry() []string {
	return slices.Sorted(maps.Keys(codes))
}

// format renders err as "CFA<code>: <body>".
func format(err Error) string {
	return "CFA" + err.Code() + ": " + err.Body()
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
