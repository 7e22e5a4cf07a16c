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
	"strings"
	"testing"

	"k8s.io/klog/v2"
)

// ErrorBuilder assembles the Error for one code. Packages keep their
// builders private and export a constructor per error, so callers cannot get
// the message arguments wrong:
//
//	var duplicatePathError = status.NewErrorBuilder("1002")
//
//	func DuplicatePathError(path string, resources ...status.Resource) status.Error {
//		return duplicatePathError.
//			Sprintf("construct path %q is claimed by more than one resource", path).
//			BuildWithResources(resources...)
//	}
//
// Every code may be registered once; a second registration panics under test.
type ErrorBuilder struct {
	code    string
	message string
	cause   error

	// absent is set by Wrap(nil); the builder then produces nil.
	absent bool
}

// NewErrorBuilder registers code and returns a builder for it.
func NewErrorBuilder(code string) ErrorBuilder {
	register(code)
	return ErrorBuilder{code: code}
}

// Sprint appends message to the error text.
func (eb ErrorBuilder) Sprint(message string) ErrorBuilder {
	eb.message = joinNonEmpty(": ", eb.message, message)
	return eb
}

// Sprintf appends a formatted message to the error text. Errors belong in
// Wrap, not in the arguments.
func (eb ErrorBuilder) Sprintf(format string, a ...interface{}) ErrorBuilder {
	for _, arg := range a {
		if _, isErr := arg.(error); isErr {
			reportMisuse("error passed to Sprintf; use Wrap")
		}
	}
	message := fmt.Sprintf(format, a...)
	if strings.Contains(message, "%!") {
		reportMisuse("malformed error message: " + message)
	}
	return eb.Sprint(message)
}

// Wrap sets the cause of the error. Wrapping nil makes every Build method
// return nil, so callers can wrap an unchecked error unconditionally.
func (eb ErrorBuilder) Wrap(cause error) ErrorBuilder {
	if serr, ok := cause.(Error); ok {
		klog.Infof("wrapping CFA%s in CFA%s", serr.Code(), eb.code)
		reportMisuse("status.Error wrapped in another status.Error")
	}
	if cause == nil {
		eb.absent = true
		return eb
	}
	eb.cause = cause
	return eb
}

// Build returns the error.
func (eb ErrorBuilder) Build() Error {
	if eb.absent {
		return nil
	}
	return codedError{code: eb.code, message: eb.message, cause: eb.cause}
}

// BuildWithPaths returns the error annotated with the files it concerns.
func (eb ErrorBuilder) BuildWithPaths(paths ...string) PathError {
	if eb.absent || len(paths) == 0 {
		return nil
	}
	return pathErrorImpl{underlying: eb.Build(), paths: paths}
}

// BuildWithResources returns the error annotated with the template resources
// it concerns.
func (eb ErrorBuilder) BuildWithResources(resources ...Resource) ResourceError {
	if eb.absent || len(resources) == 0 {
		return nil
	}
	return resourceErrorImpl{underlying: eb.Build(), resources: resources}
}

// reportMisuse panics under go test and logs otherwise, so a malformed error
// fails tests without taking down a user's run.
func reportMisuse(message string) {
	if testing.Testing() {
		panic(message)
	}
	klog.Errorf("misused status package: %s", message)
}
