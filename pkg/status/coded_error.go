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

// codedError is the Error every builder produces. Its body is the message,
// then the cause, separated by ": ".
type codedError struct {
	code    string
	message string
	cause   error
}

var _ Error = codedError{}

// Error implements error.
func (e codedError) Error() string {
	return format(e)
}

// Is implements Error. Two status errors are the same if their codes match.
func (e codedError) Is(target error) bool {
	if se, ok := target.(Error); ok {
		return e.code == se.Code()
	}
	return false
}

// Code implements Error.
func (e codedError) Code() string {
	return e.code
}

// Body implements Error.
func (e codedError) Body() string {
	if e.cause == nil {
		return e.message
	}
	return joinNonEmpty(": ", e.message, e.cause.Error())
}

// Errors implements MultiError.
func (e codedError) Errors() []Error {
	return []Error{e}
}

// Unwrap implements Error.
func (e codedError) Unwrap() error {
	return e.cause
}
