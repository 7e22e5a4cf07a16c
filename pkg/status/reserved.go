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

const (
	// InternalErrorCode marks a bug in cfnaspects itself.
	InternalErrorCode = "9998"
	// UndocumentedErrorCode marks a failure no other code describes.
	UndocumentedErrorCode = "9999"
)

var (
	internalError     = NewErrorBuilder(InternalErrorCode).Sprint("internal error")
	undocumentedError = NewErrorBuilder(UndocumentedErrorCode)
)

// InternalError reports a state correct code cannot reach, such as a
// template failing to encode after it parsed. Users should file a bug.
func InternalError(message string) Error {
	return internalError.Sprint(message).Build()
}

// InternalErrorf is InternalError with a formatted message.
func InternalErrorf(format string, a ...interface{}) Error {
	return internalError.Sprintf(format, a...).Build()
}

// InternalWrap reports err as an internal error. It returns nil for a nil err.
func InternalWrap(err error) Error {
	return internalError.Wrap(err).Build()
}

// UndocumentedError returns an error with no documented code.
func UndocumentedError(message string) Error {
	return undocumentedError.Sprint(message).Build()
}

// undocumented gives a plain error a code so it can join a MultiError.
func undocumented(err error) Error {
	return undocumentedError.Wrap(err).Build()
}
