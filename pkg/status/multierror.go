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
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// MultiError is a collection of status errors. A single Error is a
// MultiError of one.
type MultiError interface {
	error
	Errors() []Error
}

// Append returns m with err and errs added. Nested MultiErrors are flattened
// and plain errors, including ones combined with multierr, are added as
// undocumented errors. It returns nil if there is nothing to report.
//
// m is never modified, so one base may be extended along several branches.
func Append(m MultiError, err error, errs ...error) MultiError {
	result := &multiError{}
	if m != nil {
		result.errs = slices.Clone(m.Errors())
	}
	result.add(err)
	for _, e := range errs {
		result.add(e)
	}
	if len(result.errs) == 0 {
		return nil
	}
	return result
}

// HasCode reports whether any error in errs has the given code.
func HasCode(errs MultiError, code string) bool {
	if errs == nil {
		return false
	}
	return slices.ContainsFunc(errs.Errors(), func(e Error) bool {
		return e.Code() == code
	})
}

var _ MultiError = (*multiError)(nil)

type multiError struct {
	errs []Error
}

func (m *multiError) add(err error) {
	switch e := err.(type) {
	case nil:
	case Error:
		m.errs = append(m.errs, e)
	case MultiError:
		m.errs = append(m.errs, e.Errors()...)
	default:
		for _, er := range multierr.Errors(err) {
			m.errs = append(m.errs, undocumented(er))
		}
	}
}

// Error implements error.
func (m *multiError) Error() string {
	return FormatMultiLine(m)
}

// Errors implements MultiError.
func (m *multiError) Errors() []Error {
	if m == nil || len(m.errs) == 0 {
		return nil
	}
	return m.errs
}

// Is reports whether target holds errors with the same codes in the same
// order.
func (m *multiError) Is(target error) bool {
	other, ok := target.(MultiError)
	if !ok {
		return false
	}
	otherErrs := other.Errors()
	if len(m.errs) != len(otherErrs) {
		return false
	}
	for i := range m.errs {
		if !errors.Is(m.errs[i], otherErrs[i]) {
			return false
		}
	}
	return true
}

// FormatMultiLine renders the distinct errors in e, sorted and numbered,
// separated by blank lines.
func FormatMultiLine(e error) string {
	msgs := uniqueMessages(e)
	if len(msgs) == 0 {
		return ""
	}
	lines := []string{fmt.Sprintf("%d error(s)\n", len(msgs))}
	for i, msg := range msgs {
		lines = append(lines, fmt.Sprintf("[%d] %s\n", i+1, msg))
	}
	return strings.Join(lines, "\n\n")
}

// uniqueMessages returns the sorted, de-duplicated messages of the errors
// in e.
func uniqueMessages(e error) []string {
	m, ok := e.(MultiError)
	if !ok {
		m = Append(nil, e)
	}
	if m == nil {
		return nil
	}
	var msgs []string
	for _, err := range m.Errors() {
		msgs = append(msgs, err.Error())
	}
	slices.Sort(msgs)
	return slices.Compact(msgs)
}
