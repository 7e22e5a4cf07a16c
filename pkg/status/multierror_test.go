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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var undocumentedErrFoo = UndocumentedError("foo")
var pathErrBar = PathWrapError(errors.New("bar"), "cdk.out/QCStack.template.json")
var undocumentedErrBaz = UndocumentedError("baz")

var errFooRaw = errors.New("raw foo")
var errBarRaw = errors.New("raw bar")

const multiLineError = "2 error(s)\n\n\n" +
	"[1] CFA9999: raw bar\n\n\n" +
	"[2] CFA9999: raw foo\n"


func TestHasCode(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  MultiError
		code string
		want bool
	}{
		{
			name: "An empty MultiError",
			err:  nil,
			code: UndocumentedErrorCode,
			want: false,
		},
		{
			name: "Code present",
			err:  &multiError{errs: []Error{undocumented(errFooRaw), pathErrBar}},
			code: PathErrorCode,
			want: true,
		},
		{
			name: "Code absent",
			err:  &multiError{errs: []Error{undocumented(errFooRaw)}},
			code: PathErrorCode,
			want: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := HasCode(tc.err, tc.code)
			if got != tc.want {
				t.Errorf("HasCode() got %v; want %v", got, tc.want)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	for _, tc := range []struct {
		name   string
		errors []error
		want   MultiError
	}{
		{
			"build golang errors",
			[]error{errFooRaw, errBarRaw},
			&multiError{errs: []Error{undocumented(errFooRaw), undocumented(errBarRaw)}},
		},
		{
			"build status Errors",
			[]error{undocumentedErrFoo, pathErrBar},
			&multiError{errs: []Error{undocumentedErrFoo, pathErrBar}},
		},
		{
			"build nil errors",
			[]error{nil, nil},
			nil,
		},
		{
			"build mixed errors",
			[]error{undocumentedErrBaz, nil, errFooRaw},
			&multiError{errs: []Error{undocumentedErrBaz, undocumented(errFooRaw)}},
		},
		{
			"combine MultiErrors",
			[]error{&multiError{[]Error{undocumentedErrFoo, pathErrBar}}, &multiError{[]Error{undocumentedErrBaz}}},
			&multiError{[]Error{undocumentedErrFoo, pathErrBar, undocumentedErrBaz}},
		},
		{
			"unpack multierr errors",
			[]error{multierr.Combine(errFooRaw, errBarRaw)},
			&multiError{errs: []Error{undocumented(errFooRaw), undocumented(errBarRaw)}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var errs MultiError
			for _, err := range tc.errors {
				errs = Append(errs, err)
			}

			switch {
			case tc.want == nil && errs == nil:
				// Nothing to check; successful test.
			case tc.want == nil && errs != nil:
				t.Errorf("got %v; want nil", errs)
			case tc.want != nil && errs == nil:
				t.Errorf("got nil; want %v", tc.want)
			case tc.want != nil && errs != nil:
				assert.Len(t, errs.Errors(), len(tc.want.Errors()))
				assert.Equal(t, tc.want.Error(), errs.Error())
			}
		})
	}
}

func TestFormatMultiLine(t *testing.T) {
	for _, tc := range []struct {
		name   string
		errors []error
		want   string
	}{
		{
			"no errors",
			nil,
			"",
		},
		{
			"sorted by message",
			[]error{errFooRaw, errBarRaw},
			multiLineError,
		},
		{
			"duplicates are printed once",
			[]error{errBarRaw, errFooRaw, errBarRaw},
			multiLineError,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var errs MultiError
			for _, err := range tc.errors {
				errs = Append(errs, err)
			}
			if diff := cmp.Diff(tc.want, FormatMultiLine(errs)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestAppendLeavesBaseUnchanged(t *testing.T) {
	base := Append(nil, undocumentedErrFoo, pathErrBar)
	// Leave spare capacity in the base, as successive appends do.
	base = Append(base, undocumentedErrBaz)

	left := Append(base, errFooRaw)
	right := Append(base, errBarRaw)

	assert.Len(t, base.Errors(), 3)
	require.Len(t, left.Errors(), 4)
	require.Len(t, right.Errors(), 4)
	assert.Equal(t, "CFA9999: raw foo", left.Errors()[3].Error())
	assert.Equal(t, "CFA9999: raw bar", right.Errors()[3].Error())
}

func TestErrors(t *testing.T) {
	var nilMultiError multiError
	for _, tc := range []struct {
		name   string
		errors multiError
	}{
		{"a nil multiError has no errors", nilMultiError},
		{"an empty multiError has no errors", multiError{errs: []Error{}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.errors.Errors()
			if errs != nil {
				t.Errorf("multiError.Errors() = %v, want nil", errs)
			}
		})
	}
}

func TestIs(t *testing.T) {
	left := Append(nil, undocumentedErrFoo, pathErrBar)
	sameCodes := Append(nil, undocumentedErrBaz, PathWrapError(errors.New("other"), "x.json"))
	swapped := Append(nil, pathErrBar, undocumentedErrFoo)

	assert.True(t, errors.Is(left, sameCodes))
	assert.False(t, errors.Is(left, swapped))
	assert.False(t, errors.Is(left, errFooRaw))
}

func TestResourceError(t *testing.T) {
	err := ResourceWrap(errors.New("boom"), "unable to patch", fakeResource{
		path:      "QCStack/VPC/PublicSubnet1/Subnet",
		logicalID: "VPCPublicSubnet1SubnetB4246D30",
		typ:       "AWS::EC2::Subnet",
	})
	want := "CFA2010: unable to patch: boom\n\n" +
		"path: QCStack/VPC/PublicSubnet1/Subnet\n" +
		"logicalId: VPCPublicSubnet1SubnetB4246D30\n" +
		"type: AWS::EC2::Subnet"
	if diff := cmp.Diff(want, err.Error()); diff != "" {
		t.Error(diff)
	}
	assert.Nil(t, ResourceWrap(nil, "unused"))
}

type fakeResource struct {
	path      string
	logicalID string
	typ       string
}

func (r fakeResource) ConstructPath() string { return r.path }
func (r fakeResource) LogicalID() string     { return r.logicalID }
func (r fakeResource) ResourceType() string  { return r.typ }
