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
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuilder = ErrorBuilder{code: "1999"}

func TestErrorBuilder(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "message only",
			err:  testBuilder.Sprint("bad template").Build(),
			want: "CFA1999: bad template",
		},
		{
			name: "message and cause",
			err:  testBuilder.Sprintf("stack %s", "QCStack").Wrap(errors.New("boom")).Build(),
			want: "CFA1999: stack QCStack: boom",
		},
		{
			name: "cause only",
			err:  testBuilder.Wrap(errors.New("boom")).Build(),
			want: "CFA1999: boom",
		},
		{
			name: "internal error",
			err:  InternalError("unexpected nil template"),
			want: "CFA9998: internal error: unexpected nil template",
		},
		{
			name: "paths",
			err:  PathWrapError(errors.New("denied"), "b.json", "a.json"),
			want: "CFA2001: denied\n\npath: a.json\npath: b.json",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NotNil(t, tc.err)
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestErrorBuilderNilCause(t *testing.T) {
	assert.Nil(t, testBuilder.Wrap(nil).Build())
	assert.Nil(t, testBuilder.Wrap(nil).BuildWithPaths("a.json"))
	assert.Nil(t, testBuilder.Sprint("unused").BuildWithPaths())
	assert.Nil(t, InternalWrap(nil))
	assert.Nil(t, PathWrapError(nil, "a.json"))
}

func TestErrorBuilderMisuse(t *testing.T) {
	assert.Panics(t, func() {
		testBuilder.Sprintf("failed: %v", errors.New("use Wrap"))
	})
	extra := "one %s"
	assert.Panics(t, func() {
		testBuilder.Sprintf(extra, "a", "b")
	})
	assert.Panics(t, func() {
		testBuilder.Wrap(InternalError("nested"))
	})
	assert.Panics(t, func() {
		NewErrorBuilder(InternalErrorCode)
	})
}

func TestUnwrap(t *testing.T) {
	err := PathWrapError(fs.ErrNotExist, "cdk.out/manifest.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, errors.Is(err, PathWrapError(errors.New("other"), "x.json")))
	assert.False(t, errors.Is(err, InternalError("x")))
}

func TestCodeRegistry(t *testing.T) {
	got := CodeRegistry()
	assert.IsIncreasing(t, got)
	assert.Contains(t, got, InternalErrorCode)
	assert.Contains(t, got, UndocumentedErrorCode)
	assert.Contains(t, got, PathErrorCode)
}
