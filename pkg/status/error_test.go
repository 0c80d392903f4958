// Copyright 2025 Google LLC
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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
)

func TestDescriptorParseError(t *testing.T) {
	err := DescriptorParseError(errors.New("unexpected end of JSON input"), cmpath.Absolute("/tenant/actions/a.json"))

	assert.Equal(t, DescriptorParseErrorCode, err.Code())
	assert.Equal(t, "TS1006: unable to parse descriptor file: unexpected end of JSON input\n\npath: /tenant/actions/a.json", err.Error())
	assert.Equal(t, "unexpected end of JSON input", err.Cause().Error())

	pathErr, ok := err.(PathError)
	require.True(t, ok, "expected a PathError, got %T", err)
	assert.Equal(t, []cmpath.Path{cmpath.Absolute("/tenant/actions/a.json")}, pathErr.RelativePaths())
}

func TestCodeReferenceError(t *testing.T) {
	err := CodeReferenceError("hello.js",
		cmpath.Absolute("/tenant/actions/welcome/hello.js"), cmpath.Absolute("/tenant/hello.js"))

	assert.Equal(t, "TS1007: code file \"hello.js\" does not exist\n\n"+
		"path: /tenant/actions/welcome/hello.js\npath: /tenant/hello.js", err.Error())
}

func TestDuplicateNameError(t *testing.T) {
	err := DuplicateNameError(asset.Actions, "a-b.json", "a/b", "a:b")

	assetErr, ok := err.(AssetError)
	require.True(t, ok, "expected an AssetError, got %T", err)
	assert.Equal(t, []asset.ID{
		{Kind: asset.Actions, Name: "a/b"},
		{Kind: asset.Actions, Name: "a:b"},
	}, assetErr.Assets())
	assert.Contains(t, err.Error(), "kind: actions, name: a/b\nkind: actions, name: a:b")
}

func TestErrorsIsMatchesCodes(t *testing.T) {
	first := FileWriteError(errors.New("disk full"), cmpath.Absolute("/tenant/a.json"))
	second := FileWriteError(errors.New("permission denied"), cmpath.Absolute("/tenant/b.json"))
	assert.True(t, errors.Is(first, second))
	assert.False(t, errors.Is(first, InternalWrap(errors.New("x"))))
}

func TestBuildWithoutPathsIsNil(t *testing.T) {
	assert.Nil(t, pathError.Sprint("no paths").BuildWithPaths())
	assert.Nil(t, PathWrapError(nil, "a"))
}

func TestWrapStatusErrorPanics(t *testing.T) {
	assert.Panics(t, func() {
		UndocumentedErrorBuilder.Wrap(InternalWrap(errors.New("nested")))
	})
}
