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

package handler

import (
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
	"k8s.io/klog/v2"
)

// codeField is the field of an action holding either its code or, when
// persisted, a reference to the file holding its code.
const codeField = "code"

// LoadFunc resolves a code file reference into the text of the file.
type LoadFunc func(reference string) (string, status.Error)

// InlineCode returns action with its code reference replaced by the text load
// returns for it. Actions without code are returned as is. action is not
// modified.
func InlineCode(action asset.Object, load LoadFunc) (asset.Object, status.Error) {
	reference, _ := action.String(codeField)
	if reference == "" {
		return action, nil
	}
	code, err := load(reference)
	if err != nil {
		klog.Errorf("Failed to load the code of %s", action.ID(asset.Actions))
		return nil, err
	}
	result := action.ShallowCopy()
	result[codeField] = code
	return result, nil
}

// WriteActionCode creates dir if needed and writes code to fileName inside
// it, replacing anything already there.
func WriteActionCode(dir cmpath.Absolute, fileName, code string) (cmpath.Absolute, status.Error) {
	if err := files.EnsureDir(dir); err != nil {
		return "", err
	}
	file := dir.Join(cmpath.RelativeSlash(fileName))
	if err := files.Write(asset.Actions, file, []byte(code)); err != nil {
		return "", err
	}
	return file, nil
}

// DescribeAction decodes action and returns its descriptor. codePath is
// called with the decoded Action only when it has code, and returns the
// reference to record in place of the code.
func DescribeAction(action asset.Object, codePath func(a asset.Action) (string, status.Error)) (asset.ActionDescriptor, status.Error) {
	a, err := asset.ActionFromObject(action)
	if err != nil {
		return asset.ActionDescriptor{}, status.InvalidAssetError(err, action.ID(asset.Actions))
	}
	path := ""
	if a.Code != "" {
		var pathErr status.Error
		path, pathErr = codePath(a)
		if pathErr != nil {
			return asset.ActionDescriptor{}, pathErr
		}
	}
	return a.Descriptor(path), nil
}
