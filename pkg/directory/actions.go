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

package directory

import (
	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
	"github.com/tenantsync/tenantsync/pkg/util/sanitize"
)

// actions stores each action as a descriptor file, with its code in a file of
// its own:
//
//	actions/<name>.json
//	actions/<name>/code.js
func actions() handler.Handler[*Context] {
	return handler.Func[*Context]{
		For:     asset.Actions,
		OnParse: parseActions,
		OnDump:  dumpActions,
	}
}

func parseActions(c *Context) (asset.Slot, status.MultiError) {
	descriptors, errs := readRecords(c, asset.Actions)
	if errs != nil || descriptors.IsAbsent() {
		return descriptors, errs
	}
	result := make([]asset.Object, descriptors.Len())
	for i, descriptor := range descriptors.Objects() {
		// Code folders are named after the record. Folders written under the
		// sanitized name are found too.
		folder := cmpath.RelativeSlash(tenantsync.ActionsDirectory, descriptor.Name())
		sanitized := cmpath.RelativeSlash(tenantsync.ActionsDirectory, sanitize.Name(descriptor.Name()))
		action, err := handler.InlineCode(descriptor, func(reference string) (string, status.Error) {
			return c.LoadFile(reference, folder, sanitized)
		})
		if err != nil {
			return asset.Absent(), err
		}
		result[i] = action
	}
	return asset.Present(result...), nil
}

func dumpActions(c *Context) (asset.Slot, status.MultiError) {
	slot := c.Assets.Get(asset.Actions)
	if slot.IsAbsent() {
		return slot, nil
	}
	descriptor := descriptorFile(nameFile)
	if errs := handler.CheckUniqueFileNames(asset.Actions, slot.Objects(), descriptor); errs != nil {
		return asset.Absent(), errs
	}
	dir := c.kindDir(asset.Actions)
	if err := files.EnsureDir(dir); err != nil {
		return asset.Absent(), err
	}

	written := make([]asset.Object, 0, slot.Len())
	for _, action := range slot.Objects() {
		name := sanitize.Name(action.Name())
		d, err := handler.DescribeAction(action, func(a asset.Action) (string, status.Error) {
			if _, writeErr := handler.WriteActionCode(dir.Join(cmpath.RelativeSlash(name)), tenantsync.ActionCodeFile, a.Code); writeErr != nil {
				return "", writeErr
			}
			return cmpath.RelativeSlash(tenantsync.ActionsDirectory, name, tenantsync.ActionCodeFile).SlashPath(), nil
		})
		if err != nil {
			return asset.Absent(), err
		}
		if err := files.WriteJSON(asset.Actions, dir.Join(cmpath.RelativeSlash(descriptor(action))), d); err != nil {
			return asset.Absent(), err
		}
		o, convErr := asset.ToObject(d)
		if convErr != nil {
			return asset.Absent(), status.InternalWrap(convErr)
		}
		written = append(written, o)
	}
	return asset.Present(written...), nil
}
