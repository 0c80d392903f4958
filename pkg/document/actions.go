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

package document

import (
	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/sanitize"
)

// actions keeps the code of each action in a file next to the document,
// referenced from the document as ./actions/<name>.js.
func actions() handler.Handler[*Context] {
	return handler.Func[*Context]{
		For:     asset.Actions,
		OnParse: parseActions,
		OnDump:  dumpActions,
	}
}

func parseActions(c *Context) (asset.Slot, status.MultiError) {
	slot := c.Assets.Get(asset.Actions)
	if slot.IsAbsent() {
		return slot, nil
	}
	result := make([]asset.Object, slot.Len())
	for i, action := range slot.Objects() {
		inlined, err := handler.InlineCode(action, c.LoadFile)
		if err != nil {
			return asset.Absent(), err
		}
		result[i] = inlined
	}
	return asset.Present(result...), nil
}

func dumpActions(c *Context) (asset.Slot, status.MultiError) {
	slot := c.Assets.Get(asset.Actions)
	if slot.IsAbsent() {
		return slot, nil
	}
	codeFile := func(o asset.Object) string {
		return sanitize.Name(o.Name()) + tenantsync.ActionCodeExtension
	}
	if errs := handler.CheckUniqueFileNames(asset.Actions, slot.Objects(), codeFile); errs != nil {
		return asset.Absent(), errs
	}

	dir := c.BasePath.Join(cmpath.RelativeSlash(tenantsync.ActionsDirectory))
	result := make([]asset.Object, 0, slot.Len())
	for _, action := range slot.Objects() {
		d, err := handler.DescribeAction(action, func(a asset.Action) (string, status.Error) {
			file := codeFile(action)
			if _, writeErr := handler.WriteActionCode(dir, file, a.Code); writeErr != nil {
				return "", writeErr
			}
			return "./" + cmpath.RelativeSlash(tenantsync.ActionsDirectory, file).SlashPath(), nil
		})
		if err != nil {
			return asset.Absent(), err
		}
		o, convErr := asset.ToObject(d)
		if convErr != nil {
			return asset.Absent(), status.InternalWrap(convErr)
		}
		result = append(result, o)
	}
	return asset.Present(result...), nil
}
