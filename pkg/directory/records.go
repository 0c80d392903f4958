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
	"os"

	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
	"github.com/tenantsync/tenantsync/pkg/util/log"
	"github.com/tenantsync/tenantsync/pkg/util/sanitize"
	"k8s.io/klog/v2"
)

// fileNameFunc returns the unsanitized name of the file a record is written
// to, without extension.
type fileNameFunc func(o asset.Object) string

func nameFile(o asset.Object) string {
	return o.Name()
}

// descriptorFile returns the name of the descriptor file of o.
func descriptorFile(fileName fileNameFunc) func(o asset.Object) string {
	return func(o asset.Object) string {
		return sanitize.Name(fileName(o)) + tenantsync.DescriptorExtension
	}
}

// records returns a Handler which stores each record of kind as its own
// descriptor file, unchanged.
func records(kind asset.Kind, fileName fileNameFunc) handler.Handler[*Context] {
	return handler.Func[*Context]{
		For: kind,
		OnParse: func(c *Context) (asset.Slot, status.MultiError) {
			return readRecords(c, kind)
		},
		OnDump: func(c *Context) (asset.Slot, status.MultiError) {
			return writeRecords(c, kind, c.Assets.Get(kind), fileName)
		},
	}
}

// readRecords reads every descriptor file of kind, sorted by file name.
func readRecords(c *Context, kind asset.Kind) (asset.Slot, status.MultiError) {
	dir := c.kindDir(kind)
	if !files.IsDir(dir) {
		klog.V(2).Infof("No %s directory at %s", kind, dir.OSPath())
		return asset.Absent(), nil
	}
	found, err := files.Find(dir, tenantsync.DescriptorExtension)
	if err != nil {
		return asset.Absent(), err
	}
	objects := make([]asset.Object, 0, len(found))
	for _, file := range found {
		o, readErr := files.ReadObject(kind, file, c.Mappings)
		if readErr != nil {
			return asset.Absent(), readErr
		}
		objects = append(objects, o)
	}
	return asset.Present(objects...), nil
}

// writeRecords writes each record of slot to its own descriptor file.
func writeRecords(c *Context, kind asset.Kind, slot asset.Slot, fileName fileNameFunc) (asset.Slot, status.MultiError) {
	if slot.IsAbsent() {
		return slot, nil
	}
	descriptor := descriptorFile(fileName)
	if errs := handler.CheckUniqueFileNames(kind, slot.Objects(), descriptor); errs != nil {
		return asset.Absent(), errs
	}
	dir := c.kindDir(kind)
	if err := files.EnsureDir(dir); err != nil {
		return asset.Absent(), err
	}
	for _, o := range slot.Objects() {
		file := dir.Join(cmpath.RelativeSlash(descriptor(o)))
		if klog.V(3).Enabled() {
			klog.Infof("Changes to %s:\n%s", file.OSPath(), log.AsYAMLDiff(previousRecord(file), o))
		}
		if err := files.WriteJSON(kind, file, o); err != nil {
			return asset.Absent(), err
		}
	}
	return slot, nil
}

// previousRecord returns the record currently stored in file, or nil if there
// is none.
func previousRecord(file cmpath.Absolute) asset.Object {
	contents, err := os.ReadFile(file.OSPath())
	if err != nil {
		return nil
	}
	o, err := asset.DecodeObject(contents)
	if err != nil {
		return nil
	}
	return o
}
