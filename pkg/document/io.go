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
	"bytes"
	"encoding/json"
	"os"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
	"github.com/tenantsync/tenantsync/pkg/util/log"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
	sigsyaml "sigs.k8s.io/yaml"
)

// documentLabel labels reads and writes of the document itself in metrics.
const documentLabel asset.Kind = "document"

// Load replaces the asset bag with the sections of the document. A missing
// document leaves every kind absent. Sections for unregistered kinds are
// ignored.
func (c *Context) Load() status.MultiError {
	c.Assets = asset.NewAssets()
	if _, err := os.Stat(c.Path.OSPath()); os.IsNotExist(err) {
		klog.V(2).Infof("No document at %s", c.Path.OSPath())
		return nil
	}
	contents, err := files.Read(documentLabel, c.Path, c.Mappings)
	if err != nil {
		return err
	}

	var doc map[string]interface{}
	if yamlErr := sigsyaml.Unmarshal([]byte(contents), &doc, useNumber); yamlErr != nil {
		return status.DocumentParseError(yamlErr, c.Path)
	}

	var errs status.MultiError
	for _, kind := range Registry().Kinds() {
		slot, sectionErr := c.section(kind, doc[kind.String()])
		if sectionErr != nil {
			errs = status.Append(errs, sectionErr)
			continue
		}
		c.Assets.Set(kind, slot)
	}
	return errs
}

// useNumber keeps document numbers as json.Number so large integers are
// written back unchanged.
func useNumber(d *json.Decoder) *json.Decoder {
	d.UseNumber()
	return d
}

func (c *Context) section(kind asset.Kind, raw interface{}) (asset.Slot, status.Error) {
	if raw == nil {
		return asset.Absent(), nil
	}
	list, isList := raw.([]interface{})
	if !isList {
		return asset.Absent(), status.InvalidSectionError(kind, raw, c.Path)
	}
	objects := make([]asset.Object, len(list))
	for i, item := range list {
		o, isObject := item.(map[string]interface{})
		if !isObject {
			return asset.Absent(), status.InvalidSectionError(kind, item, c.Path)
		}
		objects[i] = o
	}
	return asset.Present(objects...), nil
}

// Write replaces the document with the present slots of bag, in registry
// order.
func (c *Context) Write(bag *asset.Assets) status.Error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, kind := range Registry().Kinds() {
		slot := bag.Get(kind)
		if slot.IsAbsent() {
			continue
		}
		value := &yaml.Node{}
		if err := value.Encode(slot.Objects()); err != nil {
			return status.InternalWrap(err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: kind.String()}
		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return status.InternalWrap(err)
	}
	if err := enc.Close(); err != nil {
		return status.InternalWrap(err)
	}

	if klog.V(3).Enabled() {
		previous, _ := os.ReadFile(c.Path.OSPath())
		klog.Infof("Changes to %s:\n%s", c.Path.OSPath(), log.AsTextDiff(string(previous), buf.String()))
	}
	if err := files.EnsureDir(c.Path.Dir()); err != nil {
		return err
	}
	return files.Write(documentLabel, c.Path, buf.Bytes())
}

func isFile(p cmpath.Absolute) bool {
	info, err := os.Stat(p.OSPath())
	return err == nil && info.Mode().IsRegular()
}
