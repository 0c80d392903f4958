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

package asset

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spyzhov/ajson"
	"k8s.io/klog/v2"
)

// ExclusionRules maps a kind to the JSONPath expressions selecting fields to
// drop from each of its records.
type ExclusionRules map[Kind][]string

// Exclude returns a copy of bag with the fields selected by rules deleted.
// bag and its records are left untouched.
func Exclude(bag *Assets, rules ExclusionRules) (*Assets, error) {
	out := NewAssets()
	for _, kind := range bag.Kinds() {
		slot := bag.Get(kind)
		expressions := rules[kind]
		if len(expressions) == 0 {
			out.Set(kind, slot)
			continue
		}
		objects := make([]Object, 0, slot.Len())
		for _, o := range slot.Objects() {
			stripped := o
			for _, expression := range expressions {
				var err error
				stripped, err = DeleteFields(stripped, expression)
				if err != nil {
					return nil, errors.Wrapf(err, "excluding fields from %s", o.ID(kind))
				}
			}
			objects = append(objects, stripped)
		}
		out.Set(kind, Present(objects...))
	}
	return out, nil
}

// DeleteFields evaluates the JSONPath expression against obj and returns a
// new Object without the matching fields. If nothing matches, obj is returned
// as is.
func DeleteFields(obj Object, expression string) (Object, error) {
	// format input object as json for input into jsonpath library
	jsonBytes, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal input to json")
	}
	root, err := ajson.Unmarshal(jsonBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal input json")
	}

	nodes, err := root.JSONPath(expression)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate jsonpath expression (%s)", expression)
	}
	if len(nodes) == 0 {
		return obj, nil
	}
	for _, node := range nodes {
		if err = node.Delete(); err != nil {
			klog.Warningf("failed to delete a node: %v", err)
		}
	}

	jsonBytes, err = ajson.Marshal(root)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal jsonpath result to json")
	}
	return DecodeObject(jsonBytes)
}
