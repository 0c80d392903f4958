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

// Package mapping implements the keyword substitution applied to the raw text
// of descriptor files, documents and code files before they are parsed.
//
// Two placeholder forms are recognized for each key:
//
//	##KEY##  replaced by the value as text; strings are inserted verbatim,
//	         anything else is inserted as JSON.
//	@@KEY@@  replaced by the JSON encoding of the value, so strings come out
//	         quoted and lists or objects keep their structure.
package mapping

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"
)

// Mappings is the name to value table used for substitution.
type Mappings map[string]interface{}

// Replace returns input with every placeholder for a key of m substituted.
// Keys are processed in sorted order, and every ##KEY## form is replaced
// before any @@KEY@@ form.
func (m Mappings) Replace(input string) string {
	if len(m) == 0 {
		return input
	}
	keys := m.keys()
	for _, key := range keys {
		input = strings.ReplaceAll(input, "##"+key+"##", m.text(key))
	}
	for _, key := range keys {
		input = strings.ReplaceAll(input, "@@"+key+"@@", m.json(key))
	}
	return input
}

func (m Mappings) keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m Mappings) text(key string) string {
	if s, isString := m[key].(string); isString {
		return s
	}
	return m.json(key)
}

func (m Mappings) json(key string) string {
	out, err := json.Marshal(m[key])
	if err != nil {
		// Values come from YAML or JSON, so they always marshal.
		klog.Errorf("Unable to encode mapping %q: %v", key, err)
		return ""
	}
	return string(out)
}

// Load reads a YAML or JSON file holding a single object of mappings.
func Load(file string) (Mappings, error) {
	contents, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "reading mappings file %s", file)
	}
	var m Mappings
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing mappings file %s", file)
	}
	if m == nil {
		m = Mappings{}
	}
	klog.V(2).Infof("Loaded %d mappings from %s", len(m), file)
	return m, nil
}
