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
	"bytes"
	"encoding/json"
	"maps"

	"github.com/pkg/errors"
)

// Object is a single record with arbitrary JSON-compatible fields.
type Object map[string]interface{}

// String returns the string value of field, and whether the field held a
// string.
func (o Object) String(field string) (string, bool) {
	s, ok := o[field].(string)
	return s, ok
}

// Name returns the name field, or the empty string if unset.
func (o Object) Name() string {
	name, _ := o.String("name")
	return name
}

// ID returns the ID of o as a record of kind.
func (o Object) ID(kind Kind) ID {
	return ID{Kind: kind, Name: o.Name()}
}

// ShallowCopy returns a copy of o which can have top-level fields replaced
// without affecting o. Nested values are shared.
func (o Object) ShallowCopy() Object {
	return maps.Clone(o)
}

// DecodeObject decodes a single JSON object. Numbers are kept as json.Number
// so integers of any size survive a round trip.
func DecodeObject(data []byte) (Object, error) {
	var o Object
	if err := unmarshal(data, &o); err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return o, nil
}

// ToObject converts any JSON-serializable value into an Object.
func ToObject(v interface{}) (Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return DecodeObject(data)
}

// FromObject decodes o into the struct pointed to by v.
func FromObject(o Object, v interface{}) error {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return unmarshal(data, v)
}

func unmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}
