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

// Slot is the state of one resource kind in an asset bag. A Slot is either
// absent, meaning the kind does not appear in the source at all and must not
// be emitted, or present with zero or more records.
//
// The zero value is absent.
type Slot struct {
	present bool
	objects []Object
}

// Absent returns a Slot for a kind missing from the source.
func Absent() Slot {
	return Slot{}
}

// Present returns a Slot holding objects, in order. Present with no objects is
// an empty but existing section.
func Present(objects ...Object) Slot {
	if objects == nil {
		objects = []Object{}
	}
	return Slot{present: true, objects: objects}
}

// IsAbsent returns true if the kind is missing from the source.
func (s Slot) IsAbsent() bool {
	return !s.present
}

// Objects returns the records in the slot. It returns nil for an absent slot
// and a non-nil, possibly empty slice for a present one.
func (s Slot) Objects() []Object {
	return s.objects
}

// Len returns the number of records in the slot.
func (s Slot) Len() int {
	return len(s.objects)
}
