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

import "sort"

// Assets is a bag of slots keyed by kind.
type Assets struct {
	slots map[Kind]Slot
}

// NewAssets returns an empty bag, in which every kind is absent.
func NewAssets() *Assets {
	return &Assets{slots: make(map[Kind]Slot)}
}

// Get returns the slot for kind. Kinds never set are absent.
func (a *Assets) Get(kind Kind) Slot {
	if a == nil {
		return Absent()
	}
	return a.slots[kind]
}

// Set replaces the slot for kind.
func (a *Assets) Set(kind Kind, slot Slot) {
	if slot.IsAbsent() {
		delete(a.slots, kind)
		return
	}
	a.slots[kind] = slot
}

// Kinds returns the kinds with a present slot, sorted.
func (a *Assets) Kinds() []Kind {
	if a == nil {
		return nil
	}
	kinds := make([]Kind, 0, len(a.slots))
	for k := range a.slots {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}
