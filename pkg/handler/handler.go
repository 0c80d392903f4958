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

// Package handler defines the contract every resource kind implements to move
// between a persisted representation and the in-memory asset bag, and the
// driver which runs a fixed set of handlers in order.
package handler

import (
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/status"
)

// Context is what a handler reads from and writes to. Implementations own the
// location of the persisted representation and the asset bag of one run.
type Context interface {
	// Bag returns the asset bag of the run.
	Bag() *asset.Assets
}

// Handler converts one resource kind.
//
// Parse returns Absent without doing anything else when the kind is missing
// from the persisted representation. Dump must not write anything when the
// slot for its kind is Absent. Neither may touch the slots of other kinds,
// except for reading them.
type Handler[C any] interface {
	// Kind is the resource kind this Handler owns.
	Kind() asset.Kind
	// Parse reads the kind from the persisted representation.
	Parse(c C) (asset.Slot, status.MultiError)
	// Dump writes the kind to the persisted representation and returns the
	// slot as it was written.
	Dump(c C) (asset.Slot, status.MultiError)
}

// TransformFunc is one direction of a Handler.
type TransformFunc[C any] func(c C) (asset.Slot, status.MultiError)

// Func is a Handler built from a pair of functions.
type Func[C any] struct {
	For     asset.Kind
	OnParse TransformFunc[C]
	OnDump  TransformFunc[C]
}

var _ Handler[Context] = Func[Context]{}

// Kind implements Handler.
func (f Func[C]) Kind() asset.Kind {
	return f.For
}

// Parse implements Handler.
func (f Func[C]) Parse(c C) (asset.Slot, status.MultiError) {
	return f.OnParse(c)
}

// Dump implements Handler.
func (f Func[C]) Dump(c C) (asset.Slot, status.MultiError) {
	return f.OnDump(c)
}

// Passthrough returns a Handler which uses fn for both Parse and Dump.
func Passthrough[C any](kind asset.Kind, fn TransformFunc[C]) Func[C] {
	return Func[C]{For: kind, OnParse: fn, OnDump: fn}
}

// Identity returns the slot of kind from the bag of c unchanged.
func Identity[C Context](kind asset.Kind) TransformFunc[C] {
	return func(c C) (asset.Slot, status.MultiError) {
		return c.Bag().Get(kind), nil
	}
}
