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

package handler

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
	"github.com/tenantsync/tenantsync/pkg/asset"
)

// Registry is the ordered set of Handlers run against one kind of Context.
// Handlers run in the order they were registered.
type Registry[C any] struct {
	handlers *orderedmap.OrderedMap[asset.Kind, Handler[C]]
}

// NewRegistry returns a Registry holding handlers, in order.
func NewRegistry[C any](handlers ...Handler[C]) (*Registry[C], error) {
	r := &Registry[C]{handlers: orderedmap.NewOrderedMap[asset.Kind, Handler[C]]()}
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is NewRegistry for fixed handler sets known to be valid.
func MustRegistry[C any](handlers ...Handler[C]) *Registry[C] {
	r, err := NewRegistry(handlers...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register appends h. It is an error to register two Handlers for one kind.
func (r *Registry[C]) Register(h Handler[C]) error {
	if _, found := r.handlers.Get(h.Kind()); found {
		return errors.Errorf("a handler for %q is already registered", h.Kind())
	}
	r.handlers.Set(h.Kind(), h)
	return nil
}

// Get returns the Handler for kind.
func (r *Registry[C]) Get(kind asset.Kind) (Handler[C], bool) {
	return r.handlers.Get(kind)
}

// Kinds returns the registered kinds in run order.
func (r *Registry[C]) Kinds() []asset.Kind {
	result := make([]asset.Kind, 0, r.handlers.Len())
	for el := r.handlers.Front(); el != nil; el = el.Next() {
		result = append(result, el.Key)
	}
	return result
}

// Handlers returns the registered Handlers in run order.
func (r *Registry[C]) Handlers() []Handler[C] {
	result := make([]Handler[C], 0, r.handlers.Len())
	for el := r.handlers.Front(); el != nil; el = el.Next() {
		result = append(result, el.Value)
	}
	return result
}
