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

import "github.com/ettle/strcase"

// Kind names a category of tenant resource. The value is the key the kind is
// stored under in a document.
type Kind string

const (
	// Actions are code-backed extensibility points.
	Actions Kind = "actions"
	// Clients are applications registered on the tenant.
	Clients Kind = "clients"
	// ClientGrants authorize a client to call an API.
	ClientGrants Kind = "clientGrants"
	// GuardianFactors are multi-factor authentication settings.
	GuardianFactors Kind = "guardianFactors"
)

// DirName returns the name of the directory that holds this kind in a
// directory root, e.g. "client-grants" for ClientGrants.
func (k Kind) DirName() string {
	return strcase.ToKebab(string(k))
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ID identifies a single record of a Kind by name.
type ID struct {
	Kind Kind
	Name string
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id.Kind) + "/" + id.Name
}
