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
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/handler"
)

// Registry returns the Handlers for a document, in run order. The order is
// also the order of the sections in a written document.
func Registry() *handler.Registry[*Context] {
	return handler.MustRegistry[*Context](
		handler.Passthrough(asset.Clients, handler.Identity[*Context](asset.Clients)),
		clientGrants(),
		handler.Passthrough(asset.GuardianFactors, handler.Identity[*Context](asset.GuardianFactors)),
		actions(),
	)
}
