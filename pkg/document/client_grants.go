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
	"github.com/tenantsync/tenantsync/pkg/status"
)

// clientGrants passes grants through on parse. On dump, the client
// identifier of each grant is replaced by the name of its client, so the
// document reads the same across tenants where identifiers differ.
func clientGrants() handler.Handler[*Context] {
	return handler.Func[*Context]{
		For:     asset.ClientGrants,
		OnParse: handler.Identity[*Context](asset.ClientGrants),
		OnDump:  dumpClientGrants,
	}
}

func dumpClientGrants(c *Context) (asset.Slot, status.MultiError) {
	grants := c.Assets.Get(asset.ClientGrants)
	if grants.IsAbsent() {
		return grants, nil
	}
	names := handler.ClientNames(c.Assets.Get(asset.Clients))
	result := make([]asset.Object, grants.Len())
	for i, grant := range grants.Objects() {
		result[i] = handler.ReplaceClientID(grant, names)
	}
	return asset.Present(result...), nil
}
