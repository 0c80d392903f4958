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

package directory

import (
	"fmt"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/status"
)

// grantFile names the file of a grant after its client and audience.
func grantFile(o asset.Object) string {
	client, _ := o.String("client_id")
	audience, _ := o.String("audience")
	return fmt.Sprintf("%s-%s", client, audience)
}

// clientGrants stores grants like records, but with the client identifier of
// each grant replaced by the name of the client it identifies.
func clientGrants() handler.Handler[*Context] {
	return handler.Func[*Context]{
		For: asset.ClientGrants,
		OnParse: func(c *Context) (asset.Slot, status.MultiError) {
			return readRecords(c, asset.ClientGrants)
		},
		OnDump: func(c *Context) (asset.Slot, status.MultiError) {
			grants := c.Assets.Get(asset.ClientGrants)
			if grants.IsAbsent() {
				return grants, nil
			}
			names := handler.ClientNames(c.Assets.Get(asset.Clients))
			named := make([]asset.Object, grants.Len())
			for i, grant := range grants.Objects() {
				named[i] = handler.ReplaceClientID(grant, names)
			}
			return writeRecords(c, asset.ClientGrants, asset.Present(named...), grantFile)
		},
	}
}
