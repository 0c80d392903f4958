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

import "github.com/tenantsync/tenantsync/pkg/asset"

// clientIDField is the field of client grants and clients holding the client
// identifier.
const clientIDField = "client_id"

// ClientID returns the identifier of client: its client_id, or its id for
// records which only carry that.
func ClientID(client asset.Object) string {
	if id, _ := client.String(clientIDField); id != "" {
		return id
	}
	id, _ := client.String("id")
	return id
}

// ClientNames maps the identifier of every named client in clients to its
// name. The first client wins if two share an identifier.
func ClientNames(clients asset.Slot) map[string]string {
	names := make(map[string]string, clients.Len())
	for _, client := range clients.Objects() {
		id := ClientID(client)
		if id == "" || client.Name() == "" {
			continue
		}
		if _, found := names[id]; !found {
			names[id] = client.Name()
		}
	}
	return names
}

// ReplaceClientID returns a copy of grant whose client_id is replaced by the
// name names holds for it. grant itself is returned if there is no match, and
// is never modified.
func ReplaceClientID(grant asset.Object, names map[string]string) asset.Object {
	id, _ := grant.String(clientIDField)
	name, found := names[id]
	if id == "" || !found {
		return grant
	}
	result := grant.ShallowCopy()
	result[clientIDField] = name
	return result
}
