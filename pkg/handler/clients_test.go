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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/tenantsync/tenantsync/pkg/asset"
)

func TestReplaceClientID(t *testing.T) {
	clients := asset.Present(
		asset.Object{"id": "abc123", "name": "My App"},
		asset.Object{"client_id": "def456", "name": "Other App"},
		asset.Object{"client_id": "def456", "name": "Shadowed"},
		asset.Object{"client_id": "no-name"},
	)
	names := ClientNames(clients)

	testCases := []struct {
		name  string
		grant asset.Object
		want  asset.Object
	}{
		{
			name:  "match by id",
			grant: asset.Object{"client_id": "abc123", "audience": "https://api"},
			want:  asset.Object{"client_id": "My App", "audience": "https://api"},
		},
		{
			name:  "match by client_id",
			grant: asset.Object{"client_id": "def456"},
			want:  asset.Object{"client_id": "Other App"},
		},
		{
			name:  "no match",
			grant: asset.Object{"client_id": "zzz", "scope": []interface{}{"read"}},
			want:  asset.Object{"client_id": "zzz", "scope": []interface{}{"read"}},
		},
		{
			name:  "client without name",
			grant: asset.Object{"client_id": "no-name"},
			want:  asset.Object{"client_id": "no-name"},
		},
		{
			name:  "no client_id",
			grant: asset.Object{"audience": "https://api"},
			want:  asset.Object{"audience": "https://api"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := tc.grant.ShallowCopy()

			got := ReplaceClientID(tc.grant, names)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
			if diff := cmp.Diff(original, tc.grant); diff != "" {
				t.Errorf("grant was modified: %s", diff)
			}
		})
	}
}

func TestClientID(t *testing.T) {
	assert.Equal(t, "a", ClientID(asset.Object{"client_id": "a", "id": "b"}))
	assert.Equal(t, "b", ClientID(asset.Object{"id": "b"}))
	assert.Equal(t, "", ClientID(asset.Object{"name": "c"}))
}
