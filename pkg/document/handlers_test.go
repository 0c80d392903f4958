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
	"context"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/status"
)

func TestClientGrantsDump(t *testing.T) {
	testCases := []struct {
		name    string
		clients asset.Slot
		grants  []asset.Object
		want    []asset.Object
	}{
		{
			name:    "client found",
			clients: asset.Present(asset.Object{"id": "abc123", "name": "My App"}),
			grants:  []asset.Object{{"client_id": "abc123", "audience": "https://api"}},
			want:    []asset.Object{{"client_id": "My App", "audience": "https://api"}},
		},
		{
			name:    "client not found",
			clients: asset.Present(asset.Object{"id": "other", "name": "Other"}),
			grants:  []asset.Object{{"client_id": "abc123"}},
			want:    []asset.Object{{"client_id": "abc123"}},
		},
		{
			name:    "clients absent",
			clients: asset.Absent(),
			grants:  []asset.Object{{"client_id": "abc123"}},
			want:    []asset.Object{{"client_id": "abc123"}},
		},
		{
			name:    "no grants",
			clients: asset.Present(asset.Object{"id": "abc123", "name": "My App"}),
			grants:  []asset.Object{},
			want:    []asset.Object{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContext(tempDocument(t, ""), nil)
			c.Assets.Set(asset.Clients, tc.clients)
			c.Assets.Set(asset.ClientGrants, asset.Present(tc.grants...))
			var originals []asset.Object
			for _, g := range tc.grants {
				originals = append(originals, g.ShallowCopy())
			}

			got, errs := clientGrants().Dump(c)

			require.Nil(t, errs)
			if diff := cmp.Diff(tc.want, got.Objects()); diff != "" {
				t.Error(diff)
			}
			for i, g := range tc.grants {
				if diff := cmp.Diff(originals[i], g); diff != "" {
					t.Errorf("grant %d was modified: %s", i, diff)
				}
			}
		})
	}
}

func TestClientGrantsAbsent(t *testing.T) {
	c := NewContext(tempDocument(t, ""), nil)
	c.Assets.Set(asset.Clients, asset.Present(asset.Object{"id": "abc123", "name": "My App"}))
	h := clientGrants()

	parsed, errs := h.Parse(c)
	require.Nil(t, errs)
	assert.True(t, parsed.IsAbsent())

	dumped, errs := h.Dump(c)
	require.Nil(t, errs)
	assert.True(t, dumped.IsAbsent())
}

func TestActionsRoundTrip(t *testing.T) {
	code := "exports.onExecutePostLogin = async (event, api) => {\n  console.log(event.user.email);\n};\n"
	bag := asset.NewAssets()
	bag.Set(asset.Actions, asset.Present(
		asset.Object{
			"name":     "post/login",
			"code":     code,
			"runtime":  "node18",
			"secrets":  []interface{}{map[string]interface{}{"name": "KEY", "value": "v", "updated_at": "x"}},
			"deployed": false, "all_changes_deployed": true,
		},
		asset.Object{"name": "no-code"},
	))

	path, out := dump(t, bag)

	written, err := os.ReadFile(path.Dir().Join("actions/post-login.js").OSPath())
	require.NoError(t, err)
	assert.Equal(t, code, string(written))

	wantOut := []asset.Object{
		{
			"name":     "post/login",
			"code":     "./actions/post-login.js",
			"runtime":  "node18",
			"secrets":  []interface{}{map[string]interface{}{"name": "KEY", "value": "v"}},
			"deployed": true,
		},
		{
			"name":     "no-code",
			"code":     "",
			"secrets":  []interface{}{},
			"deployed": false,
		},
	}
	if diff := cmp.Diff(wantOut, out.Get(asset.Actions).Objects()); diff != "" {
		t.Error(diff)
	}

	parsed := load(t, path, nil).Get(asset.Actions).Objects()
	require.Len(t, parsed, 2)
	assert.Equal(t, code, parsed[0]["code"])
	assert.Equal(t, "", parsed[1]["code"])
}

func TestActionsDuplicateNames(t *testing.T) {
	c := NewContext(tempDocument(t, ""), nil)
	c.Assets.Set(asset.Actions, asset.Present(
		asset.Object{"name": "a|b", "code": "1"},
		asset.Object{"name": "a*b", "code": "2"},
	))

	_, errs := actions().Dump(c)

	want := status.DuplicateNameError(asset.Actions, "a-b.js", "a|b", "a*b")
	if !status.DeepEqual(want, errs) {
		t.Errorf("got %v, want %v", errs, want)
	}
	_, err := os.Stat(c.BasePath.Join("actions").OSPath())
	assert.True(t, os.IsNotExist(err))
}

func TestActionsMissingCode(t *testing.T) {
	path := tempDocument(t, "actions:\n  - name: flow\n    code: ./actions/flow.js\n")
	c := NewContext(path, nil)

	errs := c.Parse(context.Background())

	require.NotNil(t, errs)
	assert.Equal(t, status.CodeReferenceErrorCode, errs.Errors()[0].Code())
}
