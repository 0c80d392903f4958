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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExclude(t *testing.T) {
	client := Object{"name": "My App", "client_id": "abc123", "client_secret": "hunter2"}
	factor := Object{"name": "sms", "enabled": true}

	bag := NewAssets()
	bag.Set(Clients, Present(client))
	bag.Set(GuardianFactors, Present(factor))
	bag.Set(ClientGrants, Present())

	got, err := Exclude(bag, ExclusionRules{
		Clients:      {"$.client_secret"},
		ClientGrants: {"$.scope"},
	})
	require.NoError(t, err)

	if diff := cmp.Diff([]Object{{"name": "My App", "client_id": "abc123"}}, got.Get(Clients).Objects()); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]Object{factor}, got.Get(GuardianFactors).Objects()); diff != "" {
		t.Error(diff)
	}
	require.False(t, got.Get(ClientGrants).IsAbsent(), "empty slot must stay present")
	require.True(t, got.Get(Actions).IsAbsent())

	// The input is untouched.
	require.Equal(t, "hunter2", client["client_secret"])
}

func TestDeleteFieldsNoMatch(t *testing.T) {
	obj := Object{"name": "a"}
	got, err := DeleteFields(obj, "$.missing")
	require.NoError(t, err)
	if diff := cmp.Diff(obj, got); diff != "" {
		t.Error(diff)
	}
}

func TestDeleteFieldsInvalidExpression(t *testing.T) {
	_, err := DeleteFields(Object{"name": "a"}, "$[")
	require.Error(t, err)
}
