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

func TestActionDescriptor(t *testing.T) {
	testCases := []struct {
		name     string
		object   Object
		codePath string
		want     ActionDescriptor
	}{
		{
			name: "secrets reduced to name and value",
			object: Object{
				"name": "welcome-flow",
				"code": "console.log(1)",
				"secrets": []interface{}{
					map[string]interface{}{"name": "API_KEY", "value": "s3cr3t", "updated_at": "2021-01-01"},
					map[string]interface{}{"name": "OTHER", "value": "v", "id": "sec_1"},
				},
			},
			codePath: "actions/welcome-flow/code.js",
			want: ActionDescriptor{
				Name: "welcome-flow",
				Code: "actions/welcome-flow/code.js",
				Secrets: []Secret{
					{Name: "API_KEY", Value: "s3cr3t"},
					{Name: "OTHER", Value: "v"},
				},
			},
		},
		{
			name:   "no secrets yields an empty list",
			object: Object{"name": "bare"},
			want: ActionDescriptor{
				Name:    "bare",
				Secrets: []Secret{},
			},
		},
		{
			name:   "deployed falls back to all_changes_deployed",
			object: Object{"name": "legacy", "all_changes_deployed": true},
			want: ActionDescriptor{
				Name:     "legacy",
				Secrets:  []Secret{},
				Deployed: true,
			},
		},
		{
			name:   "explicit false deployed still falls back",
			object: Object{"name": "legacy", "deployed": false, "all_changes_deployed": true},
			want: ActionDescriptor{
				Name:     "legacy",
				Secrets:  []Secret{},
				Deployed: true,
			},
		},
		{
			name: "passes through runtime, status, dependencies and triggers",
			object: Object{
				"name":               "full",
				"runtime":            "node18",
				"status":             "built",
				"deployed":           true,
				"dependencies":       []interface{}{map[string]interface{}{"name": "lodash", "version": "4.17.21"}},
				"supported_triggers": []interface{}{map[string]interface{}{"id": "post-login", "version": "v3"}},
			},
			want: ActionDescriptor{
				Name:              "full",
				Runtime:           "node18",
				Status:            "built",
				Dependencies:      []interface{}{map[string]interface{}{"name": "lodash", "version": "4.17.21"}},
				Secrets:           []Secret{},
				SupportedTriggers: []interface{}{map[string]interface{}{"id": "post-login", "version": "v3"}},
				Deployed:          true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			action, err := ActionFromObject(tc.object)
			require.NoError(t, err)
			got := action.Descriptor(tc.codePath)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestActionFromObjectInvalid(t *testing.T) {
	_, err := ActionFromObject(Object{"name": "bad", "runtime": 18})
	require.Error(t, err)
}
