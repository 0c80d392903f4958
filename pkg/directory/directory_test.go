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
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/mapping"
	"github.com/tenantsync/tenantsync/pkg/status"
)

// tempRoot returns a new directory root holding files, keyed by slash path.
func tempRoot(t *testing.T, files map[string]string) cmpath.Absolute {
	t.Helper()
	root, err := cmpath.AbsoluteOS(t.TempDir())
	require.NoError(t, err)
	for name, contents := range files {
		p := filepath.Join(root.OSPath(), filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), os.ModePerm))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
	}
	return root
}

// readTree returns every regular file under root, keyed by slash path.
func readTree(t *testing.T, root cmpath.Absolute) map[string]string {
	t.Helper()
	result := make(map[string]string)
	err := filepath.WalkDir(root.OSPath(), func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root.OSPath(), p)
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		result[filepath.ToSlash(rel)] = string(contents)
		return nil
	})
	require.NoError(t, err)
	return result
}

func parse(t *testing.T, root cmpath.Absolute, mappings mapping.Mappings) *asset.Assets {
	t.Helper()
	c := NewContext(root, mappings)
	require.Nil(t, c.Parse(context.Background()))
	return c.Assets
}

func dump(t *testing.T, bag *asset.Assets) (cmpath.Absolute, *asset.Assets) {
	t.Helper()
	root := tempRoot(t, nil)
	c := NewContext(root, nil)
	c.Assets = bag
	out, errs := c.Dump(context.Background())
	require.Nil(t, errs)
	return root, out
}

func TestWelcomeFlow(t *testing.T) {
	root := tempRoot(t, map[string]string{
		"actions/welcome-flow.json":     `{"name": "welcome-flow", "code": "hello.js"}`,
		"actions/welcome-flow/hello.js": "console.log(1)",
	})

	parsed := parse(t, root, nil)

	want := []asset.Object{{"name": "welcome-flow", "code": "console.log(1)"}}
	if diff := cmp.Diff(want, parsed.Get(asset.Actions).Objects()); diff != "" {
		t.Fatal(diff)
	}

	dumped, _ := dump(t, parsed)
	wantTree := map[string]string{
		"actions/welcome-flow.json": `{
  "name": "welcome-flow",
  "code": "actions/welcome-flow/code.js",
  "secrets": [],
  "deployed": false
}`,
		"actions/welcome-flow/code.js": "console.log(1)",
	}
	if diff := cmp.Diff(wantTree, readTree(t, dumped)); diff != "" {
		t.Error(diff)
	}

	// The dumped tree reads back to the same code, and dumps to the same files.
	reparsed := parse(t, dumped, nil)
	require.Equal(t, 1, reparsed.Get(asset.Actions).Len())
	assert.Equal(t, "console.log(1)", reparsed.Get(asset.Actions).Objects()[0]["code"])
	redumped, _ := dump(t, reparsed)
	if diff := cmp.Diff(wantTree, readTree(t, redumped)); diff != "" {
		t.Error(diff)
	}
}

func TestParseActionCodeFolder(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
	}{
		{
			name: "folder named after the record",
			files: map[string]string{
				"actions/ops:deploy.json":    `{"name": "ops:deploy", "code": "code.js"}`,
				"actions/ops:deploy/code.js": "deploy()",
			},
		},
		{
			name: "folder named after the sanitized record",
			files: map[string]string{
				"actions/ops-deploy.json":    `{"name": "ops:deploy", "code": "code.js"}`,
				"actions/ops-deploy/code.js": "deploy()",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed := parse(t, tempRoot(t, tc.files), nil)

			want := []asset.Object{{"name": "ops:deploy", "code": "deploy()"}}
			if diff := cmp.Diff(want, parsed.Get(asset.Actions).Objects()); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestParseAbsent(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
	}{
		{
			name: "no subdirectories",
		},
		{
			name: "files instead of directories",
			files: map[string]string{
				"actions":          "not a directory",
				"clients":          "",
				"client-grants":    "",
				"guardian-factors": "",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bag := parse(t, tempRoot(t, tc.files), nil)
			assert.Empty(t, bag.Kinds())
		})
	}
}

func TestParseEmpty(t *testing.T) {
	root := tempRoot(t, map[string]string{
		// Only descriptor files directly inside count.
		"actions/README.md":           "ignored",
		"actions/nested/deeper.json":  `{"name": "ignored"}`,
		"guardian-factors/.gitignore": "",
	})

	bag := parse(t, root, nil)

	assert.Equal(t, []asset.Kind{asset.Actions, asset.GuardianFactors}, bag.Kinds())
	for _, kind := range bag.Kinds() {
		slot := bag.Get(kind)
		assert.False(t, slot.IsAbsent())
		assert.Equal(t, 0, slot.Len())
	}
}

func TestParseSorted(t *testing.T) {
	root := tempRoot(t, map[string]string{
		"guardian-factors/sms.json":   `{"name": "sms", "enabled": true}`,
		"guardian-factors/email.json": `{"name": "email", "enabled": false}`,
		"guardian-factors/otp.json":   `{"name": "otp", "enabled": true}`,
	})

	bag := parse(t, root, nil)

	want := []asset.Object{
		{"name": "email", "enabled": false},
		{"name": "otp", "enabled": true},
		{"name": "sms", "enabled": true},
	}
	if diff := cmp.Diff(want, bag.Get(asset.GuardianFactors).Objects()); diff != "" {
		t.Error(diff)
	}
}

func TestParseMappings(t *testing.T) {
	root := tempRoot(t, map[string]string{
		"actions/flow.json":         `{"name": "##ENV##-flow", "runtime": @@RUNTIME@@, "code": "flow.js"}`,
		"actions/prod-flow/flow.js": `const url = "##URL##";`,
	})
	mappings := mapping.Mappings{
		"ENV":     "prod",
		"RUNTIME": "node18",
		"URL":     "https://prod.example.com",
	}

	bag := parse(t, root, mappings)

	want := []asset.Object{{
		"name":    "prod-flow",
		"runtime": "node18",
		"code":    `const url = "https://prod.example.com";`,
	}}
	if diff := cmp.Diff(want, bag.Get(asset.Actions).Objects()); diff != "" {
		t.Error(diff)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		wantCode string
	}{
		{
			name: "malformed descriptor",
			files: map[string]string{
				"actions/a.json": `{"name": "a"}`,
				"actions/b.json": `{"name": `,
			},
			wantCode: status.DescriptorParseErrorCode,
		},
		{
			name: "descriptor is not an object",
			files: map[string]string{
				"clients/a.json": `null`,
			},
			wantCode: status.DescriptorParseErrorCode,
		},
		{
			name: "missing code file",
			files: map[string]string{
				"actions/a.json": `{"name": "a", "code": "missing.js"}`,
			},
			wantCode: status.CodeReferenceErrorCode,
		},
		{
			name: "code reference is a directory",
			files: map[string]string{
				"actions/a.json":       `{"name": "a", "code": "lib"}`,
				"actions/a/lib/x.js":   "",
				"actions/unused/.keep": "",
			},
			wantCode: status.CodeReferenceErrorCode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewContext(tempRoot(t, tc.files), nil)

			errs := c.Parse(context.Background())

			require.NotNil(t, errs)
			require.Len(t, errs.Errors(), 1)
			assert.Equal(t, tc.wantCode, errs.Errors()[0].Code())
		})
	}
}

func TestLoadFile(t *testing.T) {
	outside := tempRoot(t, map[string]string{"shared.js": "shared"})
	root := tempRoot(t, map[string]string{
		"actions/flow/local.js": "local",
		"common/util.js":        "root relative",
		"actions/flow/dup.js":   "in base folder",
		"dup.js":                "in root",
	})
	c := NewContext(root, nil)
	base := cmpath.RelativeSlash("actions", "flow")

	testCases := []struct {
		reference string
		want      string
	}{
		{reference: "local.js", want: "local"},
		{reference: "./local.js", want: "local"},
		{reference: "common/util.js", want: "root relative"},
		{reference: "dup.js", want: "in base folder"},
		{reference: outside.Join("shared.js").OSPath(), want: "shared"},
	}
	for _, tc := range testCases {
		t.Run(tc.reference, func(t *testing.T) {
			got, err := c.LoadFile(tc.reference, base)
			require.Nil(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := c.LoadFile("missing.js", base)
		require.NotNil(t, err)
		assert.Equal(t, status.CodeReferenceErrorCode, err.Code())
		pathErr, ok := err.(status.PathError)
		require.True(t, ok)
		assert.Len(t, pathErr.RelativePaths(), 3)
	})

	t.Run("missing in every base folder", func(t *testing.T) {
		_, err := c.LoadFile("missing.js", base, cmpath.RelativeSlash("actions", "other"), base)
		require.NotNil(t, err)
		pathErr, ok := err.(status.PathError)
		require.True(t, ok)
		assert.Len(t, pathErr.RelativePaths(), 4)
	})
}
