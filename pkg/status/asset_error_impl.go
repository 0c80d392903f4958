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

package status

import (
	"sort"
	"strings"

	"github.com/tenantsync/tenantsync/pkg/asset"
)

type assetErrorImpl struct {
	underlying Error
	ids        []asset.ID
}

var _ AssetError = assetErrorImpl{}

// Error implements error.
func (a assetErrorImpl) Error() string {
	return format(a)
}

// Is implements Error.
func (a assetErrorImpl) Is(target error) bool {
	return a.underlying.Is(target)
}

// Code implements Error.
func (a assetErrorImpl) Code() string {
	return a.underlying.Code()
}

// Body implements Error.
func (a assetErrorImpl) Body() string {
	return formatBody(a.underlying.Body(), "\n\n", formatAssets(a.ids))
}

// Errors implements MultiError.
func (a assetErrorImpl) Errors() []Error {
	return []Error{a}
}

// Assets implements AssetError.
func (a assetErrorImpl) Assets() []asset.ID {
	return a.ids
}

// Cause implements causer.
func (a assetErrorImpl) Cause() error {
	return a.underlying.Cause()
}

// formatAssets returns one line per record, sorted so output is deterministic.
func formatAssets(ids []asset.ID) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = "kind: " + id.Kind.String() + ", name: " + id.Name
	}
	sort.Strings(strs)
	return strings.Join(strs, "\n")
}
