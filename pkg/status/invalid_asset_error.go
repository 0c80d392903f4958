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

import "github.com/tenantsync/tenantsync/pkg/asset"

// InvalidAssetErrorCode is the code for InvalidAssetError.
const InvalidAssetErrorCode = "1011"

var invalidAssetError = NewErrorBuilder(InvalidAssetErrorCode)

// InvalidAssetError reports that an in-memory record does not have the shape
// its kind requires.
func InvalidAssetError(err error, id asset.ID) Error {
	return invalidAssetError.Wrap(err).BuildWithAssets(id)
}
