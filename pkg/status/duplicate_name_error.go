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

// DuplicateNameErrorCode is the code for DuplicateNameError.
const DuplicateNameErrorCode = "1010"

var duplicateNameError = NewErrorBuilder(DuplicateNameErrorCode)

// DuplicateNameError reports that several records of one kind would be
// written to the same file.
func DuplicateNameError(kind asset.Kind, fileName string, names ...string) Error {
	ids := make([]asset.ID, len(names))
	for i, name := range names {
		ids[i] = asset.ID{Kind: kind, Name: name}
	}
	return duplicateNameError.
		Sprintf("%d records of kind %q are all written to %q; names must be unique", len(names), kind, fileName).
		BuildWithAssets(ids...)
}
