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
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
)

// DocumentParseErrorCode is the code for DocumentParseError.
const DocumentParseErrorCode = "1008"

var documentParseError = NewErrorBuilder(DocumentParseErrorCode)

// DocumentParseError reports that a document is not valid YAML.
func DocumentParseError(err error, file cmpath.Path) Error {
	return documentParseError.Wrap(err).
		Sprint("unable to parse document").
		BuildWithPaths(file)
}

// InvalidSectionErrorCode is the code for InvalidSectionError.
const InvalidSectionErrorCode = "1009"

var invalidSectionError = NewErrorBuilder(InvalidSectionErrorCode)

// InvalidSectionError reports that the top-level section of a document
// holding kind is not a list of records.
func InvalidSectionError(kind asset.Kind, got interface{}, file cmpath.Path) Error {
	return invalidSectionError.
		Sprintf("section %q must be a list of records, got %T", kind, got).
		BuildWithPaths(file)
}
