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

import "github.com/tenantsync/tenantsync/pkg/cmpath"

// CodeReferenceErrorCode is the code for CodeReferenceError.
const CodeReferenceErrorCode = "1007"

var codeReferenceError = NewErrorBuilder(CodeReferenceErrorCode)

// CodeReferenceError reports that a code file reference does not resolve to a
// file at any of the attempted locations.
func CodeReferenceError(reference string, attempted ...cmpath.Path) Error {
	return codeReferenceError.
		Sprintf("code file %q does not exist", reference).
		BuildWithPaths(attempted...)
}
