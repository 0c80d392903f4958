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

// DescriptorParseErrorCode is the code for DescriptorParseError.
const DescriptorParseErrorCode = "1006"

var descriptorParseError = NewErrorBuilder(DescriptorParseErrorCode)

// DescriptorParseError reports that a descriptor file could not be decoded.
// A snapshot missing a record is unsafe to act on, so this always aborts the
// parse.
func DescriptorParseError(err error, file cmpath.Path) Error {
	return descriptorParseError.Wrap(err).
		Sprint("unable to parse descriptor file").
		BuildWithPaths(file)
}
