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

// FileWriteErrorCode is the code for FileWriteError.
const FileWriteErrorCode = "2002"

var fileWriteError = NewErrorBuilder(FileWriteErrorCode)

// FileWriteError reports a failure to create a directory or write a file.
// Files written before the failure are left in place.
func FileWriteError(err error, file cmpath.Path) Error {
	return fileWriteError.Wrap(err).
		Sprint("unable to write").
		BuildWithPaths(file)
}
