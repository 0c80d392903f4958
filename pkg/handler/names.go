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

package handler

import (
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/status"
)

// CheckUniqueFileNames returns a DuplicateNameError for every file name which
// more than one of objects would be written to. Errors are in the order the
// file names first appear.
func CheckUniqueFileNames(kind asset.Kind, objects []asset.Object, fileName func(asset.Object) string) status.MultiError {
	var order []string
	names := make(map[string][]string)
	for _, o := range objects {
		file := fileName(o)
		if _, seen := names[file]; !seen {
			order = append(order, file)
		}
		names[file] = append(names[file], o.Name())
	}

	var errs status.MultiError
	for _, file := range order {
		if len(names[file]) > 1 {
			errs = status.Append(errs, status.DuplicateNameError(kind, file, names[file]...))
		}
	}
	return errs
}
