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

package version

import (
	"io"

	"github.com/tenantsync/tenantsync/cmd/tenantsync/util"
	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	pkgversion "github.com/tenantsync/tenantsync/pkg/version"
)

// Print writes the version of the CLI to out as a table.
func Print(out io.Writer) error {
	format := "%s\t%s\n"
	w := util.NewWriter(out)
	util.MustFprintf(w, format, "COMPONENT", "VERSION")
	util.MustFprintf(w, format, "<"+tenantsync.CLIName+" CLI>", pkgversion.VERSION)
	return w.Flush()
}
