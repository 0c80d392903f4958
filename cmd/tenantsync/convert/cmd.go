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

package convert

import (
	"github.com/spf13/cobra"
	"github.com/tenantsync/tenantsync/cmd/tenantsync/flags"
)

// localFlags holds the convert command flags
var localFlags = NewFlags()

func init() {
	localFlags.AddFlags(Cmd)
}

// Cmd is the Cobra object representing the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts tenant configuration between a directory tree and a YAML document.",
	Long: `Converts tenant configuration between a directory tree and a YAML document.

A directory tree holds one subdirectory per kind (actions/, clients/,
client-grants/, guardian-factors/) with one JSON descriptor per record. Action
code is kept in actions/<name>/code.js.

A YAML document holds one top-level list per kind. Action code is kept in
actions/<name>.js next to the document.

Kinds missing from the input are left out of the output entirely. Kinds present
with no records are written as empty.`,
	Example: `  tenantsync convert --input ./tenant --output ./tenant.yaml
  tenantsync convert --input ./tenant.yaml --input-format yaml --output ./tenant --output-format directory
  tenantsync convert --input ./tenant --output ./tenant.yaml --exclude 'clients=$.client_secret'`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Don't show usage on error, as argument validation passed.
		cmd.SilenceUsage = true

		params := ExecParams{
			Input:        localFlags.Input,
			InputFormat:  localFlags.InputFormat,
			Output:       localFlags.Output,
			OutputFormat: localFlags.OutputFormat,
			BasePath:     localFlags.BasePath,
			Exclude:      localFlags.Exclude,
			Mappings:     flags.Mappings,
			MetricsFile:  flags.MetricsFile,
		}

		return ExecuteConvert(cmd.Context(), params)
	},
}
