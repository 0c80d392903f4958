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
	"github.com/tenantsync/tenantsync/pkg/util"
)

// Flags holds all the flags specific to the convert command
type Flags struct {
	// Input is the directory root or document to read.
	Input string
	// InputFormat is the format of Input.
	InputFormat string
	// Output is the directory root or document to write.
	Output string
	// OutputFormat is the format of Output.
	OutputFormat string
	// BasePath overrides the directory action code files of a document are
	// read from or written to.
	BasePath string
	// Exclude lists kind=jsonpath rules of fields to drop before writing.
	Exclude []string
}

// NewFlags creates a new instance of Flags with default values
func NewFlags() *Flags {
	return &Flags{
		Input:        util.EnvString("TENANTSYNC_INPUT", "."),
		InputFormat:  util.EnvString("TENANTSYNC_INPUT_FORMAT", flags.FormatDirectory),
		Output:       util.EnvString("TENANTSYNC_OUTPUT", "tenant.yaml"),
		OutputFormat: util.EnvString("TENANTSYNC_OUTPUT_FORMAT", flags.FormatYAML),
		BasePath:     util.EnvString("TENANTSYNC_BASE_PATH", ""),
		Exclude:      util.EnvStringSlice("TENANTSYNC_EXCLUDE", nil),
	}
}

// AddFlags adds all convert-specific flags to the command
func (f *Flags) AddFlags(cmd *cobra.Command) {
	flags.AddMappings(cmd)
	flags.AddMetricsFile(cmd)

	cmd.Flags().StringVar(&f.Input, "input", f.Input,
		`Directory root or YAML document to read.`)
	cmd.Flags().StringVar(&f.InputFormat, "input-format", f.InputFormat,
		`Format of --input: "directory" or "yaml".`)
	cmd.Flags().StringVar(&f.Output, "output", f.Output,
		`Directory root or YAML document to write. Existing files are overwritten.`)
	cmd.Flags().StringVar(&f.OutputFormat, "output-format", f.OutputFormat,
		`Format of --output: "directory" or "yaml".`)
	cmd.Flags().StringVar(&f.BasePath, "base-path", f.BasePath,
		`Directory holding the action code files of a YAML document. Defaults to the directory of the document.`)
	cmd.Flags().StringArrayVar(&f.Exclude, "exclude", f.Exclude,
		`Fields to drop from every record of a kind before writing, as kind=jsonpath, e.g. clients=$.client_secret. May be repeated.`)
}
