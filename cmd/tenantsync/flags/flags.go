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

package flags

import (
	"github.com/spf13/cobra"
	"github.com/tenantsync/tenantsync/pkg/util"
)

const (
	// mappingsFlag is the flag name for Mappings below.
	mappingsFlag = "mappings"

	// metricsFileFlag is the flag name for MetricsFile below.
	metricsFileFlag = "metrics-file"

	// FormatDirectory is a directory tree with one file per record.
	FormatDirectory = "directory"

	// FormatYAML is a single YAML document.
	FormatYAML = "yaml"
)

var (
	// Mappings is the path of a YAML or JSON file of keyword substitution
	// values.
	Mappings string

	// MetricsFile is where metrics are written when the command ends.
	MetricsFile string
)

// AddMappings adds the --mappings flag.
func AddMappings(cmd *cobra.Command) {
	cmd.Flags().StringVar(&Mappings, mappingsFlag, util.EnvString("TENANTSYNC_MAPPINGS", ""),
		`Path to a YAML or JSON file of values substituted for ##KEY## and @@KEY@@ in every file read.`)
}

// AddMetricsFile adds the --metrics-file flag.
func AddMetricsFile(cmd *cobra.Command) {
	cmd.Flags().StringVar(&MetricsFile, metricsFileFlag, util.EnvString("TENANTSYNC_METRICS_FILE", ""),
		`If set, write metrics to this file in the Prometheus text format when done.`)
}
