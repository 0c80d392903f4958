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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tenantsync/tenantsync/cmd/tenantsync/convert"
	"github.com/tenantsync/tenantsync/cmd/tenantsync/util"
	"github.com/tenantsync/tenantsync/cmd/tenantsync/version"
	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	"github.com/tenantsync/tenantsync/pkg/util/log"
	pkgversion "github.com/tenantsync/tenantsync/pkg/version"
	"k8s.io/klog/v2"
)

const (
	// versionTemplate is the template used when "tenantsync --version" is
	// invoked. It outputs only "<VERSION>" for easier programmatic use.
	versionTemplate = `{{.Version}}
`
)

var (
	rootCmd = &cobra.Command{
		Use:     tenantsync.CLIName,
		Version: pkgversion.VERSION,
		Short: fmt.Sprintf(
			"Convert tenant configuration between a directory tree and a YAML document (version %v)", pkgversion.VERSION),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Preamble()
		},
	}
)

func init() {
	rootCmd.SetVersionTemplate(versionTemplate)
	// Errors are printed by main.
	rootCmd.SilenceErrors = true
	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	// Use the default flag set, because some libs register flags with init.
	fs := flag.CommandLine

	// Register klog flags
	log.Setup(fs)

	// Cobra uses the pflag lib, instead of the go flag lib.
	// So re-register all go flags as global (aka persistent) pflags.
	rootCmd.PersistentFlags().AddGoFlagSet(fs)

	if err := rootCmd.Execute(); err != nil {
		util.PrintErr(os.Stderr, err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
