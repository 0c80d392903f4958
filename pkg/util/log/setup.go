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

package log

import (
	"flag"

	"github.com/tenantsync/tenantsync/pkg/version"
	"k8s.io/klog/v2"
)

// Setup registers the klog flags on fs with the defaults used by the CLI.
func Setup(fs *flag.FlagSet) {
	klog.InitFlags(fs)
	if err := fs.Set("logtostderr", "true"); err != nil {
		klog.Fatal(err)
	}
}

// Preamble logs the build version. Call it once flags are parsed.
func Preamble() {
	klog.V(1).Infof("Build Version: %s", version.VERSION)
}
