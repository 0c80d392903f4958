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

package tenantsync

const (
	// CLIName is the short name of the CLI.
	CLIName = "tenantsync"

	// MetricsNamespace is the namespace that metrics are held in.
	MetricsNamespace = "tenantsync"

	// ActionsDirectory is the name of the directory holding action descriptors
	// and their code folders, both under a directory root and next to a
	// document.
	ActionsDirectory = "actions"

	// ActionCodeFile is the fixed name of the code file written inside each
	// per-action folder of a directory root.
	ActionCodeFile = "code.js"

	// ActionCodeExtension is the extension of code files written next to a
	// document.
	ActionCodeExtension = ".js"

	// DescriptorExtension is the extension of descriptor files.
	DescriptorExtension = ".json"
)
