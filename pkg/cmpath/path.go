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

// Package cmpath holds slash-delimited path types used to address files in a
// directory root or next to a document.
package cmpath

// Path is a path that can be rendered both slash-delimited and in the
// os-specific form.
type Path interface {
	// OSPath returns the path in the os-specific representation.
	OSPath() string
	// SlashPath returns the slash-delimited path.
	SlashPath() string
}
