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

package cmpath

import (
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// Absolute represents an absolute path on a file system.
// The path is slash-delimited, but can be converted into the os-specific representation.
type Absolute string

var _ Path = Absolute("")

// AbsoluteSlash returns an Absolute path from a slash-delimited path.
//
// It is an error to pass a non-absolute path.
func AbsoluteSlash(p string) (Absolute, error) {
	if !filepath.IsAbs(filepath.FromSlash(p)) {
		return "", errors.Errorf("not an absolute path: %q", p)
	}
	return Absolute(path.Clean(p)), nil
}

// AbsoluteOS returns an Absolute path from an OS-specific path.
//
// Relative paths are resolved against the current working directory.
func AbsoluteOS(p string) (Absolute, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %q", p)
	}
	return AbsoluteSlash(filepath.ToSlash(abs))
}

// OSPath implements Path.
func (p Absolute) OSPath() string {
	return filepath.FromSlash(p.SlashPath())
}

// SlashPath implements Path.
func (p Absolute) SlashPath() string {
	return string(p)
}

// Join appends r to p, creating a new Absolute path.
func (p Absolute) Join(r Relative) Absolute {
	return Absolute(path.Join(p.SlashPath(), r.SlashPath()))
}

// Dir returns the directory containing p.
func (p Absolute) Dir() Absolute {
	return Absolute(path.Dir(p.SlashPath()))
}

// Base returns the last element of p.
func (p Absolute) Base() string {
	return path.Base(p.SlashPath())
}

// Rel returns target relative to p.
func (p Absolute) Rel(target Absolute) (Relative, error) {
	rel, err := filepath.Rel(p.OSPath(), target.OSPath())
	if err != nil {
		return "", errors.Wrapf(err, "%s is not relative to %s", target, p)
	}
	return RelativeOS(rel), nil
}
