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

// Package sanitize turns record names into names safe to use as file and
// directory names on any platform.
package sanitize

import (
	"regexp"
	"unicode/utf8"
)

// Replacement is substituted for every unsafe character or name.
const Replacement = "-"

// maxLength is the longest file name, in bytes, most file systems accept.
const maxLength = 255

var (
	illegalRe         = regexp.MustCompile(`[/?<>\\:*|"]`)
	controlRe         = regexp.MustCompile(`[\x{0000}-\x{001f}\x{0080}-\x{009f}]`)
	reservedRe        = regexp.MustCompile(`^\.+$`)
	windowsReservedRe = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[0-9]|lpt[0-9])(\..*)?$`)
	windowsTrailingRe = regexp.MustCompile(`[. ]+$`)
)

// Name returns name with characters that are illegal in file names replaced.
// Name is idempotent: Name(Name(s)) == Name(s).
func Name(name string) string {
	// Truncating first keeps the result free of trailing dots and spaces.
	out := illegalRe.ReplaceAllString(truncate(name), Replacement)
	out = controlRe.ReplaceAllString(out, Replacement)
	out = reservedRe.ReplaceAllString(out, Replacement)
	out = windowsReservedRe.ReplaceAllString(out, Replacement)
	return windowsTrailingRe.ReplaceAllString(out, Replacement)
}

// truncate shortens s to maxLength bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxLength {
		return s
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
