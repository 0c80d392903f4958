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

package sanitize

import (
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "safe name", input: "welcome-flow", want: "welcome-flow"},
		{name: "spaces are kept", input: "My App", want: "My App"},
		{name: "slashes", input: "a/b\\c", want: "a-b-c"},
		{name: "illegal characters", input: `a?b<c>d:e*f|g"h`, want: "a-b-c-d-e-f-g-h"},
		{name: "control characters", input: "a\x00b\x1fc\u0085d", want: "a-b-c-d"},
		{name: "dots only", input: "..", want: "-"},
		{name: "windows reserved name", input: "CON", want: "-"},
		{name: "windows reserved name with extension", input: "lpt1.txt", want: "-"},
		{name: "trailing dots and spaces", input: "name. .", want: "name-"},
		{name: "reserved prefix is fine", input: "console", want: "console"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Name(tc.input); got != tc.want {
				t.Errorf("Name(%q) = %q; want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"welcome-flow",
		"a/b:c",
		"..",
		"aux.",
		"con ",
		"trailing...",
		strings.Repeat("a", 254) + ". b",
		strings.Repeat("é", 200),
		"tab\there",
	}
	for _, input := range inputs {
		once := Name(input)
		if twice := Name(once); twice != once {
			t.Errorf("Name(Name(%q)) = %q; want %q", input, twice, once)
		}
	}
}

func TestNameTruncates(t *testing.T) {
	got := Name(strings.Repeat("é", 200))
	if len(got) > maxLength {
		t.Errorf("got %d bytes; want at most %d", len(got), maxLength)
	}
	if !strings.HasPrefix(strings.Repeat("é", 200), got) {
		t.Errorf("truncation split a rune: %q", got)
	}
}
