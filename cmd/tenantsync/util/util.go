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

package util

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tenantsync/tenantsync/pkg/status"
)

// MustFprintf prints a formatted string to the writer and panics on error.
func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(fmt.Sprintf("Failed to write: %v", err))
	}
}

// NewWriter returns a standardized writer for the CLI for writing tabular output to the console.
func NewWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
}

// PrintErr prints err to w. Each error of a status.MultiError is printed on
// its own numbered line.
func PrintErr(w io.Writer, err error) {
	msg := err.Error()
	if errs, ok := err.(status.MultiError); ok {
		msg = status.FormatMultiLine(errs)
	}
	MustFprintf(w, "Error: %s\n", msg)
}
