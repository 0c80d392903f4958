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

// Package status holds the coded errors reported while converting tenant
// configuration between representations.
package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
)

// codePrefix is prepended to every error code when printed.
const codePrefix = "TS"

func prefixed(code string) string {
	return codePrefix + code
}

// Error defines a coded error which may wrap an underlying error.
type Error interface {
	causer
	MultiError
	// Code is the unique identifier of the error to help users find documentation.
	Code() string
	// Body is the body of the error to be printed.
	Body() string
	// Is allows comparing error types through errors.Is.
	Is(target error) bool
}

type causer interface {
	Cause() error
}

// registered tracks the error codes in use so two errors can't share one.
var registered = map[string]bool{}

func format(err Error) string {
	var sb strings.Builder
	sb.WriteString(prefixed(err.Code()))
	sb.WriteString(": ")
	sb.WriteString(err.Body())
	return sb.String()
}

func formatBody(message, separator, context string) string {
	var sb strings.Builder
	sb.WriteString(message)
	if context != "" {
		sb.WriteString(separator)
		sb.WriteString(context)
	}
	return sb.String()
}

// PathError defines a status error associated with one or more files or
// directories.
type PathError interface {
	Error
	RelativePaths() []cmpath.Path
}

// AssetError defines a status error associated with one or more records.
type AssetError interface {
	Error
	Assets() []asset.ID
}

func nextCandidate(code string) (int, error) {
	c, err := strconv.Atoi(code)
	if err != nil {
		return 0, err
	}

	for ; true; c++ {
		if _, found := registered[strconv.Itoa(c)]; found {
			continue
		}
		return c, nil
	}
	panic("unreachable code")
}

func register(code string) {
	if _, exists := registered[code]; exists {
		if c, err2 := nextCandidate(code); err2 == nil {
			reportMisuse(fmt.Sprintf("duplicate error code %s, next candidate: %d", code, c))
		} else {
			reportMisuse(fmt.Sprintf("duplicate error code %s", code))
		}
	}
	registered[code] = true
}
