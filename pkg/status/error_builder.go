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

package status

import (
	"fmt"
	"strings"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"k8s.io/klog/v2"
)

// ErrorBuilder handles instantiating errors so that they have consistent
// formatting and codes.
type ErrorBuilder struct {
	error Error
}

// NewErrorBuilder returns an ErrorBuilder that can be used to instantiate
// errors with the passed code. Each code may only be registered once.
func NewErrorBuilder(code string) ErrorBuilder {
	register(code)
	return ErrorBuilder{error: baseErrorImpl{
		code: code,
	}}
}

// Build returns the Error inside the ErrorBuilder.
func (eb ErrorBuilder) Build() Error {
	return eb.error
}

// BuildWithPaths adds paths within the repository to the Error.
func (eb ErrorBuilder) BuildWithPaths(paths ...cmpath.Path) PathError {
	if len(paths) == 0 {
		return nil
	}
	return pathErrorImpl{
		underlying: eb.error,
		paths:      paths,
	}
}

// BuildWithAssets adds the identities of records to the Error.
func (eb ErrorBuilder) BuildWithAssets(ids ...asset.ID) AssetError {
	if len(ids) == 0 {
		return nil
	}
	return assetErrorImpl{
		underlying: eb.error,
		ids:        ids,
	}
}

// Sprint adds a message string into the body of the Error.
func (eb ErrorBuilder) Sprint(message string) ErrorBuilder {
	return ErrorBuilder{error: messageErrorImpl{
		underlying: eb.error,
		message:    message,
	}}
}

// Sprintf adds a formatted string into the body of the Error.
func (eb ErrorBuilder) Sprintf(format string, a ...interface{}) ErrorBuilder {
	for _, e := range a {
		if _, isError := e.(error); isError {
			// Don't format errors in string form because we lose type information;
			// use .Wrap instead.
			reportMisuse("attempted format error when .Wrap should have been used")
		}
	}

	message := fmt.Sprintf(format, a...)
	if strings.Contains(message, "%!") {
		// Make sure there aren't string formatting errors in the error message.
		// Don't replace the below with string formatting syntax or it may cause
		// a stack overflow.
		reportMisuse("improperly formatted error message: " + message)
	}
	return ErrorBuilder{error: messageErrorImpl{
		underlying: eb.error,
		message:    message,
	}}
}

// Wrap adds an error into the Error.
//
// Wrapping nil returns a builder whose Build returns nil.
func (eb ErrorBuilder) Wrap(toWrap error) ErrorBuilder {
	if e, isStatusError := toWrap.(Error); isStatusError {
		// We don't allow wrapping coded errors in other coded errors.
		klog.Info(e.Code())
		reportMisuse("attempted wrap a status.Error in another status.Error")
	}
	if toWrap == nil {
		return ErrorBuilder{error: nil}
	}
	return ErrorBuilder{error: wrappedErrorImpl{
		underlying: eb.error,
		wrapped:    toWrap,
	}}
}
