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

// Package document converts tenant configuration to and from a single YAML
// document with one top-level list per kind.
//
// A kind whose key is missing or null is absent; an empty list is present
// with no records. Action code is kept in files next to the document.
package document

import (
	"context"
	"path/filepath"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/mapping"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
	"k8s.io/klog/v2"
)

// Context is the state of one conversion run against a document.
type Context struct {
	// Path is the YAML document.
	Path cmpath.Absolute
	// BasePath is the directory code file references are resolved against.
	BasePath cmpath.Absolute
	// Mappings are substituted into the document and every code file read.
	Mappings mapping.Mappings
	// Assets is the asset bag of the run.
	Assets *asset.Assets
}

var _ handler.Context = &Context{}

// NewContext returns a Context for the document at path, with code files
// next to it and an empty asset bag.
func NewContext(path cmpath.Absolute, mappings mapping.Mappings) *Context {
	return &Context{
		Path:     path,
		BasePath: path.Dir(),
		Mappings: mappings,
		Assets:   asset.NewAssets(),
	}
}

// Bag implements handler.Context.
func (c *Context) Bag() *asset.Assets {
	return c.Assets
}

// Parse loads the document and runs every registered Handler over it.
func (c *Context) Parse(ctx context.Context) status.MultiError {
	if errs := c.Load(); errs != nil {
		return errs
	}
	return handler.Parse(ctx, Registry(), c)
}

// Dump runs every registered Handler over the asset bag and writes the
// result to the document. It returns the slots as they were written. The
// document is left untouched when every kind is absent.
func (c *Context) Dump(ctx context.Context) (*asset.Assets, status.MultiError) {
	out, errs := handler.Dump(ctx, Registry(), c)
	if errs != nil {
		return nil, errs
	}
	if len(out.Kinds()) == 0 {
		klog.V(2).Infof("Nothing to write to %s", c.Path.OSPath())
		return out, nil
	}
	if err := c.Write(out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadFile returns the text of the file reference points to, with Mappings
// substituted. reference is tried relative to BasePath, then as given.
func (c *Context) LoadFile(reference string) (string, status.Error) {
	var candidates []cmpath.Path
	if !filepath.IsAbs(reference) {
		candidate := c.BasePath.Join(cmpath.RelativeOS(reference))
		if isFile(candidate) {
			return files.Read(asset.Actions, candidate, c.Mappings)
		}
		candidates = append(candidates, candidate)
	}
	if candidate, err := cmpath.AbsoluteOS(reference); err == nil {
		if isFile(candidate) {
			return files.Read(asset.Actions, candidate, c.Mappings)
		}
		candidates = append(candidates, candidate)
	}
	return "", status.CodeReferenceError(reference, candidates...)
}
