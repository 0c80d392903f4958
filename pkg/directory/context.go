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

// Package directory converts tenant configuration to and from a directory
// tree holding one file per record.
//
// Each kind lives in its own subdirectory of the root, named after the kind
// in kebab case. A missing subdirectory means the kind is absent.
package directory

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/handler"
	"github.com/tenantsync/tenantsync/pkg/mapping"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/files"
)

// Context is the state of one conversion run against a directory root.
type Context struct {
	// Root is the directory holding one subdirectory per kind.
	Root cmpath.Absolute
	// Mappings are substituted into every file read from Root.
	Mappings mapping.Mappings
	// Assets is the asset bag of the run.
	Assets *asset.Assets
}

var _ handler.Context = &Context{}

// NewContext returns a Context for root with an empty asset bag.
func NewContext(root cmpath.Absolute, mappings mapping.Mappings) *Context {
	return &Context{
		Root:     root,
		Mappings: mappings,
		Assets:   asset.NewAssets(),
	}
}

// Bag implements handler.Context.
func (c *Context) Bag() *asset.Assets {
	return c.Assets
}

// Parse reads every registered kind from Root into the asset bag.
func (c *Context) Parse(ctx context.Context) status.MultiError {
	return handler.Parse(ctx, Registry(), c)
}

// Dump writes every present kind of the asset bag under Root, and returns the
// slots as they were written.
func (c *Context) Dump(ctx context.Context) (*asset.Assets, status.MultiError) {
	return handler.Dump(ctx, Registry(), c)
}

// LoadFile returns the text of the file reference points to, with Mappings
// substituted. reference is tried relative to each of baseFolders inside Root,
// then relative to Root, then as given.
func (c *Context) LoadFile(reference string, baseFolders ...cmpath.Relative) (string, status.Error) {
	candidates := c.candidates(reference, baseFolders)
	for _, candidate := range candidates {
		if isFile(candidate) {
			// Only actions refer to other files.
			return files.Read(asset.Actions, candidate, c.Mappings)
		}
	}
	attempted := make([]cmpath.Path, len(candidates))
	for i, candidate := range candidates {
		attempted[i] = candidate
	}
	return "", status.CodeReferenceError(reference, attempted...)
}

func (c *Context) candidates(reference string, baseFolders []cmpath.Relative) []cmpath.Absolute {
	ref := cmpath.RelativeOS(reference)
	var result []cmpath.Absolute
	seen := make(map[cmpath.Absolute]bool)
	add := func(p cmpath.Absolute) {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	if !filepath.IsAbs(reference) {
		for _, folder := range baseFolders {
			add(c.Root.Join(folder).Join(ref))
		}
		add(c.Root.Join(ref))
	}
	if p, err := cmpath.AbsoluteOS(reference); err == nil {
		add(p)
	}
	return result
}

func isFile(p cmpath.Absolute) bool {
	info, err := os.Stat(p.OSPath())
	return err == nil && info.Mode().IsRegular()
}

// kindDir returns the subdirectory of Root holding kind.
func (c *Context) kindDir(kind asset.Kind) cmpath.Absolute {
	return c.Root.Join(cmpath.RelativeSlash(kind.DirName()))
}
