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

// Package files reads and writes the files of a directory root or of the
// code files next to a document.
package files

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/mapping"
	"github.com/tenantsync/tenantsync/pkg/metrics"
	"github.com/tenantsync/tenantsync/pkg/status"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

// IsDir returns true if dir exists and is a directory. A missing path or a
// path to something other than a directory both return false.
func IsDir(dir cmpath.Absolute) bool {
	info, err := os.Stat(dir.OSPath())
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Find lists the regular files directly inside dir whose extension is one of
// extensions, sorted by file name. Subdirectories are not descended into.
func Find(dir cmpath.Absolute, extensions ...string) ([]cmpath.Absolute, status.Error) {
	entries, err := os.ReadDir(dir.OSPath())
	if err != nil {
		return nil, status.PathWrapError(err, dir.SlashPath())
	}
	var result []cmpath.Absolute
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !hasExtension(entry.Name(), extensions) {
			continue
		}
		result = append(result, dir.Join(cmpath.RelativeSlash(entry.Name())))
	}
	// os.ReadDir already sorts, but the order is part of the contract.
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Read returns the contents of file with mappings substituted.
func Read(kind asset.Kind, file cmpath.Absolute, mappings mapping.Mappings) (string, status.Error) {
	contents, err := os.ReadFile(file.OSPath())
	if err != nil {
		klog.Errorf("Failed to read %s file: %s", kind, file.OSPath())
		return "", status.PathWrapError(err, file.SlashPath())
	}
	metrics.RecordFileRead(kind)
	return mappings.Replace(string(contents)), nil
}

// ReadObject reads file as a JSON object with mappings substituted.
func ReadObject(kind asset.Kind, file cmpath.Absolute, mappings mapping.Mappings) (asset.Object, status.Error) {
	contents, err := Read(kind, file, mappings)
	if err != nil {
		return nil, err
	}
	o, decodeErr := asset.DecodeObject([]byte(contents))
	if decodeErr != nil {
		return nil, status.DescriptorParseError(decodeErr, file)
	}
	return o, nil
}

// EnsureDir creates dir and any missing parents. It is not an error for dir
// to exist already.
func EnsureDir(dir cmpath.Absolute) status.Error {
	if err := os.MkdirAll(dir.OSPath(), os.ModePerm); err != nil {
		return status.FileWriteError(err, dir)
	}
	return nil
}

// Write replaces the contents of file with data. The parent directory must
// already exist.
func Write(kind asset.Kind, file cmpath.Absolute, data []byte) status.Error {
	klog.Infof("Writing %s", file.OSPath())
	if err := write(file, data); err != nil {
		return status.FileWriteError(err, file)
	}
	metrics.RecordFileWritten(kind)
	return nil
}

func write(file cmpath.Absolute, data []byte) (err error) {
	outFile, err := os.Create(file.OSPath())
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, outFile.Close())
	}()
	_, err = outFile.Write(data)
	return err
}

// WriteJSON writes v to file as JSON indented with two spaces.
func WriteJSON(kind asset.Kind, file cmpath.Absolute, v interface{}) status.Error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return status.InternalWrap(err)
	}
	return Write(kind, file, data)
}
