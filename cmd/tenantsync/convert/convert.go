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

package convert

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/tenantsync/tenantsync/cmd/tenantsync/flags"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/cmpath"
	"github.com/tenantsync/tenantsync/pkg/directory"
	"github.com/tenantsync/tenantsync/pkg/document"
	"github.com/tenantsync/tenantsync/pkg/mapping"
	"github.com/tenantsync/tenantsync/pkg/metrics"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"
)

// ExecParams contains all parameters needed to execute the convert command
type ExecParams struct {
	Input        string
	InputFormat  string
	Output       string
	OutputFormat string
	BasePath     string
	Exclude      []string
	Mappings     string
	MetricsFile  string
}

// ExecuteConvert reads Input, drops excluded fields and writes the result to
// Output. Files written before an error are left in place.
func ExecuteConvert(ctx context.Context, params ExecParams) (err error) {
	if params.MetricsFile != "" {
		defer func() {
			if metricsErr := metrics.WriteTextfile(params.MetricsFile); metricsErr != nil {
				err = multierr.Append(err, errors.Wrapf(metricsErr, "writing metrics to %s", params.MetricsFile))
			}
		}()
	}

	if err := validateFormat(params.InputFormat); err != nil {
		return errors.Wrap(err, "--input-format")
	}
	if err := validateFormat(params.OutputFormat); err != nil {
		return errors.Wrap(err, "--output-format")
	}
	rules, err := parseExclusions(params.Exclude)
	if err != nil {
		return err
	}
	var mappings mapping.Mappings
	if params.Mappings != "" {
		mappings, err = mapping.Load(params.Mappings)
		if err != nil {
			return err
		}
	}
	in, err := cmpath.AbsoluteOS(params.Input)
	if err != nil {
		return err
	}
	out, err := cmpath.AbsoluteOS(params.Output)
	if err != nil {
		return err
	}
	var basePath cmpath.Absolute
	if params.BasePath != "" {
		basePath, err = cmpath.AbsoluteOS(params.BasePath)
		if err != nil {
			return err
		}
	}

	bag, err := read(ctx, params.InputFormat, in, basePath, mappings)
	if err != nil {
		return err
	}
	bag, err = asset.Exclude(bag, rules)
	if err != nil {
		return err
	}
	written, err := write(ctx, params.OutputFormat, out, basePath, bag)
	if err != nil {
		return err
	}

	klog.Infof("Converted %s to %s", in.OSPath(), out.OSPath())
	for _, kind := range written.Kinds() {
		klog.Infof("%s: %d records", kind, written.Get(kind).Len())
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case flags.FormatDirectory, flags.FormatYAML:
		return nil
	default:
		return errors.Errorf("unknown format %q, must be %q or %q", format, flags.FormatDirectory, flags.FormatYAML)
	}
}

// parseExclusions parses kind=jsonpath rules.
func parseExclusions(exclude []string) (asset.ExclusionRules, error) {
	known := make(map[asset.Kind]bool)
	for _, kind := range directory.Registry().Kinds() {
		known[kind] = true
	}
	rules := make(asset.ExclusionRules)
	for _, rule := range exclude {
		kind, expression, found := strings.Cut(rule, "=")
		if !found || expression == "" {
			return nil, errors.Errorf("invalid exclusion %q, must be kind=jsonpath", rule)
		}
		if !known[asset.Kind(kind)] {
			return nil, errors.Errorf("invalid exclusion %q, unknown kind %q", rule, kind)
		}
		rules[asset.Kind(kind)] = append(rules[asset.Kind(kind)], expression)
	}
	return rules, nil
}

func read(ctx context.Context, format string, in, basePath cmpath.Absolute, mappings mapping.Mappings) (*asset.Assets, error) {
	switch format {
	case flags.FormatDirectory:
		c := directory.NewContext(in, mappings)
		if errs := c.Parse(ctx); errs != nil {
			return nil, errors.Wrapf(errs, "reading %s", in.OSPath())
		}
		return c.Assets, nil
	default:
		c := document.NewContext(in, mappings)
		if basePath != "" {
			c.BasePath = basePath
		}
		if errs := c.Parse(ctx); errs != nil {
			return nil, errors.Wrapf(errs, "reading %s", in.OSPath())
		}
		return c.Assets, nil
	}
}

func write(ctx context.Context, format string, out, basePath cmpath.Absolute, bag *asset.Assets) (*asset.Assets, error) {
	switch format {
	case flags.FormatDirectory:
		c := directory.NewContext(out, nil)
		c.Assets = bag
		written, errs := c.Dump(ctx)
		if errs != nil {
			return nil, errors.Wrapf(errs, "writing %s", out.OSPath())
		}
		return written, nil
	default:
		c := document.NewContext(out, nil)
		if basePath != "" {
			c.BasePath = basePath
		}
		c.Assets = bag
		written, errs := c.Dump(ctx)
		if errs != nil {
			return nil, errors.Wrapf(errs, "writing %s", out.OSPath())
		}
		return written, nil
	}
}
