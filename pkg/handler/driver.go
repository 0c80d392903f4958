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

package handler

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/tenantsync/tenantsync/pkg/asset"
	"github.com/tenantsync/tenantsync/pkg/metrics"
	"github.com/tenantsync/tenantsync/pkg/status"
	"github.com/tenantsync/tenantsync/pkg/util/log"
	"k8s.io/klog/v2"
)

const (
	// OperationParse labels a Parse run.
	OperationParse = "parse"
	// OperationDump labels a Dump run.
	OperationDump = "dump"
)

// Parse runs the Parse of every Handler in reg, in order, storing each
// resulting slot in the bag of c. The first error aborts the run, since a
// partial snapshot is unsafe to act on.
//
// ctx is only checked between Handlers. The logger of ctx, if any, receives
// the progress of each Handler.
func Parse[C Context](ctx context.Context, reg *Registry[C], c C) status.MultiError {
	logger := klog.FromContext(ctx).WithValues("operation", OperationParse)
	for _, h := range reg.Handlers() {
		if err := ctx.Err(); err != nil {
			return status.Append(nil, err)
		}
		slot, errs := run(logger, OperationParse, h.Kind(), h.Parse, c)
		if errs != nil {
			return errs
		}
		c.Bag().Set(h.Kind(), slot)
	}
	return nil
}

// Dump runs the Dump of every Handler in reg, in order, and returns the bag
// of slots they produced. The first error aborts the run. Files written
// before the error are left in place.
//
// ctx is only checked between Handlers.
func Dump[C Context](ctx context.Context, reg *Registry[C], c C) (*asset.Assets, status.MultiError) {
	logger := klog.FromContext(ctx).WithValues("operation", OperationDump)
	out := asset.NewAssets()
	for _, h := range reg.Handlers() {
		if err := ctx.Err(); err != nil {
			return nil, status.Append(nil, err)
		}
		slot, errs := run(logger, OperationDump, h.Kind(), h.Dump, c)
		if errs != nil {
			return nil, errs
		}
		out.Set(h.Kind(), slot)
	}
	return out, nil
}

func run[C any](logger logr.Logger, operation string, kind asset.Kind, fn func(C) (asset.Slot, status.MultiError), c C) (asset.Slot, status.MultiError) {
	logger = logger.WithValues("kind", kind)
	start := time.Now()
	slot, errs := fn(c)
	metrics.RecordHandlerDuration(operation, kind, errs, start)
	if errs != nil {
		logger.V(2).Info("Handler failed", "errors", status.FormatSingleLine(errs))
		return asset.Absent(), errs
	}
	if slot.IsAbsent() {
		logger.V(2).Info("Kind is absent, skipped")
		return slot, nil
	}
	logger.V(2).Info("Handler finished", "records", slot.Len())
	logger.V(3).Info("Handler result", "records", log.AsJSON(slot.Objects()))
	return slot, nil
}
