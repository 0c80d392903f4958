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

// Package metrics holds the Prometheus metrics recorded while reading and
// writing tenant configuration.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tenantsync/tenantsync/pkg/api/tenantsync"
	"github.com/tenantsync/tenantsync/pkg/asset"
)

const (
	// StatusSuccess labels an operation that completed.
	StatusSuccess = "success"
	// StatusError labels an operation that failed.
	StatusError = "error"
)

// Metrics contains the Prometheus metrics for handler runs.
var Metrics = struct {
	FilesRead       *prometheus.CounterVec
	FilesWritten    *prometheus.CounterVec
	HandlerDuration *prometheus.HistogramVec
}{
	FilesRead: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of files read, by resource kind",
			Namespace: tenantsync.MetricsNamespace,
			Name:      "files_read_total",
		},
		[]string{"kind"},
	),
	FilesWritten: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Help:      "Total number of files written, by resource kind",
			Namespace: tenantsync.MetricsNamespace,
			Name:      "files_written_total",
		},
		[]string{"kind"},
	),
	HandlerDuration: prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Help:      "Distribution of durations of handler parse and dump runs",
			Namespace: tenantsync.MetricsNamespace,
			Name:      "handler_duration_seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		// operation: parse, dump; status: success, error
		[]string{"operation", "kind", "status"},
	),
}

func init() {
	prometheus.MustRegister(
		Metrics.FilesRead,
		Metrics.FilesWritten,
		Metrics.HandlerDuration,
	)
}

// RecordFileRead counts one file read for kind.
func RecordFileRead(kind asset.Kind) {
	Metrics.FilesRead.WithLabelValues(kind.String()).Inc()
}

// RecordFileWritten counts one file written for kind.
func RecordFileWritten(kind asset.Kind) {
	Metrics.FilesWritten.WithLabelValues(kind.String()).Inc()
}

// RecordHandlerDuration observes the time since start for one handler run.
func RecordHandlerDuration(operation string, kind asset.Kind, err error, start time.Time) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	Metrics.HandlerDuration.WithLabelValues(operation, kind.String(), status).Observe(time.Since(start).Seconds())
}

// WriteTextfile writes every registered metric to file in the Prometheus
// text format, for collection by a node exporter textfile collector.
func WriteTextfile(file string) error {
	return prometheus.WriteToTextfile(file, prometheus.DefaultGatherer)
}
