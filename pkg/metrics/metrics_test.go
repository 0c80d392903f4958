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

package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tenantsync/tenantsync/pkg/asset"
)

func TestRecordFiles(t *testing.T) {
	read := testutil.ToFloat64(Metrics.FilesRead.WithLabelValues("clients"))
	written := testutil.ToFloat64(Metrics.FilesWritten.WithLabelValues("clients"))

	RecordFileRead(asset.Clients)
	RecordFileWritten(asset.Clients)
	RecordFileWritten(asset.Clients)

	assert.Equal(t, read+1, testutil.ToFloat64(Metrics.FilesRead.WithLabelValues("clients")))
	assert.Equal(t, written+2, testutil.ToFloat64(Metrics.FilesWritten.WithLabelValues("clients")))
}

func TestWriteTextfile(t *testing.T) {
	RecordHandlerDuration("dump", asset.Actions, nil, time.Now())
	RecordHandlerDuration("dump", asset.Actions, errors.New("boom"), time.Now())

	file := filepath.Join(t.TempDir(), "tenantsync.prom")
	require.NoError(t, WriteTextfile(file))

	contents, err := os.ReadFile(file)
	require.NoError(t, err)
	text := string(contents)
	assert.True(t, strings.Contains(text, `tenantsync_handler_duration_seconds_count{kind="actions",operation="dump",status="success"}`), text)
	assert.True(t, strings.Contains(text, `tenantsync_handler_duration_seconds_count{kind="actions",operation="dump",status="error"}`), text)
}
