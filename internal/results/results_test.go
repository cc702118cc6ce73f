// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonis/Sorting/internal/bench"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(context.Background(), filepath.Join(t.TempDir(), "hist", "runs.db"))
	require.NoError(t, err)
	require.NotNil(t, st)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestSaveAndList(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	serial := Run{
		Started:   started,
		Workers:   1,
		Threshold: 256,
		Host:      "linux/amd64 8 cpus []",
		Took:      1500 * time.Millisecond,
		Rows: []bench.Row{
			{Size: 2048, Samples: 16, Total: 32 * time.Millisecond},
			{Size: 1024, Samples: 16, Total: 16 * time.Millisecond},
		},
	}
	id1, err := st.SaveRun(ctx, serial)
	require.NoError(t, err)

	id2, err := st.SaveRun(ctx, Run{Started: started.Add(time.Minute), Parallel: true, Workers: 4, Threshold: 16})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := st.Runs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, id2, runs[0].ID, "newest first")
	assert.True(t, runs[0].Parallel)
	assert.Equal(t, 4, runs[0].Workers)
	assert.Empty(t, runs[0].Rows)

	got := runs[1]
	assert.Equal(t, "serial", got.Mode())
	assert.True(t, started.Equal(got.Started))
	assert.Equal(t, 1500*time.Millisecond, got.Took)
	assert.Equal(t, serial.Host, got.Host)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, bench.Row{Size: 1024, Samples: 16, Total: 16 * time.Millisecond}, got.Rows[0])
	assert.Equal(t, 2048, got.Rows[1].Size)
}

func TestRunsLimit(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	for range 5 {
		_, err := st.SaveRun(ctx, Run{Workers: 1})
		require.NoError(t, err)
	}
	runs, err := st.Runs(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestDuplicateSizeRollsBack(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	_, err := st.SaveRun(ctx, Run{Rows: []bench.Row{{Size: 8}, {Size: 8}}})
	require.Error(t, err)

	runs, err := st.Runs(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestDisabledStore(t *testing.T) {
	st, err := Open(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, st)

	_, err = st.SaveRun(context.Background(), Run{})
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = st.Runs(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDisabled)
	assert.NoError(t, st.Close())
}

func TestOpenReportsSetupError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := Open(ctx, filepath.Join(t.TempDir(), "runs.db"))
	assert.Nil(t, st)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "results: pragma")
}
