// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)

	ranAt := time.Date(2023, 6, 15, 9, 5, 0, 0, time.UTC)
	sections := []types.TopicSection{
		{Topic: "quantum", Records: make([]types.NormalizedRecord, 3)},
		{Topic: "optics", Records: make([]types.NormalizedRecord, 1)},
	}

	require.NoError(t, s.RecordRun(Run{
		RanAt:       ranAt,
		WindowStart: ranAt.Add(-24 * time.Hour),
		WindowEnd:   ranAt,
		TopicCount:  2,
		RecordCount: 4,
		Delivered:   true,
	}, sections))

	require.NoError(t, s.RecordRun(Run{
		RanAt:     ranAt.Add(24 * time.Hour),
		Delivered: false,
	}, nil))

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.False(t, runs[0].Delivered)
	assert.True(t, runs[1].Delivered)
	assert.Equal(t, 2, runs[1].TopicCount)
	assert.Equal(t, 4, runs[1].RecordCount)
	assert.True(t, runs[1].RanAt.Equal(ranAt))
}

func TestListRunsLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordRun(Run{RanAt: time.Now()}, nil))
	}

	runs, err := s.ListRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	runs, err = s.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 5, "non-positive limit uses the default")
}

func TestListRunsEmpty(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
