// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epimob/intervention"
	"github.com/katalvlaran/epimob/montecarlo"
	"github.com/katalvlaran/epimob/segment"
	"github.com/katalvlaran/epimob/vulnerability"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleResult() *montecarlo.Result {
	return &montecarlo.Result{
		Variant:   intervention.RandomizedB,
		Partition: segment.Partition{Hotspots: []int{0}, Suburbs: []int{2, 1}},
		Baseline: map[vulnerability.Disease]float64{
			vulnerability.ABD: 12.5,
			vulnerability.VBD: math.NaN(),
		},
		Series: map[vulnerability.Disease][]float64{
			vulnerability.ABD: {0.9, 0.75, 1.1},
		},
		Excluded: map[vulnerability.Disease]int{vulnerability.VBD: 3},
		Trials:   3,
		Seed:     42,
		Workers:  2,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	s := openTemp(t)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()

	id, err := s.SaveRun(ctx, "city", sampleResult())
	require.NoError(t, err)
	assert.Positive(t, id)

	r, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "city", r.Scenario)
	assert.Equal(t, intervention.RandomizedB, r.Variant)
	assert.Equal(t, 3, r.Trials)
	assert.Equal(t, int64(42), r.Seed)
	assert.Equal(t, 2, r.Workers)
	assert.True(t, fixed.Equal(r.CreatedAt))
	assert.Equal(t, []int{0}, r.Partition.Hotspots)
	assert.Equal(t, []int{2, 1}, r.Partition.Suburbs)
	assert.Equal(t, 12.5, r.Baseline[vulnerability.ABD])
	assert.True(t, math.IsNaN(r.Baseline[vulnerability.VBD]), "NaN survives as NULL")
	assert.Equal(t, 3, r.Excluded[vulnerability.VBD])
	assert.Equal(t, []float64{0.9, 0.75, 1.1}, r.Series[vulnerability.ABD])
	assert.Empty(t, r.Series[vulnerability.VBD])
	assert.Equal(t, 3, r.Summary(vulnerability.ABD).Count)
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()
	for _, name := range []string{"a", "b", "c"} {
		_, err := s.SaveRun(ctx, name, sampleResult())
		require.NoError(t, err)
	}

	all, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Scenario)
	assert.Equal(t, "a", all[2].Scenario)

	two, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestGetAndDeleteMissing(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	_, err := s.GetRun(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteRun(ctx, 99), ErrNotFound)

	id, err := s.SaveRun(ctx, "x", sampleResult())
	require.NoError(t, err)
	require.NoError(t, s.DeleteRun(ctx, id))
	_, err = s.GetRun(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.SaveRun(context.Background(), "kept", sampleResult())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()
	runs, err := s2.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kept", runs[0].Scenario)
	assert.Equal(t, path, s2.Path())
}
