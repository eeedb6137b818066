package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/crop-advisor/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleRequest(state string) model.PredictRequest {
	return model.PredictRequest{
		Features:      model.Features{Nitrogen: 80, Phosphorus: 47, Potassium: 40, Temperature: 24, Humidity: 82, PH: 6.4, Rainfall: 230},
		State:         state,
		District:      "nalanda",
		LandSizeAcres: 2,
		Mode:          model.RankBalanced,
	}
}

func sampleResult() *model.PredictionResult {
	return &model.PredictionResult{
		Mode:          model.RankBalanced,
		ThresholdUsed: 0.05,
		Recommendations: []model.Recommendation{
			{Rank: 1, Crop: "rice", Confidence: 0.82, Genuine: true},
		},
	}
}

func TestSQLite_CreateAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, sampleRequest("bihar"), sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, "bihar", got.Request.State)
	assert.InDelta(t, 6.4, got.Request.PH, 1e-9)
	require.NotNil(t, got.Result)
	require.Len(t, got.Result.Recommendations, 1)
	assert.Equal(t, "rice", got.Result.Recommendations[0].Crop)
	assert.True(t, got.Result.Recommendations[0].Genuine)
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)

	_, err := st.GetRun(context.Background(), "nonexistent-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSQLite_CreateRun_NilResult(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, sampleRequest("bihar"), nil)
	require.NoError(t, err)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Result)
}

func TestSQLite_ListRuns_FilterByState(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.CreateRun(ctx, sampleRequest("bihar"), sampleResult())
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, sampleRequest("punjab"), sampleResult())
	require.NoError(t, err)

	runs, err := st.ListRuns(ctx, RunFilter{State: "punjab"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "punjab", runs[0].Request.State)

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSQLite_ListRuns_LimitAndOffset(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := st.CreateRun(ctx, sampleRequest("bihar"), nil)
		require.NoError(t, err)
	}

	page, err := st.ListRuns(ctx, RunFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := st.ListRuns(ctx, RunFilter{Limit: 10, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}
