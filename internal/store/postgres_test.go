package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_CreateRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO runs`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.CreateRun(context.Background(), sampleRequest("bihar"), sampleResult())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "bihar", run.Request.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	reqJSON, err := json.Marshal(sampleRequest("bihar"))
	require.NoError(t, err)
	resultJSON, err := json.Marshal(sampleResult())
	require.NoError(t, err)
	resultPtr := &resultJSON

	mock.ExpectQuery(`SELECT id, request, result, created_at FROM runs WHERE id = \$1`).
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "request", "result", "created_at"}).
			AddRow("run-1", reqJSON, resultPtr, time.Now().UTC()))

	run, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "bihar", run.Request.State)
	require.NotNil(t, run.Result)
	assert.Equal(t, "rice", run.Result.Recommendations[0].Crop)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRun_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, request, result, created_at FROM runs WHERE id = \$1`).
		WithArgs("nonexistent-run").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetRun(context.Background(), "nonexistent-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListRuns_FilterByState(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	reqJSON, err := json.Marshal(sampleRequest("punjab"))
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, request, result, created_at FROM runs WHERE true AND request->>'state' = \$1`).
		WithArgs("punjab", 100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "request", "result", "created_at"}).
			AddRow("run-1", reqJSON, (*[]byte)(nil), time.Now().UTC()))

	runs, err := s.ListRuns(context.Background(), RunFilter{State: "punjab"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "punjab", runs[0].Request.State)
	assert.Nil(t, runs[0].Result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS runs`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
