package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/agrisense/crop-advisor/internal/config"
	"github.com/agrisense/crop-advisor/internal/model"
)

// RunFilter specifies criteria for listing stored prediction runs.
type RunFilter struct {
	State  string `json:"state,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for prediction runs.
type Store interface {
	CreateRun(ctx context.Context, req model.PredictRequest, result *model.PredictionResult) (*model.Run, error)
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}

// Open constructs the store named by the config driver and runs migrations.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		st  Store
		err error
	)
	switch cfg.Driver {
	case "sqlite", "":
		st, err = NewSQLite(cfg.Path)
	case "postgres":
		st, err = NewPostgres(ctx, cfg.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}
