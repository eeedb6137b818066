package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "crop-advisor.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data", cfg.Datasets.Dir)
	assert.Equal(t, "crop_yield.csv", cfg.Datasets.YieldFile)
	assert.Equal(t, "embedded", cfg.Classifier.Mode)
	assert.InDelta(t, 5, cfg.Scoring.MinSuitabilityPct, 0.001)
	assert.Equal(t, []float64{0.02, 0.01, 0.005, 0}, cfg.Scoring.RelaxSteps)
	assert.Equal(t, 12, cfg.Scoring.CandidatePool)
	assert.Equal(t, 5, cfg.Scoring.TopK)
	assert.InDelta(t, 0.3, cfg.Scoring.SuitabilityWeight, 0.001)
	assert.InDelta(t, 0.5, cfg.Scoring.ProfitWeight, 0.001)
	assert.InDelta(t, 0.2, cfg.Scoring.RiskWeight, 0.001)
	assert.InDelta(t, 0.6, cfg.Scoring.YieldBaseFactor, 0.001)
	assert.InDelta(t, 0.4, cfg.Scoring.YieldConfFactor, 0.001)
	assert.InDelta(t, 0.5, cfg.Scoring.ClimateWeight, 0.001)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chtemp(t)

	yaml := `
store:
  driver: postgres
  database_url: postgres://localhost/crops
log:
  level: debug
  format: console
server:
  port: 9090
scoring:
  top_k: 3
  candidate_pool: 8
classifier:
  mode: remote
  url: http://mlserve:5000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "postgres://localhost/crops", cfg.Store.DatabaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Scoring.TopK)
	assert.Equal(t, 8, cfg.Scoring.CandidatePool)
	assert.Equal(t, "remote", cfg.Classifier.Mode)
	assert.Equal(t, "http://mlserve:5000", cfg.Classifier.URL)

	// untouched keys keep their defaults
	assert.Equal(t, 5, int(cfg.Scoring.MinSuitabilityPct))
}

func TestLoadEnvOverride(t *testing.T) {
	chtemp(t)
	t.Setenv("CROPADVISOR_STORE_DRIVER", "postgres")
	t.Setenv("CROPADVISOR_CLASSIFIER_MODE", "remote")
	t.Setenv("CROPADVISOR_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, "remote", cfg.Classifier.Mode)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "definitely-not-a-level", Format: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}
