package mlserve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/crop-advisor/internal/model"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"classes":            []string{"maize", "rice"},
			"feature_importance": map[string]float64{"rainfall": 0.6, "humidity": 0.4},
		})
	})
	mux.HandleFunc("/predict_proba", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Features []float64 `json:"features"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Features, 7)
		json.NewEncoder(w).Encode(map[string]any{"probabilities": []float64{0.3, 0.7}})
	})
	return httptest.NewServer(mux)
}

func TestNewFetchesMetadata(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c, err := New(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"maize", "rice"}, c.Classes())
	assert.InDelta(t, 0.6, c.FeatureImportance()["rainfall"], 1e-9)
}

func TestPredictProbaRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c, err := New(context.Background(), srv.URL)
	require.NoError(t, err)

	probs, err := c.PredictProba(context.Background(), model.Features{Rainfall: 200})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.7}, probs)
}

func TestNewRejectsEmptyClassList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"classes": []string{}})
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestPredictProbaLengthMismatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"classes": []string{"maize", "rice"}})
	})
	mux.HandleFunc("/predict_proba", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"probabilities": []float64{1}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(context.Background(), srv.URL)
	require.NoError(t, err)

	_, err = c.PredictProba(context.Background(), model.Features{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probabilities")
}

func TestPredictProbaServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"classes": []string{"rice"}})
	})
	mux.HandleFunc("/predict_proba", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(context.Background(), srv.URL)
	require.NoError(t, err)

	_, err = c.PredictProba(context.Background(), model.Features{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
