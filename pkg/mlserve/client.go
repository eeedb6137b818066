// Package mlserve is a client for an external crop model server
// exposing class metadata and probability predictions over HTTP.
package mlserve

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/agrisense/crop-advisor/internal/model"
)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit sets the requests-per-second limit for prediction
// calls.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps))
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// Client talks to a model server. Class labels and feature importance
// are fetched once at construction; predictions go to /predict_proba.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	classes    []string
	importance map[string]float64
}

type metadataResponse struct {
	Classes           []string           `json:"classes"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// New creates a client and fetches model metadata from the server.
func New(ctx context.Context, baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(10, 10),
	}
	for _, opt := range opts {
		opt(c)
	}

	var meta metadataResponse
	if err := c.getJSON(ctx, "/metadata", &meta); err != nil {
		return nil, eris.Wrap(err, "mlserve: fetch metadata")
	}
	if len(meta.Classes) == 0 {
		return nil, eris.Errorf("mlserve: server at %s reported no classes", baseURL)
	}
	c.classes = meta.Classes
	c.importance = meta.FeatureImportance
	return c, nil
}

// Classes returns the class labels reported by the server.
func (c *Client) Classes() []string { return c.classes }

// FeatureImportance returns the server's global feature importance, or
// nil if the server did not report one.
func (c *Client) FeatureImportance() map[string]float64 { return c.importance }

// PredictProba requests a probability distribution for the features.
func (c *Client) PredictProba(ctx context.Context, f model.Features) ([]float64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "mlserve: rate limit wait")
	}

	body, err := json.Marshal(predictRequest{Features: f.Vector()})
	if err != nil {
		return nil, eris.Wrap(err, "mlserve: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict_proba", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "mlserve: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "mlserve: predict request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, eris.Errorf("mlserve: predict returned %d: %s", resp.StatusCode, snippet)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, eris.Wrap(err, "mlserve: decode response")
	}
	if len(out.Probabilities) != len(c.classes) {
		return nil, eris.Errorf("mlserve: got %d probabilities for %d classes",
			len(out.Probabilities), len(c.classes))
	}
	return out.Probabilities, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return eris.Wrap(err, "mlserve: build request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrapf(err, "mlserve: GET %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("mlserve: GET %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
