package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/crop-advisor/internal/dataset"
	"github.com/agrisense/crop-advisor/internal/model"
	"github.com/agrisense/crop-advisor/internal/profit"
	"github.com/agrisense/crop-advisor/internal/region"
	"github.com/agrisense/crop-advisor/internal/risk"
)

type stubClassifier struct {
	classes []string
	probs   []float64
	imp     map[string]float64
	err     error
}

func (s *stubClassifier) Classes() []string { return s.classes }

func (s *stubClassifier) PredictProba(_ context.Context, _ model.Features) ([]float64, error) {
	return s.probs, s.err
}

func (s *stubClassifier) FeatureImportance() map[string]float64 { return s.imp }

func defaultConfig() Config {
	return Config{
		MinSuitabilityPct: 5,
		RelaxSteps:        []float64{0.02, 0.01, 0.005, 0},
		CandidatePool:     12,
		TopK:              5,
		SuitabilityWeight: 0.3,
		ProfitWeight:      0.5,
		RiskWeight:        0.2,
		MaxWorkers:        4,
	}
}

// newRecommender wires a recommender over an empty dataset cache so
// every crop resolves to its embedded default economics.
func newRecommender(t *testing.T, clf *stubClassifier) *Recommender {
	t.Helper()
	cache := &dataset.Cache{
		Dir:       t.TempDir(),
		YieldFile: "y.csv", PriceFile: "p.csv", CostFile: "c.csv", ClimateFile: "v.csv",
	}
	resolver := region.NewResolver(cache, region.NewNormalizer())
	return New(defaultConfig(), clf, resolver, profit.NewEngine(0.6, 0.4), risk.NewEngine(0.5))
}

func validRequest() model.PredictRequest {
	return model.PredictRequest{
		Features:      model.Features{Nitrogen: 80, Phosphorus: 47, Potassium: 40, Temperature: 24, Humidity: 82, PH: 6.4, Rainfall: 230},
		LandSizeAcres: 2,
		Mode:          model.RankSuitability,
	}
}

func TestPredictRejectsInvalidInput(t *testing.T) {
	r := newRecommender(t, &stubClassifier{classes: []string{"rice"}, probs: []float64{1}})
	req := validRequest()
	req.PH = 12

	_, err := r.Predict(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPredictWrapsClassifierFailure(t *testing.T) {
	boom := errors.New("connection refused")
	r := newRecommender(t, &stubClassifier{classes: []string{"rice"}, probs: nil, err: boom})

	_, err := r.Predict(context.Background(), validRequest())
	require.Error(t, err)
	var cerr *ClassifierError
	assert.True(t, errors.As(err, &cerr))
	assert.True(t, errors.Is(err, boom))
}

func TestGateRelaxesUntilEnoughCandidates(t *testing.T) {
	clf := &stubClassifier{
		classes: []string{"rice", "maize", "banana", "coffee", "cotton", "jute", "mango"},
		probs:   []float64{0.30, 0.20, 0.10, 0.03, 0.025, 0.012, 0.004},
	}
	r := newRecommender(t, clf)

	res, err := r.Predict(context.Background(), validRequest())
	require.NoError(t, err)

	// 3 crops clear 5%; the 2% step yields 5 ≥ TopK and stops there.
	assert.InDelta(t, 0.02, res.ThresholdUsed, 1e-9)
	require.Len(t, res.Recommendations, 5)

	genuine := map[string]bool{}
	for _, rec := range res.Recommendations {
		genuine[rec.Crop] = rec.Genuine
	}
	assert.True(t, genuine["rice"])
	assert.True(t, genuine["maize"])
	assert.True(t, genuine["banana"])
	assert.False(t, genuine["coffee"])
	assert.False(t, genuine["cotton"])
}

func TestGateCapsCandidatePool(t *testing.T) {
	clf := &stubClassifier{classes: []string{"rice", "maize"}, probs: []float64{0.6, 0.4}}
	r := newRecommender(t, clf)
	probs := make([]float64, 20)
	classes := make([]string, 20)
	for i := range probs {
		classes[i] = string(rune('a'+i)) + "crop"
		probs[i] = 0.05
	}
	cands, threshold := r.gate(classes, probs)
	assert.Len(t, cands, 12)
	assert.InDelta(t, 0.05, threshold, 1e-9)
}

func TestProfitModeRanksGenuineFirst(t *testing.T) {
	// banana is far more profitable on default economics but only
	// clears a relaxed threshold; genuine matches must outrank it.
	clf := &stubClassifier{
		classes: []string{"banana", "maize", "rice"},
		probs:   []float64{0.03, 0.06, 0.30},
	}
	r := newRecommender(t, clf)

	req := validRequest()
	req.Mode = model.RankProfit
	res, err := r.Predict(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 3)

	assert.Equal(t, "rice", res.Recommendations[0].Crop)
	assert.Equal(t, "maize", res.Recommendations[1].Crop)
	assert.Equal(t, "banana", res.Recommendations[2].Crop)
	assert.Greater(t, res.Recommendations[2].Profit.NetProfit, res.Recommendations[0].Profit.NetProfit)
	for i, rec := range res.Recommendations {
		assert.Equal(t, i+1, rec.Rank)
	}
}

func TestSuitabilityModeTieBreaksLexicographically(t *testing.T) {
	recs := []model.Recommendation{
		{Crop: "maize", Confidence: 0.3},
		{Crop: "banana", Confidence: 0.3},
		{Crop: "rice", Confidence: 0.4},
	}
	rankSuitability(recs)
	assert.Equal(t, "rice", recs[0].Crop)
	assert.Equal(t, "banana", recs[1].Crop)
	assert.Equal(t, "maize", recs[2].Crop)
}

func TestBalancedModeDegenerateSpan(t *testing.T) {
	recs := []model.Recommendation{
		{Crop: "a", Confidence: 0.2, Profit: model.ProfitResult{NetProfit: 100}, Risk: model.RiskAssessment{Composite: 40}},
		{Crop: "b", Confidence: 0.2, Profit: model.ProfitResult{NetProfit: 100}, Risk: model.RiskAssessment{Composite: 40}},
	}
	rankBalanced(recs, 0.3, 0.5, 0.2)
	// every signal degenerates to 0.5: score = 0.3×0.5 + 0.5×0.5 − 0.2×0.5
	assert.InDelta(t, 0.3, recs[0].Score, 1e-9)
	assert.Equal(t, "a", recs[0].Crop)
}

func TestBalancedModeOrdersByBlendedScore(t *testing.T) {
	recs := []model.Recommendation{
		{Crop: "safe", Confidence: 0.10, Profit: model.ProfitResult{NetProfit: 1000}, Risk: model.RiskAssessment{Composite: 20}},
		{Crop: "risky", Confidence: 0.30, Profit: model.ProfitResult{NetProfit: 50000}, Risk: model.RiskAssessment{Composite: 90}},
	}
	rankBalanced(recs, 0.3, 0.5, 0.2)
	// risky: 0.3×1 + 0.5×1 − 0.2×1 = 0.6; safe: 0.3×0 + 0.5×0 − 0.2×0 = 0
	assert.Equal(t, "risky", recs[0].Crop)
	assert.InDelta(t, 0.6, recs[0].Score, 1e-9)
	assert.InDelta(t, 0.0, recs[1].Score, 1e-9)
}

func TestLandFilterDropsImpracticalCrops(t *testing.T) {
	clf := &stubClassifier{
		classes: []string{"mango", "rice"},
		probs:   []float64{0.5, 0.4},
	}
	r := newRecommender(t, clf)

	req := validRequest()
	req.LandSizeAcres = 0.5 // below mango's 1.0 minimum
	res, err := r.Predict(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "rice", res.Recommendations[0].Crop)
}

func TestLandFilterSkippedWhenItWouldEmpty(t *testing.T) {
	clf := &stubClassifier{
		classes: []string{"mango", "coffee"},
		probs:   []float64{0.5, 0.4},
	}
	r := newRecommender(t, clf)

	req := validRequest()
	req.LandSizeAcres = 0.2 // below every candidate's minimum
	res, err := r.Predict(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, res.Recommendations, 2)
}

func TestExplanationFallsBackWithoutImportance(t *testing.T) {
	// importance map present but empty
	clf := &stubClassifier{classes: []string{"rice"}, probs: []float64{1}}
	assert.Equal(t, "Explanation not available (no feature importance).", explanation(clf))

	r := newRecommender(t, clf)
	res, err := r.Predict(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Explanation not available (no feature importance).", res.Explanation)
}

func TestPredictAttachesSoilAdvice(t *testing.T) {
	clf := &stubClassifier{
		classes: []string{"banana"},
		probs:   []float64{0.9},
		imp:     map[string]float64{"rainfall": 0.5, "humidity": 0.3, "N": 0.2},
	}
	r := newRecommender(t, clf)

	req := validRequest()
	req.Potassium = 10 // low K should trigger both a message and a banana hint
	res, err := r.Predict(context.Background(), req)
	require.NoError(t, err)

	assert.NotEmpty(t, res.SoilMessages)
	require.NotEmpty(t, res.CropSuggestions)
	assert.Contains(t, res.CropSuggestions[0], "potassium-demanding")
	assert.Contains(t, res.Explanation, "rainfall (50%)")
}
