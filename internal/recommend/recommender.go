// Package recommend runs the full crop recommendation pipeline: gate
// classifier probabilities, resolve regional economics, project profit,
// assess risk, and rank.
package recommend

import (
	"context"
	"math"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agrisense/crop-advisor/internal/classifier"
	"github.com/agrisense/crop-advisor/internal/model"
	"github.com/agrisense/crop-advisor/internal/profit"
	"github.com/agrisense/crop-advisor/internal/region"
	"github.com/agrisense/crop-advisor/internal/risk"
	"github.com/agrisense/crop-advisor/internal/soil"
)

// Config holds the pipeline tunables.
type Config struct {
	MinSuitabilityPct float64
	RelaxSteps        []float64
	CandidatePool     int
	TopK              int
	SuitabilityWeight float64
	ProfitWeight      float64
	RiskWeight        float64
	MaxWorkers        int
}

// Recommender wires the classifier and the scoring engines.
type Recommender struct {
	cfg      Config
	clf      classifier.Classifier
	resolver *region.Resolver
	profit   *profit.Engine
	risk     *risk.Engine
}

// New builds a recommender.
func New(cfg Config, clf classifier.Classifier, resolver *region.Resolver, pe *profit.Engine, re *risk.Engine) *Recommender {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	return &Recommender{cfg: cfg, clf: clf, resolver: resolver, profit: pe, risk: re}
}

type candidate struct {
	crop    string
	prob    float64
	genuine bool
}

// gate selects candidate crops above the suitability threshold. If
// fewer than TopK crops clear it, the threshold is relaxed step by
// step, stopping at the first step that yields enough. Crops that
// cleared the original threshold stay marked genuine either way.
func (r *Recommender) gate(classes []string, probs []float64) ([]candidate, float64) {
	minProb := r.cfg.MinSuitabilityPct / 100

	selectAbove := func(threshold float64) []candidate {
		var cands []candidate
		for i, p := range probs {
			if p >= threshold {
				cands = append(cands, candidate{crop: classes[i], prob: p, genuine: p >= minProb})
			}
		}
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].prob != cands[j].prob {
				return cands[i].prob > cands[j].prob
			}
			return cands[i].crop < cands[j].crop
		})
		return cands
	}

	threshold := minProb
	cands := selectAbove(threshold)
	if len(cands) < r.cfg.TopK {
		for _, relaxed := range r.cfg.RelaxSteps {
			threshold = relaxed
			cands = selectAbove(relaxed)
			if len(cands) >= r.cfg.TopK {
				break
			}
		}
	}

	if len(cands) > r.cfg.CandidatePool {
		cands = cands[:r.cfg.CandidatePool]
	}
	return cands, threshold
}

// filterByLand drops crops impractical for the plot size. If the
// filter would remove every candidate, it is skipped entirely.
func filterByLand(recs []model.Recommendation, landAcres float64) []model.Recommendation {
	var kept []model.Recommendation
	for _, rec := range recs {
		if landAcres >= minLandFor(rec.Crop) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == 0 {
		return recs
	}
	return kept
}

// Predict runs the full pipeline for one request.
func (r *Recommender) Predict(ctx context.Context, req model.PredictRequest) (*model.PredictionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, eris.Wrap(ErrInvalidInput, err.Error())
	}

	probs, err := r.clf.PredictProba(ctx, req.Features)
	if err != nil {
		return nil, &ClassifierError{Err: err}
	}
	classes := r.clf.Classes()
	if len(probs) != len(classes) {
		return nil, &ClassifierError{Err: eris.Errorf("got %d probabilities for %d classes", len(probs), len(classes))}
	}

	cands, threshold := r.gate(classes, probs)
	zap.L().Info("recommend: gated candidates",
		zap.Int("candidates", len(cands)),
		zap.Float64("threshold", threshold),
		zap.String("mode", string(req.Mode)))

	recs := make([]model.Recommendation, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxWorkers)
	for i, c := range cands {
		i, c := i, c
		g.Go(func() error {
			rc := r.resolver.Resolve(gctx, req.State, req.District, c.crop)
			recs[i] = model.Recommendation{
				Crop:       c.crop,
				Confidence: math.Round(c.prob*10000) / 10000,
				Genuine:    c.genuine,
				Region:     rc,
				Profit:     r.profit.Project(rc, c.prob, req.LandSizeAcres),
				Risk:       r.risk.Assess(c.crop, rc.Vulnerability),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "recommend: score candidates")
	}

	recs = filterByLand(recs, req.LandSizeAcres)

	switch req.Mode {
	case model.RankProfit:
		rankProfit(recs)
	case model.RankSuitability:
		rankSuitability(recs)
	default:
		rankBalanced(recs, r.cfg.SuitabilityWeight, r.cfg.ProfitWeight, r.cfg.RiskWeight)
	}

	if len(recs) > r.cfg.TopK {
		recs = recs[:r.cfg.TopK]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}

	result := &model.PredictionResult{
		Recommendations: recs,
		Mode:            req.Mode,
		State:           region.TitlePlace(req.State),
		District:        region.TitlePlace(req.District),
		ThresholdUsed:   threshold,
		Explanation:     explanation(r.clf),
		SoilMessages:    soil.HealthMessages(req.Features),
	}
	if len(recs) > 0 {
		result.CropSuggestions = soil.CropSuggestions(recs[0].Crop, req.Features)
	}
	return result, nil
}
