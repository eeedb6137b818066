package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/agrisense/crop-advisor/internal/classifier"
	"github.com/agrisense/crop-advisor/internal/dataset"
	"github.com/agrisense/crop-advisor/internal/profit"
	"github.com/agrisense/crop-advisor/internal/recommend"
	"github.com/agrisense/crop-advisor/internal/region"
	"github.com/agrisense/crop-advisor/internal/risk"
	"github.com/agrisense/crop-advisor/internal/store"
	"github.com/agrisense/crop-advisor/pkg/mlserve"
)

func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store)
}

// newNormalizer builds the crop name normalizer, layering alias
// overrides from the configured YAML file on top of the built-ins.
func newNormalizer() (*region.Normalizer, error) {
	norm := region.NewNormalizer()
	if cfg.Datasets.AliasFile != "" {
		if err := norm.LoadOverrides(cfg.Datasets.AliasFile); err != nil {
			return nil, err
		}
	}
	return norm, nil
}

func newDatasetCache(norm *region.Normalizer) *dataset.Cache {
	return &dataset.Cache{
		Dir:         cfg.Datasets.Dir,
		YieldFile:   cfg.Datasets.YieldFile,
		PriceFile:   cfg.Datasets.PriceFile,
		CostFile:    cfg.Datasets.CostFile,
		ClimateFile: cfg.Datasets.ClimateFile,
		Normalize:   norm.Canonical,
	}
}

func newClassifier(ctx context.Context) (classifier.Classifier, error) {
	switch cfg.Classifier.Mode {
	case "embedded", "":
		return classifier.NewEmbedded(), nil
	case "remote":
		if cfg.Classifier.URL == "" {
			return nil, eris.New("classifier URL is required in remote mode (CROPADVISOR_CLASSIFIER_URL)")
		}
		opts := []mlserve.Option{}
		if cfg.Classifier.TimeoutSecs > 0 {
			opts = append(opts, mlserve.WithTimeout(time.Duration(cfg.Classifier.TimeoutSecs)*time.Second))
		}
		if cfg.Classifier.RateLimit > 0 {
			opts = append(opts, mlserve.WithRateLimit(cfg.Classifier.RateLimit))
		}
		return mlserve.New(ctx, cfg.Classifier.URL, opts...)
	default:
		return nil, eris.Errorf("unsupported classifier mode: %s", cfg.Classifier.Mode)
	}
}

// newRecommender wires the full scoring pipeline from config.
func newRecommender(ctx context.Context) (*recommend.Recommender, error) {
	norm, err := newNormalizer()
	if err != nil {
		return nil, err
	}
	cache := newDatasetCache(norm)
	resolver := region.NewResolver(cache, norm)

	clf, err := newClassifier(ctx)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("recommender wired",
		zap.String("classifier_mode", cfg.Classifier.Mode),
		zap.String("datasets_dir", cfg.Datasets.Dir),
	)

	return recommend.New(
		recommend.Config{
			MinSuitabilityPct: cfg.Scoring.MinSuitabilityPct,
			RelaxSteps:        cfg.Scoring.RelaxSteps,
			CandidatePool:     cfg.Scoring.CandidatePool,
			TopK:              cfg.Scoring.TopK,
			SuitabilityWeight: cfg.Scoring.SuitabilityWeight,
			ProfitWeight:      cfg.Scoring.ProfitWeight,
			RiskWeight:        cfg.Scoring.RiskWeight,
			MaxWorkers:        cfg.Scoring.MaxWorkers,
		},
		clf,
		resolver,
		profit.NewEngine(cfg.Scoring.YieldBaseFactor, cfg.Scoring.YieldConfFactor),
		risk.NewEngine(cfg.Scoring.ClimateWeight),
	), nil
}
