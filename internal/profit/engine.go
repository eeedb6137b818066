// Package profit projects the economics of growing a crop on a plot.
package profit

import (
	"math"

	"github.com/agrisense/crop-advisor/internal/model"
)

// Engine computes profit projections. The effective yield is the
// regional base yield discounted by classifier confidence: a crop the
// classifier is unsure about is assumed to perform below the regional
// average.
type Engine struct {
	BaseFactor float64
	ConfFactor float64
}

// NewEngine returns an engine with the given yield discount factors.
func NewEngine(baseFactor, confFactor float64) *Engine {
	return &Engine{BaseFactor: baseFactor, ConfFactor: confFactor}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Project computes the full economics for one crop given its resolved
// regional context, classifier confidence and plot size. Confidence is
// clamped to [0, 1] and land to non-negative.
func (e *Engine) Project(rc model.RegionContext, confidence, landAcres float64) model.ProfitResult {
	conf := math.Max(0, math.Min(1, confidence))
	land := math.Max(0, landAcres)

	effYield := rc.YieldQPerAcre * (e.BaseFactor + e.ConfFactor*conf)
	production := effYield * land
	revenue := production * rc.PricePerQuintal
	cost := rc.CostPerAcre * land
	netProfit := revenue - cost

	perAcre := 0.0
	if land > 0 {
		perAcre = netProfit / land
	}
	roi := 0.0
	if cost > 0 {
		roi = netProfit / cost * 100
	}

	return model.ProfitResult{
		EffectiveYield:  round(effYield, 2),
		TotalProduction: round(production, 2),
		GrossRevenue:    round(revenue, 0),
		TotalCost:       round(cost, 0),
		NetProfit:       round(netProfit, 0),
		ProfitPerAcre:   round(perAcre, 0),
		ROIPct:          round(roi, 1),
	}
}
