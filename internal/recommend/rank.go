package recommend

import (
	"math"
	"sort"

	"github.com/agrisense/crop-advisor/internal/model"
)

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// rankProfit orders genuine matches ahead of relaxed ones, each group
// by net profit descending.
func rankProfit(recs []model.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Genuine != recs[j].Genuine {
			return recs[i].Genuine
		}
		if recs[i].Profit.NetProfit != recs[j].Profit.NetProfit {
			return recs[i].Profit.NetProfit > recs[j].Profit.NetProfit
		}
		return recs[i].Crop < recs[j].Crop
	})
}

// rankSuitability orders by classifier confidence descending.
func rankSuitability(recs []model.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Confidence != recs[j].Confidence {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].Crop < recs[j].Crop
	})
}

// normalized min-max scales values to [0, 1]; a degenerate span maps
// every value to 0.5 so the signal drops out of the blend.
func normalized(values []float64) []float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	out := make([]float64, len(values))
	if hi == lo {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

// rankBalanced blends normalized suitability, profit and risk into a
// single score and orders by it descending. The score is stored on
// each recommendation, rounded to four decimals.
func rankBalanced(recs []model.Recommendation, wSuit, wProfit, wRisk float64) {
	if len(recs) == 0 {
		return
	}
	conf := make([]float64, len(recs))
	prof := make([]float64, len(recs))
	rsk := make([]float64, len(recs))
	for i, r := range recs {
		conf[i] = r.Confidence
		prof[i] = r.Profit.NetProfit
		rsk[i] = r.Risk.Composite
	}
	nConf, nProf, nRisk := normalized(conf), normalized(prof), normalized(rsk)
	for i := range recs {
		recs[i].Score = round4(wSuit*nConf[i] + wProfit*nProf[i] - wRisk*nRisk[i])
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Crop < recs[j].Crop
	})
}
