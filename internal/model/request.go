package model

import "github.com/rotisserie/eris"

// RankMode selects how recommendations are ordered.
type RankMode string

const (
	RankProfit      RankMode = "profit"
	RankSuitability RankMode = "suitability"
	RankBalanced    RankMode = "balanced"
)

// Features holds the seven soil and climate measurements the classifier
// was trained on. Field order matters for Vector.
type Features struct {
	Nitrogen    float64 `json:"N"`
	Phosphorus  float64 `json:"P"`
	Potassium   float64 `json:"K"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// FeatureNames lists the feature keys in vector order.
var FeatureNames = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

// Vector returns the features in the canonical classifier order.
func (f Features) Vector() []float64 {
	return []float64{f.Nitrogen, f.Phosphorus, f.Potassium, f.Temperature, f.Humidity, f.PH, f.Rainfall}
}

// PredictRequest is a single recommendation request.
type PredictRequest struct {
	Features      `yaml:",inline"`
	State         string   `json:"state,omitempty"`
	District      string   `json:"district,omitempty"`
	LandSizeAcres float64  `json:"land_size_acres"`
	Mode          RankMode `json:"mode,omitempty"`
}

type bound struct {
	name     string
	val, min float64
	max      float64
}

// Validate checks every measurement against its plausible agronomic
// domain and normalizes the rank mode. An empty mode defaults to
// balanced.
func (r *PredictRequest) Validate() error {
	bounds := []bound{
		{"N", r.Nitrogen, 0, 140},
		{"P", r.Phosphorus, 0, 145},
		{"K", r.Potassium, 0, 205},
		{"temperature", r.Temperature, 0, 50},
		{"humidity", r.Humidity, 0, 100},
		{"ph", r.PH, 3, 10},
		{"rainfall", r.Rainfall, 0, 500},
	}
	for _, b := range bounds {
		if b.val < b.min || b.val > b.max {
			return eris.Errorf("model: %s=%g outside valid range [%g, %g]", b.name, b.val, b.min, b.max)
		}
	}
	if r.LandSizeAcres < 0 {
		return eris.Errorf("model: land_size_acres=%g must not be negative", r.LandSizeAcres)
	}
	switch r.Mode {
	case "":
		r.Mode = RankBalanced
	case RankProfit, RankSuitability, RankBalanced:
	default:
		return eris.Errorf("model: unknown mode %q", r.Mode)
	}
	return nil
}
