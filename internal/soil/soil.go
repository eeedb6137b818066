// Package soil interprets soil and climate measurements into advisory
// messages and crop-specific suggestions.
package soil

import (
	"strings"

	"github.com/agrisense/crop-advisor/internal/model"
)

type rng struct {
	low, high float64
}

// thresholds are approximate agronomic ranges used for interpretation.
var thresholds = map[string]rng{
	"N":           {40, 90},
	"P":           {25, 55},
	"K":           {25, 45},
	"ph":          {5.5, 7.5},
	"rainfall":    {80, 220},
	"temperature": {18, 32},
	"humidity":    {50, 85},
}

type level int

const (
	levelOK level = iota
	levelLow
	levelHigh
)

func classify(feature string, value float64) level {
	t, ok := thresholds[feature]
	if !ok {
		return levelOK
	}
	if value < t.low {
		return levelLow
	}
	if value > t.high {
		return levelHigh
	}
	return levelOK
}

var lowMessages = map[string]string{
	"N":           "Low nitrogen detected. Consider nitrogen fertilizer for better vegetative growth.",
	"P":           "Low phosphorus detected. Phosphorus supports root development and flowering.",
	"K":           "Low potassium detected. Banana and other K-loving crops may yield poorly; consider fertilizer before planting.",
	"ph":          "Soil pH is low (acidic). Some crops prefer neutral to slightly acidic pH; consider liming if needed.",
	"rainfall":    "Low rainfall expected. Prefer drought-tolerant crops or plan for irrigation.",
	"temperature": "Low temperature. Cold-sensitive crops may be at risk; choose suitable varieties.",
	"humidity":    "Low humidity. Irrigation or mulching can help in dry conditions.",
}

var highMessages = map[string]string{
	"N":           "High nitrogen. Good for leafy crops; avoid excess to prevent lodging.",
	"ph":          "Soil pH is high (alkaline). Some crops prefer neutral to slightly acidic soils.",
	"rainfall":    "High rainfall expected. Ensure drainage and disease management for susceptible crops.",
	"temperature": "High temperature. Heat-tolerant crops are preferable.",
}

type hint struct {
	factor, message string
}

// cropHints maps a crop to the factors that constrain it most.
var cropHints = map[string][]hint{
	"banana": {
		{"K", "Banana is potassium-demanding. Low K may reduce yield; consider K fertilizer."},
		{"humidity", "Banana prefers high humidity for best growth."},
	},
	"rice": {
		{"N", "Rice benefits from adequate nitrogen; low N can limit yield."},
		{"rainfall", "Rice typically needs sufficient water/rainfall."},
	},
	"maize": {
		{"N", "Maize is nitrogen-responsive; consider N application if low."},
		{"temperature", "Maize prefers warm temperatures; very low temp can delay growth."},
	},
	"cotton": {
		{"K", "Cotton yield and fibre quality respond to potassium."},
	},
	"jute": {
		{"rainfall", "Jute requires ample moisture; low rainfall may affect fibre quality."},
	},
	"coffee": {
		{"temperature", "Coffee prefers moderate temperatures; very high temp can stress plants."},
		{"ph", "Coffee often grows in slightly acidic soils; check pH suitability."},
	},
}

var defaultHints = []hint{
	{"N", "Nitrogen influences vegetative growth; consider soil test and fertilizer if low."},
	{"P", "Phosphorus supports root and flowering; low P can limit yield."},
	{"K", "Potassium helps stress tolerance and quality; low K may reduce yield."},
}

func featureValue(f model.Features, name string) float64 {
	switch name {
	case "N":
		return f.Nitrogen
	case "P":
		return f.Phosphorus
	case "K":
		return f.Potassium
	case "temperature":
		return f.Temperature
	case "humidity":
		return f.Humidity
	case "ph":
		return f.PH
	case "rainfall":
		return f.Rainfall
	}
	return 0
}

// HealthMessages returns short advisory messages for out-of-range
// measurements, in canonical feature order.
func HealthMessages(f model.Features) []string {
	var messages []string
	for _, name := range model.FeatureNames {
		switch classify(name, featureValue(f, name)) {
		case levelLow:
			if m, ok := lowMessages[name]; ok {
				messages = append(messages, m)
			}
		case levelHigh:
			if m, ok := highMessages[name]; ok {
				messages = append(messages, m)
			}
		}
	}
	return messages
}

// CropSuggestions returns actionable hints for a recommended crop given
// the current measurements. A hint fires when its factor is low, or for
// pH whenever it is out of range in either direction.
func CropSuggestions(crop string, f model.Features) []string {
	hints, ok := cropHints[strings.ToLower(strings.TrimSpace(crop))]
	if !ok {
		hints = defaultHints
	}
	var suggestions []string
	for _, h := range hints {
		lvl := classify(h.factor, featureValue(f, h.factor))
		if lvl == levelLow || (h.factor == "ph" && lvl != levelOK) {
			suggestions = append(suggestions, h.message)
		}
	}
	return suggestions
}
