// Package risk scores crop risk as a blend of regional climate
// vulnerability and disease pressure from a curated knowledge base.
package risk

import (
	"math"
	"strings"

	"github.com/agrisense/crop-advisor/internal/model"
)

var severityScore = map[model.Severity]float64{
	model.SeverityLow:    20,
	model.SeverityMedium: 50,
	model.SeverityHigh:   80,
}

// noDataDiseaseScore is assumed for crops absent from the knowledge
// base: moderate-low rather than zero, since absence of data is not
// absence of disease.
const noDataDiseaseScore = 30.0

// Engine computes composite risk assessments.
type Engine struct {
	ClimateWeight float64
}

// NewEngine returns an engine that weights climate vulnerability by
// climateWeight and disease pressure by the remainder.
func NewEngine(climateWeight float64) *Engine {
	return &Engine{ClimateWeight: climateWeight}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DiseaseScore is the probability-weighted mean severity (0-100) of a
// disease list. Unknown severities count as medium.
func DiseaseScore(diseases []model.DiseaseEntry) float64 {
	if len(diseases) == 0 {
		return noDataDiseaseScore
	}
	var sum float64
	for _, d := range diseases {
		s, ok := severityScore[d.Severity]
		if !ok {
			s = 50
		}
		sum += s * d.Probability
	}
	return round1(sum / float64(len(diseases)))
}

// Label converts a composite score to its display band.
func Label(score float64) string {
	switch {
	case score <= 25:
		return "Low"
	case score <= 50:
		return "Moderate"
	case score <= 75:
		return "High"
	default:
		return "Very High"
	}
}

// PreventionMeasures flattens the prevention lists of a disease set,
// deduplicated in first-seen order.
func PreventionMeasures(diseases []model.DiseaseEntry) []string {
	seen := make(map[string]struct{})
	var measures []string
	for _, d := range diseases {
		for _, m := range d.Prevention {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			measures = append(measures, m)
		}
	}
	return measures
}

// Assess computes the full risk picture for a crop given the resolved
// climate vulnerability of its region. The composite is clamped to
// [0, 100].
func (e *Engine) Assess(crop string, climateVulnerability float64) model.RiskAssessment {
	diseases := Diseases(strings.ToLower(strings.TrimSpace(crop)))
	diseaseScore := DiseaseScore(diseases)

	composite := e.ClimateWeight*climateVulnerability + (1-e.ClimateWeight)*diseaseScore
	composite = round1(math.Min(100, math.Max(0, composite)))

	return model.RiskAssessment{
		DiseaseScore: diseaseScore,
		ClimateScore: climateVulnerability,
		Composite:    composite,
		Level:        Label(composite),
		Diseases:     diseases,
		Prevention:   PreventionMeasures(diseases),
	}
}
