package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/crop-advisor/internal/model"
)

func TestDiseaseScoreEmptyListUsesModerateLow(t *testing.T) {
	assert.InDelta(t, 30.0, DiseaseScore(nil), 1e-9)
}

func TestDiseaseScoreWeightsByProbability(t *testing.T) {
	diseases := []model.DiseaseEntry{
		{Severity: model.SeverityHigh, Probability: 0.5},
		{Severity: model.SeverityLow, Probability: 0.5},
	}
	// (80×0.5 + 20×0.5) / 2 = 25
	assert.InDelta(t, 25.0, DiseaseScore(diseases), 1e-9)
}

func TestAssessCompositeAndLabel(t *testing.T) {
	e := NewEngine(0.5)

	// one high-severity disease at probability 0.5 → disease score 40,
	// climate 80 → composite 0.5×80 + 0.5×40 = 60
	diseases := []model.DiseaseEntry{{Severity: model.SeverityHigh, Probability: 0.5}}
	composite := e.ClimateWeight*80 + (1-e.ClimateWeight)*DiseaseScore(diseases)
	assert.InDelta(t, 60.0, composite, 1e-9)
	assert.Equal(t, "High", Label(composite))
}

func TestAssessStaysInBounds(t *testing.T) {
	e := NewEngine(0.5)
	a := e.Assess("rice", 100)
	assert.GreaterOrEqual(t, a.Composite, 0.0)
	assert.LessOrEqual(t, a.Composite, 100.0)

	b := e.Assess("unknown-crop", 0)
	assert.GreaterOrEqual(t, b.Composite, 0.0)
	assert.InDelta(t, 30.0, b.DiseaseScore, 1e-9)
	assert.Empty(t, b.Diseases)
}

func TestLabelBandsAreContiguous(t *testing.T) {
	assert.Equal(t, "Low", Label(0))
	assert.Equal(t, "Low", Label(25))
	assert.Equal(t, "Moderate", Label(25.5))
	assert.Equal(t, "Moderate", Label(50))
	assert.Equal(t, "High", Label(50.1))
	assert.Equal(t, "High", Label(75))
	assert.Equal(t, "Very High", Label(75.1))
	assert.Equal(t, "Very High", Label(100))
}

func TestPreventionMeasuresDeduplicateInOrder(t *testing.T) {
	diseases := []model.DiseaseEntry{
		{Prevention: []string{"a", "b"}},
		{Prevention: []string{"b", "c"}},
	}
	assert.Equal(t, []string{"a", "b", "c"}, PreventionMeasures(diseases))
}

func TestKnowledgeBaseCoversCanonicalCrops(t *testing.T) {
	for _, crop := range []string{
		"rice", "maize", "chickpea", "kidneybeans", "pigeonpeas", "mothbeans",
		"mungbean", "blackgram", "lentil", "pomegranate", "banana", "mango",
		"grapes", "watermelon", "muskmelon", "apple", "orange", "papaya",
		"coconut", "cotton", "jute", "coffee",
	} {
		entries := Diseases(crop)
		require.NotEmpty(t, entries, crop)
		for _, d := range entries {
			assert.Greater(t, d.Probability, 0.0, d.Name)
			assert.LessOrEqual(t, d.Probability, 1.0, d.Name)
			assert.NotEmpty(t, d.Prevention, d.Name)
		}
	}
}
