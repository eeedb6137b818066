package classifier

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/crop-advisor/internal/model"
)

func TestEmbeddedClassesAreSortedAndStable(t *testing.T) {
	e := NewEmbedded()
	classes := e.Classes()
	require.NotEmpty(t, classes)
	assert.True(t, sort.StringsAreSorted(classes))
	assert.Equal(t, classes, NewEmbedded().Classes())
}

func TestEmbeddedProbabilitiesSumToOne(t *testing.T) {
	e := NewEmbedded()
	f := model.Features{Nitrogen: 80, Phosphorus: 47, Potassium: 40, Temperature: 24, Humidity: 82, PH: 6.4, Rainfall: 230}
	probs, err := e.PredictProba(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, probs, len(e.Classes()))

	var sum float64
	for _, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0)
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestEmbeddedRecognizesTypicalConditions(t *testing.T) {
	e := NewEmbedded()

	top := func(f model.Features) string {
		probs, err := e.PredictProba(context.Background(), f)
		require.NoError(t, err)
		best := 0
		for i, p := range probs {
			if p > probs[best] {
				best = i
			}
		}
		return e.Classes()[best]
	}

	// paddy conditions: heavy rain, high humidity
	rice := model.Features{Nitrogen: 79, Phosphorus: 47, Potassium: 40, Temperature: 23.7, Humidity: 82, PH: 6.4, Rainfall: 236}
	assert.Equal(t, "rice", top(rice))

	// arid winter pulse: very low humidity, alkaline
	chickpea := model.Features{Nitrogen: 40, Phosphorus: 68, Potassium: 80, Temperature: 19, Humidity: 17, PH: 7.3, Rainfall: 80}
	assert.Equal(t, "chickpea", top(chickpea))
}

func TestEmbeddedImportanceIsNormalized(t *testing.T) {
	e := NewEmbedded()
	imp := e.FeatureImportance()
	require.Len(t, imp, len(model.FeatureNames))

	var sum float64
	for _, name := range model.FeatureNames {
		v, ok := imp[name]
		require.True(t, ok, name)
		assert.Greater(t, v, 0.0, name)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
