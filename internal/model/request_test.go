package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultsMode(t *testing.T) {
	req := PredictRequest{
		Features:      Features{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, PH: 6.5, Rainfall: 202},
		LandSizeAcres: 2,
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, RankBalanced, req.Mode)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	req := PredictRequest{
		Features: Features{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, PH: 11, Rainfall: 202},
	}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ph")
}

func TestValidateRejectsNegativeLand(t *testing.T) {
	req := PredictRequest{
		Features:      Features{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, PH: 6.5, Rainfall: 202},
		LandSizeAcres: -1,
	}
	require.Error(t, req.Validate())
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	req := PredictRequest{
		Features: Features{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, PH: 6.5, Rainfall: 202},
		Mode:     "cheapest",
	}
	require.Error(t, req.Validate())
}

func TestVectorOrderMatchesFeatureNames(t *testing.T) {
	f := Features{Nitrogen: 1, Phosphorus: 2, Potassium: 3, Temperature: 4, Humidity: 5, PH: 6, Rainfall: 7}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6, 7}, f.Vector())
	assert.Len(t, FeatureNames, 7)
}

func TestFinerPrefersMoreSpecificTier(t *testing.T) {
	assert.Equal(t, TierDistrict, Finer(TierDistrict, TierState))
	assert.Equal(t, TierState, Finer(TierDefault, TierState))
	assert.Equal(t, TierNational, Finer(TierNational, TierNational))
}
