package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrisense/crop-advisor/internal/model"
)

func TestHealthMessagesInRangeIsQuiet(t *testing.T) {
	f := model.Features{Nitrogen: 60, Phosphorus: 40, Potassium: 35, Temperature: 25, Humidity: 70, PH: 6.5, Rainfall: 150}
	assert.Empty(t, HealthMessages(f))
}

func TestHealthMessagesFlagsLowAndHigh(t *testing.T) {
	f := model.Features{Nitrogen: 10, Phosphorus: 40, Potassium: 35, Temperature: 40, Humidity: 70, PH: 8.2, Rainfall: 150}
	msgs := HealthMessages(f)
	assert.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], "Low nitrogen")
	assert.Contains(t, msgs[1], "High temperature")
	assert.Contains(t, msgs[2], "alkaline")
}

func TestCropSuggestionsBananaLowPotassium(t *testing.T) {
	f := model.Features{Nitrogen: 60, Phosphorus: 40, Potassium: 10, Temperature: 25, Humidity: 70, PH: 6.5, Rainfall: 150}
	sugg := CropSuggestions("Banana", f)
	assert.Len(t, sugg, 1)
	assert.Contains(t, sugg[0], "potassium-demanding")
}

func TestCropSuggestionsCoffeePHFiresBothDirections(t *testing.T) {
	acidic := model.Features{Nitrogen: 60, Phosphorus: 40, Potassium: 35, Temperature: 25, Humidity: 70, PH: 4.8, Rainfall: 150}
	alkaline := acidic
	alkaline.PH = 8.0

	assert.Contains(t, CropSuggestions("coffee", acidic), "Coffee often grows in slightly acidic soils; check pH suitability.")
	assert.Contains(t, CropSuggestions("coffee", alkaline), "Coffee often grows in slightly acidic soils; check pH suitability.")
}

func TestCropSuggestionsUnknownCropUsesDefaults(t *testing.T) {
	f := model.Features{Nitrogen: 10, Phosphorus: 10, Potassium: 10, Temperature: 25, Humidity: 70, PH: 6.5, Rainfall: 150}
	sugg := CropSuggestions("quinoa", f)
	assert.Len(t, sugg, 3)
}
