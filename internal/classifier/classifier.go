// Package classifier defines the crop suitability classifier and an
// embedded default implementation built over agronomic parameter
// ranges.
package classifier

import (
	"context"

	"github.com/agrisense/crop-advisor/internal/model"
)

// Classifier produces a suitability probability distribution over its
// known crop classes for a set of soil and climate measurements.
type Classifier interface {
	// Classes returns the class labels in the order PredictProba
	// emits probabilities. The slice must not be mutated.
	Classes() []string
	// PredictProba returns one probability per class, summing to 1.
	PredictProba(ctx context.Context, f model.Features) ([]float64, error)
}

// ImportanceProvider is implemented by classifiers that can explain
// which features drive their predictions globally.
type ImportanceProvider interface {
	FeatureImportance() map[string]float64
}
