package classifier

import (
	"context"
	"math"
	"sort"

	"github.com/agrisense/crop-advisor/internal/model"
)

// Embedded is the built-in classifier. It scores each crop with a
// naive Gaussian likelihood over the seven features and softmaxes the
// log-likelihoods into probabilities. It is deterministic and needs no
// external model server.
type Embedded struct {
	classes    []string
	stats      []cropStats
	importance map[string]float64
}

// NewEmbedded builds the embedded classifier over the full parameter
// table. Classes are ordered lexicographically so probability indexes
// are stable between runs.
func NewEmbedded() *Embedded {
	classes := make([]string, 0, len(cropParams))
	for crop := range cropParams {
		classes = append(classes, crop)
	}
	sort.Strings(classes)

	stats := make([]cropStats, len(classes))
	for i, crop := range classes {
		stats[i] = cropParams[crop]
	}

	e := &Embedded{classes: classes, stats: stats}
	e.importance = e.computeImportance()
	return e
}

// Classes returns the class labels in probability order.
func (e *Embedded) Classes() []string { return e.classes }

// PredictProba scores the features against every crop's parameter
// statistics.
func (e *Embedded) PredictProba(_ context.Context, f model.Features) ([]float64, error) {
	vec := f.Vector()

	logLik := make([]float64, len(e.classes))
	maxLL := math.Inf(-1)
	for i, st := range e.stats {
		var ll float64
		for j, s := range st {
			z := (vec[j] - s.mean) / s.std
			ll += -0.5*z*z - math.Log(s.std)
		}
		logLik[i] = ll
		if ll > maxLL {
			maxLL = ll
		}
	}

	probs := make([]float64, len(logLik))
	var sum float64
	for i, ll := range logLik {
		probs[i] = math.Exp(ll - maxLL)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// FeatureImportance ranks features by how well they separate crops: the
// variance of per-crop means over the mean within-crop variance, scaled
// to sum to 1.
func (e *Embedded) FeatureImportance() map[string]float64 {
	return e.importance
}

func (e *Embedded) computeImportance() map[string]float64 {
	n := float64(len(e.stats))
	ratios := make([]float64, len(model.FeatureNames))
	var total float64
	for j := range model.FeatureNames {
		var meanSum float64
		for _, st := range e.stats {
			meanSum += st[j].mean
		}
		grand := meanSum / n

		var between, within float64
		for _, st := range e.stats {
			d := st[j].mean - grand
			between += d * d
			within += st[j].std * st[j].std
		}
		ratios[j] = (between / n) / (within / n)
		total += ratios[j]
	}

	imp := make(map[string]float64, len(model.FeatureNames))
	for j, name := range model.FeatureNames {
		imp[name] = ratios[j] / total
	}
	return imp
}
