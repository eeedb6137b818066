package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrisense/crop-advisor/internal/classifier"
)

const noImportanceExplanation = "Explanation not available (no feature importance)."

// explanation summarises what drives the classifier globally, from its
// reported feature importance. Classifiers that expose no importance
// get a fixed fallback sentence, never an empty explanation.
func explanation(clf classifier.Classifier) string {
	prov, ok := clf.(classifier.ImportanceProvider)
	if !ok {
		return noImportanceExplanation
	}
	imp := prov.FeatureImportance()
	if len(imp) == 0 {
		return noImportanceExplanation
	}

	type fi struct {
		name  string
		value float64
	}
	ranked := make([]fi, 0, len(imp))
	for name, v := range imp {
		ranked = append(ranked, fi{name, v})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].value != ranked[j].value {
			return ranked[i].value > ranked[j].value
		}
		return ranked[i].name < ranked[j].name
	})

	n := 3
	if len(ranked) < n {
		n = len(ranked)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%s (%.0f%%)", ranked[i].name, ranked[i].value*100)
	}
	return "Suitability is driven mainly by " + strings.Join(parts, ", ") + "."
}
