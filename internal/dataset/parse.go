package dataset

import (
	"strconv"
	"strings"
)

// normalizeCol lowercases and strips punctuation noise so the same
// column matches across dataset vintages.
// "Modal_Price (Rs./Quintal)" → "modal price rs./quintal"
func normalizeCol(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// mapColumnsNormalized builds a normalized column name → index map.
func mapColumnsNormalized(header []string) map[string]int {
	m := make(map[string]int, len(header))
	for i, col := range header {
		m[normalizeCol(col)] = i
	}
	return m
}

// getColN gets a column value by normalized name.
func getColN(record []string, colIdx map[string]int, name string) string {
	idx, ok := colIdx[normalizeCol(name)]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// firstNonEmpty returns the first non-empty value from the named
// columns. The datasets come from several government portals that name
// the same column differently.
func firstNonEmpty(record []string, colIdx map[string]int, names ...string) string {
	for _, name := range names {
		v := strings.Trim(strings.TrimSpace(getColN(record, colIdx, name)), `"`)
		if v != "" {
			return v
		}
	}
	return ""
}

// parseFloat64Or parses a string as a float64, returning def if parsing
// fails or the field carries a sentinel marker.
func parseFloat64Or(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "*" || s == "-" {
		return def
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return def
	}
	return v
}

// normKey lowercases and trims a lookup key component.
func normKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// skipDistrict reports whether a district value is a placeholder that
// should not produce a district-tier entry.
func skipDistrict(district string) bool {
	switch normKey(district) {
	case "", "other", "other / not listed":
		return true
	}
	return false
}
