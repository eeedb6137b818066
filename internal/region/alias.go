// Package region resolves crop economics for a place, walking from
// district to state to national data before falling back to defaults.
package region

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// builtinAliases maps regional and trade names found in the government
// datasets to canonical crop names.
var builtinAliases = map[string]string{
	"paddy":          "rice",
	"paddy (dhan)":   "rice",
	"sali":           "rice",
	"aman":           "rice",
	"aus":            "rice",
	"boro":           "rice",
	"kharif rice":    "rice",
	"rabi rice":      "rice",
	"corn":           "maize",
	"makka":          "maize",
	"chana":          "chickpea",
	"gram":           "chickpea",
	"bengal gram":    "chickpea",
	"rajma":          "kidneybeans",
	"kidney beans":   "kidneybeans",
	"arhar":          "pigeonpeas",
	"arhar/tur":      "pigeonpeas",
	"tur":            "pigeonpeas",
	"red gram":       "pigeonpeas",
	"pigeon peas":    "pigeonpeas",
	"moth":           "mothbeans",
	"moth beans":     "mothbeans",
	"moong":          "mungbean",
	"green gram":     "mungbean",
	"moong(green gram)": "mungbean",
	"mung bean":      "mungbean",
	"urad":           "blackgram",
	"black gram":     "blackgram",
	"masur":          "lentil",
	"masoor":         "lentil",
	"lentil (masur)": "lentil",
	"kapas":          "cotton",
	"kappas":         "cotton",
	"annar":          "pomegranate",
	"kela":           "banana",
	"plantain":       "banana",
	"aam":            "mango",
	"angoor":         "grapes",
	"grape":          "grapes",
	"tarbuz":         "watermelon",
	"tarbooj":        "watermelon",
	"kharbuja":       "muskmelon",
	"melon":          "muskmelon",
	"seb":            "apple",
	"santra":         "orange",
	"nagpur orange":  "orange",
	"citrus":         "orange",
	"sweet orange":   "orange",
	"mosambi":        "orange",
	"papita":         "papaya",
	"nariyal":        "coconut",
	"tender coconut": "coconut",
	"coconut seed":   "coconut",
	"coconut oil":    "coconut",
	"arabica":        "coffee",
	"robusta":        "coffee",
	"coffee (clean)": "coffee",
	"coffee beans":   "coffee",
}

// Normalizer canonicalizes crop names across dataset vintages.
type Normalizer struct {
	aliases map[string]string
}

// NewNormalizer returns a Normalizer seeded with the built-in aliases.
func NewNormalizer() *Normalizer {
	m := make(map[string]string, len(builtinAliases))
	for k, v := range builtinAliases {
		m[k] = v
	}
	return &Normalizer{aliases: m}
}

type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadOverrides merges alias overrides from a YAML file. Entries
// replace built-in mappings with the same key.
func (n *Normalizer) LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "region: read alias file %s", path)
	}
	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return eris.Wrapf(err, "region: parse alias file %s", path)
	}
	for k, v := range f.Aliases {
		n.aliases[norm(k)] = norm(v)
	}
	return nil
}

// Canonical returns the canonical crop name for a raw dataset name.
// Unknown names pass through in normalized form.
func (n *Normalizer) Canonical(name string) string {
	key := norm(name)
	if canon, ok := n.aliases[key]; ok {
		return canon
	}
	return key
}

func norm(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var titleCaser = cases.Title(language.English)

// TitlePlace formats a state or district name for display.
func TitlePlace(s string) string {
	return titleCaser.String(strings.Join(strings.Fields(s), " "))
}
