package recommend

// minLandAcres is the smallest plot on which a crop is practical to
// grow commercially. Crops not listed work on any plot above the
// generic minimum.
var minLandAcres = map[string]float64{
	"rice":        0.25,
	"maize":       0.25,
	"banana":      0.5,
	"coconut":     0.5,
	"grapes":      0.5,
	"pomegranate": 0.5,
	"cotton":      0.5,
	"jute":        0.5,
	"papaya":      0.25,
	"watermelon":  0.25,
	"muskmelon":   0.25,
	"mango":       1.0,
	"apple":       1.0,
	"orange":      1.0,
	"coffee":      1.0,
	"sugarcane":   2.0,
}

const defaultMinLand = 0.1

// minLandFor returns the minimum practical plot size for a crop.
func minLandFor(crop string) float64 {
	if v, ok := minLandAcres[crop]; ok {
		return v
	}
	return defaultMinLand
}
