package region

// Economics is the per-crop fallback triple used when no dataset has
// coverage for a place.
type Economics struct {
	YieldQPerAcre   float64
	PricePerQuintal float64
	CostPerAcre     float64
}

// Generic fallbacks for crops with no embedded default.
const (
	genericYield         = 10.0
	genericPrice         = 3000.0
	genericCost          = 20000.0
	defaultVulnerability = 50.0
)

// nationalDefaults carries embedded per-crop economics compiled from
// published MSP and cost-of-cultivation figures.
var nationalDefaults = map[string]Economics{
	"rice":        {14.0, 2183, 18000},
	"maize":       {11.0, 1962, 14000},
	"chickpea":    {7.0, 5230, 12000},
	"kidneybeans": {6.0, 5500, 13000},
	"pigeonpeas":  {5.0, 6300, 11000},
	"mothbeans":   {4.0, 5000, 9000},
	"mungbean":    {5.0, 7755, 12000},
	"blackgram":   {4.0, 6600, 11000},
	"lentil":      {6.0, 5500, 12000},
	"pomegranate": {60.0, 4500, 35000},
	"banana":      {110.0, 1200, 25000},
	"mango":       {45.0, 4000, 30000},
	"grapes":      {70.0, 5000, 45000},
	"watermelon":  {110.0, 600, 20000},
	"muskmelon":   {90.0, 800, 18000},
	"apple":       {45.0, 7000, 40000},
	"orange":      {55.0, 3000, 30000},
	"papaya":      {180.0, 500, 25000},
	"coconut":     {15.0, 3000, 15000},
	"cotton":      {8.0, 6620, 22000},
	"jute":        {18.0, 3000, 18000},
	"coffee":      {5.0, 18000, 30000},
}

// DefaultEconomics returns the embedded fallback for a canonical crop,
// or the generic triple for unlisted crops.
func DefaultEconomics(crop string) Economics {
	if e, ok := nationalDefaults[crop]; ok {
		return e
	}
	return Economics{genericYield, genericPrice, genericCost}
}
