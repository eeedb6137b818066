package model

// Tier identifies how specific the regional data behind a value is.
type Tier string

const (
	TierDistrict Tier = "district"
	TierState    Tier = "state"
	TierNational Tier = "national"
	TierDefault  Tier = "default"
)

var tierRank = map[Tier]int{
	TierDistrict: 0,
	TierState:    1,
	TierNational: 2,
	TierDefault:  3,
}

// Finer returns the more specific of two tiers.
func Finer(a, b Tier) Tier {
	if tierRank[a] <= tierRank[b] {
		return a
	}
	return b
}

// RegionContext holds the economics resolved for one crop in one place.
type RegionContext struct {
	State           string  `json:"state,omitempty"`
	District        string  `json:"district,omitempty"`
	YieldQPerAcre   float64 `json:"yield_q_per_acre"`
	PricePerQuintal float64 `json:"price_per_quintal"`
	CostPerAcre     float64 `json:"cost_per_acre"`
	Vulnerability   float64 `json:"climate_vulnerability"`
	Tier            Tier    `json:"data_tier"`
}

// ProfitResult is the economics projection for one crop on one plot.
type ProfitResult struct {
	EffectiveYield  float64 `json:"effective_yield_q_per_acre"`
	TotalProduction float64 `json:"total_production_q"`
	GrossRevenue    float64 `json:"gross_revenue"`
	TotalCost       float64 `json:"total_cost"`
	NetProfit       float64 `json:"net_profit"`
	ProfitPerAcre   float64 `json:"profit_per_acre"`
	ROIPct          float64 `json:"roi_pct"`
}

// Severity grades how damaging a disease outbreak typically is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// DiseaseEntry describes one known disease threat for a crop.
type DiseaseEntry struct {
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Severity    Severity `json:"severity"`
	Season      string   `json:"season"`
	Prevention  []string `json:"prevention"`
}

// RiskAssessment combines disease pressure and climate vulnerability.
type RiskAssessment struct {
	DiseaseScore float64        `json:"disease_risk_score"`
	ClimateScore float64        `json:"climate_risk_score"`
	Composite    float64        `json:"composite_risk_score"`
	Level        string         `json:"risk_level"`
	Diseases     []DiseaseEntry `json:"diseases"`
	Prevention   []string       `json:"prevention_measures"`
}

// Recommendation is one ranked crop in a prediction result.
type Recommendation struct {
	Rank       int            `json:"rank"`
	Crop       string         `json:"crop"`
	Confidence float64        `json:"confidence"`
	Genuine    bool           `json:"genuine_match"`
	Region     RegionContext  `json:"region"`
	Profit     ProfitResult   `json:"profit"`
	Risk       RiskAssessment `json:"risk"`
	Score      float64        `json:"score,omitempty"`
}

// PredictionResult is the full output of one recommendation run.
type PredictionResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Mode            RankMode         `json:"scoring_mode"`
	State           string           `json:"state,omitempty"`
	District        string           `json:"district,omitempty"`
	ThresholdUsed   float64          `json:"threshold_used"`
	Explanation     string           `json:"explanation"`
	SoilMessages    []string         `json:"soil_health_messages,omitempty"`
	CropSuggestions []string         `json:"crop_suggestions,omitempty"`
}
