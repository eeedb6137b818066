package classifier

// stat holds the mean and spread of one feature for one crop.
type stat struct {
	mean, std float64
}

// cropStats holds per-feature statistics in vector order:
// N, P, K, temperature, humidity, ph, rainfall.
type cropStats [7]stat

// cropParams carries agronomic parameter statistics per crop, compiled
// from ICAR crop production guidelines, the FAO Ecocrop database and
// state agriculture university packages of practice.
var cropParams = map[string]cropStats{
	"rice":        {{79, 12}, {47, 8}, {40, 3}, {23.7, 2.5}, {82.3, 5}, {6.4, 0.5}, {236, 35}},
	"maize":       {{78, 12}, {48, 8}, {20, 3}, {22.4, 3}, {65.1, 5}, {6.2, 0.5}, {84.8, 15}},
	"chickpea":    {{40, 8}, {67.8, 8}, {79.9, 5}, {18.9, 1.5}, {16.9, 4}, {7.3, 0.4}, {80.1, 15}},
	"kidneybeans": {{20.8, 6}, {67.5, 8}, {20.1, 3}, {20.1, 2}, {21.6, 2}, {5.75, 0.5}, {105.9, 20}},
	"pigeonpeas":  {{20.7, 6}, {67.7, 8}, {20.3, 3}, {27.7, 3.5}, {48.1, 10}, {5.8, 0.7}, {149.5, 30}},
	"mothbeans":   {{21.4, 6}, {48, 8}, {20.2, 3}, {28.2, 3}, {53.2, 12}, {6.8, 0.9}, {51.2, 12}},
	"mungbean":    {{21, 6}, {47.3, 8}, {19.9, 3}, {28.5, 1}, {85.5, 3}, {6.7, 0.3}, {48.4, 6}},
	"blackgram":   {{40, 8}, {67.5, 8}, {19.2, 3}, {30, 3}, {65.1, 5}, {7.1, 0.4}, {67.9, 12}},
	"lentil":      {{18.8, 6}, {68.4, 8}, {19.4, 3}, {24.5, 3}, {64.8, 5}, {6.9, 0.4}, {45.7, 10}},
	"pomegranate": {{18.9, 6}, {18.7, 5}, {40.2, 3}, {21.8, 2}, {90.1, 3}, {6.4, 0.5}, {107.5, 20}},
	"banana":      {{100, 10}, {82, 8}, {50, 3}, {27.4, 1}, {80.4, 2}, {6, 0.3}, {104.6, 20}},
	"mango":       {{20.1, 6}, {27.2, 5}, {30, 3}, {31.2, 3}, {50.2, 5}, {5.8, 0.4}, {94.7, 20}},
	"grapes":      {{23.2, 6}, {132.5, 8}, {200, 3}, {23.9, 5}, {81.9, 1}, {6, 0.3}, {69.6, 15}},
	"watermelon":  {{99.4, 10}, {17, 5}, {50.2, 3}, {25.6, 1}, {85.2, 2}, {6.5, 0.3}, {50.8, 8}},
	"muskmelon":   {{100.3, 10}, {17.7, 5}, {50.1, 3}, {28.7, 0.7}, {92.3, 1.5}, {6.4, 0.3}, {24.7, 4}},
	"apple":       {{20.8, 6}, {134.2, 8}, {200, 3}, {22.6, 1.5}, {92.3, 1.5}, {5.9, 0.3}, {112.7, 15}},
	"orange":      {{19.6, 6}, {16.6, 5}, {10, 3}, {22.8, 5}, {92.2, 1.5}, {7, 0.3}, {110.5, 15}},
	"papaya":      {{49.9, 10}, {59.1, 8}, {50, 3}, {33.7, 5}, {92.4, 1.5}, {6.7, 0.3}, {142.6, 30}},
	"coconut":     {{22, 6}, {16.9, 5}, {30.6, 3}, {27.4, 1}, {94.8, 1.5}, {6, 0.3}, {175.7, 30}},
	"cotton":      {{117.8, 10}, {46.2, 8}, {19.6, 3}, {24, 1}, {79.8, 2}, {6.9, 0.3}, {80.4, 10}},
	"jute":        {{78.4, 10}, {46.9, 8}, {40, 3}, {25, 1}, {79.6, 2}, {6.7, 0.3}, {174.8, 25}},
	"coffee":      {{101.2, 10}, {28.7, 5}, {29.9, 3}, {25.5, 1.5}, {58.9, 5}, {6.8, 0.3}, {158.1, 25}},

	"wheat":        {{110, 12}, {60, 8}, {45, 6}, {17, 2}, {52, 5}, {6.8, 0.4}, {60, 10}},
	"bajra":        {{60, 8}, {35, 6}, {28, 5}, {32, 2.5}, {42, 5}, {7.3, 0.4}, {35, 7}},
	"jowar":        {{70, 8}, {40, 6}, {35, 6}, {30, 2}, {52, 5}, {7.0, 0.4}, {55, 10}},
	"ragi":         {{50, 8}, {35, 6}, {35, 6}, {25, 2}, {72, 5}, {6.2, 0.5}, {90, 12}},
	"barley":       {{68, 7}, {42, 5}, {42, 5}, {13, 2}, {40, 4}, {7.8, 0.4}, {35, 6}},
	"peas":         {{20, 4}, {60, 8}, {45, 6}, {16, 2.5}, {62, 5}, {6.8, 0.3}, {60, 8}},
	"cowpea":       {{16, 3}, {52, 7}, {20, 4}, {33, 2}, {68, 5}, {6.2, 0.3}, {55, 7}},
	"groundnut":    {{32, 5}, {50, 8}, {45, 6}, {28, 1.5}, {60, 4}, {6.9, 0.4}, {80, 10}},
	"soyabean":     {{15, 4}, {60, 8}, {45, 6}, {27, 2}, {68, 5}, {6.3, 0.4}, {85, 12}},
	"mustard":      {{90, 8}, {40, 6}, {25, 4}, {19, 2}, {60, 4}, {6.8, 0.3}, {45, 7}},
	"sunflower":    {{70, 8}, {52, 7}, {40, 6}, {25, 2}, {52, 5}, {7.0, 0.4}, {60, 8}},
	"sesamum":      {{45, 6}, {40, 6}, {25, 4}, {34, 2}, {45, 4}, {6.5, 0.4}, {38, 6}},
	"castor seed":  {{20, 4}, {28, 5}, {35, 6}, {28, 2}, {52, 5}, {7.2, 0.5}, {60, 8}},
	"sugarcane":    {{130, 12}, {48, 7}, {75, 10}, {32, 2.5}, {72, 5}, {6.8, 0.5}, {150, 18}},
	"tobacco":      {{68, 7}, {34, 5}, {70, 8}, {23, 2}, {60, 4}, {5.7, 0.3}, {65, 9}},
	"potato":       {{110, 12}, {70, 8}, {110, 12}, {17, 2}, {72, 5}, {6.0, 0.4}, {60, 8}},
	"onion":        {{105, 10}, {70, 8}, {70, 8}, {24, 2.5}, {68, 5}, {6.4, 0.3}, {60, 8}},
	"garlic":       {{68, 9}, {52, 7}, {78, 9}, {15, 2}, {50, 4}, {7.1, 0.4}, {35, 6}},
	"sweet potato": {{60, 8}, {48, 7}, {90, 12}, {27, 2}, {72, 5}, {5.8, 0.4}, {90, 12}},
	"tapioca":      {{50, 8}, {38, 7}, {90, 12}, {30, 2}, {75, 6}, {6.0, 0.4}, {120, 15}},
	"ginger":       {{95, 10}, {58, 7}, {78, 9}, {22, 2}, {88, 3}, {5.8, 0.3}, {185, 15}},
	"turmeric":     {{62, 9}, {35, 6}, {88, 10}, {30, 2}, {75, 4}, {6.6, 0.5}, {125, 13}},
	"dry chillies": {{115, 10}, {58, 7}, {58, 7}, {30, 2}, {72, 5}, {6.2, 0.3}, {80, 10}},
	"coriander":    {{45, 6}, {40, 6}, {32, 5}, {20, 2}, {52, 5}, {7.0, 0.4}, {50, 8}},
	"black pepper": {{85, 10}, {35, 6}, {110, 12}, {27, 2}, {82, 5}, {5.5, 0.4}, {200, 18}},
	"cardamom":     {{75, 10}, {48, 7}, {90, 12}, {20, 2}, {85, 4}, {5.5, 0.4}, {210, 22}},
	"mesta":        {{45, 6}, {28, 5}, {32, 5}, {29, 2}, {80, 4}, {6.2, 0.3}, {140, 15}},
	"arecanut":     {{115, 10}, {28, 5}, {120, 12}, {31, 2}, {80, 4}, {6.2, 0.3}, {170, 18}},
	"cashewnut":    {{30, 6}, {22, 5}, {42, 7}, {30, 2.5}, {68, 5}, {6.0, 0.4}, {120, 15}},
}
