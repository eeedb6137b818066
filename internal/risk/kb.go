package risk

import "github.com/agrisense/crop-advisor/internal/model"

// diseaseDB is a curated crop disease knowledge base compiled from
// ICAR, NIPHM, and state agriculture department publications. The
// probabilities are indicative base rates, not clinical estimates.
var diseaseDB = map[string][]model.DiseaseEntry{
	"rice": {
		{
			Name: "Rice Blast (Magnaporthe oryzae)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use blast-resistant varieties (IR64, Swarna sub1).",
				"Spray Tricyclazole or Propiconazole at tillering stage.",
				"Avoid excess nitrogen application.",
				"Ensure proper field drainage.",
			},
		},
		{
			Name: "Brown Plant Hopper (BPH)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Use BPH-resistant varieties.",
				"Spray Imidacloprid or Buprofezin.",
				"Avoid close planting; maintain proper spacing.",
			},
		},
		{
			Name: "Bacterial Leaf Blight (Xanthomonas oryzae)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Streptocycline.",
				"Avoid flood irrigation after flowering.",
				"Use copper-based bactericides.",
			},
		},
	},
	"maize": {
		{
			Name: "Fall Armyworm (Spodoptera frugiperda)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Apply Emamectin benzoate or Spinetoram at whorl stage.",
				"Mix fine sand + lime in leaf whorls (physical deterrent).",
				"Use pheromone traps for monitoring.",
			},
		},
		{
			Name: "Maize Stem Borer (Chilo partellus)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Release Trichogramma egg parasitoids.",
				"Apply Carbofuran granules in whorls.",
				"Remove and destroy infested plants early.",
			},
		},
		{
			Name: "Common Rust (Puccinia sorghi)", Probability: 0.30, Severity: model.SeverityLow, Season: "Rabi",
			Prevention: []string{
				"Spray Mancozeb or Propiconazole at early rust signs.",
				"Use rust-resistant hybrids.",
			},
		},
	},
	"chickpea": {
		{
			Name: "Fusarium Wilt (Fusarium oxysporum)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Seed treatment with Trichoderma viride.",
				"Use wilt-resistant varieties (JG-62, Annigeri).",
				"Soil solarisation before sowing.",
				"Crop rotation with non-legume crops.",
			},
		},
		{
			Name: "Gram Pod Borer (Helicoverpa armigera)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Spray Indoxacarb or Chlorantraniliprole at pod formation.",
				"Install pheromone traps.",
				"Intercrop with coriander or mustard as repellent.",
			},
		},
	},
	"kidneybeans": {
		{
			Name: "Bean Common Mosaic Virus (BCMV)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Use virus-free certified seed.",
				"Control aphid vectors with Imidacloprid.",
				"Remove infected plants immediately.",
			},
		},
		{
			Name: "Rust (Uromyces phaseoli)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Mancozeb 75 WP at 10-day intervals.",
				"Ensure good air circulation through proper spacing.",
			},
		},
	},
	"pigeonpeas": {
		{
			Name: "Fusarium Wilt (Fusarium udum)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Carbendazim.",
				"Use wilt-tolerant varieties (ICPH 2671).",
				"Long crop rotation (3-4 years) away from pigeonpea.",
			},
		},
		{
			Name: "Pod Fly (Melanagromyza obtusa)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Dimethoate or Acephate at pod-fill stage.",
				"Install yellow sticky traps.",
			},
		},
	},
	"mothbeans": {
		{
			Name: "Yellow Mosaic Virus", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Control whitefly vectors with Imidacloprid.",
				"Use resistant varieties where available.",
				"Rogue out and destroy infected plants.",
			},
		},
		{
			Name: "Dry Root Rot", Probability: 0.25, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Avoid water-logging.",
				"Seed treatment with Thiram + Carbendazim.",
			},
		},
	},
	"mungbean": {
		{
			Name: "Mungbean Yellow Mosaic Virus (MYMV)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use MYMV-resistant varieties (Pusa Vishal, SML-668).",
				"Spray Imidacloprid or Thiamethoxam to control whitefly.",
				"Avoid late sowing.",
			},
		},
		{
			Name: "Cercospora Leaf Spot", Probability: 0.30, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Spray Mancozeb or Copper oxychloride.",
				"Avoid overhead irrigation.",
			},
		},
	},
	"blackgram": {
		{
			Name: "Yellow Mosaic Virus (YMV)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use YMV-tolerant varieties (Pant U-30, Azad Urd-1).",
				"Control whitefly early with systemic insecticides.",
				"Remove and destroy yellow-infected plants.",
			},
		},
		{
			Name: "Fusarium Wilt", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Trichoderma.",
				"Soil application of Neem cake.",
			},
		},
	},
	"lentil": {
		{
			Name: "Stemphylium Blight (Stemphylium botryosum)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Iprodione or Mancozeb at first sign.",
				"Use tolerant varieties (LL-699).",
				"Avoid dense planting.",
			},
		},
		{
			Name: "Rust (Uromyces fabae)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Propiconazole or Mancozeb.",
				"Early sowing helps avoid peak rust season.",
			},
		},
	},
	"pomegranate": {
		{
			Name: "Bacterial Blight (Xanthomonas axonopodis)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Spray Copper oxychloride + Streptocycline.",
				"Prune infected branches; destroy debris.",
				"Avoid overhead irrigation.",
			},
		},
		{
			Name: "Alternaria Fruit Spot", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Mancozeb or Difenconazole.",
				"Bag fruits before colour development.",
			},
		},
	},
	"banana": {
		{
			Name: "Panama Wilt / Fusarium Wilt (Foc TR4)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Plant Foc-resistant varieties (Grand Naine, Robusta).",
				"Soil drench with Carbendazim + Trichoderma.",
				"Strictly avoid moving infected soil.",
			},
		},
		{
			Name: "Sigatoka Leaf Spot (Mycosphaerella musicola)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Propiconazole or Mancozeb fortnightly.",
				"Remove badly infected leaves.",
				"Ensure good drainage around plant base.",
			},
		},
	},
	"mango": {
		{
			Name: "Anthracnose (Colletotrichum gloeosporioides)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Flowering/Fruiting",
			Prevention: []string{
				"Spray Carbendazim or Copper fungicide at flowering.",
				"Bag fruits before maturity.",
				"Collect and destroy fallen infected fruits.",
			},
		},
		{
			Name: "Mango Hoppers (Amritodus atkinsoni)", Probability: 0.55, Severity: model.SeverityMedium, Season: "Flowering",
			Prevention: []string{
				"Spray Imidacloprid or Carbaryl at panicle emergence.",
				"Avoid thick planting; maintain canopy openness.",
			},
		},
		{
			Name: "Powdery Mildew (Oidium mangiferae)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Flowering",
			Prevention: []string{
				"Spray Sulphur dust or Triadimefon at bud-break.",
				"Prune to improve air circulation.",
			},
		},
	},
	"grapes": {
		{
			Name: "Downy Mildew (Plasmopara viticola)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Spray Copper fungicide + Fosetyl-Al at 10-day intervals.",
				"Install rain-shelter or canopy management.",
				"Remove infected leaves and shoots promptly.",
			},
		},
		{
			Name: "Powdery Mildew (Uncinula necator)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Dry season",
			Prevention: []string{
				"Dust Sulphur powder on clusters.",
				"Spray Carbendazim or Triadimefon.",
			},
		},
	},
	"watermelon": {
		{
			Name: "Mosaic Virus (WMV)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Control aphid vectors with mineral oil spray.",
				"Use virus-free transplants.",
				"Remove and destroy infected vines.",
			},
		},
		{
			Name: "Fusarium Wilt (Fusarium oxysporum f.sp. niveum)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Summer",
			Prevention: []string{
				"Use grafted plants on wilt-resistant rootstock.",
				"Soil treatment with Carbendazim.",
				"Avoid continuous cropping on same land.",
			},
		},
	},
	"muskmelon": {
		{
			Name: "Powdery Mildew (Podosphaera xanthii)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Summer",
			Prevention: []string{
				"Spray Sulphur or Carbendazim at first sign.",
				"Maintain plant spacing for airflow.",
			},
		},
		{
			Name: "Downy Mildew", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Metalaxyl + Mancozeb.",
				"Avoid waterlogging in field.",
			},
		},
	},
	"apple": {
		{
			Name: "Apple Scab (Venturia inaequalis)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Spring",
			Prevention: []string{
				"Apply protective fungicide (Captan, Mancozeb) from bud-break.",
				"Rake and destroy fallen leaves.",
				"Use scab-resistant varieties (Gala, Fuji).",
			},
		},
		{
			Name: "Fire Blight (Erwinia amylovora)", Probability: 0.35, Severity: model.SeverityHigh, Season: "Flowering",
			Prevention: []string{
				"Spray Streptomycin or Copper bactericide at bloom.",
				"Prune blighted wood 30 cm below visible infection.",
				"Disinfect pruning tools between cuts.",
			},
		},
	},
	"orange": {
		{
			Name: "Citrus Canker (Xanthomonas citri)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Spray Copper oxychloride every 3 weeks during wet season.",
				"Remove and burn infected leaves and branches.",
				"Use disease-free nursery material.",
			},
		},
		{
			Name: "Citrus Greening (HLB – Huanglongbing)", Probability: 0.30, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Control psyllid vector with Imidacloprid or Thiamethoxam.",
				"Remove and destroy infected trees promptly.",
				"Plant certified HLB-free budwood.",
			},
		},
	},
	"papaya": {
		{
			Name: "Papaya Ring Spot Virus (PRSV)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Plant PRSV-tolerant varieties (Red Lady, Pusa Nanha).",
				"Use reflective mulch to repel aphid vectors.",
				"Remove infected plants within 24 hours.",
			},
		},
		{
			Name: "Anthracnose (Colletotrichum gloeosporioides)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Mancozeb or Copper fungicide fortnightly.",
				"Harvest at correct maturity stage; avoid mechanical injury.",
			},
		},
	},
	"coconut": {
		{
			Name: "Bud Rot (Phytophthora palmivora)", Probability: 0.35, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Pour Bordeaux mixture (1%) into crown at onset of monsoon.",
				"Remove and burn infected parts.",
				"Ensure good drainage around palm base.",
			},
		},
		{
			Name: "Root Wilt (Phytoplasma)", Probability: 0.25, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Apply Tetracycline injections (CPCRI protocol).",
				"Maintain soil nutrition with balanced NPK.",
				"Use resistant tall varieties in affected zones.",
			},
		},
	},
	"cotton": {
		{
			Name: "Pink Bollworm (Pectinophora gossypiella)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use Bt-cotton hybrids with Cry1Ac/Cry2Ab genes.",
				"Pheromone traps for monitoring.",
				"Spray Emamectin benzoate or Spinosad at peak infestation.",
			},
		},
		{
			Name: "Alternaria Leaf Spot (Alternaria macrospora)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Mancozeb or Iprodione.",
				"Avoid wet conditions; improve drainage.",
			},
		},
		{
			Name: "Fusarium Wilt", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Use wilt-resistant varieties (MCU-5, DCH-32).",
				"Soil application of Trichoderma viride.",
			},
		},
	},
	"jute": {
		{
			Name: "Stem Rot (Macrophomina phaseolina)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Thiram.",
				"Avoid water stagnation.",
				"Spray Carbendazim at first symptoms.",
			},
		},
		{
			Name: "Anthracnose (Colletotrichum corchori)", Probability: 0.30, Severity: model.SeverityLow, Season: "Monsoon",
			Prevention: []string{
				"Spray Copper fungicide at seedling stage.",
				"Use healthy certified seed.",
			},
		},
	},
	"coffee": {
		{
			Name: "Coffee Leaf Rust (Hemileia vastatrix)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Post-monsoon",
			Prevention: []string{
				"Spray Copper fungicide + Propiconazole before and after monsoon.",
				"Shade management to reduce humidity.",
				"Use rust-resistant varieties (Cauvery, S795).",
			},
		},
		{
			Name: "Coffee Berry Borer (Hypothenemus hampei)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Install traps with ethanol+methanol lure.",
				"Spray Endosulfan or Chlorpyriphos at cherry-boring stage.",
				"Strip-pick and destroy infested berries.",
			},
		},
	},
	"wheat": {
		{
			Name: "Wheat Rust (Puccinia triticina)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Use rust-resistant varieties (HD-2967, PBW-343).",
				"Spray Propiconazole at first rust signs.",
				"Avoid late sowing in rust-prone zones.",
			},
		},
		{
			Name: "Karnal Bunt (Tilletia indica)", Probability: 0.25, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Seed treatment with Carboxin + Thiram.",
				"Use certified disease-free seed.",
				"Avoid irrigation at heading stage during humid weather.",
			},
		},
	},
	"potato": {
		{
			Name: "Late Blight (Phytophthora infestans)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Spray Mancozeb or Metalaxyl + Mancozeb at 7-day intervals.",
				"Use blight-resistant varieties (Kufri Jyoti, Kufri Bahar).",
				"Destroy volunteer plants and infected tubers.",
			},
		},
		{
			Name: "Early Blight (Alternaria solani)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Mancozeb or Chlorothalonil at first symptom.",
				"Maintain adequate soil moisture.",
				"Use healthy certified seed tubers.",
			},
		},
	},
	"sugarcane": {
		{
			Name: "Red Rot (Colletotrichum falcatum)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Use disease-free setts from resistant varieties (Co 86032).",
				"Sett treatment with Carbendazim before planting.",
				"Destroy infected canes and ratoon debris.",
			},
		},
		{
			Name: "Sugarcane Top Borer (Scirpophaga excerptalis)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Release Trichogramma parasitoids.",
				"Remove and destroy dead hearts early.",
				"Avoid excess nitrogen fertilization.",
			},
		},
	},
	"groundnut": {
		{
			Name: "Tikka Disease / Leaf Spot (Cercospora)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Mancozeb or Chlorothalonil at 35 DAS.",
				"Use tolerant varieties (ICGV 91114).",
				"Maintain proper plant spacing.",
			},
		},
		{
			Name: "Stem Rot (Sclerotium rolfsii)", Probability: 0.35, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Trichoderma viride.",
				"Deep ploughing to bury sclerotia.",
				"Crop rotation with cereals.",
			},
		},
	},
	"mustard": {
		{
			Name: "Alternaria Blight (Alternaria brassicae)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Spray Mancozeb at flowering and pod formation.",
				"Use tolerant varieties (Pusa Bold).",
				"Destroy crop debris after harvest.",
			},
		},
		{
			Name: "Aphid (Lipaphis erysimi)", Probability: 0.55, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Dimethoate or Imidacloprid at ETL.",
				"Early sowing (October) avoids peak aphid season.",
				"Conserve natural predators like ladybird beetles.",
			},
		},
	},
	"onion": {
		{
			Name: "Purple Blotch (Alternaria porri)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Rabi/Kharif",
			Prevention: []string{
				"Spray Mancozeb + Carbendazim at 10-day intervals.",
				"Ensure proper drainage to avoid waterlogging.",
				"Use disease-free transplants.",
			},
		},
		{
			Name: "Thrips (Thrips tabaci)", Probability: 0.50, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Fipronil or Spinosad at nymph stage.",
				"Use blue sticky traps for monitoring.",
				"Overhead irrigation helps reduce thrips population.",
			},
		},
	},
	"bajra": {
		{
			Name: "Downy Mildew (Sclerospora graminicola)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Metalaxyl.",
				"Use resistant hybrids (HHB 67, ICTP 8203).",
				"Rogue out infected plants early.",
			},
		},
		{
			Name: "Ergot (Claviceps fusiformis)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Mancozeb at flowering stage.",
				"Collect and destroy honeydew-infected earheads.",
			},
		},
	},
	"jowar": {
		{
			Name: "Grain Mold (Fusarium/Aspergillus spp.)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Use mold-tolerant varieties (CSH-14, CSV-17).",
				"Harvest at physiological maturity; dry immediately.",
				"Avoid late sowing that exposes grain to monsoon end.",
			},
		},
		{
			Name: "Shoot Fly (Atherigona soccata)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Early sowing to avoid peak fly activity.",
				"Seed treatment with Imidacloprid.",
				"Use fish-meal traps for adult fly monitoring.",
			},
		},
	},
	"barley": {
		{
			Name: "Stripe Rust (Puccinia striiformis)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Use resistant varieties (BH-393, Jyoti).",
				"Spray Propiconazole at first sign of pustules.",
				"Avoid late sowing in high-altitude areas.",
			},
		},
		{
			Name: "Covered Smut (Ustilago hordei)", Probability: 0.25, Severity: model.SeverityLow, Season: "Rabi",
			Prevention: []string{
				"Seed treatment with Carboxin or Thiram.",
				"Use certified smut-free seed.",
			},
		},
	},
	"ragi": {
		{
			Name: "Blast (Pyricularia grisea)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use blast-resistant varieties (GPU-28, MR-1).",
				"Spray Tricyclazole at neck blast stage.",
				"Avoid excessive nitrogen fertilization.",
			},
		},
		{
			Name: "Aphid (Hysteroneura setariae)", Probability: 0.30, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Spray Dimethoate at ETL.",
				"Encourage natural predators.",
			},
		},
	},
	"soyabean": {
		{
			Name: "Rust (Phakopsora pachyrhizi)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Spray Hexaconazole or Propiconazole at R3 stage.",
				"Use tolerant varieties (JS 335, JS 9560).",
				"Early sowing avoids peak rust incidence.",
			},
		},
		{
			Name: "Yellow Mosaic Virus (YMV)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Control whitefly vectors with Thiamethoxam.",
				"Use YMV-resistant varieties.",
				"Remove infected plants to reduce virus source.",
			},
		},
	},
	"sunflower": {
		{
			Name: "Alternaria Blight (Alternaria helianthi)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Kharif/Rabi",
			Prevention: []string{
				"Spray Mancozeb at disease initiation.",
				"Use tolerant hybrids.",
				"Maintain optimum plant population.",
			},
		},
		{
			Name: "Head Rot (Sclerotinia sclerotiorum)", Probability: 0.30, Severity: model.SeverityHigh, Season: "Rabi",
			Prevention: []string{
				"Avoid overhead irrigation during flowering.",
				"Deep ploughing to bury sclerotia.",
				"Spray Carbendazim at head formation.",
			},
		},
	},
	"sesamum": {
		{
			Name: "Phytophthora Blight (Phytophthora parasitica)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Metalaxyl.",
				"Ensure proper field drainage.",
				"Avoid waterlogged conditions.",
			},
		},
		{
			Name: "Gall Fly (Asphondylia sesami)", Probability: 0.30, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Spray Dimethoate at bud stage.",
				"Collect and destroy infested buds.",
			},
		},
	},
	"castor seed": {
		{
			Name: "Botrytis Grey Rot (Botrytis ricini)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Carbendazim or Thiophanate-methyl at spike emergence.",
				"Maintain proper plant spacing for ventilation.",
				"Avoid overhead irrigation during flowering.",
			},
		},
		{
			Name: "Semilooper (Achaea janata)", Probability: 0.45, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Quinalphos or Chlorpyriphos at larval stage.",
				"Hand-pick and destroy larvae when numbers are low.",
				"Use NPV (Nuclear Polyhedrosis Virus) bio-insecticide.",
			},
		},
	},
	"dry chillies": {
		{
			Name: "Anthracnose / Fruit Rot (Colletotrichum capsici)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Thiram + Carbendazim.",
				"Spray Mancozeb or Copper oxychloride at 10-day intervals.",
				"Use tolerant varieties (Pusa Jwala).",
			},
		},
		{
			Name: "Thrips (Scirtothrips dorsalis)", Probability: 0.55, Severity: model.SeverityMedium, Season: "Year-round",
			Prevention: []string{
				"Spray Fipronil or Spinosad.",
				"Use blue sticky traps.",
				"Intercrop with marigold as trap crop.",
			},
		},
	},
	"ginger": {
		{
			Name: "Soft Rot / Rhizome Rot (Pythium aphanidermatum)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Treat seed rhizome with Mancozeb + Carbendazim for 30 min.",
				"Ensure raised beds with good drainage.",
				"Apply Trichoderma viride to soil before planting.",
			},
		},
		{
			Name: "Shoot Borer (Conogethes punctiferalis)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Dimethoate or Malathion at first sign of boring.",
				"Prune and destroy infected tillers.",
			},
		},
	},
	"turmeric": {
		{
			Name: "Rhizome Rot (Pythium/Fusarium spp.)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Mancozeb before planting.",
				"Apply Trichoderma-enriched FYM to soil.",
				"Avoid waterlogging; use raised beds.",
			},
		},
		{
			Name: "Leaf Blotch (Taphrina maculans)", Probability: 0.30, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Spray Mancozeb or Copper oxychloride.",
				"Maintain proper drainage and spacing.",
			},
		},
	},
	"garlic": {
		{
			Name: "Purple Blotch (Alternaria porri)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Mancozeb + Carbendazim at 10-day intervals.",
				"Avoid overhead irrigation; use drip.",
				"Use disease-free planting cloves.",
			},
		},
		{
			Name: "Stem/Bulb Nematode (Ditylenchus dipsaci)", Probability: 0.25, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Hot water treatment of cloves (49C for 20 min) before planting.",
				"Crop rotation with non-allium crops for 3 years.",
			},
		},
	},
	"coriander": {
		{
			Name: "Stem Gall (Protomyces macrosporus)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Use disease-free seed.",
				"Spray Mancozeb at early growth stage.",
				"Crop rotation with cereals.",
			},
		},
		{
			Name: "Wilt (Fusarium oxysporum)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Seed treatment with Trichoderma viride.",
				"Avoid waterlogged soils.",
			},
		},
	},
	"black pepper": {
		{
			Name: "Quick Wilt (Phytophthora capsici)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Apply Bordeaux mixture (1%) at onset of monsoon.",
				"Improve drainage around vine base.",
				"Use tolerant varieties (Panniyur-1).",
			},
		},
		{
			Name: "Pollu Disease (Colletotrichum gloeosporioides)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Bordeaux mixture during spike formation.",
				"Maintain proper shade management.",
			},
		},
	},
	"cardamom": {
		{
			Name: "Capsule Rot (Phytophthora meadii)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Spray Copper oxychloride at onset of monsoon.",
				"Improve drainage and reduce shade density.",
				"Remove and destroy infected panicles.",
			},
		},
		{
			Name: "Thrips (Sciothrips cardamomi)", Probability: 0.50, Severity: model.SeverityMedium, Season: "Year-round",
			Prevention: []string{
				"Spray Dimethoate at panicle initiation.",
				"Maintain optimum shade (40-60%).",
				"Remove weeds that harbor thrips.",
			},
		},
	},
	"arecanut": {
		{
			Name: "Koleroga / Fruit Rot (Phytophthora arecae)", Probability: 0.45, Severity: model.SeverityHigh, Season: "Monsoon",
			Prevention: []string{
				"Spray Bordeaux mixture (1%) before and during monsoon.",
				"Collect and destroy fallen diseased nuts.",
				"Ensure drainage around palm base.",
			},
		},
		{
			Name: "Yellow Leaf Disease (Phytoplasma)", Probability: 0.30, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Remove and destroy severely infected palms.",
				"Control leafhopper vectors with Imidacloprid.",
				"Apply balanced nutrition with micronutrients.",
			},
		},
	},
	"cashewnut": {
		{
			Name: "Tea Mosquito Bug (Helopeltis antonii)", Probability: 0.55, Severity: model.SeverityHigh, Season: "Flowering",
			Prevention: []string{
				"Spray Carbaryl or Lambda-cyhalothrin at flushing stage.",
				"Maintain canopy hygiene; prune overcrowded branches.",
				"Conserve natural enemies (Oecophylla smaragdina ants).",
			},
		},
		{
			Name: "Anthracnose (Colletotrichum gloeosporioides)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Monsoon",
			Prevention: []string{
				"Spray Carbendazim at new flush emergence.",
				"Prune and burn infected twigs.",
			},
		},
	},
	"cowpea": {
		{
			Name: "Mosaic Virus (CpMV)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Use virus-free seed from reliable sources.",
				"Control aphid vectors with Imidacloprid.",
				"Remove and destroy infected plants.",
			},
		},
		{
			Name: "Pod Borer (Maruca vitrata)", Probability: 0.40, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Spray Emamectin benzoate at flowering.",
				"Use pheromone traps for monitoring.",
				"Intercrop with sorghum as barrier crop.",
			},
		},
	},
	"peas": {
		{
			Name: "Powdery Mildew (Erysiphe pisi)", Probability: 0.50, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Spray Wettable Sulphur or Karathane at first sign.",
				"Use resistant varieties (Arkel, Azad P-1).",
				"Early sowing to escape late-season humidity.",
			},
		},
		{
			Name: "Fusarium Wilt (Fusarium oxysporum f.sp. pisi)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Rabi",
			Prevention: []string{
				"Seed treatment with Trichoderma + Carbendazim.",
				"Crop rotation with cereals for 3 years.",
			},
		},
	},
	"tobacco": {
		{
			Name: "Tobacco Mosaic Virus (TMV)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use TMV-resistant varieties.",
				"Workers should wash hands before handling plants.",
				"Remove infected plants immediately to reduce spread.",
			},
		},
		{
			Name: "Black Shank (Phytophthora nicotianae)", Probability: 0.35, Severity: model.SeverityHigh, Season: "Kharif",
			Prevention: []string{
				"Use resistant varieties.",
				"Soil fumigation with Metam sodium.",
				"Improve field drainage; avoid waterlogging.",
			},
		},
	},
	"sweet potato": {
		{
			Name: "Sweet Potato Weevil (Cylas formicarius)", Probability: 0.50, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Plant weevil-free vine cuttings.",
				"Earth up vines to cover exposed tubers.",
				"Use pheromone traps for monitoring.",
			},
		},
		{
			Name: "Scab (Elsinoe batatas)", Probability: 0.25, Severity: model.SeverityLow, Season: "Kharif",
			Prevention: []string{
				"Use disease-free planting material.",
				"Spray Mancozeb at vine stage.",
			},
		},
	},
	"tapioca": {
		{
			Name: "Cassava Mosaic Virus (CMV)", Probability: 0.40, Severity: model.SeverityHigh, Season: "Year-round",
			Prevention: []string{
				"Use mosaic-free stem cuttings from certified sources.",
				"Control whitefly vectors with neem oil or Imidacloprid.",
				"Remove and destroy infected plants.",
			},
		},
		{
			Name: "Tuber Rot (Phytophthora spp.)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Ensure good field drainage.",
				"Harvest at right maturity; avoid mechanical damage.",
			},
		},
	},
	"mesta": {
		{
			Name: "Stem Rot (Macrophomina phaseolina)", Probability: 0.35, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Seed treatment with Thiram + Carbendazim.",
				"Avoid water stagnation.",
				"Deep ploughing to bury inoculum.",
			},
		},
		{
			Name: "Spiral Borer (Agrilus acutus)", Probability: 0.30, Severity: model.SeverityMedium, Season: "Kharif",
			Prevention: []string{
				"Early sowing in March-April to avoid peak borer.",
				"Collect and destroy infested stems.",
			},
		},
	},
}

// Diseases returns the known disease entries for a canonical crop
// name, or nil for crops without coverage.
func Diseases(crop string) []model.DiseaseEntry {
	return diseaseDB[crop]
}
