package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig      `yaml:"store" mapstructure:"store"`
	Datasets   DatasetsConfig   `yaml:"datasets" mapstructure:"datasets"`
	Classifier ClassifierConfig `yaml:"classifier" mapstructure:"classifier"`
	Scoring    ScoringConfig    `yaml:"scoring" mapstructure:"scoring"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the run-history database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	Path        string `yaml:"path" mapstructure:"path"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// DatasetsConfig points at the regional CSV datasets on disk.
type DatasetsConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	YieldFile   string `yaml:"yield_file" mapstructure:"yield_file"`
	PriceFile   string `yaml:"price_file" mapstructure:"price_file"`
	CostFile    string `yaml:"cost_file" mapstructure:"cost_file"`
	ClimateFile string `yaml:"climate_file" mapstructure:"climate_file"`
	AliasFile   string `yaml:"alias_file" mapstructure:"alias_file"`
}

// ClassifierConfig selects the crop classifier backend.
type ClassifierConfig struct {
	Mode        string  `yaml:"mode" mapstructure:"mode"`
	URL         string  `yaml:"url" mapstructure:"url"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RateLimit   float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// ScoringConfig holds the tunables of the recommendation pipeline.
type ScoringConfig struct {
	MinSuitabilityPct float64   `yaml:"min_suitability_pct" mapstructure:"min_suitability_pct"`
	RelaxSteps        []float64 `yaml:"relax_steps" mapstructure:"relax_steps"`
	CandidatePool     int       `yaml:"candidate_pool" mapstructure:"candidate_pool"`
	TopK              int       `yaml:"top_k" mapstructure:"top_k"`
	SuitabilityWeight float64   `yaml:"suitability_weight" mapstructure:"suitability_weight"`
	ProfitWeight      float64   `yaml:"profit_weight" mapstructure:"profit_weight"`
	RiskWeight        float64   `yaml:"risk_weight" mapstructure:"risk_weight"`
	YieldBaseFactor   float64   `yaml:"yield_base_factor" mapstructure:"yield_base_factor"`
	YieldConfFactor   float64   `yaml:"yield_conf_factor" mapstructure:"yield_conf_factor"`
	ClimateWeight     float64   `yaml:"climate_weight" mapstructure:"climate_weight"`
	MaxWorkers        int       `yaml:"max_workers" mapstructure:"max_workers"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CROPADVISOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "crop-advisor.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("datasets.dir", "data")
	v.SetDefault("datasets.yield_file", "crop_yield.csv")
	v.SetDefault("datasets.price_file", "market_prices.csv")
	v.SetDefault("datasets.cost_file", "cultivation_costs.csv")
	v.SetDefault("datasets.climate_file", "climate_vulnerability.csv")
	v.SetDefault("datasets.alias_file", "")
	v.SetDefault("classifier.mode", "embedded")
	v.SetDefault("classifier.url", "http://localhost:5000")
	v.SetDefault("classifier.timeout_secs", 10)
	v.SetDefault("classifier.rate_limit", 10)
	v.SetDefault("scoring.min_suitability_pct", 5)
	v.SetDefault("scoring.relax_steps", []float64{0.02, 0.01, 0.005, 0})
	v.SetDefault("scoring.candidate_pool", 12)
	v.SetDefault("scoring.top_k", 5)
	v.SetDefault("scoring.suitability_weight", 0.3)
	v.SetDefault("scoring.profit_weight", 0.5)
	v.SetDefault("scoring.risk_weight", 0.2)
	v.SetDefault("scoring.yield_base_factor", 0.6)
	v.SetDefault("scoring.yield_conf_factor", 0.4)
	v.SetDefault("scoring.climate_weight", 0.5)
	v.SetDefault("scoring.max_workers", 8)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
