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
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Harmonize HarmonizeConfig `yaml:"harmonize" mapstructure:"harmonize"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// FetchConfig configures HTTP retrieval of published source tables.
type FetchConfig struct {
	UserAgent   string         `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int            `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int            `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSec  float64        `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst       int            `yaml:"burst" mapstructure:"burst"`
	HostLimits  map[string]int `yaml:"host_limits" mapstructure:"host_limits"`
}

// HarmonizeConfig configures harmonization runs.
type HarmonizeConfig struct {
	ListDelimiter string `yaml:"list_delimiter" mapstructure:"list_delimiter"`
	MaxConcurrent int    `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// ExportConfig configures output writers.
type ExportConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MFL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("fetch.user_agent", "mfl-cli/1.0")
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.rate_per_sec", 4)
	v.SetDefault("fetch.burst", 4)
	v.SetDefault("harmonize.list_delimiter", ";")
	v.SetDefault("harmonize.max_concurrent", 4)
	v.SetDefault("export.dir", ".")

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
