// Package config loads the msreg command configuration from defaults, an
// optional config file, a .env file, MSREG_ environment variables and
// command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MSREG_MODEL_REGIMES=3.
const EnvPrefix = "MSREG"

// Config is the top-level command configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Model  ModelConfig  `mapstructure:"model"`
	Fit    FitConfig    `mapstructure:"fit"`
	EM     EMConfig     `mapstructure:"em"`
	Select SelectConfig `mapstructure:"select"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig configures logging and log file rotation.
type LogConfig struct {
	Level      string `mapstructure:"level"       validate:"oneof=trace debug info warn error disabled"`
	Pretty     bool   `mapstructure:"pretty"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"min=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

// ModelConfig is the model specification.
type ModelConfig struct {
	Regimes           int    `mapstructure:"regimes"            validate:"min=2"`
	Trend             string `mapstructure:"trend"              validate:"oneof=n nc c t ct"`
	SwitchingVariance bool   `mapstructure:"switching_variance"`
}

// FitConfig configures maximum likelihood estimation.
type FitConfig struct {
	EMIter      int     `mapstructure:"em_iter"      validate:"min=0"`
	MaxIter     int     `mapstructure:"maxiter"      validate:"min=1"`
	Method      string  `mapstructure:"method"       validate:"oneof=bfgs lbfgs nm"`
	SearchReps  int     `mapstructure:"search_reps"  validate:"min=-1"`
	SearchIter  int     `mapstructure:"search_iter"  validate:"min=1"`
	SearchScale float64 `mapstructure:"search_scale" validate:"gt=0"`
	Seed        uint64  `mapstructure:"seed"`
	Disp        bool    `mapstructure:"disp"`
}

// EMConfig configures estimation by EM alone.
type EMConfig struct {
	MaxIter   int     `mapstructure:"maxiter"   validate:"min=1"`
	Tolerance float64 `mapstructure:"tolerance" validate:"min=0"`
}

// SelectConfig configures the regime search.
type SelectConfig struct {
	MinRegimes  int    `mapstructure:"min_regimes" validate:"min=2"`
	MaxRegimes  int    `mapstructure:"max_regimes" validate:"gtefield=MinRegimes"`
	Variance    string `mapstructure:"variance"    validate:"oneof=shared switching both"`
	Criterion   string `mapstructure:"criterion"   validate:"oneof=aic aicc bic hqic"`
	Concurrency int    `mapstructure:"concurrency" validate:"min=0"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=json yaml msgpack"`
}

// SetDefaults registers the default value of every key, which also makes
// every key visible to environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", false)

	v.SetDefault("model.regimes", 2)
	v.SetDefault("model.trend", "c")
	v.SetDefault("model.switching_variance", false)

	v.SetDefault("fit.em_iter", 5)
	v.SetDefault("fit.maxiter", 100)
	v.SetDefault("fit.method", "bfgs")
	v.SetDefault("fit.search_reps", 0)
	v.SetDefault("fit.search_iter", 5)
	v.SetDefault("fit.search_scale", 1.0)
	v.SetDefault("fit.seed", 0)
	v.SetDefault("fit.disp", false)

	v.SetDefault("em.maxiter", 50)
	v.SetDefault("em.tolerance", 1e-6)

	v.SetDefault("select.min_regimes", 2)
	v.SetDefault("select.max_regimes", 3)
	v.SetDefault("select.variance", "both")
	v.SetDefault("select.criterion", "aic")
	v.SetDefault("select.concurrency", 0)

	v.SetDefault("output.format", "json")
}

// Load reads configuration into a validated Config. path may be empty; a
// .env file in the working directory is loaded when present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
