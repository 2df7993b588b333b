package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

type Config struct {
	Env     string        `mapstructure:"env"`
	Console ConsoleConfig `mapstructure:"console"`
	Ranking RankingConfig `mapstructure:"ranking"`
}

type ConsoleConfig struct {
	Prompt      string `mapstructure:"prompt" validate:"required"`
	HistoryFile string `mapstructure:"history_file"`
	Output      string `mapstructure:"output" validate:"oneof=table json"`
}

// RankingConfig lists classes shown with 0 points before anyone scores.
type RankingConfig struct {
	Classes []string `mapstructure:"classes" validate:"dive,required"`
}

// Load reads config.<ENV>.yaml (optional) and applies environment overrides,
// e.g. CONSOLE_OUTPUT=json. A changed --output flag wins over both.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// Get environment from ENV, default to "local"
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yaml")
	v.AddConfigPath("/configs")   // Kubernetes mount
	v.AddConfigPath("./configs")  // from repo root
	v.AddConfigPath("../configs") // IDE from cmd/

	v.SetDefault("env", env)
	v.SetDefault("console.prompt", "intraeng> ")
	v.SetDefault("console.history_file", "")
	v.SetDefault("console.output", OutputTable)
	v.SetDefault("ranking.classes", []string{})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("output"); f != nil {
			if err := v.BindPFlag("console.output", f); err != nil {
				return nil, fmt.Errorf("failed to bind output flag: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}
