// Package config provides configuration management for the Puckcast application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PUCKCAST"

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. The default weight table is the original tuning panel
// (2/10/12/6/3/8/4 over the seven core factors) normalized to sum 1.0.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	bindEnv(v)

	setDefaults(v)

	// Read and expand the configuration file if it exists
	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "puckcast")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("nhl.web_base_url", "https://api-web.nhle.com/v1")
	v.SetDefault("nhl.stats_base_url", "https://api.nhle.com/stats/rest/en")
	v.SetDefault("nhl.search_base_url", "https://search.d3.nhle.com/api/v1/search/player")
	v.SetDefault("nhl.timeout_seconds", 15)
	v.SetDefault("nhl.max_retries", 3)
	v.SetDefault("nhl.rate_limit_per_second", 5.0)

	v.SetDefault("model.weights.home_ice", 0.045)
	v.SetDefault("model.weights.last_10", 0.222)
	v.SetDefault("model.weights.season_record", 0.267)
	v.SetDefault("model.weights.goalie", 0.133)
	v.SetDefault("model.weights.special_teams", 0.067)
	v.SetDefault("model.weights.head_to_head", 0.178)
	v.SetDefault("model.weights.shots", 0.088)
	v.SetDefault("model.weights.goal_diff", 0.0)
	v.SetDefault("model.weights.injury", 0.0)
	v.SetDefault("model.home_ice_credit", 1.0)
	v.SetDefault("model.sensitivity", 2.0)

	v.SetDefault("data.dir", "nhl_data")
	v.SetDefault("data.starting_goalies_file", "starting_goalies.json")
	v.SetDefault("data.injuries_file", "injuries.json")
	v.SetDefault("data.predictions_file", "predictions.json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("schedule.cron_expression", "0 10 * * *")
}

// ReloadFromEnv reloads the configuration from an alternate path given
// in the environment, if set.
func ReloadFromEnv(cfg *Config) error {
	if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" {
		newCfg, err := Load(envPath)
		if err != nil {
			return err
		}
		*cfg = *newCfg
	}
	return nil
}
