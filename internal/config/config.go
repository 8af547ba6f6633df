// Package config provides configuration management for the Puckcast application.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	NHL      NHLConfig      `mapstructure:"nhl" validate:"required"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// NHLConfig represents upstream NHL API configuration
type NHLConfig struct {
	WebBaseURL         string  `mapstructure:"web_base_url" validate:"required,url"`
	StatsBaseURL       string  `mapstructure:"stats_base_url" validate:"required,url"`
	SearchBaseURL      string  `mapstructure:"search_base_url" validate:"required,url"`
	APIKey             string  `mapstructure:"api_key"`
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries         int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second" validate:"required,gt=0"`
}

// ModelConfig represents the scoring model's tunables. The weights and
// the sensitivity constant are policy choices with no derivation; they
// are deliberately exposed here rather than hard-coded.
type ModelConfig struct {
	Weights       WeightsConfig `mapstructure:"weights" validate:"required"`
	HomeIceCredit float64       `mapstructure:"home_ice_credit" validate:"required,gt=0,lte=1"`
	Sensitivity   float64       `mapstructure:"sensitivity" validate:"required,gt=0"`
}

// WeightsConfig represents the per-factor weight table. The seven core
// factor weights must sum to 1.0; goal_diff and injury are optional
// supplemental factors (weight 0 disables them).
type WeightsConfig struct {
	HomeIce      float64 `mapstructure:"home_ice" validate:"gte=0"`
	Last10       float64 `mapstructure:"last_10" validate:"gte=0"`
	SeasonRecord float64 `mapstructure:"season_record" validate:"gte=0"`
	Goalie       float64 `mapstructure:"goalie" validate:"gte=0"`
	SpecialTeams float64 `mapstructure:"special_teams" validate:"gte=0"`
	HeadToHead   float64 `mapstructure:"head_to_head" validate:"gte=0"`
	Shots        float64 `mapstructure:"shots" validate:"gte=0"`
	GoalDiff     float64 `mapstructure:"goal_diff" validate:"gte=0"`
	Injury       float64 `mapstructure:"injury" validate:"gte=0"`
}

// CoreSum returns the sum of the seven core factor weights.
func (w *WeightsConfig) CoreSum() float64 {
	return w.HomeIce + w.Last10 + w.SeasonRecord + w.Goalie + w.SpecialTeams + w.HeadToHead + w.Shots
}

// DataConfig represents on-disk input/output file configuration
type DataConfig struct {
	Dir                 string `mapstructure:"dir" validate:"required"`
	StartingGoaliesFile string `mapstructure:"starting_goalies_file" validate:"required"`
	InjuriesFile        string `mapstructure:"injuries_file"`
	PredictionsFile     string `mapstructure:"predictions_file" validate:"required"`
}

// DatabaseConfig represents optional Postgres persistence configuration
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// ScheduleConfig represents the daemon's daily run scheduling
type ScheduleConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	CronExpression string `mapstructure:"cron_expression"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
