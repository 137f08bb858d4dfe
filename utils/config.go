package utils

import (
	"csrfdemo/models"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvProduction = "production"

// Config holds runtime settings for the demo server and tools
type Config struct {
	Env            string `mapstructure:"app_env"`
	Addr           string `mapstructure:"addr"`
	RedisURL       string `mapstructure:"redis_url"`
	RedisChannel   string `mapstructure:"redis_channel"`
	InitialBalance int64  `mapstructure:"initial_balance"`
	DefaultMode    string `mapstructure:"default_mode"`
	LogLevel       string `mapstructure:"log_level"`
}

// Mode returns the parsed default mode. LoadConfig has already validated it.
func (c *Config) Mode() models.Mode {
	return models.Mode(c.DefaultMode)
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// LoadEnvFile loads .env outside production. A missing file is reported but
// callers usually carry on.
func LoadEnvFile(files ...string) error {
	if os.Getenv("APP_ENV") == EnvProduction {
		return nil
	}
	return godotenv.Load(files...)
}

// LoadConfig reads settings from the environment on top of defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_env", "development")
	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_channel", "csrfdemo:state")
	v.SetDefault("initial_balance", 1000)
	v.SetDefault("default_mode", string(models.ModeVulnerable))
	v.SetDefault("log_level", "info")

	_ = v.BindEnv("app_env", "APP_ENV")
	_ = v.BindEnv("addr", "ADDR")
	_ = v.BindEnv("redis_url", "REDIS_URL")
	_ = v.BindEnv("redis_channel", "REDIS_CHANNEL")
	_ = v.BindEnv("initial_balance", "INITIAL_BALANCE")
	_ = v.BindEnv("default_mode", "DEFAULT_MODE")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if cfg.InitialBalance <= 0 {
		return fmt.Errorf("initial balance must be greater than 0, got %d", cfg.InitialBalance)
	}
	if _, err := models.ParseMode(cfg.DefaultMode); err != nil {
		return err
	}
	if cfg.RedisURL != "" && cfg.RedisChannel == "" {
		return fmt.Errorf("redis channel must be set when redis url is configured")
	}
	return nil
}
