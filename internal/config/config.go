package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigPath names the variable consulted when no --config flag is given.
const EnvConfigPath = "TASKBOARD_CONFIG"

type Config struct {
	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`
	DBPath     string `mapstructure:"db_path"`
	DBLogLevel string `mapstructure:"db_log_level"`

	RedisHost     string `mapstructure:"redis_host"`
	RedisPort     string `mapstructure:"redis_port"`
	SessionStore  string `mapstructure:"session_store"`
	SessionSecret string `mapstructure:"session_secret"`

	GinMode string `mapstructure:"gin_mode"`
	Port    string `mapstructure:"port"`

	BillingAPIURL  string        `mapstructure:"billing_api_url"`
	BillingTimeout time.Duration `mapstructure:"billing_timeout"`

	FirebaseProjectID       string `mapstructure:"firebase_project_id"`
	FirebaseCredentialsFile string `mapstructure:"firebase_credentials_file"`

	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model"`
}

var defaults = map[string]any{
	"db_driver":                 "postgres",
	"db_host":                   "localhost",
	"db_port":                   "5432",
	"db_user":                   "taskuser",
	"db_password":               "taskpassword",
	"db_name":                   "taskboard",
	"db_sslmode":                "disable",
	"db_path":                   "taskboard.db",
	"db_log_level":              "warn",
	"redis_host":                "localhost",
	"redis_port":                "6379",
	"session_store":             "redis",
	"session_secret":            "default-secret-key-change-me",
	"gin_mode":                  "debug",
	"port":                      "8080",
	"billing_api_url":           "",
	"billing_timeout":           "5s",
	"firebase_project_id":       "",
	"firebase_credentials_file": "",
	"openai_api_key":            "",
	"openai_model":              "gpt-4o",
}

// Load reads defaults, then the optional YAML file at path (or $TASKBOARD_CONFIG),
// then environment variables named after the upper-cased keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// RedisAddr joins the redis host and port.
func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
