package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Address string `mapstructure:"address"`
	}

	Database struct {
		Primary struct {
			DSN string
		}
	}

	AI struct {
		GeminiAPIKey string `mapstructure:"gemini_api_key"`
		GeminiModel  string `mapstructure:"gemini_model"`
		OpenAIAPIKey string `mapstructure:"openai_api_key"`
		OpenAIModel  string `mapstructure:"openai_model"`
	} `mapstructure:"ai"`

	Auth struct {
		JWTSecret          string `mapstructure:"jwt_secret"`
		TokenExpireMinutes int    `mapstructure:"token_expire_minutes"`
	} `mapstructure:"auth"`

	// Location describes the mapped area the dataset covers. Surfaced on the
	// root endpoint only.
	Location struct {
		Barangay     string `mapstructure:"barangay"`
		Municipality string `mapstructure:"municipality"`
		Province     string `mapstructure:"province"`
	} `mapstructure:"location"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	// Bind the conventional environment variable names so deployments can
	// skip the config file entirely.
	viper.BindEnv("ai.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("ai.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("database.primary.dsn", "DATABASE_URL")
	viper.BindEnv("server.address", "SERVER_ADDRESS")

	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("ai.gemini_model", "gemini-1.5-flash")
	viper.SetDefault("ai.openai_model", "gpt-4o-mini")
	viper.SetDefault("auth.token_expire_minutes", 30)
	viper.SetDefault("location.barangay", "Sta. Cruz")
	viper.SetDefault("location.municipality", "Santa Maria")
	viper.SetDefault("location.province", "Bulacan")

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, env vars and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}
