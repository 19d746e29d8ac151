package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string  `mapstructure:"port"`
	MongoURI         string  `mapstructure:"MONGODB_URI"`
	MongoDBName      string  `mapstructure:"mongo_db_name"`
	GeminiAPIKey     string  `mapstructure:"GEMINI_API_KEY"`
	Model            string  `mapstructure:"model"`
	Temperature      float32 `mapstructure:"temperature"`
	TopK             int32   `mapstructure:"top_k"`
	TopP             float32 `mapstructure:"top_p"`
	MaxOutputTokens  int32   `mapstructure:"max_output_tokens"`
	AITimeoutSeconds int     `mapstructure:"ai_timeout_seconds"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Secrets only come from the environment
	v.BindEnv("MONGODB_URI")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.AITimeoutSeconds <= 0 {
		config.AITimeoutSeconds = 60
	}

	return &config, nil
}
