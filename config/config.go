package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	SupabaseURL       string `env:"SUPABASE_URL,required"`
	SupabaseKey       string `env:"SUPABASE_KEY,required"`
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET"`

	LLMProvider  string `env:"LLM_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead:", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
