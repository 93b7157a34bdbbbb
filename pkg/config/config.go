package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the services need at startup. It is built once in
// main and passed by reference; nothing else reads environment variables.
type Config struct {
	Port          string `env:"PORT" envDefault:"3000"`
	MongoURI      string `env:"DB_URL" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDatabase string `env:"DB_NAME" envDefault:"photocards"`
	JWTSecret     string `env:"JWT_SECRET"`
	Env           string `env:"APP_ENV" envDefault:"development"`
}

// Load reads .env if present and populates Config from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the production signing secret must be used.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
