package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	CorsOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	DB struct {
		User string `envconfig:"DB_USER" default:"root"`
		Pass string `envconfig:"DB_PASS" default:""`
		Host string `envconfig:"DB_HOST" default:"127.0.0.1"`
		Port string `envconfig:"DB_PORT" default:"3306"`
		Name string `envconfig:"DB_NAME" default:"hotel_db"`
	}
}

// Load reads .env when present, then populates Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found; continuing with environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DB.User, c.DB.Pass, c.DB.Host, c.DB.Port, c.DB.Name,
	)
}
