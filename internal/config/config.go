package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment. An empty MongoURI keeps the load
// audit in memory.
type Config struct {
	Port          string `env:"PORT" envDefault:"7521"`
	UsersURL      string `env:"USERS_URL" envDefault:"https://jsonplaceholder.typicode.com/users"`
	AlbumsURL     string `env:"ALBUMS_URL" envDefault:"https://jsonplaceholder.typicode.com/albums"`
	MongoURI      string `env:"MONGODB_URI"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"directory"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
