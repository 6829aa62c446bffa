package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type HTTP struct {
	Port string `env:"YACHT_HTTP_PORT" envDefault:"8080"`
}

type Room struct {
	CodeLength int `env:"YACHT_ROOM_CODE_LEN" envDefault:"6"`
}

type Config struct {
	HTTP HTTP
	Room Room
}

// Load reads configuration from the environment; a .env file is picked
// up when present, which is how local runs are configured.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
