package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Game     string `yaml:"game" env:"ARENA_GAME" env-default:"count"`
	Seed     uint64 `yaml:"seed" env:"ARENA_SEED" env-default:"1"`
	LogLevel string `yaml:"log-level" env:"ARENA_LOG_LEVEL" env-default:"info"`
	Bot      bool   `yaml:"bot" env:"ARENA_BOT" env-default:"false"`
}

// MustLoad reads the driver configuration from path, or from the
// environment when no path is given.
func MustLoad(path string) *Config {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}
