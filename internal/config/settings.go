package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds runtime options that can come from the environment.
// Command-line flags use these values as their defaults.
type Settings struct {
	DBPath      string `env:"MEMORY_DB" envDefault:"~/.memory-match/memory.db"`
	LevelsPath  string `env:"MEMORY_LEVELS"`
	Theme       string `env:"MEMORY_THEME" envDefault:"animals"`
	Mute        bool   `env:"MEMORY_MUTE"`
	LogPath     string `env:"MEMORY_LOG" envDefault:"~/.memory-match/memory.log"`
	LogLevel    string `env:"MEMORY_LOG_LEVEL" envDefault:"info"`
	SSHAddr     string `env:"MEMORY_SSH_ADDR" envDefault:":23235"`
	HostKeyPath string `env:"MEMORY_HOST_KEY"`
	IdleMinutes int    `env:"MEMORY_IDLE_MINUTES" envDefault:"30"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return s, fmt.Errorf("config: parse env: %w", err)
	}
	return s, nil
}
