package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options, read from HANGMAN_* variables.
type Config struct {
	// Seed for word selection. A seed of 0 means a random seed will be generated.
	Seed int64 `env:"HANGMAN_SEED"`

	// Word pins the secret word. It must be one of the words in the bank.
	Word string `env:"HANGMAN_WORD"`

	// Plain forces the line-oriented console even on a terminal.
	Plain bool `env:"HANGMAN_PLAIN"`

	// Telemetry enables OpenTelemetry tracing.
	Telemetry bool `env:"HANGMAN_TELEMETRY" envDefault:"true"`

	// AccentColor is the hex colour of the word line in the terminal console.
	AccentColor string `env:"HANGMAN_ACCENT_COLOR" envDefault:"#FFD700"`

	// LogFile receives log output while the terminal console owns the screen.
	LogFile string `env:"HANGMAN_LOG_FILE"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadConfigFrom reads Config from the given variables instead of the
// process environment.
func LoadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
