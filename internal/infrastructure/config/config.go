package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/remaimber-it/kuku/internal/feedback"
)

// Config is read from the environment. Every key is optional; the defaults
// give the stock Japanese drill.
type Config struct {
	Locale string             `env:"KUKU_LOCALE" envDefault:"ja"`
	Color  feedback.ColorMode `env:"KUKU_COLOR" envDefault:"auto"`

	// Speech synthesis (randomized drill only)
	SpeechEnabled bool   `env:"KUKU_SPEECH_ENABLED" envDefault:"true"`
	SpeechCommand string `env:"KUKU_SPEECH_COMMAND" envDefault:"say"`
	SpeechVoice   string `env:"KUKU_SPEECH_VOICE" envDefault:"Kyoko"`

	LogLevel slog.Level `env:"KUKU_LOG_LEVEL" envDefault:"warn"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
