package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logging configuration.
type Config struct {
	Level      string `mapstructure:"level"`
	TimeFormat string `mapstructure:"time_format"`
}

// Setup initializes the global logger. Output goes to stderr so that
// converted text on stdout stays clean for pipes and git hooks.
func Setup(cfg Config) {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
	log.Logger = zerolog.New(writer).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		log.Warn().Str("configured_level", cfg.Level).Msg("Invalid log level, defaulting to warn")
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		return
	}
	zerolog.SetGlobalLevel(level)
}
