package logger_fx

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourguide/internal/config"
)

var Module = fx.Provide(ProvideLogger)

// ProvideLogger builds the root JSON logger on stdout.
func ProvideLogger(cfg *config.Config) zerolog.Logger {
	return zerolog.New(os.Stdout).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Str("service", "tourguide").
		Logger()
}
