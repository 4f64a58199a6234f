package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger.
//
// Env vars:
//   - LOG_LEVEL: trace|debug|info|warn|error (default info)
//   - LOG_FORMAT: json|console (default console)
func Setup() {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "swapcred-api").
		Logger()
	if strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))) != "json" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02 15:04:05"})
	}
	log.Logger = logger
}
