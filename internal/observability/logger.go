package observability

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CommandLogger returns the global logger tagged with the app and command.
func CommandLogger(app, cmd string) zerolog.Logger {
	return log.With().Str("app", app).Str("cmd", cmd).Logger()
}
