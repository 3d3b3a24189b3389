package mw

import (
	"log/slog"
	"net/http"

	sloghttp "github.com/samber/slog-http"
)

// RequestLogger logs one line per request: 5xx at error, 4xx at warn,
// everything else at info.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return sloghttp.NewWithConfig(logger, sloghttp.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	})
}

// Recoverer turns handler panics into a 500.
func Recoverer(next http.Handler) http.Handler {
	return sloghttp.Recovery(next)
}
