package handler

import (
	"context"
	"log/slog"
	"net/http"
)

type HealthChecker interface {
	Check(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

func HealthHandler(health HealthChecker, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.Check(r.Context()); err != nil {
			logger.Warn("health check failed", "error", err)
			writeJSON(w, logger, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, logger, http.StatusOK, healthResponse{Status: "ok"})
	}
}
