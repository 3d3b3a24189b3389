package handler

import (
	"context"
	"log/slog"
	"net/http"

	"miniadmin/internal/service"
)

type UserService interface {
	List(ctx context.Context, p service.Page) (*service.UserPage, error)
}

// ListUsersHandler serves the referral leaderboard. defaultLimit applies
// when the caller sends no usable limit.
func ListUsersHandler(userSvc UserService, defaultLimit int, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := service.ParsePage(q.Get("page"), q.Get("limit"), defaultLimit)

		res, err := userSvc.List(r.Context(), page)
		if err != nil {
			serverError(w, logger, "list users failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, res)
	}
}
