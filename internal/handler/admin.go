package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"miniadmin/internal/model"
	"miniadmin/internal/service"
)

type AdminService interface {
	IsAdmin(ctx context.Context, username string) (bool, error)
	List(ctx context.Context) ([]model.Admin, error)
	Add(ctx context.Context, username string) error
	Delete(ctx context.Context, username string) error
}

type checkAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type listAdminsResponse struct {
	Admins []model.Admin `json:"admins"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func CheckAdminHandler(adminSvc AdminService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")

		isAdmin, err := adminSvc.IsAdmin(r.Context(), username)
		if err != nil {
			serverError(w, logger, "check admin failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, checkAdminResponse{IsAdmin: isAdmin})
	}
}

func ListAdminsHandler(adminSvc AdminService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := adminSvc.List(r.Context())
		if err != nil {
			serverError(w, logger, "list admins failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, listAdminsResponse{Admins: admins})
	}
}

func AddAdminHandler(adminSvc AdminService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			writeJSON(w, logger, http.StatusBadRequest, successResponse{Success: false})
			return
		}

		if err := adminSvc.Add(r.Context(), username); err != nil {
			if errors.Is(err, service.ErrAdminExists) {
				writeJSON(w, logger, http.StatusConflict, successResponse{Success: false})
				return
			}
			serverError(w, logger, "add admin failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, successResponse{Success: true})
	}
}

func DeleteAdminHandler(adminSvc AdminService, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			writeJSON(w, logger, http.StatusBadRequest, successResponse{Success: false})
			return
		}

		if err := adminSvc.Delete(r.Context(), username); err != nil {
			serverError(w, logger, "delete admin failed", err)
			return
		}

		writeJSON(w, logger, http.StatusOK, successResponse{Success: true})
	}
}
