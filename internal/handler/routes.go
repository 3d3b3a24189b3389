package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
)

type Services struct {
	Admins       AdminService
	Users        UserService
	Withdrawals  WithdrawalService
	Health       HealthChecker
	UsersPerPage int
}

// Register mounts the admin API on r.
func Register(r chi.Router, svc Services, logger *slog.Logger) {
	r.Get("/api/health", HealthHandler(svc.Health, logger))

	r.Route("/api/admin", func(r chi.Router) {
		r.Get("/check-admin", CheckAdminHandler(svc.Admins, logger))

		r.Get("/admins", ListAdminsHandler(svc.Admins, logger))
		r.Post("/admins", AddAdminHandler(svc.Admins, logger))
		r.Delete("/admins", DeleteAdminHandler(svc.Admins, logger))

		r.Get("/withdrawals", ListWithdrawalsHandler(svc.Withdrawals, logger))
		r.Get("/users", ListUsersHandler(svc.Users, svc.UsersPerPage, logger))
	})
}
