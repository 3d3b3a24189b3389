package service

import (
	"context"

	"miniadmin/internal/model"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks miniadmin/internal/service Store

// Store is the persistence surface the services need. database.Store
// implements it against Postgres.
type Store interface {
	Ping(ctx context.Context) error

	AdminExists(ctx context.Context, username string) (bool, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	CreateAdmin(ctx context.Context, username string) error
	DeleteAdmin(ctx context.Context, username string) (int64, error)

	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)

	ListWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequest, error)
}
