package service

import (
	"context"
	"errors"
	"log/slog"

	"miniadmin/internal/database"
	"miniadmin/internal/model"
)

var ErrAdminExists = database.ErrAdminExists

type AdminService struct {
	store  Store
	logger *slog.Logger
}

func NewAdminService(store Store, logger *slog.Logger) *AdminService {
	return &AdminService{store: store, logger: logger}
}

// IsAdmin reports whether username is in the admin set. Matching is exact
// and case-sensitive; an empty username is never an admin.
func (s *AdminService) IsAdmin(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}

	ok, err := s.store.AdminExists(ctx, username)
	if err != nil {
		return false, storeErr("admin").With("username", username).Wrapf(err, "check admin")
	}
	return ok, nil
}

func (s *AdminService) List(ctx context.Context) ([]model.Admin, error) {
	admins, err := s.store.ListAdmins(ctx)
	if err != nil {
		return nil, storeErr("admin").Wrapf(err, "list admins")
	}
	if admins == nil {
		admins = []model.Admin{}
	}
	return admins, nil
}

func (s *AdminService) Add(ctx context.Context, username string) error {
	err := s.store.CreateAdmin(ctx, username)
	switch {
	case err == nil:
		s.logger.Info("admin added", "username", username)
		return nil
	case errors.Is(err, database.ErrAdminExists):
		return err
	default:
		return storeErr("admin").With("username", username).Wrapf(err, "add admin")
	}
}

// Delete removes username from the admin set. Removing a username that is
// not there succeeds.
func (s *AdminService) Delete(ctx context.Context, username string) error {
	n, err := s.store.DeleteAdmin(ctx, username)
	if err != nil {
		return storeErr("admin").With("username", username).Wrapf(err, "delete admin")
	}
	s.logger.Info("admin deleted", "username", username, "rows", n)
	return nil
}
