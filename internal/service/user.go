package service

import (
	"context"
	"log/slog"
	"math"
	"strconv"

	"miniadmin/internal/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (MaxPage-1)*MaxLimit within int32.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Page is a 1-based page request over the users leaderboard.
type Page struct {
	Number int
	Limit  int
}

// ParsePage builds a Page from raw query values. Missing, non-numeric or
// non-positive values fall back to the defaults; limit is capped at
// MaxLimit and page at MaxPage.
func ParsePage(page, limit string, defaultLimit int) Page {
	if defaultLimit <= 0 || defaultLimit > MaxLimit {
		defaultLimit = DefaultLimit
	}

	p := Page{Number: DefaultPage, Limit: defaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		p.Number = min(n, MaxPage)
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	return p
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

type UserPage struct {
	Users []model.User `json:"users"`
	// HasMore is true when the page came back full. A last page that is
	// exactly Limit long still reports true.
	HasMore bool `json:"has_more"`
	// TotalUsers is only counted for the first page.
	TotalUsers *int64 `json:"total_users"`
}

type UserService struct {
	store  Store
	logger *slog.Logger
}

func NewUserService(store Store, logger *slog.Logger) *UserService {
	return &UserService{store: store, logger: logger}
}

// List returns one page of users ordered by referral count, highest first.
func (s *UserService) List(ctx context.Context, p Page) (*UserPage, error) {
	users, err := s.store.ListUsers(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, storeErr("user").With("page", p.Number, "limit", p.Limit).Wrapf(err, "list users")
	}
	if users == nil {
		users = []model.User{}
	}

	res := &UserPage{
		Users:   users,
		HasMore: len(users) == p.Limit,
	}

	if p.Number == 1 {
		total, err := s.store.CountUsers(ctx)
		if err != nil {
			return nil, storeErr("user").Wrapf(err, "count users")
		}
		s.logger.Debug("users counted", "total", total)
		res.TotalUsers = &total
	}

	return res, nil
}
