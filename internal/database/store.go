package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"miniadmin/internal/model"
)

var ErrAdminExists = errors.New("admin already exists")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) AdminExists(ctx context.Context, username string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM admins WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("query admin: %w", err)
	}
	defer rows.Close()

	found := rows.Next()
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("rows iteration failed: %w", err)
	}

	return found, nil
}

func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username FROM admins`)
	if err != nil {
		return nil, fmt.Errorf("query admins: %w", err)
	}
	defer rows.Close()

	admins := []model.Admin{}
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.Username); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return admins, nil
}

func (s *Store) CreateAdmin(ctx context.Context, username string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO admins (username) VALUES ($1)`, username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAdminExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// DeleteAdmin removes every row matching username and reports how many
// were removed. Zero is not an error.
func (s *Store) DeleteAdmin(ctx context.Context, username string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM admins WHERE username = $1`, username)
	if err != nil {
		return 0, fmt.Errorf("delete admin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, telegram_id, username, name, profile_photo, referral_count, created_at
		FROM users
		ORDER BY referral_count DESC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var (
			u                     model.User
			username, name, photo sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.TelegramID, &username, &name, &photo, &u.ReferralCount, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Username = nullString(username)
		u.Name = nullString(name)
		u.ProfilePhoto = nullString(photo)
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return users, nil
}

func (s *Store) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func (s *Store) ListWithdrawalRequests(ctx context.Context) ([]model.WithdrawalRequest, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM withdrawal_requests`)
	if err != nil {
		return nil, fmt.Errorf("query withdrawal requests: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	requests := []model.WithdrawalRequest{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan withdrawal request: %w", err)
		}

		req := make(model.WithdrawalRequest, len(cols))
		for i, col := range cols {
			// text-encoded values (numeric, unknown types) arrive as bytes
			if b, ok := values[i].([]byte); ok {
				req[col] = string(b)
				continue
			}
			req[col] = values[i]
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return requests, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
