package primary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"placewise/internal/models"
	"placewise/internal/store"
)

// CreateUser inserts a new account. Email is stored lowercased.
func (s *StoreImpl) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (email, name, hashed_password, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	email := strings.ToLower(strings.TrimSpace(u.Email))
	err := s.db.QueryRow(ctx, query, email, u.Name, u.HashedPassword, u.IsActive).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("user %s: %w", email, store.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	u.Email = email
	return nil
}

// UpdateUserPassword replaces an account's bcrypt hash.
func (s *StoreImpl) UpdateUserPassword(ctx context.Context, email, hashedPassword string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET hashed_password = $2 WHERE email = lower($1)`,
		strings.TrimSpace(email), hashedPassword,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, store.ErrNotFound)
	}
	return nil
}

// GetUserByEmail looks up an account by email, case-insensitively.
func (s *StoreImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, name, hashed_password, is_active, created_at
		FROM users
		WHERE email = lower($1)`

	var u models.User
	err := s.db.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&u.ID, &u.Email, &u.Name, &u.HashedPassword, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
