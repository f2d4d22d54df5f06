package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/database"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// UserRepository implements repository.UserRepository using PostgreSQL.
type UserRepository struct {
	pool database.DBTX
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool database.DBTX) *UserRepository {
	return &UserRepository{pool: pool}
}

// Upsert inserts the user, or refreshes the existing row with the same email.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) (err error) {
	if !domain.IsValidRole(u.Role) {
		return apperrors.InvalidInput(fmt.Sprintf("unknown role %q", u.Role))
	}

	query := `
		INSERT INTO users (full_name, email, password, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		SET full_name = EXCLUDED.full_name, password = EXCLUDED.password, role = EXCLUDED.role
		RETURNING id, created_at`

	ctx, end := database.TraceQuery(ctx, "UpsertUser", query)
	defer func() { end(err) }()

	if err = r.pool.QueryRow(ctx, query, u.FullName, u.Email, u.Password, u.Role).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetByEmail returns the user with the given email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user *domain.User, err error) {
	query := `
		SELECT id, full_name, email, password, role, created_at
		FROM users
		WHERE email = $1`

	ctx, end := database.TraceQuery(ctx, "GetUserByEmail", query)
	defer func() { end(err) }()

	var u domain.User
	if err = r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.FullName, &u.Email, &u.Password, &u.Role, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("user", email)
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}
