package readstore

import (
	"context"
	"errors"

	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var view queries.AuthorizedUserView
	var passwordHash string
	err := s.pool.QueryRow(ctx, query, email).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

// FindByID joins the quota profile so the profile page renders identity and
// credit status from a single consistent read.
func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CurrentUserRow, error) {
	const query = `
		SELECT u.id, u.email, u.role, u.is_active, p.credits, p.last_refill_at
		FROM users u
		JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	var row queries.CurrentUserRow
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Email, &row.Role, &row.IsActive, &row.Credits, &row.LastRefillAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &row, nil
}
