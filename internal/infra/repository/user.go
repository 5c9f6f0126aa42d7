package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/user"
	"github.com/akshattiwarii/Peakster/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgErrCodeUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateWithProfile inserts the user and their quota profile atomically.
// A user without a profile would make every plan request fail with a
// provisioning error, so the two rows never exist independently.
func (r *UserRepository) CreateWithProfile(ctx context.Context, u *user.User, credits int32, lastRefillAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	const insertUser = `
		INSERT INTO users (id, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(ctx, insertUser, u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation {
			return infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}

	const insertProfile = `
		INSERT INTO profiles (user_id, credits, last_refill_at)
		VALUES ($1, $2, $3)`

	if _, err = tx.Exec(ctx, insertProfile, u.ID(), credits, lastRefillAt); err != nil {
		return infra.WrapRepoErr("failed to create quota profile", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}

	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
