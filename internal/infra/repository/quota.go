package repository

import (
	"context"
	"errors"
	"time"

	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuotaRepository owns the per-user credit balance (profiles table).
type QuotaRepository struct {
	pool *pgxpool.Pool
}

func NewQuotaRepository(pool *pgxpool.Pool) *QuotaRepository {
	return &QuotaRepository{pool: pool}
}

func (r *QuotaRepository) Find(ctx context.Context, userID uuid.UUID) (*commands.QuotaSnapshot, error) {
	const query = `
		SELECT user_id, credits, last_refill_at
		FROM profiles
		WHERE user_id = $1`

	var snap commands.QuotaSnapshot
	err := r.pool.QueryRow(ctx, query, userID).Scan(&snap.UserID, &snap.Credits, &snap.LastRefillAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quota profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quota profile", err)
	}

	return &snap, nil
}

// Update writes the new balance only while the stored credits still equal
// expectedCredits. A concurrent spend between read and write makes the
// predicate fail and surfaces as KindConflict for the caller to retry.
func (r *QuotaRepository) Update(ctx context.Context, userID uuid.UUID, credits int32, lastRefillAt time.Time, expectedCredits int32) error {
	const query = `
		UPDATE profiles
		SET credits = $2, last_refill_at = $3, updated_at = now()
		WHERE user_id = $1 AND credits = $4`

	tag, err := r.pool.Exec(ctx, query, userID, credits, lastRefillAt, expectedCredits)
	if err != nil {
		return infra.WrapRepoErr("failed to update quota profile", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quota profile changed since read", nil, infra.KindConflict)
	}

	return nil
}
