package repository

import (
	"context"

	"github.com/akshattiwarii/Peakster/internal/domain/trip"
	"github.com/akshattiwarii/Peakster/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TripRepository struct {
	pool *pgxpool.Pool
}

func NewTripRepository(pool *pgxpool.Pool) *TripRepository {
	return &TripRepository{pool: pool}
}

func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) error {
	const query = `
		INSERT INTO trips (id, user_id, destination, source, days, budget, travelers, itinerary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		t.ID(), t.UserID(), t.Destination(), t.Source(), t.Days(), t.Budget(), t.Travelers(), t.Itinerary())
	if err != nil {
		return infra.WrapRepoErr("failed to create trip", err)
	}

	return nil
}

// Delete removes a trip only when the caller owns it; a foreign trip is
// indistinguishable from a missing one.
func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	const query = `DELETE FROM trips WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete trip", err)
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("trip not found", nil, infra.KindNotFound)
	}

	return nil
}
