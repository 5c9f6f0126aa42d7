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

type TripReadStore struct {
	pool *pgxpool.Pool
}

func NewTripReadStore(pool *pgxpool.Pool) *TripReadStore {
	return &TripReadStore{pool: pool}
}

func (s *TripReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TripView, error) {
	const query = `
		SELECT id, user_id, destination, source, days, budget, travelers, itinerary, created_at
		FROM trips
		WHERE id = $1`

	var view queries.TripView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.Destination, &view.Source,
		&view.Days, &view.Budget, &view.Travelers, &view.Itinerary, &view.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("trip not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trip", err)
	}

	return &view, nil
}

func (s *TripReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.TripListItem, error) {
	const query = `
		SELECT id, destination, source, days, budget, created_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trips", err)
	}
	defer rows.Close()

	items := []*queries.TripListItem{}
	for rows.Next() {
		var item queries.TripListItem
		if err := rows.Scan(&item.ID, &item.Destination, &item.Source, &item.Days, &item.Budget, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan trip row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trip rows", err)
	}

	return items, nil
}
