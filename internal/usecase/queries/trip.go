package queries

import (
	"context"
	"time"

	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTripNotFound = errs.New("trip not found")

// Read models (DTO for read side)
type TripView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Destination string    `json:"destination"`
	Source      string    `json:"source"`
	Days        int32     `json:"days"`
	Budget      float64   `json:"budget"`
	Travelers   string    `json:"travelers"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

type TripListItem struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Source      string    `json:"source"`
	Days        int32     `json:"days"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
}

type TripReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TripView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TripListItem, error)
}

type TripQueries interface {
	// GetByID returns the trip only to its owner.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*TripView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*TripListItem, error)
}

type tripQueriesImpl struct {
	readStore TripReadStore
}

func NewTripQueries(readStore TripReadStore) TripQueries {
	return &tripQueriesImpl{readStore: readStore}
}

func (q *tripQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*TripView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, errs.Wrap(err, "failed to find trip")
	}

	// Ownership check: hide other users' trips behind not-found.
	if view.UserID != actor {
		return nil, ErrTripNotFound
	}

	return view, nil
}

func (q *tripQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*TripListItem, error) {
	items, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list trips")
	}
	return items, nil
}
