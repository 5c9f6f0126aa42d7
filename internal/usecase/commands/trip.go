package commands

import (
	"context"

	"github.com/akshattiwarii/Peakster/internal/domain/trip"
	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTripNotFound = errs.New("trip not found")

type TripRepository interface {
	Create(ctx context.Context, t *trip.Trip) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type TripCommands interface {
	// SaveTrip persists a delivered itinerary. The plan orchestrator never
	// calls this itself; the handler triggers it after responding.
	SaveTrip(ctx context.Context, userID uuid.UUID, req reqdto.PlanTripRequest, itinerary string) (uuid.UUID, error)

	DeleteTrip(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type tripCommandsImpl struct {
	tripRepo TripRepository
}

func NewTripCommands(tripRepo TripRepository) TripCommands {
	return &tripCommandsImpl{tripRepo: tripRepo}
}

func (t *tripCommandsImpl) SaveTrip(ctx context.Context, userID uuid.UUID, req reqdto.PlanTripRequest, itinerary string) (uuid.UUID, error) {
	planReq, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPlanRequest)
	}

	entity, err := trip.NewTrip(userID, planReq, itinerary)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPlanRequest)
	}

	if err := t.tripRepo.Create(ctx, entity); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (t *tripCommandsImpl) DeleteTrip(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	err := t.tripRepo.Delete(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrTripNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
