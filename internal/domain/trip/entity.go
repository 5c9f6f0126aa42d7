package trip

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyItinerary = errors.New("itinerary text is required")

// Trip is a saved itinerary. Immutable once created: the only lifecycle
// operation after creation is deletion by its owner. The creation timestamp
// is assigned by the database and surfaces on the read side only.
type Trip struct {
	id          uuid.UUID
	userID      uuid.UUID
	destination string
	source      string
	days        int
	budget      float64
	travelers   string
	itinerary   string
}

func NewTrip(userID uuid.UUID, req PlanRequest, itinerary string) (*Trip, error) {
	if strings.TrimSpace(itinerary) == "" {
		return nil, ErrEmptyItinerary
	}

	return &Trip{
		id:          uuid.New(),
		userID:      userID,
		destination: req.Destination(),
		source:      req.Source(),
		days:        req.Days(),
		budget:      req.Budget(),
		travelers:   req.Travelers(),
		itinerary:   itinerary,
	}, nil
}

func (t *Trip) ID() uuid.UUID       { return t.id }
func (t *Trip) UserID() uuid.UUID   { return t.userID }
func (t *Trip) Destination() string { return t.destination }
func (t *Trip) Source() string      { return t.source }
func (t *Trip) Days() int           { return t.days }
func (t *Trip) Budget() float64     { return t.budget }
func (t *Trip) Travelers() string   { return t.travelers }
func (t *Trip) Itinerary() string   { return t.itinerary }
