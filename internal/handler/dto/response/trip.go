package response

import (
	"time"

	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/google/uuid"
)

type TripResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Source      string    `json:"source"`
	Days        int32     `json:"days"`
	Budget      float64   `json:"budget"`
	Travelers   string    `json:"travelers"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TripListResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	Source      string    `json:"source"`
	Days        int32     `json:"days"`
	Budget      float64   `json:"budget"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromTripView(v *queries.TripView) *TripResponse {
	return &TripResponse{
		ID:          v.ID,
		Destination: v.Destination,
		Source:      v.Source,
		Days:        v.Days,
		Budget:      v.Budget,
		Travelers:   v.Travelers,
		Itinerary:   v.Itinerary,
		CreatedAt:   v.CreatedAt,
	}
}

func FromTripListItem(v *queries.TripListItem) *TripListResponse {
	return &TripListResponse{
		ID:          v.ID,
		Destination: v.Destination,
		Source:      v.Source,
		Days:        v.Days,
		Budget:      v.Budget,
		CreatedAt:   v.CreatedAt,
	}
}
