package request

import (
	"github.com/akshattiwarii/Peakster/internal/domain/trip"
)

type PlanTripRequest struct {
	Destination string  `json:"destination" binding:"required"`
	Source      string  `json:"source,omitempty"`
	Days        int     `json:"days" binding:"required,gt=0"`
	Budget      float64 `json:"budget" binding:"required,gt=0"`
	Travelers   string  `json:"travelers" binding:"required"`
}

func (r PlanTripRequest) ToDomain() (trip.PlanRequest, error) {
	return trip.NewPlanRequest(r.Destination, r.Source, r.Days, r.Budget, r.Travelers)
}
