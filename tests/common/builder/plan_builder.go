//go:build unit || e2e

package builder

import (
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"

	"github.com/google/uuid"
)

type PlanBuilder struct {
	Destination string
	Source      string
	Days        int
	Budget      float64
	Travelers   string
}

func NewPlanBuilder() *PlanBuilder {
	return &PlanBuilder{
		Destination: "Manali",
		Source:      "Delhi",
		Days:        3,
		Budget:      15000,
		Travelers:   "2 friends",
	}
}

func (p *PlanBuilder) BuildDTO() reqdto.PlanTripRequest {
	return reqdto.PlanTripRequest{
		Destination: p.Destination,
		Source:      p.Source,
		Days:        p.Days,
		Budget:      p.Budget,
		Travelers:   p.Travelers,
	}
}

// Fluent builder methods
func (p *PlanBuilder) WithDestination(destination string) *PlanBuilder {
	p.Destination = destination
	return p
}

func (p *PlanBuilder) WithDays(days int) *PlanBuilder {
	p.Days = days
	return p
}

type QuotaSnapshotBuilder struct {
	UserID       uuid.UUID
	Credits      int32
	LastRefillAt time.Time
}

func NewQuotaSnapshotBuilder(userID uuid.UUID, now time.Time) *QuotaSnapshotBuilder {
	return &QuotaSnapshotBuilder{
		UserID:       userID,
		Credits:      quota.MaxCredits,
		LastRefillAt: now,
	}
}

func (q *QuotaSnapshotBuilder) WithCredits(credits int32) *QuotaSnapshotBuilder {
	q.Credits = credits
	return q
}

func (q *QuotaSnapshotBuilder) WithLastRefillAt(t time.Time) *QuotaSnapshotBuilder {
	q.LastRefillAt = t
	return q
}

func (q *QuotaSnapshotBuilder) Build() *commands.QuotaSnapshot {
	return &commands.QuotaSnapshot{
		UserID:       q.UserID,
		Credits:      q.Credits,
		LastRefillAt: q.LastRefillAt,
	}
}
