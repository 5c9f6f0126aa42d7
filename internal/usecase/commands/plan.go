package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/clock"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound         = errs.New("quota profile not found")
	ErrQuotaExhausted          = errs.New("quota exhausted")
	ErrGenerationFailed        = errs.New("itinerary generation failed")
	ErrInvalidPlanRequest      = errs.New("invalid plan request")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// QuotaExhaustedError carries how long the caller must wait for the next
// refill, so the handler can surface it in the denial message.
type QuotaExhaustedError struct {
	ResetIn time.Duration
}

func (e *QuotaExhaustedError) Error() string {
	return fmt.Sprintf("quota exhausted, resets in %s", e.ResetIn.Round(time.Minute))
}

type QuotaRepository interface {
	Find(ctx context.Context, userID uuid.UUID) (*QuotaSnapshot, error)

	// Update is a compare-and-set: the write succeeds only while the stored
	// credits still equal expectedCredits; otherwise it fails with KindConflict.
	Update(ctx context.Context, userID uuid.UUID, credits int32, lastRefillAt time.Time, expectedCredits int32) error
}

type ItineraryGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type PlanTripResult struct {
	Itinerary        string
	CreditsRemaining int
}

type PlanCommands interface {
	PlanTrip(ctx context.Context, req reqdto.PlanTripRequest, userID uuid.UUID) (*PlanTripResult, error)
}

// spendCommitAttempts bounds the compare-and-set retry loop on the
// post-generation credit commit.
const spendCommitAttempts = 3

type planCommandsImpl struct {
	quotaRepo QuotaRepository
	generator ItineraryGenerator
	clock     clock.Clock
}

func NewPlanCommands(quotaRepo QuotaRepository, generator ItineraryGenerator, clock clock.Clock) PlanCommands {
	return &planCommandsImpl{
		quotaRepo: quotaRepo,
		generator: generator,
		clock:     clock,
	}
}

// PlanTrip admits a generation request against the caller's credit balance,
// invokes the generation backend exactly once, and commits the spend.
//
// Ordering guarantees:
//   - denial performs no generation call and no write; a refill computed in
//     a denying evaluation is discarded and recomputed by the next request
//   - a backend failure surfaces before any write, so the credit is kept
//   - once generation has succeeded the result is returned as success even
//     if the credit commit fails; bookkeeping is best-effort at that point
func (p *planCommandsImpl) PlanTrip(ctx context.Context, req reqdto.PlanTripRequest, userID uuid.UUID) (*PlanTripResult, error) {
	planReq, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPlanRequest)
	}

	snap, err := p.quotaRepo.Find(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	state := quota.State{Credits: int(snap.Credits), LastRefillAt: snap.LastRefillAt}
	now := p.clock.Now()
	decision := quota.Evaluate(state, now)
	if !decision.Allowed {
		return nil, errs.Mark(&QuotaExhaustedError{ResetIn: quota.ResetIn(state, now)}, ErrQuotaExhausted)
	}

	itinerary, err := p.generator.Generate(ctx, planReq.Prompt())
	if err != nil {
		return nil, errs.Mark(err, ErrGenerationFailed)
	}

	remaining := p.commitSpend(ctx, userID, snap.Credits, decision)

	return &PlanTripResult{
		Itinerary:        itinerary,
		CreditsRemaining: remaining,
	}, nil
}

// commitSpend persists the decremented balance via compare-and-set keyed on
// the credits value read before generation. On conflict it re-reads and
// re-evaluates a bounded number of times. Failures are logged and swallowed:
// the itinerary has already been delivered and must not be taken back.
func (p *planCommandsImpl) commitSpend(ctx context.Context, userID uuid.UUID, readCredits int32, decision quota.Decision) int {
	expected := readCredits

	for attempt := 1; attempt <= spendCommitAttempts; attempt++ {
		if !decision.Allowed {
			// Concurrent requests drained the balance between our read and
			// this commit. The spend goes unrecorded rather than negative.
			slog.Warn("credit spend not recorded: balance drained concurrently",
				"user_id", userID)
			return 0
		}

		newCredits := int32(decision.State.Credits - 1)
		err := p.quotaRepo.Update(ctx, userID, newCredits, decision.State.LastRefillAt, expected)
		if err == nil {
			return int(newCredits)
		}

		if !infra.IsKind(err, infra.KindConflict) {
			slog.Error("failed to commit credit spend",
				"user_id", userID, "error", err.Error())
			return decision.State.Credits - 1
		}

		snap, readErr := p.quotaRepo.Find(ctx, userID)
		if readErr != nil {
			slog.Error("failed to re-read quota after commit conflict",
				"user_id", userID, "error", readErr.Error())
			return decision.State.Credits - 1
		}

		expected = snap.Credits
		decision = quota.Evaluate(quota.State{Credits: int(snap.Credits), LastRefillAt: snap.LastRefillAt}, p.clock.Now())
	}

	slog.Warn("credit spend not recorded: commit retries exhausted",
		"user_id", userID, "attempts", spendCommitAttempts)
	return decision.State.Credits - 1
}
