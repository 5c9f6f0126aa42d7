package queries

import (
	"context"
	"time"

	"github.com/akshattiwarii/Peakster/internal/domain/quota"
	"github.com/akshattiwarii/Peakster/internal/infra"
	"github.com/akshattiwarii/Peakster/internal/pkg/clock"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CurrentUserView is the profile-page read model: identity plus the
// effective quota status at read time.
type CurrentUserView struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Credits int       `json:"credits"`
	// ResetIn is zero when a refill is already due.
	ResetIn time.Duration `json:"reset_in"`
}

type CurrentUserRow struct {
	ID           uuid.UUID
	Email        string
	Role         string
	IsActive     bool
	Credits      int32
	LastRefillAt time.Time
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CurrentUserRow, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*CurrentUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	clock     clock.Clock
}

func NewUserQueries(readStore UserReadStore, clock clock.Clock) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// GetCurrentUser evaluates the refill policy for display only; the
// persisted balance is untouched until an actual plan request commits.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*CurrentUserView, error) {
	row, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}

	if !row.IsActive {
		return nil, ErrUserNotFound
	}

	now := q.clock.Now()
	state := quota.State{Credits: int(row.Credits), LastRefillAt: row.LastRefillAt}
	decision := quota.Evaluate(state, now)

	return &CurrentUserView{
		ID:      row.ID,
		Email:   row.Email,
		Role:    row.Role,
		Credits: decision.State.Credits,
		ResetIn: quota.ResetIn(decision.State, now),
	}, nil
}
