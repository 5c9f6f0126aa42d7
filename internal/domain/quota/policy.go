package quota

import "time"

const (
	// MaxCredits is the number of plan generations a user gets per refill window.
	MaxCredits = 5

	// RefillWindow is how long after the last refill the balance snaps back to MaxCredits.
	RefillWindow = 24 * time.Hour
)

// State is the persisted quota balance for one user.
type State struct {
	Credits      int
	LastRefillAt time.Time
}

// Decision is the outcome of evaluating a State at a point in time.
// State carries the possibly-refilled balance; nothing is persisted here.
type Decision struct {
	State    State
	Refilled bool
	Allowed  bool
}

// Evaluate applies the rolling refill rule and decides whether a generation
// may be admitted. Pure function: callers own persistence of the result.
//
// The refill is a saturating reset, not an accrual: any number of missed
// windows snaps the balance to MaxCredits exactly once. Elapsed time equal
// to the window does not refill (strict >), and a LastRefillAt in the
// future (clock skew) simply means the refill is not yet due.
func Evaluate(s State, now time.Time) Decision {
	d := Decision{State: s}

	if now.Sub(s.LastRefillAt) > RefillWindow {
		d.State.Credits = MaxCredits
		d.State.LastRefillAt = now
		d.Refilled = true
	}

	d.Allowed = d.State.Credits > 0
	return d
}

// ResetIn reports how long until the next refill becomes due, clamped at zero.
func ResetIn(s State, now time.Time) time.Duration {
	remaining := RefillWindow - now.Sub(s.LastRefillAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
