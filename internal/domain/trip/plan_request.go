package trip

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDestination = errors.New("destination is required")
	ErrInvalidDays      = errors.New("days must be a positive integer")
	ErrInvalidBudget    = errors.New("budget must be positive")
	ErrEmptyTravelers   = errors.New("travelers is required")
)

// PlanRequest is a validated itinerary generation request. It is ephemeral:
// it lives for one call and is only persisted as part of a saved Trip.
type PlanRequest struct {
	destination string
	source      string
	days        int
	budget      float64
	travelers   string
}

func NewPlanRequest(destination, source string, days int, budget float64, travelers string) (PlanRequest, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return PlanRequest{}, ErrEmptyDestination
	}

	if days <= 0 {
		return PlanRequest{}, ErrInvalidDays
	}

	if budget <= 0 {
		return PlanRequest{}, ErrInvalidBudget
	}

	travelers = strings.TrimSpace(travelers)
	if travelers == "" {
		return PlanRequest{}, ErrEmptyTravelers
	}

	source = strings.TrimSpace(source)
	if source == "" {
		source = "anywhere"
	}

	return PlanRequest{
		destination: destination,
		source:      source,
		days:        days,
		budget:      budget,
		travelers:   travelers,
	}, nil
}

func (r PlanRequest) Destination() string { return r.destination }
func (r PlanRequest) Source() string      { return r.source }
func (r PlanRequest) Days() int           { return r.days }
func (r PlanRequest) Budget() float64     { return r.budget }
func (r PlanRequest) Travelers() string   { return r.travelers }

// Prompt renders the full generation prompt for this request. The section
// structure is fixed so the frontend can rely on the markdown headings.
func (r PlanRequest) Prompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are a budget travel planner. Create a trip plan for:
- User is traveling from %s to %s
- Duration: %d days
- Budget: ₹%.0f (Indian Rupees)
- Travelers: %s

`, r.source, r.destination, r.days, r.budget, r.travelers)

	b.WriteString(`STRICT FORMAT RULES:
1. Use short bullet points, NO long paragraphs
2. Be realistic about the budget
3. Use emojis for visual appeal

REQUIRED SECTIONS (in this exact order):

## ✅ Trip at a Glance
(4 short bullets max, each starting with ✔)
- Is the trip possible within budget?
- What type of traveler is this best for?
- Key highlights

`)

	fmt.Fprintf(&b, `## 🚌 Getting There (%s ➔ %s)
- Best Intercity Options (Train/Bus/Shared Cab) with approx costs
- Travel duration advice

`, r.source, r.destination)

	b.WriteString(`## 🟢 Quick Summary
(2-3 lines max describing the trip)

## 💰 Budget Breakdown
(Use bullet format like this:)
- 🏨 Stay: ₹XXX–XXX
- 🍴 Food: ₹XXX–XXX
- 🚕 Local travel: ₹XXX–XXX
- 🚌 Intercity travel: ₹XXX–XXX
- 🎫 Entry fees: ₹XXX (if any)
- 💵 Total: ₹XXX

## 📅 Day-wise Plan
For each day use format:
### Day X
- Morning: (activity + cost)
- Afternoon: (activity + cost)
- Evening: (activity + cost)
- Food: (suggestion + cost)

## ⚠️ Pro Tips
(Max 4 short bullets with money-saving advice)

## 🔗 Book Your Trip
Always include these exact links at the end:
- 🚕 [Check cabs on Rapido](https://www.rapido.bike/)
- 🚌 [Book bus on RedBus](https://www.redbus.in/)
- 🏨 [Find stays on OYO](https://www.oyorooms.com/)
- ✈️ [Explore on Goibibo](https://www.goibibo.com/)

Keep it scannable. Make it product-ready, not essay-style.`)

	return b.String()
}
