package response

// PlanTripResponse mirrors the generation API contract: the itinerary text
// under "result".
type PlanTripResponse struct {
	Result string `json:"result"`
}
