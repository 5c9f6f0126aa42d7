package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	resdto "github.com/akshattiwarii/Peakster/internal/handler/dto/response"
	"github.com/akshattiwarii/Peakster/internal/handler/middleware"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const saveTripTimeout = 10 * time.Second

type PlanHandler struct {
	planCommands commands.PlanCommands
	tripCommands commands.TripCommands
}

func NewPlanHandler(planCommands commands.PlanCommands, tripCommands commands.TripCommands) *PlanHandler {
	return &PlanHandler{
		planCommands: planCommands,
		tripCommands: tripCommands,
	}
}

// @Summary Plan a trip
// @Description Generate an AI travel itinerary, spending one credit
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PlanTripRequest true "Plan request"
// @Success 200 {object} resdto.PlanTripResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trips/plan [post]
func (h *PlanHandler) PlanTrip(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Unauthorized",
		})
		return
	}

	var req reqdto.PlanTripRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.planCommands.PlanTrip(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User profile not found",
			})
		case errs.Is(err, commands.ErrQuotaExhausted):
			c.JSON(http.StatusForbidden, gin.H{
				"error": quotaExhaustedMessage(err),
			})
		case errs.Is(err, commands.ErrInvalidPlanRequest):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid plan request",
			})
		case errs.Is(err, commands.ErrGenerationFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "AI service unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// The itinerary is already the user's; saving it is an independent
	// follow-up the response never waits for.
	go h.saveTrip(userID, req, result.Itinerary)

	c.JSON(http.StatusOK, resdto.PlanTripResponse{Result: result.Itinerary})
}

func (h *PlanHandler) saveTrip(userID uuid.UUID, req reqdto.PlanTripRequest, itinerary string) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTripTimeout)
	defer cancel()

	if _, err := h.tripCommands.SaveTrip(ctx, userID, req, itinerary); err != nil {
		slog.Warn("failed to save generated trip",
			"user_id", userID, "destination", req.Destination, "error", err.Error())
	}
}

func quotaExhaustedMessage(err error) string {
	var qe *commands.QuotaExhaustedError
	if errs.As(err, &qe) {
		return fmt.Sprintf("Insufficient credits. Resets in %s.", qe.ResetIn.Round(time.Minute))
	}
	return "Insufficient credits. Resets in 24h."
}
