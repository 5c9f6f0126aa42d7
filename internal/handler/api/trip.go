package api

import (
	"net/http"

	resdto "github.com/akshattiwarii/Peakster/internal/handler/dto/response"
	"github.com/akshattiwarii/Peakster/internal/handler/middleware"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"
	"github.com/akshattiwarii/Peakster/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TripHandler struct {
	tripCommands commands.TripCommands
	tripQueries  queries.TripQueries
}

func NewTripHandler(tripCommands commands.TripCommands, tripQueries queries.TripQueries) *TripHandler {
	return &TripHandler{
		tripCommands: tripCommands,
		tripQueries:  tripQueries,
	}
}

// @Summary List trips
// @Description Get all saved trips for the current user
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TripListResponse
// @Failure 401 {object} map[string]string
// @Router /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.tripQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.TripListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromTripListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get trip
// @Description Get one saved trip by ID
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} resdto.TripResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trips/{id} [get]
func (h *TripHandler) GetTrip(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID format"})
		return
	}

	view, err := h.tripQueries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errs.Is(err, queries.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTripView(view))
}

// @Summary Delete trip
// @Description Delete one of the current user's saved trips
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trips/{id} [delete]
func (h *TripHandler) DeleteTrip(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip ID format"})
		return
	}

	if err := h.tripCommands.DeleteTrip(c.Request.Context(), id, userID); err != nil {
		if errs.Is(err, commands.ErrTripNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
