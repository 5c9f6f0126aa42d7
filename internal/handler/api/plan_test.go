//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/akshattiwarii/Peakster/internal/handler/api"
	reqdto "github.com/akshattiwarii/Peakster/internal/handler/dto/request"
	resdto "github.com/akshattiwarii/Peakster/internal/handler/dto/response"
	"github.com/akshattiwarii/Peakster/internal/pkg/errs"
	"github.com/akshattiwarii/Peakster/internal/usecase/commands"
	"github.com/akshattiwarii/Peakster/tests/common/builder"
	"github.com/akshattiwarii/Peakster/tests/common/httptest"
	"github.com/akshattiwarii/Peakster/tests/common/testutil"
	commandsmock "github.com/akshattiwarii/Peakster/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlanHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockPlanCommands *commandsmock.MockPlanCommands
	mockTripCommands *commandsmock.MockTripCommands
	handler          *api.PlanHandler
	userID           uuid.UUID
}

func (s *PlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlanCommands = commandsmock.NewMockPlanCommands(s.mockCtrl)
	s.mockTripCommands = commandsmock.NewMockTripCommands(s.mockCtrl)
	s.handler = api.NewPlanHandler(s.mockPlanCommands, s.mockTripCommands)
	s.userID = uuid.New()

	s.router.POST("/trips/plan", func(c *gin.Context) {
		// Mock middleware behavior
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.PlanTrip(c)
	})
}

func (s *PlanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlanHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlanHandlerTestSuite))
}

func (s *PlanHandlerTestSuite) TestPlanTrip() {
	url := "/trips/plan"
	reqBody := builder.NewPlanBuilder().BuildDTO()

	s.Run("success: returns 200 OK with itinerary and saves the trip", func() {
		s.mockPlanCommands.EXPECT().PlanTrip(gomock.Any(), reqBody, s.userID).
			Return(&commands.PlanTripResult{Itinerary: "PLAN", CreditsRemaining: 4}, nil).Times(1)

		saved := make(chan struct{})
		s.mockTripCommands.EXPECT().SaveTrip(gomock.Any(), s.userID, reqBody, "PLAN").
			DoAndReturn(func(context.Context, uuid.UUID, reqdto.PlanTripRequest, string) (uuid.UUID, error) {
				close(saved)
				return uuid.New(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.PlanTripResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("PLAN", response.Result)

		select {
		case <-saved:
		case <-time.After(time.Second):
			s.Fail("trip save was not triggered")
		}
	})

	s.Run("error: 401 Unauthorized without auth context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing destination", mutate: testutil.Field("destination", nil)},
			{name: "zero days", mutate: testutil.Field("days", 0)},
			{name: "negative budget", mutate: testutil.Field("budget", -1)},
			{name: "missing travelers", mutate: testutil.Field("travelers", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 404 Not Found when the quota profile is missing", func() {
		s.mockPlanCommands.EXPECT().PlanTrip(gomock.Any(), reqBody, s.userID).
			Return(nil, commands.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User profile not found")
	})

	s.Run("error: 403 Forbidden with reset hint when credits are exhausted", func() {
		exhausted := errs.Mark(&commands.QuotaExhaustedError{ResetIn: 22 * time.Hour}, commands.ErrQuotaExhausted)
		s.mockPlanCommands.EXPECT().PlanTrip(gomock.Any(), reqBody, s.userID).
			Return(nil, exhausted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient credits. Resets in 22h0m0s.")
	})

	s.Run("error: 400 Bad Request when the command rejects the plan", func() {
		rejected := errs.Mark(errs.New("days must be positive"), commands.ErrInvalidPlanRequest)
		s.mockPlanCommands.EXPECT().PlanTrip(gomock.Any(), reqBody, s.userID).
			Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid plan request")
	})

	s.Run("error: 500 Internal Server Error when generation fails", func() {
		failed := errs.Mark(errs.New("backend unavailable"), commands.ErrGenerationFailed)
		s.mockPlanCommands.EXPECT().PlanTrip(gomock.Any(), reqBody, s.userID).
			Return(nil, failed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "AI service unavailable")
	})
}
