//go:build e2e

package trips_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "github.com/akshattiwarii/Peakster/internal/handler/dto/response"
	"github.com/akshattiwarii/Peakster/tests/common/builder"
	"github.com/akshattiwarii/Peakster/tests/common/dbtest"
	"github.com/akshattiwarii/Peakster/tests/common/httptest"
	"github.com/akshattiwarii/Peakster/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	planURL     = "/api/trips/plan"
	tripsURL    = "/api/trips"
)

type tripsSuite struct {
	e2e.SharedSuite
}

func TestTripsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(tripsSuite))
}

// registers a fresh account over HTTP and returns its id and bearer token
func (s *tripsSuite) registerAndLogin() (uuid.UUID, string) {
	regBody := builder.NewAuthBuilder().BuildRegisterDTO()
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, regBody, "")

	var regResp resdto.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &regResp)

	loginBody := builder.NewAuthBuilder().BuildLoginDTO()
	rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, loginBody, "")

	var loginResp resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &loginResp)

	return regResp.UserID, loginResp.Token
}

func (s *tripsSuite) insertTrip(userID uuid.UUID, destination string) uuid.UUID {
	tripID := uuid.New()
	_, err := s.DB.Exec(context.Background(),
		"INSERT INTO trips (id, user_id, destination, source, days, budget, travelers, itinerary) VALUES ($1, $2, $3, 'Delhi', 3, 15000, '2 friends', '## Plan')",
		tripID, userID, destination)
	s.Require().NoError(err)
	return tripID
}

func (s *tripsSuite) TestPlanQuota() {
	s.Run("クレジット残高ゼロでのプラン生成は403", func() {
		userID, token := s.registerAndLogin()
		dbtest.SetCredits(s.T(), s.DB, userID, 0, time.Now().Add(-2*time.Hour))

		planBody := builder.NewPlanBuilder().BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, planURL, planBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient credits. Resets in")
	})

	s.Run("プロフィールが無いユーザーは404", func() {
		userID, token := s.registerAndLogin()
		_, err := s.DB.Exec(context.Background(), "DELETE FROM profiles WHERE user_id = $1", userID)
		s.Require().NoError(err)

		planBody := builder.NewPlanBuilder().BuildDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, planURL, planBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User profile not found")
	})
}

func (s *tripsSuite) TestTripHistory() {
	s.Run("保存済みトリップの一覧と取得", func() {
		userID, token := s.registerAndLogin()
		tripID := s.insertTrip(userID, "Manali")
		s.insertTrip(userID, "Jaipur")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tripsURL, nil, token)

		var listResp []resdto.TripListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &listResp)
		s.Len(listResp, 2)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tripsURL+"/"+tripID.String(), nil, token)

		var tripResp resdto.TripResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tripResp)
		s.Equal("Manali", tripResp.Destination)
		s.Equal("## Plan", tripResp.Itinerary)
		// created_at is assigned by the database on insert.
		s.False(tripResp.CreatedAt.IsZero())
	})

	s.Run("他ユーザーのトリップ取得は404", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", "traveler")
		tripID := s.insertTrip(ownerID, "Manali")

		_, token := s.registerAndLogin()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tripsURL+"/"+tripID.String(), nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Trip not found")
	})

	s.Run("トリップ削除は204", func() {
		userID, token := s.registerAndLogin()
		tripID := s.insertTrip(userID, "Manali")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, tripsURL+"/"+tripID.String(), nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tripsURL+"/"+tripID.String(), nil, token)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
