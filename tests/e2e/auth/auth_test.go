//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "github.com/akshattiwarii/Peakster/internal/handler/dto/response"
	"github.com/akshattiwarii/Peakster/tests/common/builder"
	"github.com/akshattiwarii/Peakster/tests/common/httptest"
	"github.com/akshattiwarii/Peakster/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegisterLoginMe() {
	s.Run("新規登録からログイン、プロフィール取得まで", func() {
		regBody := builder.NewAuthBuilder().BuildRegisterDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, regBody, "")

		var regResp resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &regResp)
		s.NotEmpty(regResp.UserID)

		loginBody := builder.NewAuthBuilder().BuildLoginDTO()
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, loginBody, "")

		var loginResp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &loginResp)
		s.NotEmpty(loginResp.Token)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, loginResp.Token)

		var meResp resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &meResp)
		s.Equal(regResp.UserID, meResp.ID)
		// A fresh account starts with a full balance.
		s.Equal(5, meResp.Credits)
	})

	s.Run("重複メールアドレスの登録は409", func() {
		regBody := builder.NewAuthBuilder().BuildRegisterDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, regBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, regBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("誤ったパスワードでのログインは401", func() {
		regBody := builder.NewAuthBuilder().BuildRegisterDTO()
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, regBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		loginBody := builder.NewAuthBuilder().BuildLoginDTO()
		loginBody.Password = "wrongpassword"
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, loginBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("トークンなしでのプロフィール取得は401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
