package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-bot/internal/database"
	"expense-bot/internal/dto"
	"expense-bot/internal/services"
	"expense-bot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestHealthCheckHandler(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerSuite))
}

type HealthCheckHandlerSuite struct {
	suite.Suite
	db      *database.DB
	breaker *service_mocks.MockCircuitBreakerInterface
	e       *echo.Echo
}

func (s *HealthCheckHandlerSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(gomock.NewController(s.T()))
	s.e = echo.New()
}

func (s *HealthCheckHandlerSuite) check(handler *HealthCheckHandler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Require().NoError(handler.HealthCheck(s.e.NewContext(req, rec)))
	return rec
}

func (s *HealthCheckHandlerSuite) TestHealthy() {
	s.breaker.EXPECT().GetState().Return(services.StateClosed).Times(1)

	rec := s.check(NewHealthCheckHandler(s.db.DB, s.breaker))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("healthy", resp.Status)
	s.Equal("ok", resp.Checks["database"])
	s.Equal("closed", resp.Checks["telegram"])
}

func (s *HealthCheckHandlerSuite) TestDegradedWhenBreakerOpen() {
	s.breaker.EXPECT().GetState().Return(services.StateOpen).Times(1)

	rec := s.check(NewHealthCheckHandler(s.db.DB, s.breaker))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("degraded", resp.Status)
	s.Equal("open", resp.Checks["telegram"])
}

func (s *HealthCheckHandlerSuite) TestWithoutBreaker() {
	rec := s.check(NewHealthCheckHandler(s.db.DB, nil))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotContains(resp.Checks, "telegram")
}

func (s *HealthCheckHandlerSuite) TestDatabaseDown() {
	s.Require().NoError(s.db.Close())

	rec := s.check(NewHealthCheckHandler(s.db.DB, s.breaker))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("SYSTEM_003", resp.Error.Code)
}
