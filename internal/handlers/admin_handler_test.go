package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expense-bot/internal/config"
	"expense-bot/internal/dto"
	"expense-bot/internal/models"
	"expense-bot/internal/parser"
	"expense-bot/internal/services"
	"expense-bot/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAdminHandler(t *testing.T) {
	suite.Run(t, new(AdminHandlerSuite))
}

type AdminHandlerSuite struct {
	suite.Suite
	telegram *service_mocks.MockTelegramClientInterface
	expenses *service_mocks.MockExpenseServiceInterface
	cfg      *config.TelegramConfig
	handler  *AdminHandler
	now      time.Time
	e        *echo.Echo
}

func (s *AdminHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.telegram = service_mocks.NewMockTelegramClientInterface(ctrl)
	s.expenses = service_mocks.NewMockExpenseServiceInterface(ctrl)
	s.cfg = &config.TelegramConfig{
		PublicHost:    "bot.example.com",
		WebhookSecret: "s3cret",
	}
	s.now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	s.handler = NewAdminHandler(s.telegram, s.expenses, s.cfg, 20)
	s.handler.now = func() time.Time { return s.now }
	s.e = echo.New()
	s.e.Validator = NewValidator(parser.DefaultTaxonomy())
}

func (s *AdminHandlerSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AdminHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AdminHandlerSuite) TestSetWebhook_DefaultURL() {
	s.telegram.EXPECT().SetWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *dto.SetWebhookRequest) error {
			s.Equal("https://bot.example.com/api/webhook", req.URL)
			s.Equal("s3cret", req.SecretToken)
			s.Equal([]string{"message", "callback_query"}, req.AllowedUpdates)
			s.False(req.DropPendingUpdates)
			return nil
		}).Times(1)

	c, rec := s.newContext(http.MethodPost, "/admin/webhook", "")

	s.Require().NoError(s.handler.SetWebhook(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "https://bot.example.com/api/webhook")
}

func (s *AdminHandlerSuite) TestSetWebhook_ExplicitURL() {
	s.telegram.EXPECT().SetWebhook(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req *dto.SetWebhookRequest) error {
			s.Equal("https://other.example.com/hook", req.URL)
			s.True(req.DropPendingUpdates)
			return nil
		}).Times(1)

	c, rec := s.newContext(http.MethodPost, "/admin/webhook",
		`{"webhook_url":"https://other.example.com/hook","drop_pending_updates":true}`)

	s.Require().NoError(s.handler.SetWebhook(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AdminHandlerSuite) TestSetWebhook_NoPublicHost() {
	s.cfg.PublicHost = ""

	c, rec := s.newContext(http.MethodPost, "/admin/webhook", "")

	s.Require().NoError(s.handler.SetWebhook(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("WEBHOOK_003", s.errorCode(rec))
}

func (s *AdminHandlerSuite) TestSetWebhook_RejectsPlainHTTP() {
	c, _ := s.newContext(http.MethodPost, "/admin/webhook", `{"webhook_url":"http://insecure.example.com/hook"}`)

	err := s.handler.SetWebhook(c)

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("webhook_url", validationErrs[0].Tag())
}

func (s *AdminHandlerSuite) TestSetWebhook_TelegramFailures() {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedDetail string
	}{
		{
			name:           "rejected by telegram",
			err:            &services.TelegramAPIError{Method: "setWebhook", StatusCode: 400, Description: "Bad Request: bad webhook"},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "TELEGRAM_001",
			expectedDetail: "Bad Request: bad webhook",
		},
		{
			name:           "telegram server error",
			err:            &services.TelegramAPIError{Method: "setWebhook", StatusCode: 502, Description: "Bad Gateway"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "TELEGRAM_002",
		},
		{
			name:           "circuit open",
			err:            fmt.Errorf("setWebhook: %w", services.ErrCircuitBreakerOpen),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   "TELEGRAM_002",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.telegram.EXPECT().SetWebhook(gomock.Any(), gomock.Any()).Return(tt.err).Times(1)

			c, rec := s.newContext(http.MethodPost, "/admin/webhook", "")
			s.Require().NoError(s.handler.SetWebhook(c))

			s.Equal(tt.expectedStatus, rec.Code)
			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.expectedCode, resp.Error.Code)
			if tt.expectedDetail != "" {
				s.Contains(resp.Error.Details, tt.expectedDetail)
			}
		})
	}
}

func (s *AdminHandlerSuite) TestDeleteWebhook() {
	s.telegram.EXPECT().DeleteWebhook(gomock.Any(), true).Return(nil).Times(1)

	c, rec := s.newContext(http.MethodDelete, "/admin/webhook?drop_pending_updates=true", "")

	s.Require().NoError(s.handler.DeleteWebhook(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AdminHandlerSuite) TestGetWebhookInfo() {
	s.telegram.EXPECT().GetWebhookInfo(gomock.Any()).Return(&dto.WebhookInfo{
		URL:                "https://bot.example.com/api/webhook",
		PendingUpdateCount: 3,
	}, nil).Times(1)

	c, rec := s.newContext(http.MethodGet, "/admin/webhook", "")

	s.Require().NoError(s.handler.GetWebhookInfo(c))
	s.Equal(http.StatusOK, rec.Code)

	var info dto.WebhookInfo
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &info))
	s.Equal(3, info.PendingUpdateCount)
}

func (s *AdminHandlerSuite) TestGetBotInfo() {
	s.telegram.EXPECT().GetMe(gomock.Any()).Return(&dto.User{ID: 777, IsBot: true, FirstName: "Expenses", Username: "expense_bot"}, nil).Times(1)

	c, rec := s.newContext(http.MethodGet, "/admin/bot", "")

	s.Require().NoError(s.handler.GetBotInfo(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"id":777,"username":"expense_bot","first_name":"Expenses"}`, rec.Body.String())
}

func (s *AdminHandlerSuite) TestGetBotInfo_NetworkError() {
	s.telegram.EXPECT().GetMe(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused")).Times(1)

	c, rec := s.newContext(http.MethodGet, "/admin/bot", "")

	s.Require().NoError(s.handler.GetBotInfo(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("TELEGRAM_002", s.errorCode(rec))
}

func (s *AdminHandlerSuite) listContext(userID, query string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := s.newContext(http.MethodGet, "/admin/users/"+userID+"/expenses"+query, "")
	c.SetParamNames("userId")
	c.SetParamValues(userID)
	return c, rec
}

func (s *AdminHandlerSuite) TestListUserExpenses() {
	expense := models.Expense{
		ID:          uuid.New(),
		UserID:      42,
		ChatID:      42,
		Amount:      decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2),
		Description: gofakeit.Sentence(3),
		CategoryID:  "coffee",
		CreatedAt:   s.now,
	}
	stats := &models.ExpenseStats{
		Categories:   []models.CategorySummary{{CategoryID: "coffee", TotalAmount: decimal.NewFromInt(250), ExpenseCount: 1}},
		TotalAmount:  decimal.NewFromInt(250),
		ExpenseCount: 1,
	}
	s.expenses.EXPECT().GetUserExpenses(gomock.Any(), int64(42), models.ExpenseFilters{CategoryID: "coffee"}, 0, 20).
		Return([]models.Expense{expense}, int64(1), nil).Times(1)
	s.expenses.EXPECT().GetMonthlyStats(gomock.Any(), int64(42), s.now).Return(stats, nil).Times(1)

	c, rec := s.listContext("42", "?category=coffee")

	s.Require().NoError(s.handler.ListUserExpenses(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ExpensesListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
	s.Equal(20, resp.Limit)
	s.Require().Len(resp.Expenses, 1)
	s.Equal(expense.ID, resp.Expenses[0].ID)
	s.Equal(expense.Description, resp.Expenses[0].Description)
	s.True(expense.Amount.Equal(resp.Expenses[0].Amount))
	s.Require().NotNil(resp.Stats)
	s.Equal(int64(1), resp.Stats.ExpenseCount)
}

func (s *AdminHandlerSuite) TestListUserExpenses_Pagination() {
	s.expenses.EXPECT().GetUserExpenses(gomock.Any(), int64(42), models.ExpenseFilters{}, 10, 5).
		Return([]models.Expense{}, int64(12), nil).Times(1)
	s.expenses.EXPECT().GetMonthlyStats(gomock.Any(), int64(42), s.now).Return(&models.ExpenseStats{}, nil).Times(1)

	c, rec := s.listContext("42", "?offset=10&limit=5")

	s.Require().NoError(s.handler.ListUserExpenses(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AdminHandlerSuite) TestListUserExpenses_InvalidUserID() {
	for _, userID := range []string{"abc", "12.5"} {
		c, rec := s.listContext(userID, "")

		s.Require().NoError(s.handler.ListUserExpenses(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_005", s.errorCode(rec))
	}
}

func (s *AdminHandlerSuite) TestListUserExpenses_ValidationErrors() {
	tests := []struct {
		name        string
		userID      string
		query       string
		expectedTag string
	}{
		{name: "non-positive user ID", userID: "-5", expectedTag: "telegram_user_id"},
		{name: "unknown category", userID: "42", query: "?category=yachts", expectedTag: "category_id"},
		{name: "limit too large", userID: "42", query: "?limit=1000", expectedTag: "max"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, _ := s.listContext(tt.userID, tt.query)

			err := s.handler.ListUserExpenses(c)

			var validationErrs validator.ValidationErrors
			s.Require().ErrorAs(err, &validationErrs)
			s.Equal(tt.expectedTag, validationErrs[0].Tag())
		})
	}
}

func (s *AdminHandlerSuite) TestListUserExpenses_RepositoryFailure() {
	s.expenses.EXPECT().GetUserExpenses(gomock.Any(), int64(42), gomock.Any(), 0, 20).
		Return(nil, int64(0), errors.New("db gone")).Times(1)

	c, rec := s.listContext("42", "")

	s.Require().NoError(s.handler.ListUserExpenses(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
}
