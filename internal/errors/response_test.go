package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(ParseNoAmount, s.traceID)

	s.Equal("PARSE_001", response.Error.Code)
	s.Equal("No amount could be recognized in the text", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		ExpenseNotFound,
		s.traceID,
		WithMessage("first"),
		WithMessage("Expense is gone"),
		WithDetails("id: 1"),
		WithDetails("id: 2", "user: 3"),
	)

	s.Equal("Expense is gone", response.Error.Message)
	s.Equal([]string{"id: 2", "user: 3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewFieldValidationError_SortedDetails() {
	response := NewFieldValidationError(map[string]string{
		"text":        "is required",
		"category_id": "must be a known category",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal([]string{"category_id: must be a known category", "text: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_List() {
	details := []string{"text: is required"}
	response := NewValidationError(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternals() {
	internalErr := errors.New("pq: relation \"expenses\" does not exist")

	response, original := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "expenses")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, original)
}

func (s *ResponseTestSuite) TestWrapTelegramError() {
	cause := errors.New("bad gateway")

	response, original := WrapTelegramError(cause, true, s.traceID)
	s.Equal(string(TelegramUnavailable), response.Error.Code)
	s.Equal(cause, original)

	response, _ = WrapTelegramError(cause, false, s.traceID)
	s.Equal(string(TelegramAPIError), response.Error.Code)
}

func (s *ResponseTestSuite) TestToJSON_Structure() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("text: is required"))

	jsonBytes, err := response.ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Equal("VALIDATION_001", errorObj["code"])
	s.Equal(s.traceID, errorObj["trace_id"])
	s.IsType([]interface{}{}, errorObj["details"])
}

func (s *ResponseTestSuite) TestToJSON_OmitsEmptyDetails() {
	jsonBytes, err := NewErrorResponse(AuthMissingToken, s.traceID).ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	_, hasDetails := jsonMap["error"].(map[string]interface{})["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidUserID, http.StatusBadRequest},
		{WebhookInvalidUpdate, http.StatusBadRequest},
		{WebhookInvalidURL, http.StatusBadRequest},
		{ParseTextTooLong, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInvalidTokenFormat, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{WebhookInvalidSecret, http.StatusForbidden},
		{ExpenseNotFound, http.StatusNotFound},
		{ExpenseNoPendingAmount, http.StatusNotFound},
		{ParseNoAmount, http.StatusUnprocessableEntity},
		{ParseUnknownCategory, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{TelegramAPIError, http.StatusBadGateway},
		{TelegramUnavailable, http.StatusServiceUnavailable},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	for _, code := range []ErrorCode{ValidationGeneral, AuthMissingToken, ParseNoAmount, ExpenseNotFound} {
		response := NewErrorResponse(code, s.traceID)
		s.True(response.IsClientError(), code)
		s.False(response.IsServerError(), code)
	}

	for _, code := range []ErrorCode{SystemInternalError, TelegramAPIError, TelegramUnavailable} {
		response := NewErrorResponse(code, s.traceID)
		s.True(response.IsServerError(), code)
		s.False(response.IsClientError(), code)
	}
}

func (s *ResponseTestSuite) TestString() {
	str := NewErrorResponse(ExpenseNotFound, s.traceID).String()

	s.Contains(str, "EXPENSE_001")
	s.Contains(str, "Expense not found")
	s.Contains(str, s.traceID)
}
