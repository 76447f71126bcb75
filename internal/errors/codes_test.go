package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func (s *CodesTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		code     ErrorCode
		expected string
	}{
		{AuthMissingToken, "Authorization token is required"},
		{ValidationGeneral, "Validation failed"},
		{ParseNoAmount, "No amount could be recognized in the text"},
		{ExpenseNoPendingAmount, "No pending amount waiting for a category"},
		{WebhookInvalidSecret, "Webhook secret token mismatch"},
		{TelegramUnavailable, "Telegram Bot API is temporarily unavailable"},
		{SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_Unknown() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(ParseUnknownCategory))
	s.True(IsValidErrorCode(SystemRateLimitExceeded))
	s.False(IsValidErrorCode("PARSE_999"))
	s.False(IsValidErrorCode(""))
}

func (s *CodesTestSuite) TestCodesFollowPrefixConvention() {
	prefixes := []string{"AUTH_", "VALIDATION_", "PARSE_", "EXPENSE_", "WEBHOOK_", "TELEGRAM_", "SYSTEM_"}

	for code, message := range errorMessages {
		s.NotEmpty(message, code)

		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "unexpected prefix on %s", code)
	}
}
