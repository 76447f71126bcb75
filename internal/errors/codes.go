package errors

// ErrorCode represents a standardized error code returned by the HTTP API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidUserID ErrorCode = "VALIDATION_005"
)

// Parse error codes (PARSE_*)
const (
	ParseNoAmount        ErrorCode = "PARSE_001"
	ParseTextTooLong     ErrorCode = "PARSE_002"
	ParseUnknownCategory ErrorCode = "PARSE_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound        ErrorCode = "EXPENSE_001"
	ExpenseNoPendingAmount ErrorCode = "EXPENSE_002"
	ExpenseInvalidAmount   ErrorCode = "EXPENSE_003"
)

// Webhook error codes (WEBHOOK_*)
const (
	WebhookInvalidSecret ErrorCode = "WEBHOOK_001"
	WebhookInvalidUpdate ErrorCode = "WEBHOOK_002"
	WebhookInvalidURL    ErrorCode = "WEBHOOK_003"
)

// Telegram Bot API error codes (TELEGRAM_*)
const (
	TelegramAPIError    ErrorCode = "TELEGRAM_001"
	TelegramUnavailable ErrorCode = "TELEGRAM_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidUserID: "Invalid Telegram user ID",

	// Parse errors
	ParseNoAmount:        "No amount could be recognized in the text",
	ParseTextTooLong:     "Text is too long to parse",
	ParseUnknownCategory: "Unknown category",

	// Expense errors
	ExpenseNotFound:        "Expense not found",
	ExpenseNoPendingAmount: "No pending amount waiting for a category",
	ExpenseInvalidAmount:   "Invalid expense amount",

	// Webhook errors
	WebhookInvalidSecret: "Webhook secret token mismatch",
	WebhookInvalidUpdate: "Malformed Telegram update",
	WebhookInvalidURL:    "Webhook URL must be an absolute https URL",

	// Telegram errors
	TelegramAPIError:    "Telegram Bot API rejected the request",
	TelegramUnavailable: "Telegram Bot API is temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is registered
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
