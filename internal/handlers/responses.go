package handlers

import (
	"errors"
	"net/http"

	apierrors "expense-bot/internal/errors"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures only through SendError (client and business
// errors), SendSystemError (internal errors, details hidden) and
// SendTelegramError (Bot API failures). Never return echo.NewHTTPError or
// raw errors other than validator results.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	errorResponse := apierrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := apierrors.WrapSystemError(err, getTraceID(c))
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendTelegramError maps a Bot API client failure to TELEGRAM_001 (rejected
// request) or TELEGRAM_002 (Telegram unreachable or circuit open)
func SendTelegramError(c echo.Context, err error) error {
	var apiErr *services.TelegramAPIError
	unavailable := true
	if errors.As(err, &apiErr) {
		unavailable = apiErr.Temporary()
	}

	errorResponse, _ := apierrors.WrapTelegramError(err, unavailable, getTraceID(c))
	if apiErr != nil {
		errorResponse.Error.Details = []string{apiErr.Description}
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
