package handlers

import (
	"context"
	"strings"

	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// requestContext carries the request trace ID into service calls so bot
// events can be correlated with the HTTP log line
func requestContext(c echo.Context) context.Context {
	return services.WithCorrelationID(c.Request().Context(), getTraceID(c))
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
