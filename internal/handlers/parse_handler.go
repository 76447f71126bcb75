package handlers

import (
	"net/http"
	"unicode/utf8"

	"expense-bot/internal/dto"
	"expense-bot/internal/errors"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// ParseHandler exposes the recognition pipeline over HTTP
type ParseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewParseHandler creates a new parse handler
func NewParseHandler(expenseService services.ExpenseServiceInterface) *ParseHandler {
	return &ParseHandler{expenseService: expenseService}
}

// Parse runs free text through the pipeline without storing anything
// @Summary Parse expense text
// @Description Recognize amount, description and category in a free-text message
// @Tags Parse
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Text to parse"
// @Success 200 {object} dto.ParseResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / PARSE_002 - Invalid or oversized text"
// @Failure 422 {object} errors.ErrorResponse "PARSE_001 - No amount recognized"
// @Router /api/v1/parse [post]
func (h *ParseHandler) Parse(c echo.Context) error {
	var req dto.ParseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if utf8.RuneCountInString(req.Text) > dto.MaxParseTextLength {
		return SendError(c, errors.ParseTextTooLong)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	tx := h.expenseService.Parse(requestContext(c), req.Text)
	if tx == nil {
		return SendError(c, errors.ParseNoAmount)
	}

	return c.JSON(http.StatusOK, dto.NewParseResponse(tx))
}

// Categories lists the categories offered on the inline keyboard
// @Summary List categories
// @Tags Parse
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/v1/categories [get]
func (h *ParseHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewCategoriesResponse(h.expenseService.Taxonomy()))
}
