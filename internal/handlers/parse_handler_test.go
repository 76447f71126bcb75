package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-bot/internal/dto"
	"expense-bot/internal/parser"
	"expense-bot/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestParseHandler(t *testing.T) {
	suite.Run(t, new(ParseHandlerSuite))
}

type ParseHandlerSuite struct {
	suite.Suite
	expenses *service_mocks.MockExpenseServiceInterface
	handler  *ParseHandler
	taxonomy *parser.Taxonomy
	e        *echo.Echo
}

func (s *ParseHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.expenses = service_mocks.NewMockExpenseServiceInterface(ctrl)
	s.handler = NewParseHandler(s.expenses)
	s.taxonomy = parser.DefaultTaxonomy()
	s.e = echo.New()
	s.e.Validator = NewValidator(s.taxonomy)
}

func (s *ParseHandlerSuite) request(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *ParseHandlerSuite) TestParse_Classified() {
	coffee, ok := s.taxonomy.ByID("coffee")
	s.Require().True(ok)
	s.expenses.EXPECT().Parse(gomock.Any(), "500 кофе").Return(&parser.ParsedTransaction{
		Amount:       decimal.NewFromInt(500),
		Description:  "кофе",
		Category:     coffee,
		StageReached: parser.StageExtension,
		Confidence:   0.8,
	}).Times(1)

	c, rec := s.request(`{"text":"500 кофе"}`)

	s.Require().NoError(s.handler.Parse(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ParseResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(decimal.NewFromInt(500).Equal(resp.Amount))
	s.Equal("кофе", resp.Description)
	s.Require().NotNil(resp.Category)
	s.Equal("coffee", resp.Category.ID)
	s.Equal(parser.StageExtension, resp.StageReached)
	s.False(resp.NeedsCategory)
}

func (s *ParseHandlerSuite) TestParse_BareAmountNeedsCategory() {
	s.expenses.EXPECT().Parse(gomock.Any(), "500").Return(&parser.ParsedTransaction{
		Amount:       decimal.NewFromInt(500),
		StageReached: parser.StageNumeric,
		Confidence:   parser.ConfidenceNumeric,
	}).Times(1)

	c, rec := s.request(`{"text":"500"}`)

	s.Require().NoError(s.handler.Parse(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ParseResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Nil(resp.Category)
	s.True(resp.NeedsCategory)
}

func (s *ParseHandlerSuite) TestParse_Errors() {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
		setupMocks     func()
	}{
		{
			name:           "no amount",
			body:           `{"text":"просто текст"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "PARSE_001",
			setupMocks: func() {
				s.expenses.EXPECT().Parse(gomock.Any(), "просто текст").Return(nil).Times(1)
			},
		},
		{
			name:           "text too long",
			body:           `{"text":"` + strings.Repeat("я", dto.MaxParseTextLength+1) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "PARSE_002",
			setupMocks:     func() {},
		},
		{
			name:           "malformed body",
			body:           `{"text":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_001",
			setupMocks:     func() {},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			c, rec := s.request(tt.body)
			s.Require().NoError(s.handler.Parse(c))

			s.Equal(tt.expectedStatus, rec.Code)
			var resp ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(tt.expectedCode, resp.Error.Code)
		})
	}
}

func (s *ParseHandlerSuite) TestParse_MaxLengthCountsRunes() {
	text := strings.Repeat("я", dto.MaxParseTextLength)
	s.expenses.EXPECT().Parse(gomock.Any(), text).Return(nil).Times(1)

	c, rec := s.request(`{"text":"` + text + `"}`)

	s.Require().NoError(s.handler.Parse(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
}

func (s *ParseHandlerSuite) TestParse_EmptyTextFailsValidation() {
	c, _ := s.request(`{"text":""}`)

	err := s.handler.Parse(c)

	var validationErrs validator.ValidationErrors
	s.Require().ErrorAs(err, &validationErrs)
	s.Equal("text", validationErrs[0].Field())
	s.Equal("required", validationErrs[0].Tag())
}

func (s *ParseHandlerSuite) TestCategories() {
	s.expenses.EXPECT().Taxonomy().Return(s.taxonomy).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.Categories(s.e.NewContext(req, rec)))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Categories, len(s.taxonomy.Options()))
	s.Equal(s.taxonomy.CatchAll().ID, resp.CatchAllID)
}
