package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/handlers"
	"github.com/CondoSphere/condo_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementService ---
type MockStatementService struct {
	mock.Mock
}

func (m *MockStatementService) BuildAccountStatement(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string) (*domain.AccountStatement, error) {
	args := m.Called(ctx, condominiumID, period, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountStatement), args.Error(1)
}

func (m *MockStatementService) RenderAccountStatementPDF(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string, w io.Writer) error {
	args := m.Called(ctx, condominiumID, period, requestingUserID, w)
	return args.Error(0)
}

var _ portssvc.StatementSvcFacade = (*MockStatementService)(nil)

// --- Mock MonthlyStatementService ---
type MockMonthlyStatementService struct {
	mock.Mock
}

func (m *MockMonthlyStatementService) GetMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error) {
	args := m.Called(ctx, condominiumID, apartmentID, period, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyStatement), args.Error(1)
}

func (m *MockMonthlyStatementService) ListMonthlyStatements(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.MonthlyStatement, error) {
	args := m.Called(ctx, condominiumID, apartmentID, requestingUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStatement), args.Error(1)
}

func (m *MockMonthlyStatementService) GenerateMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error) {
	args := m.Called(ctx, condominiumID, apartmentID, period, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyStatement), args.Error(1)
}

var _ portssvc.MonthlyStatementSvcFacade = (*MockMonthlyStatementService)(nil)

// --- Test Suite ---
type StatementHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockStatement *MockStatementService
	mockMonthly   *MockMonthlyStatementService
	jwtSecret     string
	condominiumID string
	apartmentID   string
	userID        string
}

func (suite *StatementHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cma-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *StatementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockStatement = new(MockStatementService)
	suite.mockMonthly = new(MockMonthlyStatementService)

	condominiumGroup := suite.router.Group("/api/v1/condominiums/:condominium_id")
	handlers.RegisterStatementRoutes(condominiumGroup, suite.mockStatement, suite.mockMonthly)

	suite.condominiumID = uuid.NewString()
	suite.apartmentID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *StatementHandlerTestSuite) doRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatement_Success() {
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	statement := &domain.AccountStatement{
		CondominiumID:   suite.condominiumID,
		CondominiumName: "Torre Norte",
		Period:          period,
		GeneratedAt:     time.Now(),
		Payments: []domain.StatementPaymentLine{
			{PaymentID: uuid.NewString(), ApartmentName: "A-101", Amount: decimal.NewFromInt(1500), PaymentStatus: domain.PaymentConfirmed},
		},
		Totals: domain.StatementTotals{
			Confirmed: decimal.NewFromInt(1500),
			Pending:   decimal.Zero,
			Canceled:  decimal.Zero,
			Refunded:  decimal.Zero,
			Grand:     decimal.NewFromInt(1500),
		},
	}
	suite.mockStatement.On("BuildAccountStatement", mock.Anything, suite.condominiumID, period, suite.userID).
		Return(statement, nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account?month=2025-04", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.AccountStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2025-04", body.Period)
	suite.Equal("Torre Norte", body.CondominiumName)
	suite.Len(body.Payments, 1)
	suite.True(body.Totals.Grand.Equal(decimal.NewFromInt(1500)))
	suite.mockStatement.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatement_BadMonthFormat() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account?month=April-2025", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "YYYY-MM")
	suite.mockStatement.AssertNotCalled(suite.T(), "BuildAccountStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatement_MissingMonth() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatement.AssertNotCalled(suite.T(), "BuildAccountStatement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatement_NotFound() {
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	suite.mockStatement.On("BuildAccountStatement", mock.Anything, suite.condominiumID, period, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account?month=2025-04", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatement_NoToken() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account?month=2025-04", suite.condominiumID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatementPDF_SetsDownloadHeaders() {
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	suite.mockStatement.On("RenderAccountStatementPDF", mock.Anything, suite.condominiumID, period, suite.userID, mock.Anything).
		Run(func(args mock.Arguments) {
			w := args.Get(4).(io.Writer)
			_, _ = w.Write([]byte("%PDF-1.4 test"))
		}).
		Return(nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account/pdf?month=2025-04", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal("attachment; filename=account-statement.pdf", w.Header().Get("Content-Disposition"))
	suite.True(len(w.Body.Bytes()) > 0 && string(w.Body.Bytes()[:4]) == "%PDF")
	suite.mockStatement.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGetAccountStatementPDF_BadMonthFormat() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/statements/account/pdf?month=2025", suite.condominiumID)
	w := suite.doRequest(http.MethodGet, url)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockStatement.AssertNotCalled(suite.T(), "RenderAccountStatementPDF", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementHandlerTestSuite) TestGenerateMonthlyStatement_Created() {
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	persisted := &domain.MonthlyStatement{
		MonthlyStatementID: uuid.NewString(),
		ApartmentID:        suite.apartmentID,
		CondominiumID:      suite.condominiumID,
		Year:               2025,
		Month:              4,
		OpeningBalance:     decimal.NewFromInt(500),
		ChargedAmount:      decimal.NewFromInt(1500),
		PaidAmount:         decimal.NewFromInt(1000),
		ClosingBalance:     decimal.NewFromInt(1000),
	}
	suite.mockMonthly.On("GenerateMonthlyStatement", mock.Anything, suite.condominiumID, suite.apartmentID, period, suite.userID).
		Return(persisted, nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/apartments/%s/statements?month=2025-04", suite.condominiumID, suite.apartmentID)
	w := suite.doRequest(http.MethodPost, url)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.MonthlyStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("2025-04", body.Period)
	suite.True(body.ClosingBalance.Equal(decimal.NewFromInt(1000)))
	suite.mockMonthly.AssertExpectations(suite.T())
}

func (suite *StatementHandlerTestSuite) TestGenerateMonthlyStatement_ForbiddenForResident() {
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	suite.mockMonthly.On("GenerateMonthlyStatement", mock.Anything, suite.condominiumID, suite.apartmentID, period, suite.userID).
		Return(nil, apperrors.ErrForbidden).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/apartments/%s/statements?month=2025-04", suite.condominiumID, suite.apartmentID)
	w := suite.doRequest(http.MethodPost, url)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestStatementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(StatementHandlerTestSuite))
}
