package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, condominiumID, paymentID string, requestingUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, condominiumID, paymentID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByApartment(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, condominiumID, apartmentID, requestingUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPaymentsByCondominium(ctx context.Context, condominiumID string, requestingUserID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, condominiumID, requestingUserID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, condominiumID string, req dto.CreatePaymentRequest, requestingUserID string) (*domain.Payment, error) {
	args := m.Called(ctx, condominiumID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ConfirmPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	args := m.Called(ctx, condominiumID, paymentID, requestingUserID)
	return args.Error(0)
}

func (m *MockPaymentService) CancelPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	args := m.Called(ctx, condominiumID, paymentID, requestingUserID)
	return args.Error(0)
}

func (m *MockPaymentService) RefundPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	args := m.Called(ctx, condominiumID, paymentID, requestingUserID)
	return args.Error(0)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockPayment   *MockPaymentService
	jwtSecret     string
	condominiumID string
	userID        string
}

func (suite *PaymentHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockPayment = new(MockPaymentService)

	condominiumGroup := suite.router.Group("/api/v1/condominiums/:condominium_id")
	handlers.RegisterPaymentRoutes(condominiumGroup, suite.mockPayment)

	suite.condominiumID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PaymentHandlerTestSuite) doJSONRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_Created() {
	feeID := uuid.NewString()
	idempotencyKey := "req-2025-04-a101-0001"
	reqBody := dto.CreatePaymentRequest{
		ApartmentID:      uuid.NewString(),
		MaintenanceFeeID: &feeID,
		Amount:           decimal.NewFromInt(1500),
		Currency:         "MXN",
		PaymentDate:      time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod:    "transfer",
		IdempotencyKey:   &idempotencyKey,
	}
	payload, _ := json.Marshal(reqBody)

	recorded := &domain.Payment{
		PaymentID:        uuid.NewString(),
		ApartmentID:      reqBody.ApartmentID,
		MaintenanceFeeID: &feeID,
		Amount:           reqBody.Amount,
		Currency:         "MXN",
		PaymentDate:      reqBody.PaymentDate,
		PaymentMethod:    "transfer",
		PaymentStatus:    domain.PaymentPending,
		Status:           domain.StatusActive,
	}
	suite.mockPayment.On("RecordPayment", mock.Anything, suite.condominiumID,
		mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
			return r.ApartmentID == reqBody.ApartmentID &&
				r.MaintenanceFeeID != nil && *r.MaintenanceFeeID == feeID &&
				r.IdempotencyKey != nil && *r.IdempotencyKey == idempotencyKey
		}), suite.userID).Return(recorded, nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/payments", suite.condominiumID)
	w := suite.doJSONRequest(http.MethodPost, url, payload)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(recorded.PaymentID, body.PaymentID)
	suite.Equal(domain.PaymentPending, body.PaymentStatus)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestRecordPayment_InvalidBody() {
	url := fmt.Sprintf("/api/v1/condominiums/%s/payments", suite.condominiumID)
	w := suite.doJSONRequest(http.MethodPost, url, []byte(`{"amount":"not-a-number"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayment.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_ForwardsCursor() {
	inToken := "opaque-cursor-from-page-one"
	outToken := "opaque-cursor-for-page-three"
	payments := []domain.Payment{
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(900), PaymentStatus: domain.PaymentConfirmed},
	}
	suite.mockPayment.On("ListPaymentsByCondominium", mock.Anything, suite.condominiumID, suite.userID, 10,
		mock.MatchedBy(func(t *string) bool { return t != nil && *t == inToken }),
	).Return(payments, &outToken, nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/payments?limit=10&next_token=%s", suite.condominiumID, inToken)
	w := suite.doJSONRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Payments, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(outToken, *body.NextToken)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestConfirmPayment_NoContent() {
	paymentID := uuid.NewString()
	suite.mockPayment.On("ConfirmPayment", mock.Anything, suite.condominiumID, paymentID, suite.userID).Return(nil).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/payments/%s/confirm", suite.condominiumID, paymentID)
	w := suite.doJSONRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockPayment.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestConfirmPayment_WrongStateConflict() {
	paymentID := uuid.NewString()
	suite.mockPayment.On("ConfirmPayment", mock.Anything, suite.condominiumID, paymentID, suite.userID).
		Return(apperrors.NewConflictError("payment is not PENDING")).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/payments/%s/confirm", suite.condominiumID, paymentID)
	w := suite.doJSONRequest(http.MethodPost, url, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "PENDING")
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_NotFound() {
	paymentID := uuid.NewString()
	suite.mockPayment.On("GetPaymentByID", mock.Anything, suite.condominiumID, paymentID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	url := fmt.Sprintf("/api/v1/condominiums/%s/payments/%s", suite.condominiumID, paymentID)
	w := suite.doJSONRequest(http.MethodGet, url, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
