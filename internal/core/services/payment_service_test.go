package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/core/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo          *MockPaymentRepository
	mockApartmentRepo *MockApartmentRepository
	mockFeeRepo       *MockMaintenanceFeeRepository
	mockServiceRepo   *MockCommonServiceRepository
	mockAuthorizer    *MockCondominiumAuthorizer
	service           portssvc.PaymentSvcFacade
	condominiumID     string
	apartmentID       string
	userID            string
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.mockApartmentRepo = new(MockApartmentRepository)
	suite.mockFeeRepo = new(MockMaintenanceFeeRepository)
	suite.mockServiceRepo = new(MockCommonServiceRepository)
	suite.mockAuthorizer = new(MockCondominiumAuthorizer)
	suite.service = services.NewPaymentService(suite.mockRepo,
		services.WithPaymentCondominiumAuthorizer(suite.mockAuthorizer),
		services.WithPaymentApartmentRepository(suite.mockApartmentRepo),
		services.WithPaymentFeeRepository(suite.mockFeeRepo),
		services.WithPaymentCommonServiceRepository(suite.mockServiceRepo),
	)
	suite.condominiumID = uuid.NewString()
	suite.apartmentID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *PaymentServiceTestSuite) expectRole(role domain.CondominiumRole, result error) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.condominiumID, role).Return(result).Once()
}

func (suite *PaymentServiceTestSuite) expectApartment() {
	suite.mockApartmentRepo.On("FindApartmentByID", mock.Anything, suite.apartmentID).
		Return(&domain.Apartment{ApartmentID: suite.apartmentID, CondominiumID: suite.condominiumID}, nil).Once()
}

func (suite *PaymentServiceTestSuite) feePaymentRequest() (dto.CreatePaymentRequest, string) {
	feeID := uuid.NewString()
	return dto.CreatePaymentRequest{
		ApartmentID:      suite.apartmentID,
		MaintenanceFeeID: &feeID,
		Amount:           decimal.NewFromInt(1500),
		Currency:         "MXN",
		PaymentDate:      time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		PaymentMethod:    "transfer",
	}, feeID
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	suite.expectRole(domain.RoleResident, nil)
	suite.expectApartment()

	req, feeID := suite.feePaymentRequest()
	suite.mockFeeRepo.On("FindMaintenanceFeeByID", mock.Anything, feeID).
		Return(&domain.MaintenanceFee{MaintenanceFeeID: feeID, CondominiumID: suite.condominiumID}, nil).Once()

	suite.mockRepo.On("SavePayment", mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ApartmentID == suite.apartmentID &&
			p.PaymentStatus == domain.PaymentPending &&
			p.MaintenanceFeeID != nil && *p.MaintenanceFeeID == feeID &&
			p.CreatedBy == suite.userID
	})).Return(&domain.Payment{PaymentID: uuid.NewString(), PaymentStatus: domain.PaymentPending}, true, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(domain.PaymentPending, payment.PaymentStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DuplicateIdempotencyKeyReturnsOriginal() {
	ctx := context.Background()
	suite.expectRole(domain.RoleResident, nil)
	suite.expectApartment()

	req, feeID := suite.feePaymentRequest()
	key := "payment-key-12345"
	req.IdempotencyKey = &key
	suite.mockFeeRepo.On("FindMaintenanceFeeByID", mock.Anything, feeID).
		Return(&domain.MaintenanceFee{MaintenanceFeeID: feeID, CondominiumID: suite.condominiumID}, nil).Once()

	original := &domain.Payment{PaymentID: uuid.NewString(), IdempotencyKey: &key, PaymentStatus: domain.PaymentPending}
	suite.mockRepo.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment")).Return(original, false, nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(original.PaymentID, payment.PaymentID, "the stored payment should be returned, not a new one")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RequiresExactlyOneTarget() {
	ctx := context.Background()

	// Neither target set
	suite.expectRole(domain.RoleResident, nil)
	req, _ := suite.feePaymentRequest()
	req.MaintenanceFeeID = nil
	_, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Both targets set
	suite.expectRole(domain.RoleResident, nil)
	req, _ = suite.feePaymentRequest()
	serviceID := uuid.NewString()
	req.CommonServiceID = &serviceID
	_, err = suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()
	suite.expectRole(domain.RoleResident, nil)

	req, _ := suite.feePaymentRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ForeignApartmentHiddenAsNotFound() {
	ctx := context.Background()
	suite.expectRole(domain.RoleResident, nil)

	// The apartment exists but belongs to a different condominium.
	suite.mockApartmentRepo.On("FindApartmentByID", mock.Anything, suite.apartmentID).
		Return(&domain.Apartment{ApartmentID: suite.apartmentID, CondominiumID: uuid.NewString()}, nil).Once()

	req, _ := suite.feePaymentRequest()
	_, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ForeignFeeHiddenAsNotFound() {
	ctx := context.Background()
	suite.expectRole(domain.RoleResident, nil)
	suite.expectApartment()

	req, feeID := suite.feePaymentRequest()
	suite.mockFeeRepo.On("FindMaintenanceFeeByID", mock.Anything, feeID).
		Return(&domain.MaintenanceFee{MaintenanceFeeID: feeID, CondominiumID: uuid.NewString()}, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.condominiumID, req, suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_Success() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.expectRole(domain.RoleAdmin, nil)
	suite.expectApartment()

	suite.mockRepo.On("FindPaymentByID", mock.Anything, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, ApartmentID: suite.apartmentID, PaymentStatus: domain.PaymentPending}, nil).Once()
	suite.mockRepo.On("UpdatePaymentStatus", mock.Anything, paymentID, domain.PaymentConfirmed, suite.userID).Return(nil).Once()

	err := suite.service.ConfirmPayment(ctx, suite.condominiumID, paymentID, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_WrongStateConflicts() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.expectRole(domain.RoleAdmin, nil)
	suite.expectApartment()

	suite.mockRepo.On("FindPaymentByID", mock.Anything, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, ApartmentID: suite.apartmentID, PaymentStatus: domain.PaymentCanceled}, nil).Once()

	err := suite.service.ConfirmPayment(ctx, suite.condominiumID, paymentID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRefundPayment_RequiresConfirmed() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.expectRole(domain.RoleAdmin, nil)
	suite.expectApartment()

	suite.mockRepo.On("FindPaymentByID", mock.Anything, paymentID).
		Return(&domain.Payment{PaymentID: paymentID, ApartmentID: suite.apartmentID, PaymentStatus: domain.PaymentPending}, nil).Once()

	err := suite.service.RefundPayment(ctx, suite.condominiumID, paymentID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PaymentServiceTestSuite) TestConfirmPayment_NonAdminForbidden() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.expectRole(domain.RoleAdmin, apperrors.ErrForbidden)

	err := suite.service.ConfirmPayment(ctx, suite.condominiumID, paymentID, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPaymentByID", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByCondominium_FirstPageWithToken() {
	ctx := context.Background()
	suite.expectRole(domain.RoleReadOnly, nil)

	// Three rows with limit 2: the extra row signals another page.
	payments := []domain.Payment{
		{PaymentID: uuid.NewString(), PaymentDate: time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)},
		{PaymentID: uuid.NewString(), PaymentDate: time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)},
		{PaymentID: uuid.NewString(), PaymentDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockRepo.On("ListPaymentsByCondominiumID", mock.Anything, suite.condominiumID, 3, time.Time{}, time.Time{}).Return(payments, nil).Once()

	page, nextToken, err := suite.service.ListPaymentsByCondominium(ctx, suite.condominiumID, suite.userID, 2, nil)

	suite.Require().NoError(err)
	suite.Len(page, 2)
	suite.Require().NotNil(nextToken)

	date, _, err := pagination.DecodeToken(*nextToken)
	suite.Require().NoError(err)
	suite.True(page[1].PaymentDate.Equal(date), "token should point at the last returned row")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByCondominium_LastPageHasNoToken() {
	ctx := context.Background()
	suite.expectRole(domain.RoleReadOnly, nil)

	payments := []domain.Payment{
		{PaymentID: uuid.NewString(), PaymentDate: time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockRepo.On("ListPaymentsByCondominiumID", mock.Anything, suite.condominiumID, 3, time.Time{}, time.Time{}).Return(payments, nil).Once()

	page, nextToken, err := suite.service.ListPaymentsByCondominium(ctx, suite.condominiumID, suite.userID, 2, nil)

	suite.Require().NoError(err)
	suite.Len(page, 1)
	suite.Nil(nextToken)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsByCondominium_InvalidToken() {
	ctx := context.Background()
	suite.expectRole(domain.RoleReadOnly, nil)

	badToken := "not a token"
	_, _, err := suite.service.ListPaymentsByCondominium(ctx, suite.condominiumID, suite.userID, 2, &badToken)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPaymentsByCondominiumID", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestGetPaymentByID_NonMemberGetsNotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	suite.expectRole(domain.RoleReadOnly, apperrors.ErrForbidden)

	payment, err := suite.service.GetPaymentByID(ctx, suite.condominiumID, paymentID, suite.userID)

	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
