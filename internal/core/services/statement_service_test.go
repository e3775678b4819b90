package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockStatementRepository
	mockFeeRepo    *MockMaintenanceFeeRepository
	mockCondoRepo  *MockCondominiumRepository
	mockAuthorizer *MockCondominiumAuthorizer
	service        portssvc.StatementSvcFacade
	condominiumID  string
	userID         string
	period         domain.StatementPeriod
	periodFrom     time.Time
	periodTo       time.Time
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStatementRepository)
	suite.mockFeeRepo = new(MockMaintenanceFeeRepository)
	suite.mockCondoRepo = new(MockCondominiumRepository)
	suite.mockAuthorizer = new(MockCondominiumAuthorizer)
	suite.service = services.NewStatementService(suite.mockRepo,
		services.WithStatementCondominiumAuthorizer(suite.mockAuthorizer),
		services.WithStatementFeeRepository(suite.mockFeeRepo),
		services.WithStatementCondominiumRepository(suite.mockCondoRepo),
	)
	suite.condominiumID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.period = domain.StatementPeriod{Year: 2025, Month: 4}
	suite.periodFrom = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.periodTo = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *StatementServiceTestSuite) expectAuthorized() {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.condominiumID, domain.RoleReadOnly).Return(nil).Once()
}

func (suite *StatementServiceTestSuite) expectCondominium(name string) {
	suite.mockCondoRepo.On("FindCondominiumByID", mock.Anything, suite.condominiumID).
		Return(&domain.Condominium{CondominiumID: suite.condominiumID, Name: name, Status: domain.StatusActive}, nil).Once()
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_InactiveCondominiumHiddenAsNotFound() {
	ctx := context.Background()
	suite.expectAuthorized()
	suite.mockCondoRepo.On("FindCondominiumByID", mock.Anything, suite.condominiumID).
		Return(&domain.Condominium{CondominiumID: suite.condominiumID, Status: domain.StatusInactive}, nil).Once()

	statement, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListStatementPayments", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_AggregatesTotalsPerStatus() {
	ctx := context.Background()
	suite.expectAuthorized()
	suite.expectCondominium("Torre Norte")

	fee := &domain.MaintenanceFee{
		MaintenanceFeeID: uuid.NewString(),
		CondominiumID:    suite.condominiumID,
		Detail:           "Maintenance fee April 2025",
		Amount:           decimal.NewFromInt(1500),
		Currency:         "MXN",
	}
	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, suite.periodFrom, suite.periodTo).Return(fee, nil).Once()

	payments := []domain.StatementPaymentLine{
		{PaymentID: uuid.NewString(), ApartmentName: "A-101", Amount: decimal.NewFromInt(1500), PaymentStatus: domain.PaymentConfirmed},
		{PaymentID: uuid.NewString(), ApartmentName: "A-102", Amount: decimal.NewFromInt(750), PaymentStatus: domain.PaymentPending},
	}
	suite.mockRepo.On("ListStatementPayments", mock.Anything, suite.condominiumID, fee.MaintenanceFeeID).Return(payments, nil).Once()

	statement, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Equal("Torre Norte", statement.CondominiumName)
	suite.Require().NotNil(statement.Fee)
	suite.True(statement.Fee.Amount.Equal(decimal.NewFromInt(1500)))
	suite.Len(statement.Payments, 2)
	suite.True(statement.Totals.Confirmed.Equal(decimal.NewFromInt(1500)), "confirmed total: %s", statement.Totals.Confirmed)
	suite.True(statement.Totals.Pending.Equal(decimal.NewFromInt(750)), "pending total: %s", statement.Totals.Pending)
	suite.True(statement.Totals.Grand.Equal(decimal.NewFromInt(2250)), "grand total: %s", statement.Totals.Grand)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_EmptyMonthIsValid() {
	ctx := context.Background()
	suite.expectAuthorized()
	suite.expectCondominium("Torre Norte")

	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, suite.periodFrom, suite.periodTo).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Nil(statement.Fee)
	suite.Empty(statement.Payments)
	suite.True(statement.Totals.Grand.IsZero())
	suite.True(statement.Totals.Confirmed.IsZero())
	suite.True(statement.Totals.Pending.IsZero())
	// No fee means nothing to reconcile; unrelated payments made that month
	// must not be fetched at all.
	suite.mockRepo.AssertNotCalled(suite.T(), "ListStatementPayments", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_NonCollectibleCountsByDefault() {
	ctx := context.Background()
	suite.expectAuthorized()
	suite.expectCondominium("Torre Norte")

	fee := &domain.MaintenanceFee{MaintenanceFeeID: uuid.NewString(), CondominiumID: suite.condominiumID}
	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, suite.periodFrom, suite.periodTo).Return(fee, nil).Once()
	payments := []domain.StatementPaymentLine{
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(1000), PaymentStatus: domain.PaymentConfirmed},
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(200), PaymentStatus: domain.PaymentCanceled},
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(300), PaymentStatus: domain.PaymentRefunded},
	}
	suite.mockRepo.On("ListStatementPayments", mock.Anything, suite.condominiumID, fee.MaintenanceFeeID).Return(payments, nil).Once()

	statement, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Require().NoError(err)
	suite.True(statement.Totals.Canceled.Equal(decimal.NewFromInt(200)))
	suite.True(statement.Totals.Refunded.Equal(decimal.NewFromInt(300)))
	suite.True(statement.Totals.Grand.Equal(decimal.NewFromInt(1500)), "grand total: %s", statement.Totals.Grand)
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_NonCollectibleExcluded() {
	ctx := context.Background()
	service := services.NewStatementService(suite.mockRepo,
		services.WithStatementCondominiumAuthorizer(suite.mockAuthorizer),
		services.WithStatementFeeRepository(suite.mockFeeRepo),
		services.WithStatementCondominiumRepository(suite.mockCondoRepo),
		services.WithIncludeNonCollectible(false),
	)
	suite.expectAuthorized()
	suite.expectCondominium("Torre Norte")

	fee := &domain.MaintenanceFee{MaintenanceFeeID: uuid.NewString(), CondominiumID: suite.condominiumID}
	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, suite.periodFrom, suite.periodTo).Return(fee, nil).Once()
	payments := []domain.StatementPaymentLine{
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(1000), PaymentStatus: domain.PaymentConfirmed},
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(200), PaymentStatus: domain.PaymentCanceled},
		{PaymentID: uuid.NewString(), Amount: decimal.NewFromInt(300), PaymentStatus: domain.PaymentRefunded},
	}
	suite.mockRepo.On("ListStatementPayments", mock.Anything, suite.condominiumID, fee.MaintenanceFeeID).Return(payments, nil).Once()

	statement, err := service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Require().NoError(err)
	suite.True(statement.Totals.Grand.Equal(decimal.NewFromInt(1000)), "grand total: %s", statement.Totals.Grand)
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_InvalidMonth() {
	ctx := context.Background()
	suite.expectAuthorized()

	_, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, domain.StatementPeriod{Year: 2025, Month: 13}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StatementServiceTestSuite) TestBuildAccountStatement_NonMemberGetsNotFound() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.condominiumID, domain.RoleReadOnly).Return(apperrors.ErrForbidden).Once()

	statement, err := suite.service.BuildAccountStatement(ctx, suite.condominiumID, suite.period, suite.userID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAuthorizer.AssertExpectations(suite.T())
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
