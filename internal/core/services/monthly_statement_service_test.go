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

type MonthlyStatementServiceTestSuite struct {
	suite.Suite
	mockRepo          *MockMonthlyStatementRepository
	mockStatementRepo *MockStatementRepository
	mockFeeRepo       *MockMaintenanceFeeRepository
	mockApartmentRepo *MockApartmentRepository
	mockAuthorizer    *MockCondominiumAuthorizer
	service           portssvc.MonthlyStatementSvcFacade
	condominiumID     string
	apartmentID       string
	userID            string
}

func (suite *MonthlyStatementServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMonthlyStatementRepository)
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockFeeRepo = new(MockMaintenanceFeeRepository)
	suite.mockApartmentRepo = new(MockApartmentRepository)
	suite.mockAuthorizer = new(MockCondominiumAuthorizer)
	suite.service = services.NewMonthlyStatementService(suite.mockRepo,
		services.WithMonthlyStatementCondominiumAuthorizer(suite.mockAuthorizer),
		services.WithMonthlyStatementStatementRepository(suite.mockStatementRepo),
		services.WithMonthlyStatementFeeRepository(suite.mockFeeRepo),
		services.WithMonthlyStatementApartmentRepository(suite.mockApartmentRepo),
	)
	suite.condominiumID = uuid.NewString()
	suite.apartmentID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *MonthlyStatementServiceTestSuite) expectRole(role domain.CondominiumRole, result error) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, suite.userID, suite.condominiumID, role).Return(result).Once()
}

func (suite *MonthlyStatementServiceTestSuite) expectApartment() {
	suite.mockApartmentRepo.On("FindApartmentByID", mock.Anything, suite.apartmentID).
		Return(&domain.Apartment{ApartmentID: suite.apartmentID, CondominiumID: suite.condominiumID}, nil).Once()
}

func (suite *MonthlyStatementServiceTestSuite) TestGenerateMonthlyStatement_BalanceCarriesForward() {
	ctx := context.Background()
	period := domain.StatementPeriod{Year: 2025, Month: 4}
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	suite.expectRole(domain.RoleAdmin, nil)
	suite.expectApartment()

	fee := &domain.MaintenanceFee{
		MaintenanceFeeID: uuid.NewString(),
		CondominiumID:    suite.condominiumID,
		Amount:           decimal.NewFromInt(1500),
	}
	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, from, to).Return(fee, nil).Once()
	suite.mockStatementRepo.On("SumConfirmedPaymentsByApartment", mock.Anything, suite.apartmentID, from, to).
		Return(decimal.NewFromInt(1000), nil).Once()

	// March closed 500 in the red; April opens with that debt.
	suite.mockRepo.On("FindMonthlyStatement", mock.Anything, suite.apartmentID, 2025, 3).
		Return(&domain.MonthlyStatement{ClosingBalance: decimal.NewFromInt(500)}, nil).Once()

	suite.mockRepo.On("UpsertMonthlyStatement", mock.Anything, mock.MatchedBy(func(st domain.MonthlyStatement) bool {
		return st.ApartmentID == suite.apartmentID &&
			st.Year == 2025 && st.Month == 4 &&
			st.OpeningBalance.Equal(decimal.NewFromInt(500)) &&
			st.ChargedAmount.Equal(decimal.NewFromInt(1500)) &&
			st.PaidAmount.Equal(decimal.NewFromInt(1000)) &&
			st.ClosingBalance.Equal(decimal.NewFromInt(1000)) // 500 + 1500 - 1000
	})).Return(nil).Once()

	persisted := &domain.MonthlyStatement{
		MonthlyStatementID: uuid.NewString(),
		ApartmentID:        suite.apartmentID,
		Year:               2025,
		Month:              4,
		OpeningBalance:     decimal.NewFromInt(500),
		ChargedAmount:      decimal.NewFromInt(1500),
		PaidAmount:         decimal.NewFromInt(1000),
		ClosingBalance:     decimal.NewFromInt(1000),
	}
	suite.mockRepo.On("FindMonthlyStatement", mock.Anything, suite.apartmentID, 2025, 4).Return(persisted, nil).Once()

	statement, err := suite.service.GenerateMonthlyStatement(ctx, suite.condominiumID, suite.apartmentID, period, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.True(statement.ClosingBalance.Equal(decimal.NewFromInt(1000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyStatementServiceTestSuite) TestGenerateMonthlyStatement_FirstPeriodOpensAtZero() {
	ctx := context.Background()
	period := domain.StatementPeriod{Year: 2025, Month: 1}
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.expectRole(domain.RoleAdmin, nil)
	suite.expectApartment()

	// No fee and no payments yet.
	suite.mockFeeRepo.On("FindFeeForPeriod", mock.Anything, suite.condominiumID, from, to).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStatementRepo.On("SumConfirmedPaymentsByApartment", mock.Anything, suite.apartmentID, from, to).
		Return(decimal.Zero, nil).Once()
	suite.mockRepo.On("FindMonthlyStatement", mock.Anything, suite.apartmentID, 2024, 12).
		Return(nil, apperrors.ErrNotFound).Once()

	suite.mockRepo.On("UpsertMonthlyStatement", mock.Anything, mock.MatchedBy(func(st domain.MonthlyStatement) bool {
		return st.OpeningBalance.IsZero() && st.ChargedAmount.IsZero() && st.PaidAmount.IsZero() && st.ClosingBalance.IsZero()
	})).Return(nil).Once()
	suite.mockRepo.On("FindMonthlyStatement", mock.Anything, suite.apartmentID, 2025, 1).
		Return(&domain.MonthlyStatement{MonthlyStatementID: uuid.NewString(), ApartmentID: suite.apartmentID, Year: 2025, Month: 1}, nil).Once()

	statement, err := suite.service.GenerateMonthlyStatement(ctx, suite.condominiumID, suite.apartmentID, period, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MonthlyStatementServiceTestSuite) TestGenerateMonthlyStatement_InvalidMonth() {
	ctx := context.Background()
	suite.expectRole(domain.RoleAdmin, nil)

	_, err := suite.service.GenerateMonthlyStatement(ctx, suite.condominiumID, suite.apartmentID, domain.StatementPeriod{Year: 2025, Month: 0}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *MonthlyStatementServiceTestSuite) TestGenerateMonthlyStatement_NonAdminForbidden() {
	ctx := context.Background()
	suite.expectRole(domain.RoleAdmin, apperrors.ErrForbidden)

	_, err := suite.service.GenerateMonthlyStatement(ctx, suite.condominiumID, suite.apartmentID, domain.StatementPeriod{Year: 2025, Month: 4}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertMonthlyStatement", mock.Anything, mock.Anything)
}

func (suite *MonthlyStatementServiceTestSuite) TestGetMonthlyStatement_ForeignApartmentHiddenAsNotFound() {
	ctx := context.Background()
	suite.expectRole(domain.RoleReadOnly, nil)
	suite.mockApartmentRepo.On("FindApartmentByID", mock.Anything, suite.apartmentID).
		Return(&domain.Apartment{ApartmentID: suite.apartmentID, CondominiumID: uuid.NewString()}, nil).Once()

	statement, err := suite.service.GetMonthlyStatement(ctx, suite.condominiumID, suite.apartmentID, domain.StatementPeriod{Year: 2025, Month: 4}, suite.userID)

	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MonthlyStatementServiceTestSuite) TestListMonthlyStatements_EmptyHistory() {
	ctx := context.Background()
	suite.expectRole(domain.RoleReadOnly, nil)
	suite.expectApartment()
	suite.mockRepo.On("ListMonthlyStatementsByApartmentID", mock.Anything, suite.apartmentID, 12, 0).
		Return([]domain.MonthlyStatement{}, nil).Once()

	statements, err := suite.service.ListMonthlyStatements(ctx, suite.condominiumID, suite.apartmentID, suite.userID, 12, 0)

	suite.Require().NoError(err)
	suite.NotNil(statements)
	suite.Empty(statements)
}

func TestMonthlyStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonthlyStatementServiceTestSuite))
}
