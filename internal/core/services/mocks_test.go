package services_test

import (
	"context"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CondominiumAuthorizer ---
type MockCondominiumAuthorizer struct {
	mock.Mock
}

func (m *MockCondominiumAuthorizer) AuthorizeUserAction(ctx context.Context, userID, condominiumID string, requiredRole domain.CondominiumRole) error {
	args := m.Called(ctx, userID, condominiumID, requiredRole)
	return args.Error(0)
}

// --- Mock CondominiumRepository ---
type MockCondominiumRepository struct {
	mock.Mock
}

func (m *MockCondominiumRepository) FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) ListCondominiumsByUserID(ctx context.Context, userID string, includeInactive bool, role *domain.CondominiumRole) ([]domain.Condominium, error) {
	args := m.Called(ctx, userID, includeInactive, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Condominium), args.Error(1)
}

func (m *MockCondominiumRepository) SaveCondominium(ctx context.Context, condominium domain.Condominium) error {
	args := m.Called(ctx, condominium)
	return args.Error(0)
}

func (m *MockCondominiumRepository) UpdateCondominium(ctx context.Context, condominium domain.Condominium) error {
	args := m.Called(ctx, condominium)
	return args.Error(0)
}

func (m *MockCondominiumRepository) UpdateCondominiumStatus(ctx context.Context, condominiumID string, status domain.EntityStatus, updatedByUserID string) error {
	args := m.Called(ctx, condominiumID, status, updatedByUserID)
	return args.Error(0)
}

func (m *MockCondominiumRepository) AddUserToCondominium(ctx context.Context, membership domain.CondominiumMember) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockCondominiumRepository) FindUserCondominiumRole(ctx context.Context, userID, condominiumID string) (*domain.CondominiumMember, error) {
	args := m.Called(ctx, userID, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CondominiumMember), args.Error(1)
}

func (m *MockCondominiumRepository) ListUsersByCondominiumID(ctx context.Context, condominiumID string, includeRemoved bool) ([]domain.CondominiumMember, error) {
	args := m.Called(ctx, condominiumID, includeRemoved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CondominiumMember), args.Error(1)
}

func (m *MockCondominiumRepository) UpdateUserCondominiumRole(ctx context.Context, userID, condominiumID string, newRole domain.CondominiumRole) error {
	args := m.Called(ctx, userID, condominiumID, newRole)
	return args.Error(0)
}

// --- Mock ApartmentRepository ---
type MockApartmentRepository struct {
	mock.Mock
}

func (m *MockApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	args := m.Called(ctx, apartmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) ListApartmentsByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.Apartment, error) {
	args := m.Called(ctx, condominiumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Apartment), args.Error(1)
}

func (m *MockApartmentRepository) SaveApartment(ctx context.Context, apartment domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) UpdateApartment(ctx context.Context, apartment domain.Apartment) error {
	args := m.Called(ctx, apartment)
	return args.Error(0)
}

func (m *MockApartmentRepository) UpdateApartmentStatus(ctx context.Context, apartmentID string, status domain.EntityStatus, updatedByUserID string) error {
	args := m.Called(ctx, apartmentID, status, updatedByUserID)
	return args.Error(0)
}

// --- Mock MaintenanceFeeRepository ---
type MockMaintenanceFeeRepository struct {
	mock.Mock
}

func (m *MockMaintenanceFeeRepository) FindMaintenanceFeeByID(ctx context.Context, maintenanceFeeID string) (*domain.MaintenanceFee, error) {
	args := m.Called(ctx, maintenanceFeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceFee), args.Error(1)
}

func (m *MockMaintenanceFeeRepository) ListMaintenanceFeesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.MaintenanceFee, error) {
	args := m.Called(ctx, condominiumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceFee), args.Error(1)
}

func (m *MockMaintenanceFeeRepository) FindFeeForPeriod(ctx context.Context, condominiumID string, from, to time.Time) (*domain.MaintenanceFee, error) {
	args := m.Called(ctx, condominiumID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceFee), args.Error(1)
}

func (m *MockMaintenanceFeeRepository) SaveMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockMaintenanceFeeRepository) UpdateMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockMaintenanceFeeRepository) UpdateMaintenanceFeeStatus(ctx context.Context, maintenanceFeeID string, status domain.EntityStatus, updatedByUserID string) error {
	args := m.Called(ctx, maintenanceFeeID, status, updatedByUserID)
	return args.Error(0)
}

// --- Mock CommonServiceRepository ---
type MockCommonServiceRepository struct {
	mock.Mock
}

func (m *MockCommonServiceRepository) FindCommonServiceByID(ctx context.Context, commonServiceID string) (*domain.CommonService, error) {
	args := m.Called(ctx, commonServiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommonService), args.Error(1)
}

func (m *MockCommonServiceRepository) ListCommonServicesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.CommonService, error) {
	args := m.Called(ctx, condominiumID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommonService), args.Error(1)
}

func (m *MockCommonServiceRepository) SaveCommonService(ctx context.Context, service domain.CommonService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockCommonServiceRepository) UpdateCommonService(ctx context.Context, service domain.CommonService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockCommonServiceRepository) UpdateCommonServiceStatus(ctx context.Context, commonServiceID string, status domain.EntityStatus, updatedByUserID string) error {
	args := m.Called(ctx, commonServiceID, status, updatedByUserID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Payment, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, apartmentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByCondominiumID(ctx context.Context, condominiumID string, limit int, before time.Time, beforeCreatedAt time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, condominiumID, limit, before, beforeCreatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, bool, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Bool(1), args.Error(2)
}

func (m *MockPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, updatedByUserID string) error {
	args := m.Called(ctx, paymentID, status, updatedByUserID)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentLifecycleStatus(ctx context.Context, paymentID string, status domain.EntityStatus, updatedByUserID string) error {
	args := m.Called(ctx, paymentID, status, updatedByUserID)
	return args.Error(0)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock StatementRepository ---
type MockStatementRepository struct {
	mock.Mock
}

func (m *MockStatementRepository) ListStatementPayments(ctx context.Context, condominiumID string, maintenanceFeeID string) ([]domain.StatementPaymentLine, error) {
	args := m.Called(ctx, condominiumID, maintenanceFeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementPaymentLine), args.Error(1)
}

func (m *MockStatementRepository) SumConfirmedPaymentsByApartment(ctx context.Context, apartmentID string, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, apartmentID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock MonthlyStatementRepository ---
type MockMonthlyStatementRepository struct {
	mock.Mock
}

func (m *MockMonthlyStatementRepository) FindMonthlyStatement(ctx context.Context, apartmentID string, year, month int) (*domain.MonthlyStatement, error) {
	args := m.Called(ctx, apartmentID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyStatement), args.Error(1)
}

func (m *MockMonthlyStatementRepository) ListMonthlyStatementsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.MonthlyStatement, error) {
	args := m.Called(ctx, apartmentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStatement), args.Error(1)
}

func (m *MockMonthlyStatementRepository) UpsertMonthlyStatement(ctx context.Context, statement domain.MonthlyStatement) error {
	args := m.Called(ctx, statement)
	return args.Error(0)
}
