package pgsql

import (
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	condominiumRepo := newPgxCondominiumRepository(dbPool)
	apartmentRepo := newPgxApartmentRepository(dbPool)
	maintenanceFeeRepo := newPgxMaintenanceFeeRepository(dbPool)
	commonServiceRepo := newPgxCommonServiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	statementRepo := newStatementRepository(dbPool)
	monthlyStatementRepo := newPgxMonthlyStatementRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:             userRepo,
		CondominiumRepo:      condominiumRepo,
		ApartmentRepo:        apartmentRepo,
		MaintenanceFeeRepo:   maintenanceFeeRepo,
		CommonServiceRepo:    commonServiceRepo,
		PaymentRepo:          paymentRepo,
		StatementRepo:        statementRepo,
		MonthlyStatementRepo: monthlyStatementRepo,
	}
}
