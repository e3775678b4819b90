package repositories

import (
	"context"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementReader defines the aggregate read operations backing account statements
type StatementReader interface {
	// ListStatementPayments retrieves the payment lines referencing a
	// maintenance fee, joined with the paying apartment's name and ordered by
	// payment date. Only ACTIVE payments within the condominium count.
	ListStatementPayments(ctx context.Context, condominiumID string, maintenanceFeeID string) ([]domain.StatementPaymentLine, error)

	// SumConfirmedPaymentsByApartment sums the CONFIRMED payments of an
	// apartment in the period [from, to). Returns zero when the period is empty.
	SumConfirmedPaymentsByApartment(ctx context.Context, apartmentID string, from, to time.Time) (decimal.Decimal, error)
}

// StatementRepositoryFacade is the statement reporting repository surface
type StatementRepositoryFacade interface {
	StatementReader
}
