package repositories

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// MonthlyStatementReader defines read operations for persisted monthly statements
type MonthlyStatementReader interface {
	// FindMonthlyStatement retrieves the statement of an apartment for a period.
	FindMonthlyStatement(ctx context.Context, apartmentID string, year, month int) (*domain.MonthlyStatement, error)

	// ListMonthlyStatementsByApartmentID retrieves the statement history of an
	// apartment, newest period first.
	ListMonthlyStatementsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.MonthlyStatement, error)
}

// MonthlyStatementWriter defines write operations for persisted monthly statements
type MonthlyStatementWriter interface {
	// UpsertMonthlyStatement inserts the statement for a period or replaces
	// its amounts when one already exists for the same apartment and period.
	UpsertMonthlyStatement(ctx context.Context, statement domain.MonthlyStatement) error
}

// MonthlyStatementRepositoryFacade combines the monthly statement repository interfaces
type MonthlyStatementRepositoryFacade interface {
	MonthlyStatementReader
	MonthlyStatementWriter
}
