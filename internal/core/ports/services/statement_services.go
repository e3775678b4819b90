package services

import (
	"context"
	"io"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// StatementSvcFacade defines operations for building account statements
type StatementSvcFacade interface {
	// BuildAccountStatement reconciles the maintenance fee and payments of a
	// condominium for one calendar month. An empty month yields a statement
	// with zero totals, not an error.
	BuildAccountStatement(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string) (*domain.AccountStatement, error)

	// RenderAccountStatementPDF builds the statement for the period and
	// writes it as a PDF document to w.
	RenderAccountStatementPDF(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string, w io.Writer) error
}

// MonthlyStatementSvcFacade defines operations for per-apartment monthly statements
type MonthlyStatementSvcFacade interface {
	// GetMonthlyStatement retrieves the persisted statement of an apartment
	// for a period.
	GetMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error)

	// ListMonthlyStatements retrieves the statement history of an apartment.
	ListMonthlyStatements(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.MonthlyStatement, error)

	// GenerateMonthlyStatement computes and persists the statement of an
	// apartment for a period, carrying the closing balance of the previous
	// period forward as the opening balance. Admin only.
	GenerateMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error)
}
