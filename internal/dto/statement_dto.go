package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatementParams defines the query parameter selecting the statement month.
type StatementParams struct {
	Month string `form:"month" binding:"required"` // YYYY-MM
}

// StatementPaymentLineResponse is one payment row of the statement JSON view.
type StatementPaymentLineResponse struct {
	PaymentID     string               `json:"paymentID"`
	ApartmentName string               `json:"apartmentName"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	PaymentMethod string               `json:"paymentMethod"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

// AccountStatementResponse is the JSON view of a reconciled month.
type AccountStatementResponse struct {
	CondominiumID   string                         `json:"condominiumID"`
	CondominiumName string                         `json:"condominiumName"`
	Period          string                         `json:"period"` // YYYY-MM
	GeneratedAt     time.Time                      `json:"generatedAt"`
	Fee             *MaintenanceFeeResponse        `json:"fee,omitempty"`
	Payments        []StatementPaymentLineResponse `json:"payments"`
	Totals          struct {
		Confirmed decimal.Decimal `json:"confirmed"`
		Pending   decimal.Decimal `json:"pending"`
		Canceled  decimal.Decimal `json:"canceled"`
		Refunded  decimal.Decimal `json:"refunded"`
		Grand     decimal.Decimal `json:"grand"`
	} `json:"totals"`
}

// ToAccountStatementResponse converts a domain statement to a DTO response.
func ToAccountStatementResponse(s *domain.AccountStatement) AccountStatementResponse {
	response := AccountStatementResponse{
		CondominiumID:   s.CondominiumID,
		CondominiumName: s.CondominiumName,
		Period:          time.Date(s.Period.Year, time.Month(s.Period.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		GeneratedAt:     s.GeneratedAt,
		Payments:        make([]StatementPaymentLineResponse, len(s.Payments)),
	}

	if s.Fee != nil {
		fee := ToMaintenanceFeeResponse(s.Fee)
		response.Fee = &fee
	}

	for i, line := range s.Payments {
		response.Payments[i] = StatementPaymentLineResponse{
			PaymentID:     line.PaymentID,
			ApartmentName: line.ApartmentName,
			Amount:        line.Amount,
			PaymentDate:   line.PaymentDate,
			PaymentMethod: line.PaymentMethod,
			PaymentStatus: line.PaymentStatus,
		}
	}

	response.Totals.Confirmed = s.Totals.Confirmed
	response.Totals.Pending = s.Totals.Pending
	response.Totals.Canceled = s.Totals.Canceled
	response.Totals.Refunded = s.Totals.Refunded
	response.Totals.Grand = s.Totals.Grand

	return response
}

// MonthlyStatementResponse is the JSON view of a persisted apartment statement.
type MonthlyStatementResponse struct {
	MonthlyStatementID string          `json:"monthlyStatementID"`
	ApartmentID        string          `json:"apartmentID"`
	CondominiumID      string          `json:"condominiumID"`
	Period             string          `json:"period"` // YYYY-MM
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	ChargedAmount      decimal.Decimal `json:"chargedAmount"`
	PaidAmount         decimal.Decimal `json:"paidAmount"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
	CreatedAt          time.Time       `json:"createdAt"`
	LastUpdatedAt      time.Time       `json:"lastUpdatedAt"`
}

// ToMonthlyStatementResponse converts domain.MonthlyStatement to DTO.
func ToMonthlyStatementResponse(m *domain.MonthlyStatement) MonthlyStatementResponse {
	return MonthlyStatementResponse{
		MonthlyStatementID: m.MonthlyStatementID,
		ApartmentID:        m.ApartmentID,
		CondominiumID:      m.CondominiumID,
		Period:             time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
		OpeningBalance:     m.OpeningBalance,
		ChargedAmount:      m.ChargedAmount,
		PaidAmount:         m.PaidAmount,
		ClosingBalance:     m.ClosingBalance,
		CreatedAt:          m.CreatedAt,
		LastUpdatedAt:      m.LastUpdatedAt,
	}
}

// ListMonthlyStatementsResponse wraps a list of monthly statements.
type ListMonthlyStatementsResponse struct {
	Statements []MonthlyStatementResponse `json:"statements"`
}

// ToListMonthlyStatementsResponse converts a slice of monthly statements to DTO.
func ToListMonthlyStatementsResponse(ms []domain.MonthlyStatement) ListMonthlyStatementsResponse {
	list := make([]MonthlyStatementResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMonthlyStatementResponse(&m)
	}
	return ListMonthlyStatementsResponse{Statements: list}
}
