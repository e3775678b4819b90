package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementPeriod is a calendar month window, half-open [From, To).
type StatementPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// StatementPaymentLine is one payment row on an account statement, already
// joined with the paying apartment's name.
type StatementPaymentLine struct {
	PaymentID     string          `json:"paymentID"`
	ApartmentName string          `json:"apartmentName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

// StatementTotals is the reconciliation summary of a statement period.
// GrandTotal is the sum of every payment counted for the period; whether
// CANCELED and REFUNDED payments count toward it is a service-level setting.
type StatementTotals struct {
	Confirmed decimal.Decimal `json:"confirmed"`
	Pending   decimal.Decimal `json:"pending"`
	Canceled  decimal.Decimal `json:"canceled"`
	Refunded  decimal.Decimal `json:"refunded"`
	Grand     decimal.Decimal `json:"grand"`
}

// AccountStatement is the reconciled view of one condominium's maintenance
// fee and payments for a single month. Fee is nil when no active maintenance
// fee starts inside the period.
type AccountStatement struct {
	CondominiumID   string                 `json:"condominiumID"`
	CondominiumName string                 `json:"condominiumName"`
	Period          StatementPeriod        `json:"period"`
	GeneratedAt     time.Time              `json:"generatedAt"`
	Fee             *MaintenanceFee        `json:"fee,omitempty"`
	Payments        []StatementPaymentLine `json:"payments"`
	Totals          StatementTotals        `json:"totals"`
}

// MonthlyStatement is the persisted per-apartment balance record for a period.
type MonthlyStatement struct {
	MonthlyStatementID string          `json:"monthlyStatementID" db:"monthly_statement_id"` // Primary key (UUID)
	ApartmentID        string          `json:"apartmentID" db:"apartment_id"`
	CondominiumID      string          `json:"condominiumID" db:"condominium_id"`
	Year               int             `json:"year" db:"year"`
	Month              int             `json:"month" db:"month"`
	OpeningBalance     decimal.Decimal `json:"openingBalance" db:"opening_balance"`
	ChargedAmount      decimal.Decimal `json:"chargedAmount" db:"charged_amount"`
	PaidAmount         decimal.Decimal `json:"paidAmount" db:"paid_amount"`
	ClosingBalance     decimal.Decimal `json:"closingBalance" db:"closing_balance"`
	Status             EntityStatus    `json:"status" db:"status"`
	AuditFields
}
