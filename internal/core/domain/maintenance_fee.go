package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeType classifies a maintenance fee charge.
type FeeType string

const (
	FeeTypeMaintenance   FeeType = "MAINTENANCE"
	FeeTypeExtraordinary FeeType = "EXTRAORDINARY"
	FeeTypeServices      FeeType = "SERVICES"
)

// FeeFrequency is the billing cadence of a fee or common service.
type FeeFrequency string

const (
	FrequencyWeekly    FeeFrequency = "WEEKLY"
	FrequencyMonthly   FeeFrequency = "MONTHLY"
	FrequencyQuarterly FeeFrequency = "QUARTERLY"
	FrequencyAnnual    FeeFrequency = "ANNUAL"
)

// MaintenanceFee is one billing charge instance for a period, not a recurring
// schedule definition. Each period's charge is its own record with its own StartDate.
type MaintenanceFee struct {
	MaintenanceFeeID string          `json:"maintenanceFeeID" db:"maintenance_fee_id"` // Primary key (UUID)
	CondominiumID    string          `json:"condominiumID" db:"condominium_id"`
	Detail           string          `json:"detail" db:"detail"` // e.g. "Maintenance fee April 2025"
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	PenaltyAmount    decimal.Decimal `json:"penaltyAmount" db:"penalty_amount"` // Late-payment surcharge
	Currency         string          `json:"currency" db:"currency"`
	StartDate        time.Time       `json:"startDate" db:"start_date"`
	PaymentDeadline  time.Time       `json:"paymentDeadline" db:"payment_deadline"`
	FeeType          FeeType         `json:"feeType" db:"fee_type"`
	Frequency        FeeFrequency    `json:"frequency" db:"frequency"`
	Status           EntityStatus    `json:"status" db:"status"`
	AuditFields
}
