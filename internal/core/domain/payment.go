package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the processing sub-status of a payment, distinct from the
// entity lifecycle Status.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentCanceled  PaymentStatus = "CANCELED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment records money applied by an apartment against a maintenance fee or a
// common service. At most one of MaintenanceFeeID / CommonServiceID is set.
type Payment struct {
	PaymentID        string          `json:"paymentID" db:"payment_id"` // Primary key (UUID)
	ApartmentID      string          `json:"apartmentID" db:"apartment_id"`
	MaintenanceFeeID *string         `json:"maintenanceFeeID,omitempty" db:"maintenance_fee_id"`
	CommonServiceID  *string         `json:"commonServiceID,omitempty" db:"common_service_id"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	Currency         string          `json:"currency" db:"currency"`
	PaymentDate      time.Time       `json:"paymentDate" db:"payment_date"`
	PaymentMethod    string          `json:"paymentMethod" db:"payment_method"` // cash, transfer...
	TransactionID    string          `json:"transactionID" db:"transaction_id"`
	PaymentReference string          `json:"paymentReference" db:"payment_reference"` // receipt number etc.
	PaymentStatus    PaymentStatus   `json:"paymentStatus" db:"payment_status"`
	IdempotencyKey   *string         `json:"idempotencyKey,omitempty" db:"idempotency_key"`
	Status           EntityStatus    `json:"status" db:"status"`
	AuditFields
}
