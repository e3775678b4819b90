package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMaintenanceFeeRequest defines data for creating a new maintenance fee.
// Dates are accepted in RFC 3339 form.
type CreateMaintenanceFeeRequest struct {
	Detail          string              `json:"detail" binding:"required,max=200"`
	Amount          decimal.Decimal     `json:"amount" binding:"required"`
	PenaltyAmount   decimal.Decimal     `json:"penaltyAmount"`
	Currency        string              `json:"currency" binding:"required,iso4217"`
	StartDate       time.Time           `json:"startDate" binding:"required"`
	PaymentDeadline time.Time           `json:"paymentDeadline" binding:"required"`
	FeeType         domain.FeeType      `json:"feeType" binding:"required,oneof=MAINTENANCE EXTRAORDINARY SERVICES"`
	Frequency       domain.FeeFrequency `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY QUARTERLY ANNUAL"`
}

// UpdateMaintenanceFeeRequest defines the data allowed for updating a fee.
type UpdateMaintenanceFeeRequest struct {
	Detail          *string              `json:"detail" binding:"omitempty,max=200"`
	Amount          *decimal.Decimal     `json:"amount"`
	PenaltyAmount   *decimal.Decimal     `json:"penaltyAmount"`
	StartDate       *time.Time           `json:"startDate"`
	PaymentDeadline *time.Time           `json:"paymentDeadline"`
	FeeType         *domain.FeeType      `json:"feeType" binding:"omitempty,oneof=MAINTENANCE EXTRAORDINARY SERVICES"`
	Frequency       *domain.FeeFrequency `json:"frequency" binding:"omitempty,oneof=WEEKLY MONTHLY QUARTERLY ANNUAL"`
}

// FeePeriodParams defines the query parameter selecting a billing month.
type FeePeriodParams struct {
	Month string `form:"month" binding:"required"` // YYYY-MM
}

// MaintenanceFeeResponse defines data returned for a maintenance fee.
type MaintenanceFeeResponse struct {
	MaintenanceFeeID string              `json:"maintenanceFeeID"`
	CondominiumID    string              `json:"condominiumID"`
	Detail           string              `json:"detail"`
	Amount           decimal.Decimal     `json:"amount"`
	PenaltyAmount    decimal.Decimal     `json:"penaltyAmount"`
	Currency         string              `json:"currency"`
	StartDate        time.Time           `json:"startDate"`
	PaymentDeadline  time.Time           `json:"paymentDeadline"`
	FeeType          domain.FeeType      `json:"feeType"`
	Frequency        domain.FeeFrequency `json:"frequency"`
	Status           domain.EntityStatus `json:"status"`
	CreatedAt        time.Time           `json:"createdAt"`
	LastUpdatedAt    time.Time           `json:"lastUpdatedAt"`
}

// ToMaintenanceFeeResponse converts domain.MaintenanceFee to DTO.
func ToMaintenanceFeeResponse(f *domain.MaintenanceFee) MaintenanceFeeResponse {
	return MaintenanceFeeResponse{
		MaintenanceFeeID: f.MaintenanceFeeID,
		CondominiumID:    f.CondominiumID,
		Detail:           f.Detail,
		Amount:           f.Amount,
		PenaltyAmount:    f.PenaltyAmount,
		Currency:         f.Currency,
		StartDate:        f.StartDate,
		PaymentDeadline:  f.PaymentDeadline,
		FeeType:          f.FeeType,
		Frequency:        f.Frequency,
		Status:           f.Status,
		CreatedAt:        f.CreatedAt,
		LastUpdatedAt:    f.LastUpdatedAt,
	}
}

// ListMaintenanceFeesResponse wraps a list of maintenance fees.
type ListMaintenanceFeesResponse struct {
	MaintenanceFees []MaintenanceFeeResponse `json:"maintenanceFees"`
}

// ToListMaintenanceFeesResponse converts a slice of fees to DTO.
func ToListMaintenanceFeesResponse(fs []domain.MaintenanceFee) ListMaintenanceFeesResponse {
	list := make([]MaintenanceFeeResponse, len(fs))
	for i, f := range fs {
		list[i] = ToMaintenanceFeeResponse(&f)
	}
	return ListMaintenanceFeesResponse{MaintenanceFees: list}
}
