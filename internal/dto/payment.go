package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines data for recording a payment. Exactly one of
// MaintenanceFeeID / CommonServiceID must be provided.
type CreatePaymentRequest struct {
	ApartmentID      string          `json:"apartmentID" binding:"required"`
	MaintenanceFeeID *string         `json:"maintenanceFeeID"`
	CommonServiceID  *string         `json:"commonServiceID"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Currency         string          `json:"currency" binding:"required,iso4217"`
	PaymentDate      time.Time       `json:"paymentDate" binding:"required"`
	PaymentMethod    string          `json:"paymentMethod" binding:"required,max=40"`
	TransactionID    string          `json:"transactionID" binding:"omitempty,max=100"`
	PaymentReference string          `json:"paymentReference" binding:"omitempty,max=100"`
	IdempotencyKey   *string         `json:"idempotencyKey" binding:"omitempty,min=8,max=64"`
}

// PaymentResponse defines data returned for a payment.
type PaymentResponse struct {
	PaymentID        string               `json:"paymentID"`
	ApartmentID      string               `json:"apartmentID"`
	MaintenanceFeeID *string              `json:"maintenanceFeeID,omitempty"`
	CommonServiceID  *string              `json:"commonServiceID,omitempty"`
	Amount           decimal.Decimal      `json:"amount"`
	Currency         string               `json:"currency"`
	PaymentDate      time.Time            `json:"paymentDate"`
	PaymentMethod    string               `json:"paymentMethod"`
	TransactionID    string               `json:"transactionID,omitempty"`
	PaymentReference string               `json:"paymentReference,omitempty"`
	PaymentStatus    domain.PaymentStatus `json:"paymentStatus"`
	Status           domain.EntityStatus  `json:"status"`
	CreatedAt        time.Time            `json:"createdAt"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts domain.Payment to DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:        p.PaymentID,
		ApartmentID:      p.ApartmentID,
		MaintenanceFeeID: p.MaintenanceFeeID,
		CommonServiceID:  p.CommonServiceID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		PaymentDate:      p.PaymentDate,
		PaymentMethod:    p.PaymentMethod,
		TransactionID:    p.TransactionID,
		PaymentReference: p.PaymentReference,
		PaymentStatus:    p.PaymentStatus,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		LastUpdatedAt:    p.LastUpdatedAt,
	}
}

// ListPaymentsResponse wraps a list of payments. NextToken is set when another
// page is available and is passed back verbatim to fetch it.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to DTO.
func ToListPaymentsResponse(ps []domain.Payment) ListPaymentsResponse {
	list := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: list}
}

// ToPagedPaymentsResponse converts a page of payments plus its cursor to DTO.
func ToPagedPaymentsResponse(ps []domain.Payment, nextToken *string) ListPaymentsResponse {
	resp := ToListPaymentsResponse(ps)
	resp.NextToken = nextToken
	return resp
}
