package dto

import (
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCommonServiceRequest defines data for creating a new common service.
type CreateCommonServiceRequest struct {
	Name      string              `json:"name" binding:"required,max=120"`
	Provider  string              `json:"provider" binding:"required,max=120"`
	Price     decimal.Decimal     `json:"price" binding:"required"`
	Frequency domain.FeeFrequency `json:"frequency" binding:"required,oneof=WEEKLY MONTHLY QUARTERLY ANNUAL"`
}

// UpdateCommonServiceRequest defines the data allowed for updating a common service.
type UpdateCommonServiceRequest struct {
	Name      *string              `json:"name" binding:"omitempty,max=120"`
	Provider  *string              `json:"provider" binding:"omitempty,max=120"`
	Price     *decimal.Decimal     `json:"price"`
	Frequency *domain.FeeFrequency `json:"frequency" binding:"omitempty,oneof=WEEKLY MONTHLY QUARTERLY ANNUAL"`
}

// CommonServiceResponse defines data returned for a common service.
type CommonServiceResponse struct {
	CommonServiceID string              `json:"commonServiceID"`
	CondominiumID   string              `json:"condominiumID"`
	Name            string              `json:"name"`
	Provider        string              `json:"provider"`
	Price           decimal.Decimal     `json:"price"`
	Frequency       domain.FeeFrequency `json:"frequency"`
	Status          domain.EntityStatus `json:"status"`
	CreatedAt       time.Time           `json:"createdAt"`
	LastUpdatedAt   time.Time           `json:"lastUpdatedAt"`
}

// ToCommonServiceResponse converts domain.CommonService to DTO.
func ToCommonServiceResponse(s *domain.CommonService) CommonServiceResponse {
	return CommonServiceResponse{
		CommonServiceID: s.CommonServiceID,
		CondominiumID:   s.CondominiumID,
		Name:            s.Name,
		Provider:        s.Provider,
		Price:           s.Price,
		Frequency:       s.Frequency,
		Status:          s.Status,
		CreatedAt:       s.CreatedAt,
		LastUpdatedAt:   s.LastUpdatedAt,
	}
}

// ListCommonServicesResponse wraps a list of common services.
type ListCommonServicesResponse struct {
	CommonServices []CommonServiceResponse `json:"commonServices"`
}

// ToListCommonServicesResponse converts a slice of common services to DTO.
func ToListCommonServicesResponse(ss []domain.CommonService) ListCommonServicesResponse {
	list := make([]CommonServiceResponse, len(ss))
	for i, s := range ss {
		list[i] = ToCommonServiceResponse(&s)
	}
	return ListCommonServicesResponse{CommonServices: list}
}
