package domain

import "github.com/shopspring/decimal"

// CommonService is a recurring third-party service contract for a condominium
// (water, security, gardening...). A payment can target a common service
// instead of a maintenance fee.
type CommonService struct {
	CommonServiceID string          `json:"commonServiceID" db:"common_service_id"` // Primary key (UUID)
	CondominiumID   string          `json:"condominiumID" db:"condominium_id"`
	Name            string          `json:"name" db:"name"`
	Provider        string          `json:"provider" db:"provider"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Frequency       FeeFrequency    `json:"frequency" db:"frequency"`
	Status          EntityStatus    `json:"status" db:"status"`
	AuditFields
}
