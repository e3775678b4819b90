package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	CreatedBy     string    `json:"createdBy" db:"created_by"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt" db:"last_updated_at"`
	LastUpdatedBy string    `json:"lastUpdatedBy" db:"last_updated_by"` // UserID reference
}

// EntityStatus is the lifecycle flag shared by all managed entities.
// DELETED rows are never removed physically; every active-scoped read filters them out.
type EntityStatus string

const (
	StatusActive    EntityStatus = "ACTIVE"
	StatusInactive  EntityStatus = "INACTIVE"
	StatusSuspended EntityStatus = "SUSPENDED"
	StatusDeleted   EntityStatus = "DELETED"
)
