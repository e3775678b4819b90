package domain

import "time"

// User represents a user of the application in the domain.
// Credential material (password hash, refresh token hash) lives in the
// persistence model, never in the domain type.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AuthProvider string `json:"authProvider"` // "local" or "google"
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
