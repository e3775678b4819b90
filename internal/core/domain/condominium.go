package domain

import "time"

// Condominium is the top-level property entity owning apartments and billing records.
type Condominium struct {
	CondominiumID string       `json:"condominiumID" db:"condominium_id"` // Primary key (UUID)
	Name          string       `json:"name" db:"name"`
	Description   string       `json:"description" db:"description"`
	Street        string       `json:"street" db:"street"`
	StreetNumber  string       `json:"streetNumber" db:"street_number"`
	Neighborhood  string       `json:"neighborhood" db:"neighborhood"`
	City          string       `json:"city" db:"city"`
	State         string       `json:"state" db:"state"`
	Country       string       `json:"country" db:"country"`
	ZipCode       string       `json:"zipCode" db:"zip_code"`
	Phone         string       `json:"phone" db:"phone"`
	Email         string       `json:"email" db:"email"`
	Amenities     []string     `json:"amenities" db:"amenities"`
	TotalFloors   int          `json:"totalFloors" db:"total_floors"`
	TotalUnits    int          `json:"totalUnits" db:"total_units"`
	TotalParking  int          `json:"totalParking" db:"total_parking"`
	AdminID       string       `json:"adminID" db:"admin_id"` // UserID of the administrator
	Status        EntityStatus `json:"status" db:"status"`
	AuditFields
}

// CondominiumRole defines the possible roles a user can have within a condominium.
type CondominiumRole string

const (
	RoleAdmin    CondominiumRole = "ADMIN"
	RoleResident CondominiumRole = "RESIDENT"
	RoleReadOnly CondominiumRole = "READONLY"
	RoleRemoved  CondominiumRole = "REMOVED" // For users removed from the condominium
)

// CondominiumMember represents the membership of a User in a Condominium.
type CondominiumMember struct {
	UserID        string          `json:"userID" db:"user_id"`
	UserName      string          `json:"userName" db:"user_name"`
	CondominiumID string          `json:"condominiumID" db:"condominium_id"`
	Role          CondominiumRole `json:"role" db:"role"`
	JoinedAt      time.Time       `json:"joinedAt" db:"joined_at"`
}
